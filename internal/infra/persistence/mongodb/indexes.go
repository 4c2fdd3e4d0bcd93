package mongodb

import (
	"context"

	"peeko/internal/errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const messagesCollection = "messages"

func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(messagesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// oldest unread for a destination: openMessage and inbox unread counts
			Keys: bson.D{
				{Key: "destination", Value: 1},
				{Key: "opened", Value: 1},
				{Key: "created_at", Value: 1},
			},
			Options: options.Index().SetName("destination_opened_created_at"),
		},
		{
			Keys: bson.D{
				{Key: "source", Value: 1},
				{Key: "destination", Value: 1},
				{Key: "created_at", Value: 1},
			},
			Options: options.Index().SetName("source_destination_created_at"),
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create message indexes")
	}

	return nil
}
