package mongodb

import (
	"context"
	"time"

	"peeko/internal/domain/entity"
	"peeko/internal/domain/repository"
	"peeko/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var oldestFirst = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}

// messageRepository implements repository.MessageRepository on the 'messages' collection.
type messageRepository struct {
	coll *mongo.Collection
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *mongo.Database) repository.MessageRepository {
	return &messageRepository{coll: db.Collection(messagesCollection)}
}

func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	now := time.Now().UTC()
	if message.CreatedAt.IsZero() {
		message.CreatedAt = now
	}
	message.UpdatedAt = now

	doc := fromMessageDomain(message)
	if doc.ID.IsZero() {
		doc.ID = primitive.NewObjectID()
	}

	if _, err := repo.coll.InsertOne(ctx, doc); err != nil {
		return errors.Wrap(err, "failed to insert message")
	}
	message.ID = doc.ID.Hex()

	return nil
}

func (repo *messageRepository) find(ctx context.Context, filter bson.M) ([]*entity.Message, error) {
	cursor, err := repo.coll.Find(ctx, filter, options.Find().SetSort(oldestFirst))
	if err != nil {
		return nil, errors.Wrap(err, "failed to query messages")
	}

	var docs []*messageDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrap(err, "failed to decode messages")
	}

	return toMessageDomains(docs), nil
}

func (repo *messageRepository) FindConversation(ctx context.Context, codeA, codeB string) ([]*entity.Message, error) {
	return repo.find(ctx, bson.M{"$or": bson.A{
		bson.M{"source": codeA, "destination": codeB},
		bson.M{"source": codeB, "destination": codeA},
	}})
}

func (repo *messageRepository) FindByParticipant(ctx context.Context, code string) ([]*entity.Message, error) {
	return repo.find(ctx, bson.M{"$or": bson.A{
		bson.M{"source": code},
		bson.M{"destination": code},
	}})
}

func (repo *messageRepository) MarkConversationRead(ctx context.Context, readerCode, partnerCode string) (int64, error) {
	result, err := repo.coll.UpdateMany(ctx,
		bson.M{"source": partnerCode, "destination": readerCode, "opened": false},
		bson.M{"$set": bson.M{"opened": true, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark conversation read")
	}

	return result.ModifiedCount, nil
}

func (repo *messageRepository) MarkRead(ctx context.Context, ids []string) (int64, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objectID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return 0, errors.Wrapf(err, "invalid message id %q", id)
		}
		objectIDs = append(objectIDs, objectID)
	}
	if len(objectIDs) == 0 {
		return 0, nil
	}

	result, err := repo.coll.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": objectIDs}, "opened": false},
		bson.M{"$set": bson.M{"opened": true, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return 0, errors.Wrap(err, "failed to mark messages read")
	}

	return result.ModifiedCount, nil
}

// ClaimOldestUnread relies on the opened=false filter of a single find-and-update, so two
// concurrent callers can never claim the same message.
func (repo *messageRepository) ClaimOldestUnread(ctx context.Context, code string) (*entity.Message, error) {
	var doc messageDocument
	err := repo.coll.FindOneAndUpdate(ctx,
		bson.M{"destination": code, "opened": false},
		bson.M{"$set": bson.M{"opened": true, "updated_at": time.Now().UTC()}},
		options.FindOneAndUpdate().
			SetSort(oldestFirst).
			SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrMessageNotFound
		}

		return nil, errors.Wrap(err, "failed to claim message")
	}

	return toMessageDomain(&doc), nil
}

// FindCodesMissingUserRefs pages by code so callers can walk every unresolved code even when
// some of them never resolve.
func (repo *messageRepository) FindCodesMissingUserRefs(ctx context.Context, after string, limit int) ([]string, error) {
	missing := func(field string) bson.M {
		return bson.M{"$eq": bson.A{bson.M{"$type": "$" + field}, "missing"}}
	}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"$or": bson.A{
			bson.M{"source_user_id": bson.M{"$exists": false}},
			bson.M{"destination_user_id": bson.M{"$exists": false}},
		}}}},
		{{Key: "$project", Value: bson.M{"codes": bson.M{"$concatArrays": bson.A{
			bson.M{"$cond": bson.A{missing("source_user_id"), bson.A{"$source"}, bson.A{}}},
			bson.M{"$cond": bson.A{missing("destination_user_id"), bson.A{"$destination"}, bson.A{}}},
		}}}}},
		{{Key: "$unwind", Value: "$codes"}},
		{{Key: "$match", Value: bson.M{"codes": bson.M{"$gt": after}}}},
		{{Key: "$group", Value: bson.M{"_id": "$codes"}}},
		{{Key: "$sort", Value: bson.M{"_id": 1}}},
	}
	if limit > 0 {
		pipeline = append(pipeline, bson.D{{Key: "$limit", Value: limit}})
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list codes missing user references")
	}

	var rows []struct {
		Code string `bson:"_id"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrap(err, "failed to decode codes missing user references")
	}

	codes := make([]string, 0, len(rows))
	for _, row := range rows {
		codes = append(codes, row.Code)
	}

	return codes, nil
}

func (repo *messageRepository) SetUserRefs(ctx context.Context, code string, userID uuid.UUID) (int64, error) {
	var total int64
	for _, pair := range [][2]string{{"source", "source_user_id"}, {"destination", "destination_user_id"}} {
		result, err := repo.coll.UpdateMany(ctx,
			bson.M{pair[0]: code, pair[1]: bson.M{"$exists": false}},
			bson.M{"$set": bson.M{pair[1]: userID.String()}},
		)
		if err != nil {
			return total, errors.Wrapf(err, "failed to set %s", pair[1])
		}
		total += result.ModifiedCount
	}

	return total, nil
}
