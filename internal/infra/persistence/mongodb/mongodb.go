// Package mongodb implements the message store on MongoDB.
package mongodb

import (
	"context"
	"log/slog"
	"time"

	"peeko/config"
	"peeko/internal/domain/lifecycle"
	"peeko/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/fx"
)

const (
	connectRetryDelay = 500 * time.Millisecond

	// MongoDB server error codes that retrying cannot fix.
	codeUnauthorized         = 13
	codeAuthenticationFailed = 18
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the message database handle. The connection is verified on start with bounded
// retries, indexes are ensured, and the client is disconnected on stop.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo uri is required")
	}

	client, err := mongo.Connect(context.Background(), clientOptions(cfg))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}
	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			if err := pingWithRetry(startCtx, params.Logger, client, cfg); err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return ensureIndexes(ctx, db)
		},
		OnStop: func(stopCtx context.Context) error {
			ctx, cancel := context.WithTimeout(stopCtx, lifecycle.DefaultTimeout)
			defer cancel()

			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

func clientOptions(cfg *config.MongoConfig) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
	if cfg.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(uint64(cfg.MaxPoolSize))
	}

	return opts
}

func pingWithRetry(ctx context.Context, logger *slog.Logger, client *mongo.Client, cfg *config.MongoConfig) error {
	var err error
	for attempt := 1; attempt <= cfg.MaxRetry; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
		err = client.Ping(pingCtx, readpref.Primary())
		cancel()

		if err == nil {
			return nil
		}
		if !shouldRetry(ctx, err) {
			break
		}

		logger.Warn("MongoDB not reachable, retrying",
			slog.Int("attempt", attempt),
			slog.Int("maxRetry", cfg.MaxRetry),
			slog.Any("error", err),
		)

		select {
		case <-ctx.Done():
			return errors.Wrap(ctx.Err(), "gave up connecting to MongoDB")
		case <-time.After(connectRetryDelay):
		}
	}

	return errors.Wrap(err, "failed to connect to MongoDB")
}

// shouldRetry treats authentication and authorization failures as permanent.
func shouldRetry(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}

	var cmdErr mongo.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Code != codeUnauthorized && cmdErr.Code != codeAuthenticationFailed
	}

	return true
}
