// Package mongo contains the concrete implementation of the persistence layer using the MongoDB driver.
package mongo

import (
	"context"
	"log/slog"

	"homesec/config"
	"homesec/internal/domain/lifecycle"
	"homesec/internal/errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.uber.org/fx"
)

// emailCollation makes comparisons on correo ignore case.
var emailCollation = &options.Collation{Locale: "en", Strength: 2}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB client and returns the configured database handle.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo

	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.URI).
		SetTimeout(cfg.Timeout))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(cfg.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db, params.Config); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", cfg.Database))

			return nil
		},
		OnStop: func(ctx context.Context) error {
			return errors.WithStack(client.Disconnect(ctx))
		},
	})

	return db, nil
}

// EnsureIndexes creates the indexes the repositories rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database, cfg *config.Config) error {
	users := db.Collection(cfg.Mongo.Collections.Users)
	_, err := users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "correo", Value: 1}},
			Options: options.Index().SetName("correo_unique_ci").SetUnique(true).SetCollation(emailCollation),
		},
		{
			Keys: bson.D{{Key: "rol", Value: 1}},
		},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create user indexes")
	}

	houses := db.Collection(cfg.Mongo.Collections.Houses)
	_, err = houses.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "usuario_id", Value: 1}},
	})
	if err != nil {
		return errors.Wrap(err, "failed to create house indexes")
	}

	return nil
}
