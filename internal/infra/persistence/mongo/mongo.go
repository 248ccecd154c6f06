// Package mongo contains the concrete implementation of the persistence layer
// on top of the MongoDB document store.
package mongo

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"

	"skillhub/config"
	"skillhub/internal/domain/lifecycle"
	"skillhub/internal/errors"
)

// Collection names used across the repositories.
const (
	collUsers      = "users"
	collQuestions  = "questions"
	collAnswers    = "answers"
	collTutorials  = "tutorials"
	collChallenges = "challenges"
	collComments   = "comments"
	collCourses    = "courses"
	collLessons    = "lessons"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the MongoDB database handle and registers connection lifecycle hooks.
func New(params Params) (*mongo.Database, error) {
	if params.Config.Mongo == nil || params.Config.Mongo.URI == "" {
		return nil, errors.New("mongo uri must be provided")
	}

	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI(params.Config.Mongo.URI))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	db := client.Database(params.Config.Mongo.Database)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := ensureIndexes(ctx, db); err != nil {
				return errors.Wrap(err, "failed to ensure MongoDB indexes")
			}

			params.Logger.Info("Connected to MongoDB",
				slog.String("database", params.Config.Mongo.Database))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return errors.WithStack(client.Disconnect(stopCtx))
		},
	})

	return db, nil
}

// ensureIndexes creates the indexes the domain invariants rely on. The unique
// indexes on users are what turns the reconcile/register check-then-act race
// into a detectable duplicate-key conflict instead of a second record.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(collUsers).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "provider", Value: 1}, {Key: "providerUserId", Value: 1}},
			// Partial: local accounts have no provider subject and must not
			// collide with each other.
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"providerUserId": bson.M{"$gt": ""}}),
		},
	})
	if err != nil {
		return errors.Wrap(err, "create user indexes")
	}

	secondary := map[string]string{
		collAnswers:  "questionId",
		collComments: "challengeId",
		collLessons:  "courseId",
	}
	for coll, field := range secondary {
		if _, err := db.Collection(coll).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: field, Value: 1}},
		}); err != nil {
			return errors.Wrapf(err, "create %s index", coll)
		}
	}

	if _, err := db.Collection(collTutorials).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "tags", Value: 1}},
	}); err != nil {
		return errors.Wrap(err, "create tutorial tag index")
	}

	return nil
}
