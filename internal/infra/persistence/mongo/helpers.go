package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	domainerrors "skillhub/internal/domain/errors"
	"skillhub/internal/domain/repository"
)

// deleteByID removes a single document by its hex ID. A malformed ID or a
// missing document both surface as ErrResourceNotFound so callers treat
// them uniformly.
func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.ErrResourceNotFound
	}

	result, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete document")
	}

	if result.DeletedCount == 0 {
		return repository.ErrResourceNotFound
	}

	return nil
}
