package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"skillhub/internal/domain/entity"
	domainerrors "skillhub/internal/domain/errors"
	"skillhub/internal/domain/repository"
	"skillhub/internal/errors"
	"skillhub/internal/infra/persistence/model"
)

// commentRepository implements the repository.CommentRepository interface.
type commentRepository struct {
	coll *mongo.Collection
}

// NewCommentRepository is the constructor for commentRepository.
func NewCommentRepository(db *mongo.Database) repository.CommentRepository {
	return &commentRepository{coll: db.Collection(collComments)}
}

func (repo *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	result, err := repo.coll.InsertOne(ctx, fromCommentDomain(comment))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create comment")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid.Hex()
	}

	return nil
}

func (repo *commentRepository) FindByID(ctx context.Context, id string) (*entity.Comment, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrResourceNotFound
	}

	var commentM model.CommentModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&commentM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toCommentDomain(&commentM), nil
}

func (repo *commentRepository) FindByChallengeID(ctx context.Context, challengeID string) ([]*entity.Comment, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"challengeId": challengeID})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var models []model.CommentModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.WithStack(err)
	}

	comments := make([]*entity.Comment, 0, len(models))
	for i := range models {
		comments = append(comments, toCommentDomain(&models[i]))
	}

	return comments, nil
}

func (repo *commentRepository) Update(ctx context.Context, comment *entity.Comment) error {
	oid, err := primitive.ObjectIDFromHex(comment.ID)
	if err != nil {
		return repository.ErrResourceNotFound
	}

	comment.UpdatedAt = time.Now().UTC()

	commentM := fromCommentDomain(comment)
	commentM.ID = oid

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": oid}, commentM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update comment")
	}

	if result.MatchedCount == 0 {
		return repository.ErrResourceNotFound
	}

	return nil
}

func (repo *commentRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.coll, id)
}

// --- Mapper Functions ---

func toCommentDomain(data *model.CommentModel) *entity.Comment {
	return &entity.Comment{
		ID:          data.ID.Hex(),
		ChallengeID: data.ChallengeID,
		Content:     data.Content,
		Owner:       data.Owner,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromCommentDomain(data *entity.Comment) *model.CommentModel {
	return &model.CommentModel{
		ChallengeID: data.ChallengeID,
		Content:     data.Content,
		Owner:       data.Owner,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
