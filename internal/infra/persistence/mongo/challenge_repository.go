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

// challengeRepository implements the repository.ChallengeRepository interface.
type challengeRepository struct {
	coll *mongo.Collection
}

// NewChallengeRepository is the constructor for challengeRepository.
func NewChallengeRepository(db *mongo.Database) repository.ChallengeRepository {
	return &challengeRepository{coll: db.Collection(collChallenges)}
}

func (repo *challengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	challenge.CreatedAt = time.Now().UTC()

	result, err := repo.coll.InsertOne(ctx, fromChallengeDomain(challenge))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create challenge")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		challenge.ID = oid.Hex()
	}

	return nil
}

func (repo *challengeRepository) FindByID(ctx context.Context, id string) (*entity.Challenge, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrResourceNotFound
	}

	var challengeM model.ChallengeModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&challengeM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toChallengeDomain(&challengeM), nil
}

func (repo *challengeRepository) FindAll(ctx context.Context) ([]*entity.Challenge, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var models []model.ChallengeModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.WithStack(err)
	}

	challenges := make([]*entity.Challenge, 0, len(models))
	for i := range models {
		challenges = append(challenges, toChallengeDomain(&models[i]))
	}

	return challenges, nil
}

func (repo *challengeRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.coll, id)
}

// --- Mapper Functions ---

func toChallengeDomain(data *model.ChallengeModel) *entity.Challenge {
	return &entity.Challenge{
		ID:          data.ID.Hex(),
		Title:       data.Title,
		Description: data.Description,
		Owner:       data.Owner,
		CreatedAt:   data.CreatedAt,
	}
}

func fromChallengeDomain(data *entity.Challenge) *model.ChallengeModel {
	return &model.ChallengeModel{
		Title:       data.Title,
		Description: data.Description,
		Owner:       data.Owner,
		CreatedAt:   data.CreatedAt,
	}
}
