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

// tutorialRepository implements the repository.TutorialRepository interface.
type tutorialRepository struct {
	coll *mongo.Collection
}

// NewTutorialRepository is the constructor for tutorialRepository.
func NewTutorialRepository(db *mongo.Database) repository.TutorialRepository {
	return &tutorialRepository{coll: db.Collection(collTutorials)}
}

func (repo *tutorialRepository) Create(ctx context.Context, tutorial *entity.Tutorial) error {
	now := time.Now().UTC()
	tutorial.CreatedAt = now
	tutorial.UpdatedAt = now

	result, err := repo.coll.InsertOne(ctx, fromTutorialDomain(tutorial))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create tutorial")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		tutorial.ID = oid.Hex()
	}

	return nil
}

func (repo *tutorialRepository) FindByID(ctx context.Context, id string) (*entity.Tutorial, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrResourceNotFound
	}

	var tutorialM model.TutorialModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&tutorialM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toTutorialDomain(&tutorialM), nil
}

func (repo *tutorialRepository) FindAll(ctx context.Context) ([]*entity.Tutorial, error) {
	return repo.findMany(ctx, bson.M{})
}

// FindByTag relies on the multikey index on tags for exact tag matches.
func (repo *tutorialRepository) FindByTag(ctx context.Context, tag string) ([]*entity.Tutorial, error) {
	return repo.findMany(ctx, bson.M{"tags": tag})
}

func (repo *tutorialRepository) Update(ctx context.Context, tutorial *entity.Tutorial) error {
	oid, err := primitive.ObjectIDFromHex(tutorial.ID)
	if err != nil {
		return repository.ErrResourceNotFound
	}

	tutorial.UpdatedAt = time.Now().UTC()

	tutorialM := fromTutorialDomain(tutorial)
	tutorialM.ID = oid

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": oid}, tutorialM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update tutorial")
	}

	if result.MatchedCount == 0 {
		return repository.ErrResourceNotFound
	}

	return nil
}

func (repo *tutorialRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.coll, id)
}

func (repo *tutorialRepository) findMany(ctx context.Context, filter bson.M) ([]*entity.Tutorial, error) {
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var models []model.TutorialModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.WithStack(err)
	}

	tutorials := make([]*entity.Tutorial, 0, len(models))
	for i := range models {
		tutorials = append(tutorials, toTutorialDomain(&models[i]))
	}

	return tutorials, nil
}

// --- Mapper Functions ---

func toTutorialDomain(data *model.TutorialModel) *entity.Tutorial {
	return &entity.Tutorial{
		ID:        data.ID.Hex(),
		Title:     data.Title,
		Content:   data.Content,
		Tags:      data.Tags,
		Owner:     data.Owner,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromTutorialDomain(data *entity.Tutorial) *model.TutorialModel {
	return &model.TutorialModel{
		Title:     data.Title,
		Content:   data.Content,
		Tags:      data.Tags,
		Owner:     data.Owner,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
