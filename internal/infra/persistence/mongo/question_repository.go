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

// questionRepository implements the repository.QuestionRepository interface.
type questionRepository struct {
	coll *mongo.Collection
}

// NewQuestionRepository is the constructor for questionRepository.
func NewQuestionRepository(db *mongo.Database) repository.QuestionRepository {
	return &questionRepository{coll: db.Collection(collQuestions)}
}

func (repo *questionRepository) Create(ctx context.Context, question *entity.Question) error {
	now := time.Now().UTC()
	question.CreatedAt = now
	question.UpdatedAt = now

	result, err := repo.coll.InsertOne(ctx, fromQuestionDomain(question))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create question")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		question.ID = oid.Hex()
	}

	return nil
}

func (repo *questionRepository) FindByID(ctx context.Context, id string) (*entity.Question, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrResourceNotFound
	}

	var questionM model.QuestionModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&questionM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toQuestionDomain(&questionM), nil
}

func (repo *questionRepository) FindAll(ctx context.Context) ([]*entity.Question, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var models []model.QuestionModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.WithStack(err)
	}

	questions := make([]*entity.Question, 0, len(models))
	for i := range models {
		questions = append(questions, toQuestionDomain(&models[i]))
	}

	return questions, nil
}

func (repo *questionRepository) Update(ctx context.Context, question *entity.Question) error {
	oid, err := primitive.ObjectIDFromHex(question.ID)
	if err != nil {
		return repository.ErrResourceNotFound
	}

	question.UpdatedAt = time.Now().UTC()

	questionM := fromQuestionDomain(question)
	questionM.ID = oid

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": oid}, questionM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update question")
	}

	if result.MatchedCount == 0 {
		return repository.ErrResourceNotFound
	}

	return nil
}

func (repo *questionRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.coll, id)
}

// --- Mapper Functions ---

func toQuestionDomain(data *model.QuestionModel) *entity.Question {
	return &entity.Question{
		ID:          data.ID.Hex(),
		Title:       data.Title,
		Description: data.Description,
		Owner:       data.Owner,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromQuestionDomain(data *entity.Question) *model.QuestionModel {
	return &model.QuestionModel{
		Title:       data.Title,
		Description: data.Description,
		Owner:       data.Owner,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
