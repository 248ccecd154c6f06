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

// answerRepository implements the repository.AnswerRepository interface.
type answerRepository struct {
	coll *mongo.Collection
}

// NewAnswerRepository is the constructor for answerRepository.
func NewAnswerRepository(db *mongo.Database) repository.AnswerRepository {
	return &answerRepository{coll: db.Collection(collAnswers)}
}

func (repo *answerRepository) Create(ctx context.Context, answer *entity.Answer) error {
	now := time.Now().UTC()
	answer.CreatedAt = now
	answer.UpdatedAt = now

	result, err := repo.coll.InsertOne(ctx, fromAnswerDomain(answer))
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create answer")
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		answer.ID = oid.Hex()
	}

	return nil
}

func (repo *answerRepository) FindByID(ctx context.Context, id string) (*entity.Answer, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, repository.ErrResourceNotFound
	}

	var answerM model.AnswerModel
	if err := repo.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&answerM); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrResourceNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toAnswerDomain(&answerM), nil
}

func (repo *answerRepository) FindByQuestionID(ctx context.Context, questionID string) ([]*entity.Answer, error) {
	cursor, err := repo.coll.Find(ctx, bson.M{"questionId": questionID})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var models []model.AnswerModel
	if err := cursor.All(ctx, &models); err != nil {
		return nil, errors.WithStack(err)
	}

	answers := make([]*entity.Answer, 0, len(models))
	for i := range models {
		answers = append(answers, toAnswerDomain(&models[i]))
	}

	return answers, nil
}

func (repo *answerRepository) Update(ctx context.Context, answer *entity.Answer) error {
	oid, err := primitive.ObjectIDFromHex(answer.ID)
	if err != nil {
		return repository.ErrResourceNotFound
	}

	answer.UpdatedAt = time.Now().UTC()

	answerM := fromAnswerDomain(answer)
	answerM.ID = oid

	result, err := repo.coll.ReplaceOne(ctx, bson.M{"_id": oid}, answerM)
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update answer")
	}

	if result.MatchedCount == 0 {
		return repository.ErrResourceNotFound
	}

	return nil
}

func (repo *answerRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, repo.coll, id)
}

// --- Mapper Functions ---

func toAnswerDomain(data *model.AnswerModel) *entity.Answer {
	return &entity.Answer{
		ID:         data.ID.Hex(),
		QuestionID: data.QuestionID,
		Content:    data.Content,
		Owner:      data.Owner,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromAnswerDomain(data *entity.Answer) *model.AnswerModel {
	return &model.AnswerModel{
		QuestionID: data.QuestionID,
		Content:    data.Content,
		Owner:      data.Owner,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
