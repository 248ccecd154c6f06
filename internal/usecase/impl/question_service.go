package impl

import (
	"context"
	"log/slog"

	deliverycontext "skillhub/internal/delivery/context"
	"skillhub/internal/domain/entity"
	domainerrors "skillhub/internal/domain/errors"
	"skillhub/internal/domain/repository"
	"skillhub/internal/domain/service"
	"skillhub/internal/errors"
	"skillhub/internal/usecase"

	"go.uber.org/fx"
)

// questionService implements the QuestionUsecase and AnswerUsecase interfaces.
type questionService struct {
	questionRepo repository.QuestionRepository
	answerRepo   repository.AnswerRepository
	logger       *slog.Logger
}

// QuestionServiceParams holds dependencies for questionService, injected by Fx.
type QuestionServiceParams struct {
	fx.In

	QuestionRepo repository.QuestionRepository
	AnswerRepo   repository.AnswerRepository
	Logger       *slog.Logger
}

// QuestionServiceResult exposes the two usecase facets of questionService.
type QuestionServiceResult struct {
	fx.Out

	QuestionUsecase usecase.QuestionUsecase
	AnswerUsecase   usecase.AnswerUsecase
}

// NewQuestionService is the constructor for questionService.
func NewQuestionService(params QuestionServiceParams) QuestionServiceResult {
	srv := &questionService{
		questionRepo: params.QuestionRepo,
		answerRepo:   params.AnswerRepo,
		logger:       params.Logger,
	}

	return QuestionServiceResult{QuestionUsecase: srv, AnswerUsecase: srv}
}

func (srv *questionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateQuestion stamps the acting principal as the immutable owner.
func (srv *questionService) CreateQuestion(ctx context.Context, principal string, input usecase.QuestionInput) (*entity.Question, error) {
	question := &entity.Question{
		Title:       input.Title,
		Description: input.Description,
		Owner:       principal,
	}

	if err := srv.questionRepo.Create(ctx, question); err != nil {
		return nil, errors.Wrap(err, "failed to create question")
	}

	srv.log(ctx).Debug("Question created", slog.String("questionID", question.ID))

	return question, nil
}

func (srv *questionService) GetQuestion(ctx context.Context, id string) (*entity.Question, error) {
	question, err := srv.questionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapResourceErr(err, "question")
	}

	return question, nil
}

func (srv *questionService) ListQuestions(ctx context.Context) ([]*entity.Question, error) {
	questions, err := srv.questionRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list questions")
	}

	return questions, nil
}

// UpdateQuestion copies the mutable fields only; the stored owner is kept.
func (srv *questionService) UpdateQuestion(ctx context.Context, principal string, id string, input usecase.QuestionInput) (*entity.Question, error) {
	question, err := srv.questionRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapResourceErr(err, "question")
	}

	if err := service.AuthorizeMutation(question.Owner, principal); err != nil {
		return nil, err
	}

	question.Title = input.Title
	question.Description = input.Description

	if err := srv.questionRepo.Update(ctx, question); err != nil {
		return nil, mapResourceErr(err, "question")
	}

	return question, nil
}

func (srv *questionService) DeleteQuestion(ctx context.Context, principal string, id string) error {
	question, err := srv.questionRepo.FindByID(ctx, id)
	if err != nil {
		return mapResourceErr(err, "question")
	}

	if err := service.AuthorizeMutation(question.Owner, principal); err != nil {
		return err
	}

	if err := srv.questionRepo.Delete(ctx, id); err != nil {
		return mapResourceErr(err, "question")
	}

	return nil
}

// CreateAnswer verifies the target question exists before writing the answer.
func (srv *questionService) CreateAnswer(ctx context.Context, principal string, questionID string, input usecase.AnswerInput) (*entity.Answer, error) {
	if _, err := srv.questionRepo.FindByID(ctx, questionID); err != nil {
		return nil, mapResourceErr(err, "question")
	}

	answer := &entity.Answer{
		QuestionID: questionID,
		Content:    input.Content,
		Owner:      principal,
	}

	if err := srv.answerRepo.Create(ctx, answer); err != nil {
		return nil, errors.Wrap(err, "failed to create answer")
	}

	return answer, nil
}

func (srv *questionService) ListAnswers(ctx context.Context, questionID string) ([]*entity.Answer, error) {
	answers, err := srv.answerRepo.FindByQuestionID(ctx, questionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list answers")
	}

	return answers, nil
}

func (srv *questionService) UpdateAnswer(ctx context.Context, principal string, id string, input usecase.AnswerInput) (*entity.Answer, error) {
	answer, err := srv.answerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapResourceErr(err, "answer")
	}

	if err := service.AuthorizeMutation(answer.Owner, principal); err != nil {
		return nil, err
	}

	answer.Content = input.Content

	if err := srv.answerRepo.Update(ctx, answer); err != nil {
		return nil, mapResourceErr(err, "answer")
	}

	return answer, nil
}

func (srv *questionService) DeleteAnswer(ctx context.Context, principal string, id string) error {
	answer, err := srv.answerRepo.FindByID(ctx, id)
	if err != nil {
		return mapResourceErr(err, "answer")
	}

	if err := service.AuthorizeMutation(answer.Owner, principal); err != nil {
		return err
	}

	if err := srv.answerRepo.Delete(ctx, id); err != nil {
		return mapResourceErr(err, "answer")
	}

	return nil
}

// mapResourceErr translates the repository's not-found sentinel into the
// domain error surfaced to clients; everything else keeps its stack.
func mapResourceErr(err error, kind string) error {
	if errors.Is(err, repository.ErrResourceNotFound) {
		return domainerrors.ErrNotFound.WrapMessage(kind + " does not exist")
	}

	return errors.Wrap(err, "repository operation failed")
}
