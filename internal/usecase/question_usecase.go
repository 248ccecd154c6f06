package usecase

import (
	"context"

	"skillhub/internal/domain/entity"
)

// --- Input DTOs ---

// QuestionInput defines the mutable fields of a question.
type QuestionInput struct {
	Title       string
	Description string
}

// AnswerInput defines the mutable fields of an answer.
type AnswerInput struct {
	Content string
}

// QuestionUsecase defines the business operations of the Q&A board.
// Mutations take the acting principal's ID so ownership can be enforced.
type QuestionUsecase interface {
	CreateQuestion(ctx context.Context, principal string, input QuestionInput) (*entity.Question, error)
	GetQuestion(ctx context.Context, id string) (*entity.Question, error)
	ListQuestions(ctx context.Context) ([]*entity.Question, error)
	UpdateQuestion(ctx context.Context, principal string, id string, input QuestionInput) (*entity.Question, error)
	DeleteQuestion(ctx context.Context, principal string, id string) error
}

// AnswerUsecase defines the business operations for answers to questions.
type AnswerUsecase interface {
	CreateAnswer(ctx context.Context, principal string, questionID string, input AnswerInput) (*entity.Answer, error)
	ListAnswers(ctx context.Context, questionID string) ([]*entity.Answer, error)
	UpdateAnswer(ctx context.Context, principal string, id string, input AnswerInput) (*entity.Answer, error)
	DeleteAnswer(ctx context.Context, principal string, id string) error
}
