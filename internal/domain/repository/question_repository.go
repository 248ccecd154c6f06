// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"skillhub/internal/domain/entity"
)

// ErrResourceNotFound is returned when a stored resource (question, answer,
// tutorial, challenge, comment, course, lesson) does not exist.
var ErrResourceNotFound = errors.New("resource not found")

// QuestionRepository defines the standard operations for question persistence.
type QuestionRepository interface {
	Create(ctx context.Context, question *entity.Question) error
	FindByID(ctx context.Context, id string) (*entity.Question, error)
	FindAll(ctx context.Context) ([]*entity.Question, error)
	Update(ctx context.Context, question *entity.Question) error
	Delete(ctx context.Context, id string) error
}

// AnswerRepository defines the standard operations for answer persistence.
type AnswerRepository interface {
	Create(ctx context.Context, answer *entity.Answer) error
	FindByID(ctx context.Context, id string) (*entity.Answer, error)
	FindByQuestionID(ctx context.Context, questionID string) ([]*entity.Answer, error)
	Update(ctx context.Context, answer *entity.Answer) error
	Delete(ctx context.Context, id string) error
}
