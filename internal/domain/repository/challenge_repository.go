// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"skillhub/internal/domain/entity"
)

// ChallengeRepository defines the standard operations for challenge persistence.
type ChallengeRepository interface {
	Create(ctx context.Context, challenge *entity.Challenge) error
	FindByID(ctx context.Context, id string) (*entity.Challenge, error)
	FindAll(ctx context.Context) ([]*entity.Challenge, error)
	Delete(ctx context.Context, id string) error
}

// CommentRepository defines the standard operations for comment persistence.
type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id string) (*entity.Comment, error)
	FindByChallengeID(ctx context.Context, challengeID string) ([]*entity.Comment, error)
	Update(ctx context.Context, comment *entity.Comment) error
	Delete(ctx context.Context, id string) error
}
