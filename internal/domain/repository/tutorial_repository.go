// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"skillhub/internal/domain/entity"
)

// TutorialRepository defines the standard operations for tutorial persistence.
type TutorialRepository interface {
	Create(ctx context.Context, tutorial *entity.Tutorial) error
	FindByID(ctx context.Context, id string) (*entity.Tutorial, error)
	FindAll(ctx context.Context) ([]*entity.Tutorial, error)
	FindByTag(ctx context.Context, tag string) ([]*entity.Tutorial, error)
	Update(ctx context.Context, tutorial *entity.Tutorial) error
	Delete(ctx context.Context, id string) error
}
