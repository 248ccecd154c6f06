package usecase

import (
	"context"

	"skillhub/internal/domain/entity"
)

// TutorialInput defines the mutable fields of a tutorial.
type TutorialInput struct {
	Title   string
	Content string
	Tags    []string
}

// TutorialUsecase defines the business operations for tutorials.
type TutorialUsecase interface {
	CreateTutorial(ctx context.Context, principal string, input TutorialInput) (*entity.Tutorial, error)
	GetTutorial(ctx context.Context, id string) (*entity.Tutorial, error)
	ListTutorials(ctx context.Context) ([]*entity.Tutorial, error)
	SearchTutorialsByTag(ctx context.Context, tag string) ([]*entity.Tutorial, error)
	UpdateTutorial(ctx context.Context, principal string, id string, input TutorialInput) (*entity.Tutorial, error)
	DeleteTutorial(ctx context.Context, principal string, id string) error
}
