package usecase

import (
	"context"

	"skillhub/internal/domain/entity"
)

// ChallengeInput defines the mutable fields of a challenge.
type ChallengeInput struct {
	Title       string
	Description string
}

// CommentInput defines the mutable fields of a comment.
type CommentInput struct {
	Content string
}

// ChallengeUsecase defines the business operations for coding challenges.
// Challenges are immutable once posted; only the owner may remove one.
type ChallengeUsecase interface {
	CreateChallenge(ctx context.Context, principal string, input ChallengeInput) (*entity.Challenge, error)
	GetChallenge(ctx context.Context, id string) (*entity.Challenge, error)
	ListChallenges(ctx context.Context) ([]*entity.Challenge, error)
	DeleteChallenge(ctx context.Context, principal string, id string) error
}

// CommentUsecase defines the business operations for challenge comments.
type CommentUsecase interface {
	CreateComment(ctx context.Context, principal string, challengeID string, input CommentInput) (*entity.Comment, error)
	ListComments(ctx context.Context, challengeID string) ([]*entity.Comment, error)
	UpdateComment(ctx context.Context, principal string, id string, input CommentInput) (*entity.Comment, error)
	DeleteComment(ctx context.Context, principal string, id string) error
}
