// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"skillhub/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a local account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required for a local login.
type LoginInput struct {
	Email    string
	Password string
}

// OAuthLoginInput carries the provider credential obtained by the client.
// For google the credential is an ID token; for github it is the user
// payload fetched during the authorization-code exchange.
type OAuthLoginInput struct {
	Provider   entity.ProviderType
	Credential string
}

// --- Output DTOs ---

// AuthOutput returns the signed access token together with the user it
// was issued for.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines the interface for authentication business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (*AuthOutput, error)
	OAuthLogin(ctx context.Context, input OAuthLoginInput) (*AuthOutput, error)
}
