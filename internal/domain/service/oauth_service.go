package service

import (
	"context"

	"skillhub/internal/domain/entity"
)

// OAuthProfile is the normalized identity extracted from an external
// provider's login payload. Every profile has a non-empty Email: providers
// that hide the address get a deterministic synthesized fallback so the
// reconciled user always has a login identifier.
type OAuthProfile struct {
	Provider       entity.ProviderType // Which provider asserted this identity.
	ProviderUserID string              // The provider's stable subject ID.
	Email          string              // Login identifier, possibly synthesized.
	Name           string              // Display name.
}

// OAuthVerifier defines the interface for verifying an external provider's
// credential (e.g. a Google ID token) and turning it into the raw attribute
// map the reconciliation step consumes.
type OAuthVerifier interface {
	// VerifyCredential checks the provider credential and returns the raw
	// provider attributes on success.
	VerifyCredential(ctx context.Context, credential string) (map[string]any, error)

	// Provider returns the provider this verifier handles.
	Provider() entity.ProviderType
}
