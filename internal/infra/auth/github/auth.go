// Package github normalizes GitHub OAuth callback payloads for
// reconciliation. The redirect handshake (code exchange, user API call) is
// completed by the fronting OAuth collaborator; what arrives here is the
// user-attribute document it fetched, serialized as JSON.
package github

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/pkg/errors"

	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/service"
)

// verifier implements service.OAuthVerifier for GitHub user payloads.
type verifier struct {
	logger *slog.Logger
}

// NewVerifier creates a GitHub payload verifier.
func NewVerifier(logger *slog.Logger) service.OAuthVerifier {
	return &verifier{logger: logger}
}

// VerifyCredential decodes the GitHub user document and checks that it
// carries the stable numeric id GitHub assigns to every account.
func (v *verifier) VerifyCredential(_ context.Context, payload string) (map[string]any, error) {
	var attrs map[string]any
	if err := json.Unmarshal([]byte(payload), &attrs); err != nil {
		return nil, errors.Wrap(err, "failed to decode github user payload")
	}

	if _, ok := attrs["id"]; !ok {
		return nil, errors.New("github payload carries no id")
	}

	if login, ok := attrs["login"].(string); ok {
		v.logger.Debug("GitHub user payload accepted", slog.String("login", login))
	}

	return attrs, nil
}

// Provider returns the provider this verifier handles.
func (v *verifier) Provider() entity.ProviderType {
	return entity.ProviderTypeGitHub
}
