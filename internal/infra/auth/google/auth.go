// Package google verifies Google Sign-In ID tokens and exposes the asserted
// identity as a raw attribute map for reconciliation.
package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	"skillhub/config"
	"skillhub/internal/domain/entity"
	"skillhub/internal/domain/service"
)

// idTokenClaims represents the claims in a Google ID token.
type idTokenClaims struct {
	Iss           string `json:"iss"`            // Issuer
	Sub           string `json:"sub"`            // Subject (user ID)
	Aud           string `json:"aud"`            // Audience (client ID)
	Exp           int64  `json:"exp"`            // Expiration time
	Iat           int64  `json:"iat"`            // Issued at
	Email         string `json:"email"`          // User's email
	EmailVerified bool   `json:"email_verified"` // Email verification status
	Name          string `json:"name"`           // User's full name
	Picture       string `json:"picture"`        // User's profile picture
}

// verifier implements service.OAuthVerifier for Google ID tokens.
type verifier struct {
	clientID string
	logger   *slog.Logger
}

// NewVerifier creates a Google ID token verifier.
func NewVerifier(cfg *config.Config, logger *slog.Logger) (service.OAuthVerifier, error) {
	if cfg.OAuth == nil || cfg.OAuth.Google == nil || cfg.OAuth.Google.ClientID == "" {
		return nil, errors.New("google oauth clientId must be provided")
	}

	return &verifier{
		clientID: cfg.OAuth.Google.ClientID,
		logger:   logger,
	}, nil
}

// VerifyCredential checks a Google ID token and returns the raw claims as an
// attribute map keyed by the provider's field names (sub, email, name).
func (v *verifier) VerifyCredential(_ context.Context, idToken string) (map[string]any, error) {
	claims, err := v.parseIDToken(idToken)
	if err != nil {
		v.logger.Warn("Failed to parse Google ID token", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	if err := v.verifyTokenClaims(claims); err != nil {
		v.logger.Warn("Google ID token verification failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	v.logger.Debug("Google ID token verified",
		slog.String("sub", claims.Sub),
		slog.String("email", claims.Email))

	return map[string]any{
		"sub":            claims.Sub,
		"email":          claims.Email,
		"email_verified": claims.EmailVerified,
		"name":           claims.Name,
		"picture":        claims.Picture,
	}, nil
}

// Provider returns the provider this verifier handles.
func (v *verifier) Provider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// parseIDToken decodes the JWT payload and extracts claims.
func (v *verifier) parseIDToken(token string) (*idTokenClaims, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return nil, errors.New("invalid JWT format")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode token payload")
	}

	var claims idTokenClaims
	if err := json.Unmarshal(decoded, &claims); err != nil {
		return nil, errors.Wrap(err, "failed to parse token claims")
	}

	return &claims, nil
}

// verifyTokenClaims checks issuer, audience, expiry and email verification.
func (v *verifier) verifyTokenClaims(claims *idTokenClaims) error {
	if claims.Iss != "https://accounts.google.com" && claims.Iss != "accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", claims.Iss)
	}

	if claims.Aud != v.clientID {
		return errors.Errorf("invalid audience: expected %s, got %s", v.clientID, claims.Aud)
	}

	now := time.Now().Unix()
	if claims.Exp < now {
		return errors.Errorf("token expired: expired at %d, current time %d", claims.Exp, now)
	}

	if !claims.EmailVerified {
		return errors.New("email not verified")
	}

	if claims.Sub == "" {
		return errors.New("token carries no subject")
	}

	return nil
}
