// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"skillhub/config"
	domainerrors "skillhub/internal/domain/errors"
	"skillhub/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// It holds the process-wide signing key, read-only after construction, so
// concurrent issuance and validation need no locking.
type jwtService struct {
	secret   []byte        // Symmetric key for signing and verifying tokens.
	lifetime time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// A missing secret or non-positive lifetime is a startup error; the service
// must not come up in a state where every request would fail.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	lifetime := cfg.JWT.Expiration()
	if lifetime <= 0 {
		return nil, errors.New("jwt expirationMillis must be positive")
	}

	return &jwtService{
		secret:   []byte(cfg.JWT.Secret),
		lifetime: lifetime,
	}, nil
}

// Issue creates a signed token binding the subject for the configured lifetime.
func (s *jwtService) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// Validate verifies the signature and expiry of a token string and returns
// its claims. No store lookup happens here: a deleted subject still validates
// until natural expiry, bounded by the configured lifetime.
func (s *jwtService) Validate(tokenString string) (*service.Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, classifyTokenError(err)
	}

	registered, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || registered.Subject == "" {
		return nil, domainerrors.ErrTokenMalformed.WrapMessage("token carries no subject")
	}

	claims := &service.Claims{
		Subject:   registered.Subject,
		ExpiresAt: registered.ExpiresAt.Time,
	}
	if registered.IssuedAt != nil {
		claims.IssuedAt = registered.IssuedAt.Time
	}

	return claims, nil
}

// ValidateForSubject is Validate plus a subject equality check.
func (s *jwtService) ValidateForSubject(tokenString, expectedSubject string) (*service.Claims, error) {
	claims, err := s.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Subject != expectedSubject {
		return nil, domainerrors.ErrTokenSubjectMismatch.WrapMessage("token subject does not match expected principal")
	}

	return claims, nil
}

// Lifetime returns the configured token lifetime.
func (s *jwtService) Lifetime() time.Duration {
	return s.lifetime
}

// classifyTokenError maps jwt parse failures onto the domain token error
// kinds, keeping them distinct for logging while the HTTP layer collapses
// them all to 401.
func classifyTokenError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return domainerrors.ErrTokenExpired.WrapMessage(err.Error())
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
		return domainerrors.ErrTokenInvalidSignature.WrapMessage(err.Error())
	default:
		return domainerrors.ErrTokenMalformed.WrapMessage(err.Error())
	}
}
