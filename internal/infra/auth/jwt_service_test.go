package auth

import (
	"strings"
	"testing"
	"time"

	"skillhub/config"
	domainerrors "skillhub/internal/domain/errors"
	"skillhub/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, secret string, expirationMillis int64) service.TokenService {
	t.Helper()

	svc, err := NewJWTService(&config.Config{
		JWT: config.JWTConfig{Secret: secret, ExpirationMillis: expirationMillis},
	})
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RejectsBadConfig(t *testing.T) {
	_, err := NewJWTService(&config.Config{
		JWT: config.JWTConfig{Secret: "", ExpirationMillis: 1000},
	})
	assert.Error(t, err)

	_, err = NewJWTService(&config.Config{
		JWT: config.JWTConfig{Secret: "secret", ExpirationMillis: 0},
	})
	assert.Error(t, err)
}

func TestIssueAndValidate_Roundtrip(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", 60_000)

	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	claims, err := svc.Validate(token)
	require.NoError(t, err)

	assert.Equal(t, "user-42", claims.Subject)
	assert.WithinDuration(t, claims.IssuedAt.Add(svc.Lifetime()), claims.ExpiresAt, time.Second)
}

func TestValidate_Expired(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", 1)

	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	time.Sleep(1100 * time.Millisecond)

	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestValidate_TamperedSignature(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", 60_000)

	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	// Flip the last character of the signature segment.
	last := token[len(token)-1]
	replacement := "A"
	if last == 'A' {
		replacement = "B"
	}
	tampered := token[:len(token)-1] + replacement

	_, err = svc.Validate(tampered)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalidSignature)
}

func TestValidate_WrongKey(t *testing.T) {
	issuer := newTestTokenService(t, "issuer-secret", 60_000)
	validator := newTestTokenService(t, "other-secret", 60_000)

	token, err := issuer.Issue("user-42")
	require.NoError(t, err)

	_, err = validator.Validate(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalidSignature)
}

func TestValidate_Malformed(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", 60_000)

	for _, tokenString := range []string{"", "garbage", "a.b.c", strings.Repeat("x", 512)} {
		_, err := svc.Validate(tokenString)
		assert.ErrorIs(t, err, domainerrors.ErrTokenMalformed, "input: %q", tokenString)
	}
}

func TestValidateForSubject(t *testing.T) {
	svc := newTestTokenService(t, "test-secret", 60_000)

	token, err := svc.Issue("user-42")
	require.NoError(t, err)

	_, err = svc.ValidateForSubject(token, "user-42")
	assert.NoError(t, err)

	_, err = svc.ValidateForSubject(token, "user-43")
	assert.ErrorIs(t, err, domainerrors.ErrTokenSubjectMismatch)
}
