package google

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"skillhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClientID = "test-client-id.apps.googleusercontent.com"

func newTestVerifier(t *testing.T) *verifier {
	t.Helper()

	svc, err := NewVerifier(&config.Config{
		OAuth: &config.OAuthConfig{
			Google: &config.GoogleOAuthConfig{ClientID: testClientID},
		},
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	concrete, ok := svc.(*verifier)
	require.True(t, ok)

	return concrete
}

// buildIDToken assembles an unsigned JWT with the given claims. Signature
// verification is delegated to Google's JWKS in production, so the tests
// exercise the claim checks only.
func buildIDToken(t *testing.T, claims map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"RS256","typ":"JWT"}`))

	payload, err := json.Marshal(claims)
	require.NoError(t, err)

	return header + "." + base64.RawURLEncoding.EncodeToString(payload) + ".signature"
}

func validClaims() map[string]any {
	return map[string]any{
		"iss":            "https://accounts.google.com",
		"sub":            "google-sub-1",
		"aud":            testClientID,
		"exp":            time.Now().Add(time.Hour).Unix(),
		"iat":            time.Now().Unix(),
		"email":          "amy@example.com",
		"email_verified": true,
		"name":           "Amy",
	}
}

func TestNewVerifier_RequiresClientID(t *testing.T) {
	_, err := NewVerifier(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.Error(t, err)
}

func TestVerifyCredential_Valid(t *testing.T) {
	v := newTestVerifier(t)

	attrs, err := v.VerifyCredential(context.Background(), buildIDToken(t, validClaims()))
	require.NoError(t, err)

	assert.Equal(t, "google-sub-1", attrs["sub"])
	assert.Equal(t, "amy@example.com", attrs["email"])
	assert.Equal(t, "Amy", attrs["name"])
}

func TestVerifyCredential_RejectsBadClaims(t *testing.T) {
	v := newTestVerifier(t)

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{name: "wrong issuer", mutate: func(c map[string]any) { c["iss"] = "https://evil.example.com" }},
		{name: "wrong audience", mutate: func(c map[string]any) { c["aud"] = "other-client" }},
		{name: "expired", mutate: func(c map[string]any) { c["exp"] = time.Now().Add(-time.Hour).Unix() }},
		{name: "email unverified", mutate: func(c map[string]any) { c["email_verified"] = false }},
		{name: "missing subject", mutate: func(c map[string]any) { c["sub"] = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := validClaims()
			tt.mutate(claims)

			_, err := v.VerifyCredential(context.Background(), buildIDToken(t, claims))
			assert.Error(t, err)
		})
	}
}

func TestVerifyCredential_RejectsGarbage(t *testing.T) {
	v := newTestVerifier(t)

	for _, token := range []string{"", "no-dots", "a.b", "a.!!!.c"} {
		_, err := v.VerifyCredential(context.Background(), token)
		assert.Error(t, err, "input: %q", token)
	}
}
