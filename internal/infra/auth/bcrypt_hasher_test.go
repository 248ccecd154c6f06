package auth

import (
	"testing"

	"skillhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHasher(t *testing.T) *bcryptHasher {
	t.Helper()

	// Minimum cost keeps the test fast.
	hasher, err := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})
	require.NoError(t, err)

	concrete, ok := hasher.(*bcryptHasher)
	require.True(t, ok)

	return concrete
}

func TestHashAndCheck(t *testing.T) {
	hasher := newTestHasher(t)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEqual(t, "correct horse battery staple", hash)

	assert.True(t, hasher.Check("correct horse battery staple", hash))
	assert.False(t, hasher.Check("wrong password", hash))
}

func TestHash_SaltedPerCall(t *testing.T) {
	hasher := newTestHasher(t)

	first, err := hasher.Hash("same password")
	require.NoError(t, err)
	second, err := hasher.Hash("same password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same password", first))
	assert.True(t, hasher.Check("same password", second))
}

func TestCheck_GarbageHash(t *testing.T) {
	hasher := newTestHasher(t)

	assert.False(t, hasher.Check("password", "not-a-bcrypt-hash"))
}

func TestDummyCheck_DoesNotPanic(t *testing.T) {
	hasher := newTestHasher(t)

	hasher.DummyCheck("any password")
	hasher.DummyCheck("")
}

func TestNewBcryptHasher_DefaultCost(t *testing.T) {
	hasher, err := NewBcryptHasher(&config.Config{})
	require.NoError(t, err)
	assert.NotNil(t, hasher)
}
