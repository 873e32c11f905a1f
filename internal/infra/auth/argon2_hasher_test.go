package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgon2Hasher_RoundTrip(t *testing.T) {
	hasher := NewArgon2Hasher()

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.Contains(t, hash, "$argon2id$")

	ok, err := hasher.Verify("correct horse battery staple", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = hasher.Verify("wrong password", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestArgon2Hasher_SaltUniqueness(t *testing.T) {
	hasher := NewArgon2Hasher()

	first, err := hasher.Hash("password")
	require.NoError(t, err)
	second, err := hasher.Hash("password")
	require.NoError(t, err)

	// Each call draws a fresh random salt.
	assert.NotEqual(t, first, second)
}

func TestArgon2Hasher_MalformedHash(t *testing.T) {
	hasher := NewArgon2Hasher()

	malformed := []string{
		"",
		"not-a-phc-string",
		"$argon2id$v=19$m=65536,t=3,p=1$toofewparts",
		"$bcrypt$v=19$m=65536,t=3,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=65536,t=3,p=1$!!!$aGFzaA",
	}

	for _, encoded := range malformed {
		ok, err := hasher.Verify("password", encoded)
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrMalformedHash, "expected malformed-hash error for %q", encoded)
	}
}
