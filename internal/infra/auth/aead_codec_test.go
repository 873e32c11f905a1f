package auth

import (
	"encoding/base64"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"catalog/config"
	domainerrors "catalog/internal/domain/errors"
)

func newTestCodec(t *testing.T) *aeadCodec {
	t.Helper()

	cfg := &config.Config{}
	cfg.Token.Key = "RANDOM WORDS WINTER MACINTOSH PC"
	cfg.Token.TTL = 24 * time.Hour

	codec, err := NewAEADCodec(cfg)
	require.NoError(t, err)

	return codec.(*aeadCodec)
}

func TestAEADCodec_RoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue(3)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	session, err := codec.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, 3, session.AccountID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), session.ExpiresAt, time.Minute)
}

func TestAEADCodec_FreshRandomnessPerIssue(t *testing.T) {
	codec := newTestCodec(t)

	first, err := codec.Issue(1)
	require.NoError(t, err)
	second, err := codec.Issue(1)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestAEADCodec_Expired(t *testing.T) {
	codec := newTestCodec(t)

	// Issue in the past so the validity window has already closed.
	codec.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }
	token, err := codec.Issue(7)
	require.NoError(t, err)

	codec.now = time.Now
	_, err = codec.Validate(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAEADCodec_NotYetValid(t *testing.T) {
	codec := newTestCodec(t)

	codec.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
	token, err := codec.Issue(7)
	require.NoError(t, err)

	codec.now = time.Now
	_, err = codec.Validate(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)
}

func TestAEADCodec_TamperDetection(t *testing.T) {
	codec := newTestCodec(t)

	token, err := codec.Issue(42)
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(token)
	require.NoError(t, err)

	// Flipping any single byte must break authentication.
	for i := range raw {
		mutated := make([]byte, len(raw))
		copy(mutated, raw)
		mutated[i] ^= 0x01

		_, err := codec.Validate(base64.RawURLEncoding.EncodeToString(mutated))
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid, "byte %d", i)
	}
}

func TestAEADCodec_Garbage(t *testing.T) {
	codec := newTestCodec(t)

	for _, token := range []string{"", "not base64 !!!", "c2hvcnQ"} {
		_, err := codec.Validate(token)
		assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
	}
}

func TestAEADCodec_KeyMismatch(t *testing.T) {
	codec := newTestCodec(t)

	other := &config.Config{}
	other.Token.Key = "a completely different secret key"
	other.Token.TTL = time.Hour
	otherCodec, err := NewAEADCodec(other)
	require.NoError(t, err)

	token, err := codec.Issue(1)
	require.NoError(t, err)

	_, err = otherCodec.Validate(token)
	assert.ErrorIs(t, err, domainerrors.ErrTokenInvalid)
}
