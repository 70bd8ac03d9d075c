package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSealer_RoundTrip(t *testing.T) {
	s, err := NewSealer("secretKey")
	require.NoError(t, err)

	sealed, err := s.Seal("SecurePassword123!")
	require.NoError(t, err)
	assert.NotContains(t, sealed, "SecurePassword123!")

	again, err := s.Seal("SecurePassword123!")
	require.NoError(t, err)
	assert.NotEqual(t, sealed, again, "nonce must differ per seal")

	plain, err := s.Open(sealed)
	require.NoError(t, err)
	assert.Equal(t, "SecurePassword123!", plain)
}

func TestSealer_EmptyStaysEmpty(t *testing.T) {
	s, err := NewSealer("k")
	require.NoError(t, err)

	sealed, err := s.Seal("")
	require.NoError(t, err)
	assert.Empty(t, sealed)

	plain, err := s.Open("")
	require.NoError(t, err)
	assert.Empty(t, plain)
}

func TestSealer_OpenRejectsTamperedAndForeign(t *testing.T) {
	a, _ := NewSealer("a")
	b, _ := NewSealer("b")

	sealed, err := a.Seal("x")
	require.NoError(t, err)

	_, err = b.Open(sealed)
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = a.Open("not base64!")
	assert.ErrorIs(t, err, ErrMalformed)

	_, err = a.Open("AAAA")
	assert.ErrorIs(t, err, ErrMalformed)
}

func TestHashPassword_Verify(t *testing.T) {
	h, err := HashPassword("admin")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(h, "argon2id$"))

	assert.True(t, VerifyPassword(h, "admin"))
	assert.False(t, VerifyPassword(h, "Admin"))
	assert.False(t, VerifyPassword("plain", "admin"))
	assert.False(t, VerifyPassword("argon2id$!!$!!", "admin"))
}
