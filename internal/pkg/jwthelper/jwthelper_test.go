package jwthelper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Parallel()

	signingKey := []byte("test-signing-key")

	t.Run("round trip", func(t *testing.T) {
		token, err := GenerateToken(signingKey, 7, "test-agent")
		require.NoError(t, err)

		claims, err := ParseToken(signingKey, token)
		require.NoError(t, err)
		assert.Equal(t, uint(7), claims.UserID)
		assert.Equal(t, "test-agent", claims.UserAgent)
	})

	t.Run("wrong signing key", func(t *testing.T) {
		token, err := GenerateToken(signingKey, 7, "test-agent")
		require.NoError(t, err)

		_, err = ParseToken([]byte("other-key"), token)
		require.Error(t, err)
	})

	t.Run("garbage token", func(t *testing.T) {
		_, err := ParseToken(signingKey, "not.a.token")
		require.Error(t, err)
	})

	t.Run("zero user id is invalid", func(t *testing.T) {
		token, err := GenerateToken(signingKey, 0, "test-agent")
		require.NoError(t, err)

		_, err = ParseToken(signingKey, token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
