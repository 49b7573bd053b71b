package auth

import (
	"testing"
	"time"

	apperrors "eventflow/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer(t *testing.T) {
	t.Run("IssueAndParse", func(t *testing.T) {
		issuer := NewTokenIssuer("secret", time.Hour)

		token, claims, err := issuer.Issue(42)
		require.NoError(t, err)
		assert.NotEmpty(t, claims.ID)

		parsed, err := issuer.Parse(token)
		require.NoError(t, err)
		userID, err := parsed.UserID()
		require.NoError(t, err)
		assert.Equal(t, 42, userID)
		assert.Equal(t, claims.ID, parsed.ID)
	})

	t.Run("UniqueTokenIDs", func(t *testing.T) {
		issuer := NewTokenIssuer("secret", time.Hour)

		_, first, err := issuer.Issue(1)
		require.NoError(t, err)
		_, second, err := issuer.Issue(1)
		require.NoError(t, err)

		assert.NotEqual(t, first.ID, second.ID)
	})

	t.Run("Failed - wrong secret", func(t *testing.T) {
		token, _, err := NewTokenIssuer("secret", time.Hour).Issue(1)
		require.NoError(t, err)

		_, err = NewTokenIssuer("other", time.Hour).Parse(token)

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Failed - expired", func(t *testing.T) {
		issuer := &JWTIssuer{secret: []byte("secret"), ttl: time.Minute, now: time.Now}
		token, _, err := issuer.Issue(1)
		require.NoError(t, err)

		issuer.now = func() time.Time { return time.Now().Add(time.Hour) }
		_, err = issuer.Parse(token)

		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("Failed - garbage", func(t *testing.T) {
		_, err := NewTokenIssuer("secret", time.Hour).Parse("not.a.token")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}

func TestClaims_UserID(t *testing.T) {
	claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "abc"}}

	_, err := claims.UserID()

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
