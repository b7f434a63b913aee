package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	token, exp, err := tm.GenerateToken(7)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := tm.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "7", claims.Subject)
}

func TestParseTokenWrongKey(t *testing.T) {
	issuer := NewTokenManager("secret-a", 60)
	verifier := NewTokenManager("secret-b", 60)

	token, _, err := issuer.GenerateToken(7)
	require.NoError(t, err)

	_, err = verifier.ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	now := time.Now()
	claims := &Claims{
		UserID: 7,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "7",
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = tm.ParseToken(expired)
	assert.Error(t, err)
}

func TestParseTokenMalformed(t *testing.T) {
	tm := NewTokenManager("test-secret", 60)

	_, err := tm.ParseToken("not-a-token")
	assert.Error(t, err)
}

func TestTokenManagerNoSecret(t *testing.T) {
	tm := NewTokenManager("", 60)

	_, _, err := tm.GenerateToken(7)
	assert.ErrorIs(t, err, ErrNoSigningKey)

	_, err = tm.ParseToken("anything")
	assert.ErrorIs(t, err, ErrNoSigningKey)
}

func TestTokenManagerDefaultTTL(t *testing.T) {
	tm := NewTokenManager("test-secret", 0)

	_, exp, err := tm.GenerateToken(1)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)
}
