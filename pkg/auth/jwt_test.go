package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reputation/config"
)

func newManager(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(config.JWTConfig{SigningKey: "test-key", AccessTokenTTL: time.Minute})
	require.NoError(t, err)
	return m
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := newManager(t)

	token, err := m.Generate(100)
	require.NoError(t, err)

	actorID, err := m.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(100), actorID)
}

func TestTokenManager_Expired(t *testing.T) {
	m := newManager(t)
	issued := time.Now().Add(-time.Hour)
	m.now = func() time.Time { return issued }

	token, err := m.Generate(100)
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_WrongKey(t *testing.T) {
	token, err := newManager(t).Generate(100)
	require.NoError(t, err)

	other, err := NewTokenManager(config.JWTConfig{SigningKey: "another-key", AccessTokenTTL: time.Minute})
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsNoneAlgorithm(t *testing.T) {
	claims := Claims{ActorID: 100, RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newManager(t).Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_MissingActor(t *testing.T) {
	m := newManager(t)
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)

	_, err = m.Parse(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenManager_EmptyKey(t *testing.T) {
	_, err := NewTokenManager(config.JWTConfig{})
	assert.Error(t, err)
}
