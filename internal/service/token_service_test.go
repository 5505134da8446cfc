package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func newTestTokenManager(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager(testSecret, "HS256")
	require.NoError(t, err)
	return m
}

func TestNewTokenManagerRejectsUnknownAlgorithm(t *testing.T) {
	_, err := NewTokenManager(testSecret, "HS666")
	assert.Error(t, err)
}

func TestNewTokenManagerRejectsNonHMAC(t *testing.T) {
	_, err := NewTokenManager(testSecret, "RS256")
	assert.Error(t, err)
}

func TestIssueAndValidate(t *testing.T) {
	m := newTestTokenManager(t)

	token, err := m.Issue("alice", 30*time.Minute)
	require.NoError(t, err)

	subject, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestValidateExpiredToken(t *testing.T) {
	m := newTestTokenManager(t)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = m.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateWrongSecret(t *testing.T) {
	m := newTestTokenManager(t)

	other, err := NewTokenManager("some-other-secret", "HS256")
	require.NoError(t, err)

	token, err := other.Issue("alice", time.Minute)
	require.NoError(t, err)

	_, err = m.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateWrongAlgorithm(t *testing.T) {
	m := newTestTokenManager(t)

	// Signed with the right secret but a different HMAC variant; the pinned
	// algorithm must reject it.
	token := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = m.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateMissingSubject(t *testing.T) {
	m := newTestTokenManager(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = m.Validate(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateMalformedToken(t *testing.T) {
	m := newTestTokenManager(t)

	_, err := m.Validate("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = m.Validate("")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestIssueDefaultTTL(t *testing.T) {
	m := newTestTokenManager(t)

	token, err := m.Issue("alice", 0)
	require.NoError(t, err)

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)

	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 14*time.Minute)
	assert.LessOrEqual(t, remaining, DefaultTokenTTL)
}
