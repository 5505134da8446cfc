package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL applies when a caller issues a token without an explicit
// lifetime.
const DefaultTokenTTL = 15 * time.Minute

// ErrInvalidToken covers bad signatures, malformed payloads, missing
// subjects, and expired tokens alike; callers map it to an
// authentication-required response.
var ErrInvalidToken = errors.New("invalid token")

// TokenManager issues and validates stateless bearer tokens. Validity is
// purely a function of signature and expiry; nothing is stored server-side.
type TokenManager struct {
	secret []byte
	method jwt.SigningMethod
}

// NewTokenManager binds the server secret to a named HMAC signing algorithm
// (e.g. "HS256"). The algorithm is pinned: tokens signed with any other
// method fail validation.
func NewTokenManager(secret, algorithm string) (*TokenManager, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}
	return &TokenManager{secret: []byte(secret), method: method}, nil
}

// Issue signs a token carrying the subject and an absolute expiry.
func (m *TokenManager) Issue(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	token := jwt.NewWithClaims(m.method, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate returns the token's subject, or ErrInvalidToken for anything a
// well-formed, current, correctly signed token would not produce.
func (m *TokenManager) Validate(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{m.method.Alg()}))
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
