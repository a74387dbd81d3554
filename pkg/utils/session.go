package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims carries the two values the shell persists after login:
// the operator's name and their access level. The cookie is a UI hint
// only; the sales API authorizes every request on its own.
type SessionClaims struct {
	Name        string `json:"name"`
	AccessLevel string `json:"access_level"`
	jwt.RegisteredClaims
}

// SessionManager signs and validates the session cookie
type SessionManager struct {
	secretKey []byte
	expiry    time.Duration
}

// NewSessionManager creates a new session manager
func NewSessionManager(secret string, expiry time.Duration) *SessionManager {
	return &SessionManager{
		secretKey: []byte(secret),
		expiry:    expiry,
	}
}

// Issue generates a signed session token for a logged-in operator
func (m *SessionManager) Issue(name, accessLevel string) (string, error) {
	claims := &SessionClaims{
		Name:        name,
		AccessLevel: accessLevel,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "salesflow-web",
			Subject:   name,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// Validate checks a session token and returns its claims
func (m *SessionManager) Validate(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}

	return claims, nil
}

// Expiry returns the configured session lifetime
func (m *SessionManager) Expiry() time.Duration {
	return m.expiry
}
