package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionDuration bounds how long a login stays valid without re-authenticating.
const sessionDuration = 24 * time.Hour

// ErrInvalidSession is returned for tokens that fail signature, expiry or
// shape checks. Callers treat all invalid tokens alike and redirect to login.
var ErrInvalidSession = errors.New("invalid session token")

// sessionClaims carries the authenticated principal in a signed cookie token.
type sessionClaims struct {
	jwt.RegisteredClaims
}

// SessionService issues and resolves signed session tokens. The signing secret
// comes from the configuration document and is stable for the installation's
// lifetime, so sessions survive restarts.
type SessionService struct {
	secret []byte
}

// NewSessionService creates a SessionService signing with secret.
func NewSessionService(secret string) *SessionService {
	return &SessionService{secret: []byte(secret)}
}

// IssueToken creates a signed token whose subject is the principal username.
func (s *SessionService) IssueToken(username string) (string, error) {
	claims := &sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			Issuer:    "radiostream",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(sessionDuration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// ResolveToken verifies a token and returns the principal username it names.
// Expired, tampered and foreign tokens all yield ErrInvalidSession.
func (s *SessionService) ResolveToken(tokenString string) (string, error) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid || claims.Subject == "" {
		return "", ErrInvalidSession
	}
	return claims.Subject, nil
}
