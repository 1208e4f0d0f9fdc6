package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const tokenIssuer = "isletme-bulucu"

// SessionService issues and verifies the anonymous client tokens that scope
// history and settings.
type SessionService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// Session is returned to a client that asked for a token.
type Session struct {
	ClientID  string    `json:"clientId"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func NewSessionService(secret string, ttl time.Duration) (*SessionService, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}
	if ttl <= 0 {
		ttl = 365 * 24 * time.Hour
	}
	return &SessionService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue creates a token for a new client, or renews the token of clientID
// when it is not empty.
func (s *SessionService) Issue(clientID string) (*Session, error) {
	if clientID == "" {
		clientID = uuid.NewString()
	}
	now := s.now()
	expires := now.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   clientID,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}
	return &Session{ClientID: clientID, Token: token, ExpiresAt: expires.UTC()}, nil
}

// Verify returns the client id a token was issued for.
func (s *SessionService) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if claims.Subject == "" {
		return "", errors.New("invalid token: no subject")
	}
	return claims.Subject, nil
}
