package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/campushub/events-api/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenManager issues HS256-signed tokens carrying the identity claims that
// the auth middleware reconstructs on each request. The secret and TTL are
// injected at construction; there is no package-level state.
type TokenManager struct {
	secret string
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenManager{secret: secret, ttl: ttl}
}

// Issue signs a token for the user. Claims reflect the record state at
// issuance time; later profile or role changes only show up on the next
// issued token.
func (m *TokenManager) Issue(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"id":    user.ID,
		"name":  user.Name,
		"email": user.Email,
		"role":  user.Role,
		"exp":   time.Now().Add(m.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(m.secret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
