// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TokenClaims represents the claims contained in a verified bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenVerifier verifies bearer tokens issued by the external identity
// provider. The API never issues tokens itself.
type TokenVerifier interface {
	// VerifyAccessToken validates a bearer token and returns its claims.
	VerifyAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
