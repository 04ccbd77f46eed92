package adapter

import (
	"context"
	"time"
)

// TokenClaims represents the claims contained in an access token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenService defines the interface for access token operations.
type TokenService interface {
	// Issue signs a new access token for subject.
	Issue(ctx context.Context, subject string) (string, time.Time, error)

	// Validate checks an access token and returns its claims.
	Validate(ctx context.Context, token string) (*TokenClaims, error)
}
