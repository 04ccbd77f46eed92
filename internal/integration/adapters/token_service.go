// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
	domainerror "github.com/chart-of-accounts/backend/internal/domain/error"
)

const (
	defaultTokenDuration = 15 * time.Minute
	tokenTypeAccess      = "access"
)

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret   []byte
	issuer   string
	duration time.Duration
}

// NewTokenService creates a new HS256 token service. A non-positive duration
// falls back to the default access token lifetime.
func NewTokenService(secret, issuer string, duration time.Duration) adapter.TokenService {
	if duration <= 0 {
		duration = defaultTokenDuration
	}
	return &tokenService{
		secret:   []byte(secret),
		issuer:   issuer,
		duration: duration,
	}
}

// Issue signs a new access token for subject.
func (s *tokenService) Issue(ctx context.Context, subject string) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(s.duration)
	claims := CustomClaims{
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Subject:   subject,
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, expiresAt, nil
}

// Validate validates an access token and returns its claims.
func (s *tokenService) Validate(ctx context.Context, tokenString string) (*adapter.TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(s.issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", domainerror.ErrExpiredToken, err)
		}
		return nil, fmt.Errorf("%w: %v", domainerror.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, domainerror.ErrInvalidToken
	}
	if claims.TokenType != tokenTypeAccess {
		return nil, fmt.Errorf("%w: expected access token", domainerror.ErrInvalidToken)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject", domainerror.ErrInvalidToken)
	}

	return &adapter.TokenClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
