package adapters_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/chart-of-accounts/backend/internal/domain/error"
	"github.com/chart-of-accounts/backend/internal/integration/adapters"
)

func TestTokenServiceIssueAndValidate(t *testing.T) {
	ctx := context.Background()
	tokens := adapters.NewTokenService("secret", "coa", time.Hour)

	token, expiresAt, err := tokens.Issue(ctx, "operator")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, time.Minute)

	claims, err := tokens.Validate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "operator", claims.Subject)
	assert.WithinDuration(t, expiresAt, claims.ExpiresAt, time.Second)
}

func TestTokenServiceRejectsForeignTokens(t *testing.T) {
	ctx := context.Background()
	tokens := adapters.NewTokenService("secret", "coa", time.Hour)

	other, _, err := adapters.NewTokenService("other-secret", "coa", time.Hour).Issue(ctx, "operator")
	require.NoError(t, err)
	_, err = tokens.Validate(ctx, other)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)

	otherIssuer, _, err := adapters.NewTokenService("secret", "someone-else", time.Hour).Issue(ctx, "operator")
	require.NoError(t, err)
	_, err = tokens.Validate(ctx, otherIssuer)
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)

	_, err = tokens.Validate(ctx, "not-a-token")
	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestTokenServiceRejectsExpiredTokens(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	claims := adapters.CustomClaims{
		TokenType: "access",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "operator",
			Issuer:    "coa",
			IssuedAt:  jwt.NewNumericDate(past),
			ExpiresAt: jwt.NewNumericDate(past.Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = adapters.NewTokenService("secret", "coa", time.Hour).Validate(context.Background(), token)
	assert.ErrorIs(t, err, domainerror.ErrExpiredToken)
}
