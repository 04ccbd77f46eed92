package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/chart-of-accounts/backend/internal/application/adapter"
	domainerror "github.com/chart-of-accounts/backend/internal/domain/error"
)

type stubTokenService struct {
	err error
}

func (s stubTokenService) Issue(context.Context, string) (string, time.Time, error) {
	return "", time.Time{}, nil
}

func (s stubTokenService) Validate(_ context.Context, token string) (*adapter.TokenClaims, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &adapter.TokenClaims{Subject: "subject-" + token}, nil
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(handlers...)
	engine.Any("/", func(c *gin.Context) {
		subject, _ := GetSubjectFromContext(c)
		c.String(http.StatusOK, subject)
	})
	return engine
}

func serve(engine *gin.Engine, method, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		err           error
		status        int
		body          string
	}{
		{"valid token", "Bearer abc", nil, http.StatusOK, "subject-abc"},
		{"missing header", "", nil, http.StatusUnauthorized, string(domainerror.ErrCodeMissingToken)},
		{"wrong scheme", "Basic abc", nil, http.StatusUnauthorized, string(domainerror.ErrCodeInvalidToken)},
		{"empty token", "Bearer  ", nil, http.StatusUnauthorized, string(domainerror.ErrCodeMissingToken)},
		{"expired token", "Bearer abc", domainerror.ErrExpiredToken, http.StatusUnauthorized, string(domainerror.ErrCodeExpiredToken)},
		{"invalid token", "Bearer abc", domainerror.ErrInvalidToken, http.StatusUnauthorized, string(domainerror.ErrCodeInvalidToken)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := newEngine(NewAuthMiddleware(stubTokenService{err: tt.err}).Authenticate())

			rec := serve(engine, http.MethodGet, tt.authorization)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
		})
	}
}

func TestRateLimiterLimitsWrites(t *testing.T) {
	limiter := NewRateLimiter(2, time.Minute)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }
	engine := newEngine(limiter.Middleware())

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "").Code)

	rec := serve(engine, http.MethodPost, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), string(domainerror.ErrCodeRateLimited))

	// reads are never limited
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "").Code)

	now = now.Add(time.Minute + time.Second)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "").Code)
}

func TestRateLimiterKeysBySubject(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	engine := newEngine(NewAuthMiddleware(stubTokenService{}).Authenticate(), limiter.Middleware())

	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "Bearer alice").Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodPost, "Bearer bob").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(engine, http.MethodPost, "Bearer alice").Code)
}

func TestRateLimiterDisabled(t *testing.T) {
	engine := newEngine(NewRateLimiter(0, time.Minute).Middleware())

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(engine, http.MethodDelete, "").Code)
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	now := time.Now()
	limiter.now = func() time.Time { return now }

	limiter.allow("a")
	limiter.allow("b")
	now = now.Add(2 * time.Minute)
	limiter.allow("c")

	limiter.Cleanup()

	assert.Len(t, limiter.entries, 1)
	assert.Contains(t, limiter.entries, "c")
}
