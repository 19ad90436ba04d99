package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mnemoapp/mnemo-api/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubJWTService struct {
	validToken string
	userID     uuid.UUID
	err        error
}

var _ auth.JWTService = (*stubJWTService)(nil)

func (s *stubJWTService) GenerateToken(ctx context.Context, userID uuid.UUID) (string, error) {
	return s.validToken, nil
}

func (s *stubJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if s.err != nil {
		return nil, s.err
	}
	if tokenString != s.validToken {
		return nil, auth.ErrInvalidToken
	}
	return &auth.Claims{UserID: s.userID}, nil
}

func runAuthenticated(t *testing.T, jwtService auth.JWTService, authHeader string) (*httptest.ResponseRecorder, uuid.UUID, bool) {
	t.Helper()

	var gotUserID uuid.UUID
	var gotOK bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, gotOK = GetUserID(r)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	NewAuthMiddleware(jwtService).Authenticate(next).ServeHTTP(w, req)
	return w, gotUserID, gotOK
}

func TestAuthenticateValidToken(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	jwtService := &stubJWTService{validToken: "good-token", userID: userID}

	w, gotUserID, gotOK := runAuthenticated(t, jwtService, "Bearer good-token")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, gotOK)
	assert.Equal(t, userID, gotUserID)
}

func TestAuthenticateMissingHeader(t *testing.T) {
	t.Parallel()

	w, _, gotOK := runAuthenticated(t, &stubJWTService{validToken: "good-token"}, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, gotOK)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	t.Parallel()

	for _, header := range []string{"good-token", "Basic good-token", "Bearer a b"} {
		w, _, _ := runAuthenticated(t, &stubJWTService{validToken: "good-token"}, header)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestAuthenticateInvalidToken(t *testing.T) {
	t.Parallel()

	w, _, gotOK := runAuthenticated(t, &stubJWTService{validToken: "good-token"}, "Bearer bad-token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, gotOK)
}

func TestAuthenticateExpiredToken(t *testing.T) {
	t.Parallel()

	jwtService := &stubJWTService{err: auth.ErrExpiredToken}
	w, _, _ := runAuthenticated(t, jwtService, "Bearer whatever")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
