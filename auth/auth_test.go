package auth

import (
	"chat-core/errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestTokens_RoundTrip(t *testing.T) {
	req := require.New(t)
	tokens := NewTokens("secret-for-tests", time.Hour)
	userID := uuid.New()

	token, err := tokens.Generate(userID, time.Now())
	req.NoError(err)

	got, err := tokens.Validate(token)
	req.NoError(err)
	req.Equal(userID, got)
}

func TestTokens_Rejects(t *testing.T) {
	req := require.New(t)
	tokens := NewTokens("secret-for-tests", time.Hour)
	userID := uuid.New()

	expired, err := tokens.Generate(userID, time.Now().Add(-2*time.Hour))
	req.NoError(err)
	foreign, err := NewTokens("another-secret", time.Hour).Generate(userID, time.Now())
	req.NoError(err)
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, &CustomClaims{UserID: userID.String()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	req.NoError(err)

	tests := []struct {
		name  string
		token string
	}{
		{"Expired", expired},
		{"Wrong secret", foreign},
		{"Unsigned", unsigned},
		{"Garbage", "not.a.token"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Validate(tt.token)
			require.ErrorIs(t, err, errors.ErrUnauthorized)
		})
	}
}

func TestMiddleware(t *testing.T) {
	req := require.New(t)
	tokens := NewTokens("secret-for-tests", time.Hour)
	userID := uuid.New()
	token, err := tokens.Generate(userID, time.Now())
	req.NoError(err)

	var seen uuid.UUID
	handler := Middleware(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserIDFrom(r.Context())
	}))

	// Given a request without token
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	req.Equal(http.StatusUnauthorized, rec.Code)

	// Given a bearer header
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	req.Equal(http.StatusOK, rec.Code)
	req.Equal(userID, seen)

	// Given the query parameter used by websocket clients
	seen = uuid.Nil
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws?token="+token, nil))
	req.Equal(http.StatusOK, rec.Code)
	req.Equal(userID, seen)
}
