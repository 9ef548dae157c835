package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"goalsguild-backend/pkg/auth"
)

const testSecret = "test-secret-key"

func testValidator(t *testing.T) *auth.JWTValidator {
	t.Helper()
	v, err := auth.NewJWTValidator(auth.JWTConfig{SecretKey: testSecret, Issuer: "goalsguild"})
	require.NoError(t, err)
	return v
}

func signToken(t *testing.T, sub string) string {
	t.Helper()
	claims := auth.Claims{
		UserID: sub,
		Email:  "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    "goalsguild",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func callAuthenticated(t *testing.T, validator *auth.JWTValidator, header string) (*httptest.ResponseRecorder, *auth.Identity) {
	t.Helper()
	var seen *auth.Identity
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = auth.IdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	Authenticate(validator, zap.NewNop())(next).ServeHTTP(rec, req)
	return rec, seen
}

func TestAuthenticateAttachesIdentity(t *testing.T) {
	rec, seen := callAuthenticated(t, testValidator(t), "Bearer "+signToken(t, "user-1"))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "user-1", seen.Sub)
	assert.Equal(t, "ada@example.com", seen.Username)
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	rec, seen := callAuthenticated(t, testValidator(t), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	rec, seen := callAuthenticated(t, testValidator(t), "Bearer not-a-token")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}

func TestAuthenticateRejectsWhenNoValidatorConfigured(t *testing.T) {
	rec, seen := callAuthenticated(t, nil, "Bearer "+signToken(t, "user-1"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, seen)
}
