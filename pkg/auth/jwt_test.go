package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func signToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func testClaims(sub string) Claims {
	return Claims{
		UserID: sub,
		Email:  "ada@example.com",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sub,
			Issuer:    "goalsguild",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
}

func TestValidateToken(t *testing.T) {
	v, err := NewJWTValidator(JWTConfig{SecretKey: testSecret, Issuer: "goalsguild"})
	require.NoError(t, err)

	claims, err := v.ValidateToken("Bearer " + signToken(t, testClaims("user-1"), testSecret))
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ada@example.com", claims.Email)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	v, err := NewJWTValidator(JWTConfig{SecretKey: testSecret})
	require.NoError(t, err)

	_, err = v.ValidateToken(signToken(t, testClaims("user-1"), "other-secret"))
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	v, err := NewJWTValidator(JWTConfig{SecretKey: testSecret})
	require.NoError(t, err)

	claims := testClaims("user-1")
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	_, err = v.ValidateToken(signToken(t, claims, testSecret))
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateTokenRejectsWrongIssuer(t *testing.T) {
	v, err := NewJWTValidator(JWTConfig{SecretKey: testSecret, Issuer: "goalsguild"})
	require.NoError(t, err)

	claims := testClaims("user-1")
	claims.Issuer = "someone-else"

	_, err = v.ValidateToken(signToken(t, claims, testSecret))
	assert.Error(t, err)
}

func TestValidateTokenMissing(t *testing.T) {
	v, err := NewJWTValidator(JWTConfig{SecretKey: testSecret})
	require.NoError(t, err)

	_, err = v.ValidateToken("")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestNewJWTValidatorRequiresSecret(t *testing.T) {
	_, err := NewJWTValidator(JWTConfig{})
	assert.Error(t, err)
}
