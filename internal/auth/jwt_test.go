package auth

import (
	"testing"
	"time"

	"seniorwork_backend/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T, secret string, ttlMinutes int) {
	t.Helper()
	prev := config.AppConfig

	cfg := &config.Config{}
	cfg.JWT.Secret = secret
	cfg.JWT.TTL = ttlMinutes
	config.AppConfig = cfg

	t.Cleanup(func() { config.AppConfig = prev })
}

func TestGenerateAndParseToken(t *testing.T) {
	setTestConfig(t, "unit-test-secret", 60)

	token, err := GenerateToken("user-42", "candidate")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-42", claims.UserID)
	assert.Equal(t, "candidate", claims.Role)
	assert.Equal(t, "user-42", claims.Subject)
}

func TestParseToken_Expired(t *testing.T) {
	setTestConfig(t, "unit-test-secret", 60)

	now := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		UserID: "user-42",
		Role:   "candidate",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestParseToken_WrongSecret(t *testing.T) {
	setTestConfig(t, "unit-test-secret", 60)
	token, err := GenerateToken("user-42", "candidate")
	require.NoError(t, err)

	setTestConfig(t, "another-secret", 60)
	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_WrongSigningMethod(t *testing.T) {
	setTestConfig(t, "unit-test-secret", 60)

	// alg=none tokens must never pass.
	claims := jwt.MapClaims{"user_id": "user-42", "role": "admin"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseToken_Garbage(t *testing.T) {
	setTestConfig(t, "unit-test-secret", 60)
	_, err := ParseToken("not.a.token")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}
