package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cofoundr/config"
	"cofoundr/internal/domain/service"
)

func newTestJWTConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		JWT: &config.JWTConfig{
			Secret:    "test_secret_key_very_long_for_testing",
			AccessTTL: ttl,
		},
	}
}

func TestJWTService_IssueAndVerifyToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Minute))
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	founderID := int64(42)

	token, err := jwtService.IssueToken(founderID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.VerifyToken(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, founderID, claims.FounderID)
	assert.Equal(t, "42", claims.Subject)
	assert.NotNil(t, claims.IssuedAt)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Minute))
	require.NoError(t, err)

	claims, err := jwtService.VerifyToken("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_TamperedToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Minute))
	require.NoError(t, err)

	token, err := jwtService.IssueToken(7)
	require.NoError(t, err)

	// Flip a character in the payload segment; the signature no longer matches.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	claims, err := jwtService.VerifyToken(tampered)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestJWTConfig(time.Minute))
	require.NoError(t, err)

	verifier, err := NewJWTService(&config.Config{
		JWT: &config.JWTConfig{Secret: "a_completely_different_secret", AccessTTL: time.Minute},
	})
	require.NoError(t, err)

	token, err := issuer.IssueToken(7)
	require.NoError(t, err)

	claims, err := verifier.VerifyToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenInvalid)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Millisecond))
	require.NoError(t, err)

	token, err := jwtService.IssueToken(7)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	claims, err := jwtService.VerifyToken(token)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_ValidBeforeExpiry(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	token, err := jwtService.IssueToken(7)
	require.NoError(t, err)

	// Immediately after issuance the token verifies.
	claims, err := jwtService.VerifyToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{
		JWT: &config.JWTConfig{Secret: ""},
	})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_GetAccessTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(15 * time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, jwtService.GetAccessTokenDuration())

	// Zero TTL falls back to the default.
	jwtService, err = NewJWTService(newTestJWTConfig(0))
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, jwtService.GetAccessTokenDuration())
}
