package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"passport/config"
)

func testJWTConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.JWT = secret
	cfg.Auth = &config.AuthConfig{JWTDuration: ttl}

	return cfg
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("test_jwt_secret_key_very_long_for_testing", 0))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	accountID := uuid.New()
	sessionID := uuid.New()

	token, err := jwtService.IssueSessionJWT(accountID, sessionID)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateSessionJWT(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, sessionID, claims.SessionID)
	assert.Equal(t, accountID.String(), claims.Subject)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("test_jwt_secret_key_very_long_for_testing", 0))
	assert.NoError(t, err)

	// Using clearly non-JWT format
	claims, err := jwtService.ValidateSessionJWT("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token structure")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig("issuer_secret_key_very_long_for_testing", 0))
	assert.NoError(t, err)

	verifier, err := NewJWTService(testJWTConfig("different_secret_key_very_long_for_testing", 0))
	assert.NoError(t, err)

	token, err := issuer.IssueSessionJWT(uuid.New(), uuid.New())
	assert.NoError(t, err)

	claims, err := verifier.ValidateSessionJWT(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	svc := &jwtService{
		secret: []byte("test_jwt_secret_key_very_long_for_testing"),
		ttl:    -time.Minute,
	}

	token, err := svc.IssueSessionJWT(uuid.New(), uuid.New())
	assert.NoError(t, err)

	claims, err := svc.ValidateSessionJWT(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("", 0))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_Duration(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("test_jwt_secret_key_very_long_for_testing", 0))
	assert.NoError(t, err)
	assert.Equal(t, defaultJWTDuration, jwtService.JWTDuration())

	custom, err := NewJWTService(testJWTConfig("test_jwt_secret_key_very_long_for_testing", 5*time.Minute))
	assert.NoError(t, err)
	assert.Equal(t, 5*time.Minute, custom.JWTDuration())
}
