// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"passport/config"
	"passport/internal/domain/service"
)

const defaultJWTDuration = 15 * time.Minute

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Tokens are HS256-signed and carry both the account ID and the issuing session ID,
// so a token dies with its session regardless of the exp claim.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.JWT == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := defaultJWTDuration
	if cfg.Auth != nil && cfg.Auth.JWTDuration > 0 {
		ttl = cfg.Auth.JWTDuration
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.JWT),
		ttl:    ttl,
	}, nil
}

// IssueSessionJWT creates a short-lived token bound to the given session.
func (s *jwtService) IssueSessionJWT(accountID, sessionID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		AccountID: accountID,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "sign session jwt")
	}

	return signed, nil
}

// ValidateSessionJWT checks the token signature and expiry and returns the claims.
// Callers must still verify the referenced session exists before trusting the token.
func (s *jwtService) ValidateSessionJWT(tokenString string) (*service.Claims, error) {
	claims := new(service.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	return claims, nil
}

// JWTDuration returns the configured token lifetime.
func (s *jwtService) JWTDuration() time.Duration {
	return s.ttl
}
