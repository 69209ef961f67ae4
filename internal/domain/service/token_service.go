package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for the short-lived session JWTs. SessionID
// ties the token to one session: once that session row is gone, no request
// presenting the JWT authenticates, even before the token's own expiry.
type Claims struct {
	AccountID uuid.UUID
	SessionID uuid.UUID
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating session-bound JWTs.
type TokenService interface {
	// IssueSessionJWT creates a short-lived token bound to the given session.
	IssueSessionJWT(accountID, sessionID uuid.UUID) (string, error)

	// ValidateSessionJWT checks the token signature and expiry and returns the claims.
	ValidateSessionJWT(tokenString string) (*Claims, error)

	// JWTDuration returns the configured token lifetime.
	JWTDuration() time.Duration
}
