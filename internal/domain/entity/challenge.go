package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChallengeChannel identifies the delivery channel of a one-time secret.
type ChallengeChannel string

const (
	// ChallengeChannelPhone delivers the secret via SMS.
	ChallengeChannelPhone ChallengeChannel = "phone"
	// ChallengeChannelEmail delivers the secret via email.
	ChallengeChannelEmail ChallengeChannel = "email"
)

// Challenge is a short-lived, single-use secret proving control of a phone number
// or email address. The numeric secret itself is never stored or returned; only
// its SHA-256 hash is persisted. A challenge is consumed exactly once.
type Challenge struct {
	ID         uuid.UUID        // The unique ID for this challenge record.
	AccountID  uuid.UUID        // The account the challenge was issued for.
	Channel    ChallengeChannel // phone or email.
	SecretHash string           // SHA-256 hash of the numeric one-time code.
	Consumed   bool             // Set on first successful validation; re-use always fails.
	ExpiresAt  time.Time        // Short expiry, minutes from creation.
	CreatedAt  time.Time        // Timestamp of when the challenge was issued.
}

// IsExpired reports whether the challenge can no longer be validated.
func (c *Challenge) IsExpired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}
