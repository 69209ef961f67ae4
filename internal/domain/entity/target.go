package entity

import (
	"time"

	"github.com/google/uuid"
)

// Target is a registered delivery destination (phone number, email address or
// push token) owned by an account and consumed by the messaging subsystem.
// Targets live independently of sessions but are removed with the account.
type Target struct {
	ID         uuid.UUID // The unique ID for this target record.
	AccountID  uuid.UUID // The owning account.
	ProviderID string    // The messaging provider registration this target is delivered through.
	Identifier string    // The address or token used for delivery. Mutable.
	CreatedAt  time.Time // Timestamp of when the target was registered.
	UpdatedAt  time.Time // Timestamp of the last identifier change.
}
