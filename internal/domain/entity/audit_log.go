package entity

import (
	"time"

	"github.com/google/uuid"
)

// Security-relevant event names recorded in the audit log.
const (
	EventAccountCreate         = "account.create"
	EventAccountUpdateEmail    = "account.update.email"
	EventAccountUpdateName     = "account.update.name"
	EventAccountUpdatePassword = "account.update.password"
	EventAccountUpdatePhone    = "account.update.phone"
	EventAccountUpdateStatus   = "account.update.status"
	EventSessionCreate         = "session.create"
	EventSessionDelete         = "session.delete"
	EventJWTCreate             = "jwt.create"
	EventChallengeCreate       = "challenge.create"
	EventChallengeConfirm      = "challenge.confirm"
	EventTargetCreate          = "targets.create"
	EventTargetUpdate          = "targets.update"
	EventTargetDelete          = "targets.delete"
)

// AuditLogEntry is one append-only record of a security-relevant event. Entries
// are never mutated or deleted by the core. Seq is a per-table monotonic insert
// sequence; ordering relies on it, never on wall-clock time alone.
type AuditLogEntry struct {
	Seq       int64      // Monotonic insert order, assigned by the store.
	AccountID uuid.UUID  // The account the event belongs to.
	Event     string     // Event name, e.g. "session.create".
	Client    ClientInfo // Parsed client/device/geolocation metadata of the triggering request.
	Time      time.Time  // Timestamp of the event.
}
