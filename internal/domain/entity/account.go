// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountStatus represents the lifecycle state of an account.
type AccountStatus string

const (
	// AccountStatusEnabled is the normal, active state.
	AccountStatusEnabled AccountStatus = "enabled"
	// AccountStatusBlocked denies every authenticated operation for the account.
	AccountStatusBlocked AccountStatus = "blocked"
)

// Account is the core entity of the system, representing a unique principal.
// An account may start out anonymous (no email, phone or provider binding) and be
// upgraded in place; its ID never changes across the upgrade.
type Account struct {
	ID                uuid.UUID     // The Global Unique Identifier (GUID) for the account.
	Email             string        // Optional login email, unique per project, stored lower-cased. Empty for anonymous/phone/oauth2-only accounts.
	Phone             string        // Optional phone number in E.164 form, unique per project.
	Name              string        // The account's display name.
	PasswordHash      string        // bcrypt hash of the password. Empty until an email/password credential exists.
	Status            AccountStatus // enabled or blocked.
	EmailVerification bool          // Whether the email address was confirmed through a challenge.
	PhoneVerification bool          // Whether the phone number was confirmed through a challenge.
	Registration      time.Time     // Timestamp of when this account was created.
	AccessedAt        time.Time     // Timestamp of the last authenticated read, maintained on access.
	UpdatedAt         time.Time     // Timestamp of the last modification to this account.
}

// IsAnonymous reports whether the account still has no durable identity factor.
func (a *Account) IsAnonymous() bool {
	return a.Email == "" && a.Phone == "" && a.PasswordHash == ""
}

// IsBlocked reports whether the account is denied access.
func (a *Account) IsBlocked() bool {
	return a.Status == AccountStatusBlocked
}
