// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

// --- Input DTOs ---

// CreateAccountInput defines the data required to register a new account.
// ID is optional; when zero the store generates one.
type CreateAccountInput struct {
	ID       uuid.UUID
	Email    string
	Password string
	Name     string
	Client   entity.ClientInfo
}

// UpdateEmailInput defines the data for an email change or anonymous upgrade.
// Password is the account's current password; for anonymous accounts it becomes
// the new credential.
type UpdateEmailInput struct {
	AccountID uuid.UUID
	Email     string
	Password  string
	Client    entity.ClientInfo
}

// UpdatePasswordInput defines the data for a password change. OldPassword is
// ignored for accounts that have no password yet.
type UpdatePasswordInput struct {
	AccountID   uuid.UUID
	Password    string
	OldPassword string
	Client      entity.ClientInfo
}

// UpdatePhoneInput defines the data for a phone number change.
type UpdatePhoneInput struct {
	AccountID uuid.UUID
	Phone     string
	Password  string
	Client    entity.ClientInfo
}

// UpdateNameInput defines the data for a display name change.
type UpdateNameInput struct {
	AccountID uuid.UUID
	Name      string
	Client    entity.ClientInfo
}

// SetStatusInput defines the data for an account status change. Self-service
// callers may only block themselves; admin callers set either status.
type SetStatusInput struct {
	AccountID uuid.UUID
	Status    entity.AccountStatus
	Client    entity.ClientInfo
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// CreateAccount registers a new email/password account.
	CreateAccount(ctx context.Context, input *CreateAccountInput) (*entity.Account, error)

	// GetAccount returns the account and maintains its last-accessed timestamp.
	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	// UpdateEmail changes the login email. On an anonymous account this is the
	// in-place upgrade path: the ID and all sessions survive. A taken email
	// yields a conflict and no mutation at all.
	UpdateEmail(ctx context.Context, input *UpdateEmailInput) (*entity.Account, error)

	// UpdatePassword changes the password, verifying the old one when present.
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) (*entity.Account, error)

	// UpdatePhone changes the phone number; a taken number yields a conflict.
	UpdatePhone(ctx context.Context, input *UpdatePhoneInput) (*entity.Account, error)

	// UpdateName changes the display name.
	UpdateName(ctx context.Context, input *UpdateNameInput) (*entity.Account, error)

	// BlockSelf blocks the calling account and deletes all of its sessions.
	BlockSelf(ctx context.Context, input *SetStatusInput) (*entity.Account, error)

	// SetStatus sets an account's status on behalf of an admin caller.
	SetStatus(ctx context.Context, input *SetStatusInput) (*entity.Account, error)
}
