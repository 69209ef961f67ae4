// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrDuplicateEmail is returned when the email unique index rejects a write.
	ErrDuplicateEmail = errors.New("email already in use")
	// ErrDuplicatePhone is returned when the phone unique index rejects a write.
	ErrDuplicatePhone = errors.New("phone already in use")
)

// AccountRepository defines the standard operations for account persistence.
// Email and phone uniqueness is enforced by the store's unique indexes, never by
// in-process checks; callers translate ErrDuplicateEmail/ErrDuplicatePhone into
// Conflict outcomes.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its lower-cased email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByPhone retrieves a single account by its E.164 phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.Account, error)

	// Create persists a new account entity to the storage.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account entity in the storage.
	Update(ctx context.Context, account *entity.Account) error

	// TouchAccessedAt updates only the last-accessed timestamp of an account.
	TouchAccessedAt(ctx context.Context, id uuid.UUID, accessedAt time.Time) error

	// Delete removes an account. Owned sessions, challenges, bindings and targets
	// are removed with it by the store's cascade rules.
	Delete(ctx context.Context, id uuid.UUID) error
}
