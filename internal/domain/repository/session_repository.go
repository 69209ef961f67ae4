// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for session persistence.
var (
	// ErrSessionNotFound is returned when a session is not found.
	ErrSessionNotFound = errors.New("session not found")
	// ErrStaleTokenExpiry is returned when a conditional token update loses the
	// compare-and-swap race; the caller re-reads the winner's row.
	ErrStaleTokenExpiry = errors.New("provider token expiry changed concurrently")
)

// SessionRepository defines the interface for session persistence. A session is
// revoked by deleting its row; there is no soft-delete and no resurrection.
type SessionRepository interface {
	// Create persists a new session.
	Create(ctx context.Context, session *entity.Session) error

	// FindByID retrieves a session record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error)

	// FindBySecretHash retrieves a session by the SHA-256 hash of its opaque secret.
	FindBySecretHash(ctx context.Context, secretHash string) (*entity.Session, error)

	// FindByAccountID retrieves all sessions of an account.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error)

	// UpdateProviderTokens conditionally replaces the stored OAuth2 tokens. The
	// write only applies while the stored expiry still equals expectedExpiry;
	// otherwise ErrStaleTokenExpiry is returned and nothing is modified.
	UpdateProviderTokens(ctx context.Context, id uuid.UUID, expectedExpiry time.Time, accessToken, refreshToken string, newExpiry time.Time) error

	// Delete removes a session by its ID, revoking it terminally.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByAccountID removes all sessions of an account. Used on account block
	// and account deletion.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error

	// DeleteExpired removes all sessions past their expiry. Called periodically.
	DeleteExpired(ctx context.Context) error
}
