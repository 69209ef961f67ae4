package repository

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTargetNotFound is returned when a messaging target is not found.
var ErrTargetNotFound = errors.New("target not found")

// TargetRepository defines the interface for messaging-target persistence.
type TargetRepository interface {
	// Create persists a new target.
	Create(ctx context.Context, target *entity.Target) error

	// FindByID retrieves a target record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Target, error)

	// ListByAccountID returns all targets of an account.
	ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Target, error)

	// Update modifies an existing target (identifier changes).
	Update(ctx context.Context, target *entity.Target) error

	// Delete removes a target by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
