package repository

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for challenge persistence.
var (
	// ErrChallengeNotFound is returned when a challenge is not found.
	ErrChallengeNotFound = errors.New("challenge not found")
	// ErrChallengeConsumed is returned when a conditional consume hits a challenge
	// that was already used.
	ErrChallengeConsumed = errors.New("challenge already consumed")
)

// ChallengeRepository defines the interface for one-time-secret persistence.
type ChallengeRepository interface {
	// Create persists a new challenge.
	Create(ctx context.Context, challenge *entity.Challenge) error

	// FindByID retrieves a challenge record by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error)

	// FindLatestByAccount retrieves the most recent unconsumed challenge for an
	// account and channel.
	FindLatestByAccount(ctx context.Context, accountID uuid.UUID, channel entity.ChallengeChannel) (*entity.Challenge, error)

	// Consume marks a challenge used via a conditional write guarded on the
	// consumed flag. ErrChallengeConsumed is returned when the flag was already
	// set, so a secret can never validate twice.
	Consume(ctx context.Context, id uuid.UUID) error

	// Delete removes one challenge. Used to withdraw a challenge whose code
	// could not be delivered.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByAccountID removes all challenges of an account.
	DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error

	// DeleteExpired removes challenges past their expiry. Called periodically.
	DeleteExpired(ctx context.Context) error
}
