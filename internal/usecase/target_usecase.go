package usecase

import (
	"context"

	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

// --- Input DTOs ---

// CreateTargetInput registers a new delivery destination for the account.
type CreateTargetInput struct {
	AccountID  uuid.UUID
	ProviderID string
	Identifier string
	Client     entity.ClientInfo
}

// UpdateTargetInput changes the identifier of an existing target.
type UpdateTargetInput struct {
	AccountID  uuid.UUID
	TargetID   uuid.UUID
	Identifier string
	Client     entity.ClientInfo
}

// TargetUsecase defines the interface for messaging-target operations.
type TargetUsecase interface {
	// CreateTarget registers a delivery destination.
	CreateTarget(ctx context.Context, input *CreateTargetInput) (*entity.Target, error)

	// ListTargets returns all targets of the account.
	ListTargets(ctx context.Context, accountID uuid.UUID) ([]*entity.Target, error)

	// GetTarget returns one target of the account; foreign IDs yield not-found.
	GetTarget(ctx context.Context, accountID, targetID uuid.UUID) (*entity.Target, error)

	// UpdateTarget changes a target's identifier.
	UpdateTarget(ctx context.Context, input *UpdateTargetInput) (*entity.Target, error)

	// DeleteTarget removes a target.
	DeleteTarget(ctx context.Context, accountID, targetID uuid.UUID, client entity.ClientInfo) error
}
