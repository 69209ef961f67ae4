package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/usecase"
)

// targetService implements the TargetUsecase interface.
type targetService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// TargetServiceParams holds dependencies for TargetService, injected by Fx.
type TargetServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewTargetService is the constructor for targetService.
func NewTargetService(params TargetServiceParams) usecase.TargetUsecase {
	return &targetService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *targetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateTarget registers a new delivery destination for the account.
func (srv *targetService) CreateTarget(ctx context.Context, input *usecase.CreateTargetInput) (*entity.Target, error) {
	if input.Identifier == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingRequiredField, "identifier is required")
	}

	srv.log(ctx).Info("Creating target", slog.Any("accountID", input.AccountID))

	target := &entity.Target{
		AccountID:  input.AccountID,
		ProviderID: input.ProviderID,
		Identifier: input.Identifier,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.TargetRepo().Create(ctx, target); err != nil {
			return errors.Wrap(err, "failed to create target")
		}

		return appendAuditEntry(ctx, repoFactory, input.AccountID, entity.EventTargetCreate, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create target", slog.Any("accountID", input.AccountID), slog.Any("error", err))

		return nil, err
	}

	return target, nil
}

// ListTargets returns all targets of the account.
func (srv *targetService) ListTargets(ctx context.Context, accountID uuid.UUID) ([]*entity.Target, error) {
	var targets []*entity.Target

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.TargetRepo().ListByAccountID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to list targets")
		}
		targets = found

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list targets", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	return targets, nil
}

// GetTarget returns one target of the account. Targets of other accounts are
// indistinguishable from missing ones.
func (srv *targetService) GetTarget(ctx context.Context, accountID, targetID uuid.UUID) (*entity.Target, error) {
	var target *entity.Target

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.findOwnedTarget(ctx, repoFactory, accountID, targetID)
		if err != nil {
			return err
		}
		target = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return target, nil
}

// UpdateTarget changes a target's identifier.
func (srv *targetService) UpdateTarget(ctx context.Context, input *usecase.UpdateTargetInput) (*entity.Target, error) {
	if input.Identifier == "" {
		return nil, errors.Wrap(domainerrors.ErrMissingRequiredField, "identifier is required")
	}

	srv.log(ctx).Info("Updating target", slog.Any("targetID", input.TargetID))

	var target *entity.Target

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := srv.findOwnedTarget(ctx, repoFactory, input.AccountID, input.TargetID)
		if err != nil {
			return err
		}

		found.Identifier = input.Identifier
		if err := repoFactory.TargetRepo().Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update target")
		}
		target = found

		return appendAuditEntry(ctx, repoFactory, input.AccountID, entity.EventTargetUpdate, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update target", slog.Any("targetID", input.TargetID), slog.Any("error", err))

		return nil, err
	}

	return target, nil
}

// DeleteTarget removes a target.
func (srv *targetService) DeleteTarget(ctx context.Context, accountID, targetID uuid.UUID, client entity.ClientInfo) error {
	srv.log(ctx).Info("Deleting target", slog.Any("targetID", targetID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		target, err := srv.findOwnedTarget(ctx, repoFactory, accountID, targetID)
		if err != nil {
			return err
		}

		if err := repoFactory.TargetRepo().Delete(ctx, target.ID); err != nil {
			return errors.Wrap(err, "failed to delete target")
		}

		return appendAuditEntry(ctx, repoFactory, accountID, entity.EventTargetDelete, client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete target", slog.Any("targetID", targetID), slog.Any("error", err))

		return err
	}

	return nil
}

// findOwnedTarget loads a target and enforces ownership.
func (srv *targetService) findOwnedTarget(ctx context.Context, repoFactory repository.RepositoryFactory, accountID, targetID uuid.UUID) (*entity.Target, error) {
	target, err := repoFactory.TargetRepo().FindByID(ctx, targetID)
	if err != nil {
		if errors.Is(err, repository.ErrTargetNotFound) {
			return nil, errors.Wrap(domainerrors.ErrTargetNotFound, "target not found")
		}

		return nil, errors.Wrap(err, "failed to find target")
	}
	if target.AccountID != accountID {
		return nil, errors.Wrap(domainerrors.ErrTargetNotFound, "target not found")
	}

	return target, nil
}
