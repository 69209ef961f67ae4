package impl

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/repository"
	"passport/internal/usecase"
)

const (
	defaultAuditPageSize = 25
	maxAuditPageSize     = 100
)

// auditService implements the AuditUsecase interface.
type auditService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Logger    *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		txManager: params.TxManager,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Query returns one page of the account's security log, most recent first.
func (srv *auditService) Query(ctx context.Context, accountID uuid.UUID, limit, offset int) (*usecase.AuditLogPage, error) {
	if limit <= 0 {
		limit = defaultAuditPageSize
	}
	if limit > maxAuditPageSize {
		limit = maxAuditPageSize
	}
	if offset < 0 {
		offset = 0
	}

	var page *usecase.AuditLogPage

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		auditRepo := repoFactory.AuditLogRepo()

		entries, err := auditRepo.Query(ctx, accountID, limit, offset)
		if err != nil {
			return errors.Wrap(err, "failed to query audit log")
		}

		total, err := auditRepo.CountByAccountID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to count audit log")
		}

		page = &usecase.AuditLogPage{Entries: entries, Total: total}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to query audit log", slog.Any("accountID", accountID), slog.Any("error", err))

		return nil, err
	}

	return page, nil
}
