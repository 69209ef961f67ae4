package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/repository"
)

// CleanupHandler runs the periodic reaping of expired credentials. An external
// scheduler hits the endpoint; the handler itself holds no timer state.
type CleanupHandler struct {
	logger    *slog.Logger
	txManager repository.TransactionManager
}

// CleanupHandlerParams holds dependencies for the CleanupHandler
type CleanupHandlerParams struct {
	fx.In

	Logger    *slog.Logger
	TxManager repository.TransactionManager
}

// NewCleanupHandler creates a new cleanup handler
func NewCleanupHandler(params CleanupHandlerParams) *CleanupHandler {
	return &CleanupHandler{
		logger:    params.Logger,
		txManager: params.TxManager,
	}
}

// HandleCleanup deletes expired sessions and challenges. Expiry also gates
// every read path, so a delayed run only costs storage, never correctness.
func (h *CleanupHandler) HandleCleanup(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	err := h.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SessionRepo().DeleteExpired(ctx); err != nil {
			return err
		}

		return repoFactory.ChallengeRepo().DeleteExpired(ctx)
	})
	if err != nil {
		logger.Error("[Worker] Cleanup run failed", slog.Any("error", err))

		// 503 so the scheduler retries the run.
		return c.NoContent(http.StatusServiceUnavailable)
	}

	logger.Info("[Worker] Cleanup run completed")

	return c.NoContent(http.StatusOK)
}
