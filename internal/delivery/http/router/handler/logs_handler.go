package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"passport/internal/delivery/http/response"
	"passport/internal/usecase"
)

// LogsHandler serves the read side of the account security log.
type LogsHandler struct {
	uc     usecase.AuditUsecase
	logger *slog.Logger
}

// NewLogsHandler is the constructor for LogsHandler, injected by Fx.
func NewLogsHandler(uc usecase.AuditUsecase, logger *slog.Logger) *LogsHandler {
	return &LogsHandler{uc: uc, logger: logger}
}

// List returns one page of the calling account's security log, most recent
// first. Unparseable paging parameters fall back to the defaults.
func (h *LogsHandler) List(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	offset, _ := strconv.Atoi(c.QueryParam("offset"))

	page, err := h.uc.Query(c.Request().Context(), principal.Account.ID, limit, offset)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*auditEntryView, 0, len(page.Entries))
	for _, entry := range page.Entries {
		views = append(views, newAuditEntryView(entry))
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"total": page.Total,
		"logs":  views,
	}, "")
}
