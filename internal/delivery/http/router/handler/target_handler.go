package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"passport/internal/delivery/http/response"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	"passport/internal/usecase"
)

// TargetHandler holds dependencies for messaging-target handlers.
type TargetHandler struct {
	uc           usecase.TargetUsecase
	clientParser service.ClientParser
	logger       *slog.Logger
}

// NewTargetHandler is the constructor for TargetHandler, injected by Fx.
func NewTargetHandler(uc usecase.TargetUsecase, clientParser service.ClientParser, logger *slog.Logger) *TargetHandler {
	return &TargetHandler{
		uc:           uc,
		clientParser: clientParser,
		logger:       logger,
	}
}

type createTargetRequest struct {
	ProviderID string `json:"providerId"`
	Identifier string `json:"identifier" validate:"required,max=512"`
}

// Create registers a new delivery destination for the calling account.
func (h *TargetHandler) Create(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req createTargetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid target input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	target, err := h.uc.CreateTarget(c.Request().Context(), &usecase.CreateTargetInput{
		AccountID:  principal.Account.ID,
		ProviderID: req.ProviderID,
		Identifier: req.Identifier,
		Client:     clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newTargetView(target), "Target created successfully")
}

// List returns all targets of the calling account.
func (h *TargetHandler) List(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	targets, err := h.uc.ListTargets(c.Request().Context(), principal.Account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*targetView, 0, len(targets))
	for _, target := range targets {
		views = append(views, newTargetView(target))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Get returns one target of the calling account.
func (h *TargetHandler) Get(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	targetID, err := parseTargetID(c)
	if err != nil {
		return err
	}

	target, err := h.uc.GetTarget(c.Request().Context(), principal.Account.ID, targetID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTargetView(target), "")
}

type updateTargetRequest struct {
	Identifier string `json:"identifier" validate:"required,max=512"`
}

// Update changes a target's identifier.
func (h *TargetHandler) Update(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	targetID, err := parseTargetID(c)
	if err != nil {
		return err
	}

	var req updateTargetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid target input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	target, err := h.uc.UpdateTarget(c.Request().Context(), &usecase.UpdateTargetInput{
		AccountID:  principal.Account.ID,
		TargetID:   targetID,
		Identifier: req.Identifier,
		Client:     clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTargetView(target), "Target updated successfully")
}

// Delete removes a target.
func (h *TargetHandler) Delete(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	targetID, err := parseTargetID(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteTarget(c.Request().Context(), principal.Account.ID, targetID, clientInfo(c, h.clientParser)); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func parseTargetID(c echo.Context) (uuid.UUID, error) {
	targetID, err := uuid.Parse(c.Param("targetID"))
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid target id")
	}

	return targetID, nil
}
