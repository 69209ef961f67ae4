package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"passport/config"
	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/response"
	"passport/internal/domain/service"
	"passport/internal/usecase"
)

// SessionHandler holds dependencies for session-related handlers.
type SessionHandler struct {
	uc           usecase.SessionUsecase
	clientParser service.ClientParser
	cfg          *config.Config
	logger       *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(uc usecase.SessionUsecase, clientParser service.ClientParser, cfg *config.Config, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		uc:           uc,
		clientParser: clientParser,
		cfg:          cfg,
		logger:       logger,
	}
}

type createEmailSessionRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateEmail handles an email/password login.
func (h *SessionHandler) CreateEmail(c echo.Context) error {
	var req createEmailSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.CreateEmailSession(c.Request().Context(), &usecase.CreateEmailSessionInput{
		Email:    req.Email,
		Password: req.Password,
		Client:   clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, output.Secret, output.Session.ExpiresAt)

	return response.Created(c, newSessionView(output.Session, output.Secret, true), "Session created successfully")
}

// CreateAnonymous opens a session on a brand-new anonymous account. A request
// that already authenticates is rejected; upgrade paths exist instead.
func (h *SessionHandler) CreateAnonymous(c echo.Context) error {
	_, hasSession := middleware.GetPrincipal(c)

	output, err := h.uc.CreateAnonymousSession(c.Request().Context(), &usecase.CreateAnonymousSessionInput{
		HasActiveSession: hasSession,
		Client:           clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, output.Secret, output.Session.ExpiresAt)

	return response.Created(c, newSessionView(output.Session, output.Secret, true), "Session created successfully")
}

// List returns all sessions of the calling account.
func (h *SessionHandler) List(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	sessions, err := h.uc.ListSessions(c.Request().Context(), principal.Account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]*sessionView, 0, len(sessions))
	for _, session := range sessions {
		views = append(views, newSessionView(session, "", session.ID == principal.Session.ID))
	}

	return response.Success(c, http.StatusOK, views, "")
}

// Get returns one session of the calling account. "current" addresses the
// session behind the presented credential.
func (h *SessionHandler) Get(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	sessionID, err := resolveSessionID(c, principal)
	if err != nil {
		return err
	}

	session, err := h.uc.GetSession(c.Request().Context(), principal.Account.ID, sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionView(session, "", session.ID == principal.Session.ID), "")
}

// Delete revokes one session of the calling account. Deleting the current
// session is a logout and clears the cookie.
func (h *SessionHandler) Delete(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	sessionID, err := resolveSessionID(c, principal)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteSession(c.Request().Context(), principal.Account.ID, sessionID, clientInfo(c, h.clientParser)); err != nil {
		return errors.WithStack(err)
	}

	if sessionID == principal.Session.ID {
		clearSessionCookie(c, h.cfg)
	}

	return response.NoContent(c)
}

// IssueJWT returns a short-lived token bound to the calling session.
func (h *SessionHandler) IssueJWT(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	token, err := h.uc.IssueJWT(c.Request().Context(), principal.Account.ID, principal.Session.ID, clientInfo(c, h.clientParser))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, map[string]string{"jwt": token}, "JWT issued successfully")
}
