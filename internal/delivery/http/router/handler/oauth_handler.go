package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"passport/config"
	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/response"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	"passport/internal/usecase"
)

// OAuthHandler holds dependencies for the OAuth2 authorization-code flow.
type OAuthHandler struct {
	uc           usecase.OAuthUsecase
	clientParser service.ClientParser
	cfg          *config.Config
	logger       *slog.Logger
}

// NewOAuthHandler is the constructor for OAuthHandler, injected by Fx.
func NewOAuthHandler(uc usecase.OAuthUsecase, clientParser service.ClientParser, cfg *config.Config, logger *slog.Logger) *OAuthHandler {
	return &OAuthHandler{
		uc:           uc,
		clientParser: clientParser,
		cfg:          cfg,
		logger:       logger,
	}
}

// Begin redirects the browser to the provider's authorization page, carrying
// the application redirect URLs in a signed state.
func (h *OAuthHandler) Begin(c echo.Context) error {
	successURL := c.QueryParam("success")
	failureURL := c.QueryParam("failure")
	if successURL == "" {
		return errors.Wrap(domainerrors.ErrMissingRequiredField, "success url is required")
	}

	url, err := h.uc.BeginAuthorization(c.Request().Context(), &usecase.BeginAuthorizationInput{
		Provider:   c.Param("provider"),
		SuccessURL: successURL,
		FailureURL: failureURL,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusTemporaryRedirect, url)
}

// Callback finishes the flow on the provider's redirect: it exchanges the
// code, opens the session and sends the browser to the application's success
// URL. When the request already holds an anonymous session, that account is
// upgraded in place instead of a new one being created.
func (h *OAuthHandler) Callback(c echo.Context) error {
	code := c.QueryParam("code")
	state := c.QueryParam("state")
	if code == "" || state == "" {
		return errors.Wrap(domainerrors.ErrOAuthCodeInvalid, "missing code or state")
	}

	var currentAccountID uuid.UUID
	if principal, ok := middleware.GetPrincipal(c); ok {
		currentAccountID = principal.Account.ID
	}

	output, err := h.uc.CompleteAuthorization(c.Request().Context(), &usecase.CompleteAuthorizationInput{
		Provider:         c.Param("provider"),
		Code:             code,
		State:            state,
		CurrentAccountID: currentAccountID,
		Client:           clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, output.Secret, output.Session.ExpiresAt)

	return c.Redirect(http.StatusFound, output.RedirectURL)
}

// RefreshTokens renews the provider tokens stored on an OAuth2 session of the
// calling account. "current" addresses the session behind the credential.
func (h *OAuthHandler) RefreshTokens(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	sessionID, err := resolveSessionID(c, principal)
	if err != nil {
		return err
	}

	session, err := h.uc.RefreshProviderTokens(c.Request().Context(), principal.Account.ID, sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSessionView(session, "", session.ID == principal.Session.ID), "Provider tokens refreshed")
}
