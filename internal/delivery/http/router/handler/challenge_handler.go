package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"passport/config"
	"passport/internal/delivery/http/response"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	"passport/internal/usecase"
)

// ChallengeHandler holds dependencies for the one-time-secret flows: phone
// login and email/phone ownership verification.
type ChallengeHandler struct {
	uc           usecase.ChallengeUsecase
	clientParser service.ClientParser
	cfg          *config.Config
	logger       *slog.Logger
}

// NewChallengeHandler is the constructor for ChallengeHandler, injected by Fx.
func NewChallengeHandler(uc usecase.ChallengeUsecase, clientParser service.ClientParser, cfg *config.Config, logger *slog.Logger) *ChallengeHandler {
	return &ChallengeHandler{
		uc:           uc,
		clientParser: clientParser,
		cfg:          cfg,
		logger:       logger,
	}
}

type createPhoneSessionRequest struct {
	ID    string `json:"id"`
	Phone string `json:"phone" validate:"required,e164"`
}

// CreatePhoneSession issues a login code to the given phone number, creating
// the account on first contact. The code never appears in the response.
func (h *ChallengeHandler) CreatePhoneSession(c echo.Context) error {
	var req createPhoneSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phone session input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	var id uuid.UUID
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid account ID")
		}
		id = parsed
	}

	output, err := h.uc.CreatePhoneSession(c.Request().Context(), &usecase.CreatePhoneSessionInput{
		ID:     id,
		Phone:  req.Phone,
		Client: clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newChallengeView(output), "Verification code sent")
}

type confirmPhoneSessionRequest struct {
	AccountID string `json:"accountId" validate:"required,uuid"`
	Secret    string `json:"secret" validate:"required"`
}

// ConfirmPhoneSession validates the delivered code and opens a session.
func (h *ChallengeHandler) ConfirmPhoneSession(c echo.Context) error {
	var req confirmPhoneSessionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid account id")
	}

	output, err := h.uc.ConfirmPhoneSession(c.Request().Context(), &usecase.ConfirmPhoneSessionInput{
		AccountID: accountID,
		Secret:    req.Secret,
		Client:    clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	setSessionCookie(c, h.cfg, output.Secret, output.Session.ExpiresAt)

	return response.Created(c, newSessionView(output.Session, output.Secret, true), "Session created successfully")
}

// CreatePhoneVerification issues a confirmation code to the calling account's
// own phone number.
func (h *ChallengeHandler) CreatePhoneVerification(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	output, err := h.uc.CreatePhoneVerification(c.Request().Context(), principal.Account.ID, clientInfo(c, h.clientParser))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newChallengeView(output), "Verification code sent")
}

type confirmVerificationRequest struct {
	Secret string `json:"secret" validate:"required"`
}

// ConfirmPhoneVerification validates the code and marks the phone verified.
func (h *ChallengeHandler) ConfirmPhoneVerification(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req confirmVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.uc.ConfirmPhoneVerification(c.Request().Context(), &usecase.ConfirmVerificationInput{
		AccountID: principal.Account.ID,
		Secret:    req.Secret,
		Client:    clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"phoneVerification": true}, "Phone verified")
}

type createEmailVerificationRequest struct {
	URL string `json:"url" validate:"required,url"`
}

// CreateEmailVerification issues a confirmation link to the calling account's
// own email address.
func (h *ChallengeHandler) CreateEmailVerification(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req createEmailVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	output, err := h.uc.CreateEmailVerification(c.Request().Context(), &usecase.CreateEmailVerificationInput{
		AccountID: principal.Account.ID,
		URL:       req.URL,
		Client:    clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newChallengeView(output), "Verification email sent")
}

// ConfirmEmailVerification validates the secret and marks the email verified.
func (h *ChallengeHandler) ConfirmEmailVerification(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req confirmVerificationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid confirmation input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	err = h.uc.ConfirmEmailVerification(c.Request().Context(), &usecase.ConfirmVerificationInput{
		AccountID: principal.Account.ID,
		Secret:    req.Secret,
		Client:    clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"emailVerification": true}, "Email verified")
}
