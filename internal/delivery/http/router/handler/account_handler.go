package handler

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"passport/config"
	"passport/internal/delivery/http/response"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	"passport/internal/usecase"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc           usecase.AccountUsecase
	clientParser service.ClientParser
	cfg          *config.Config
	logger       *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, clientParser service.ClientParser, cfg *config.Config, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:           uc,
		clientParser: clientParser,
		cfg:          cfg,
		logger:       logger,
	}
}

type createAccountRequest struct {
	ID       string `json:"id"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=256"`
	Name     string `json:"name" validate:"max=128"`
}

// Create handles email/password account registration.
func (h *AccountHandler) Create(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid account input")
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

	account, err := h.uc.CreateAccount(c.Request().Context(), &usecase.CreateAccountInput{
		ID:       id,
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Client:   clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, newAccountView(account), "Account created successfully")
}

// Invite always refuses: invitations only make sense from a privileged
// execution context, which this public surface never is.
func (h *AccountHandler) Invite(c echo.Context) error {
	return errors.Wrap(domainerrors.ErrForbidden, "invites are not available on the public surface")
}

// Get returns the calling account.
func (h *AccountHandler) Get(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	account, err := h.uc.GetAccount(c.Request().Context(), principal.Account.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "")
}

type updateEmailRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=256"`
}

// UpdateEmail changes the login email, or installs the first email/password
// credential on an anonymous account.
func (h *AccountHandler) UpdateEmail(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req updateEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.uc.UpdateEmail(c.Request().Context(), &usecase.UpdateEmailInput{
		AccountID: principal.Account.ID,
		Email:     req.Email,
		Password:  req.Password,
		Client:    clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "Email updated successfully")
}

type updatePasswordRequest struct {
	Password    string `json:"password" validate:"required,min=8,max=256"`
	OldPassword string `json:"oldPassword"`
}

// UpdatePassword changes the account password.
func (h *AccountHandler) UpdatePassword(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req updatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.uc.UpdatePassword(c.Request().Context(), &usecase.UpdatePasswordInput{
		AccountID:   principal.Account.ID,
		Password:    req.Password,
		OldPassword: req.OldPassword,
		Client:      clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "Password updated successfully")
}

type updatePhoneRequest struct {
	Phone    string `json:"phone" validate:"required,e164"`
	Password string `json:"password"`
}

// UpdatePhone changes the account phone number.
func (h *AccountHandler) UpdatePhone(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req updatePhoneRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid phone input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.uc.UpdatePhone(c.Request().Context(), &usecase.UpdatePhoneInput{
		AccountID: principal.Account.ID,
		Phone:     req.Phone,
		Password:  req.Password,
		Client:    clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "Phone updated successfully")
}

type updateNameRequest struct {
	Name string `json:"name" validate:"required,max=128"`
}

// UpdateName changes the display name.
func (h *AccountHandler) UpdateName(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	var req updateNameRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid name input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.uc.UpdateName(c.Request().Context(), &usecase.UpdateNameInput{
		AccountID: principal.Account.ID,
		Name:      req.Name,
		Client:    clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "Name updated successfully")
}

// BlockSelf blocks the calling account, revokes all of its sessions and clears
// the session cookie.
func (h *AccountHandler) BlockSelf(c echo.Context) error {
	principal, err := currentPrincipal(c)
	if err != nil {
		return err
	}

	account, err := h.uc.BlockSelf(c.Request().Context(), &usecase.SetStatusInput{
		AccountID: principal.Account.ID,
		Status:    entity.AccountStatusBlocked,
		Client:    clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	clearSessionCookie(c, h.cfg)

	return response.Success(c, http.StatusOK, newAccountView(account), "Account blocked")
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=enabled blocked"`
}

// SetStatus sets an account's status on behalf of an admin caller.
func (h *AccountHandler) SetStatus(c echo.Context) error {
	accountID, err := uuid.Parse(c.Param("accountID"))
	if err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, "invalid account id")
	}

	var req setStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.uc.SetStatus(c.Request().Context(), &usecase.SetStatusInput{
		AccountID: accountID,
		Status:    entity.AccountStatus(req.Status),
		Client:    clientInfo(c, h.clientParser),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "Account status updated")
}
