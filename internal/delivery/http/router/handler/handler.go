// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"passport/config"
	"passport/internal/delivery/http/middleware"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
	"passport/internal/usecase"
)

// HeaderFallbackCookies mirrors the session secret for clients whose browsers
// refuse the cross-site cookie. The value is a JSON object keyed by cookie name.
const HeaderFallbackCookies = "X-Fallback-Cookies"

// clientInfo parses the request's user agent and IP into the structured client
// metadata recorded on sessions and audit entries.
func clientInfo(c echo.Context, parser service.ClientParser) entity.ClientInfo {
	return parser.Parse(c.Request().UserAgent(), c.RealIP())
}

// currentPrincipal returns the authenticated principal or an unauthorized error.
func currentPrincipal(c echo.Context) (*usecase.Principal, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "request is not authenticated")
	}

	return principal, nil
}

// currentSessionAlias lets clients address their own session without knowing its ID.
const currentSessionAlias = "current"

// resolveSessionID reads the session ID path parameter, mapping the "current"
// alias to the session behind the presented credential.
func resolveSessionID(c echo.Context, principal *usecase.Principal) (uuid.UUID, error) {
	raw := c.Param("sessionID")
	if raw == currentSessionAlias {
		return principal.Session.ID, nil
	}

	sessionID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrap(domainerrors.ErrValidationFailed, "invalid session id")
	}

	return sessionID, nil
}

// setSessionCookie installs the opaque session secret on the response, both as
// a project-scoped cookie and through the fallback header.
func setSessionCookie(c echo.Context, cfg *config.Config, secret string, expires time.Time) {
	name := middleware.SessionCookieName(cfg.Project.ID)

	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    secret,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	fallback, err := json.Marshal(map[string]string{name: secret})
	if err == nil {
		c.Response().Header().Set(HeaderFallbackCookies, string(fallback))
	}
}

// clearSessionCookie expires the session cookie on the response.
func clearSessionCookie(c echo.Context, cfg *config.Config) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName(cfg.Project.ID),
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
	c.Response().Header().Set(HeaderFallbackCookies, "[]")
}

// --- Response views. Hashes and provider tokens never leave the service. ---

type accountView struct {
	ID                string    `json:"id"`
	Email             string    `json:"email,omitempty"`
	Phone             string    `json:"phone,omitempty"`
	Name              string    `json:"name,omitempty"`
	Status            string    `json:"status"`
	EmailVerification bool      `json:"emailVerification"`
	PhoneVerification bool      `json:"phoneVerification"`
	Registration      time.Time `json:"registration"`
	AccessedAt        time.Time `json:"accessedAt"`
}

func newAccountView(account *entity.Account) *accountView {
	return &accountView{
		ID:                account.ID.String(),
		Email:             account.Email,
		Phone:             account.Phone,
		Name:              account.Name,
		Status:            string(account.Status),
		EmailVerification: account.EmailVerification,
		PhoneVerification: account.PhoneVerification,
		Registration:      account.Registration,
		AccessedAt:        account.AccessedAt,
	}
}

type sessionView struct {
	ID          string    `json:"id"`
	AccountID   string    `json:"accountId"`
	Provider    string    `json:"provider"`
	OSName      string    `json:"osName,omitempty"`
	ClientName  string    `json:"clientName,omitempty"`
	DeviceName  string    `json:"deviceName,omitempty"`
	IP          string    `json:"ip,omitempty"`
	CountryCode string    `json:"countryCode,omitempty"`
	CountryName string    `json:"countryName,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
	CreatedAt   time.Time `json:"createdAt"`
	Current     bool      `json:"current"`

	// Provider tokens are the account owner's own credentials against the
	// external provider; they ride on every oauth2 session view so clients
	// can call the provider API directly.
	ProviderAccessToken       string     `json:"providerAccessToken,omitempty"`
	ProviderRefreshToken      string     `json:"providerRefreshToken,omitempty"`
	ProviderAccessTokenExpiry *time.Time `json:"providerAccessTokenExpiry,omitempty"`

	// Secret carries the opaque session secret exactly once, on creation.
	Secret string `json:"secret,omitempty"`
}

func newSessionView(session *entity.Session, secret string, current bool) *sessionView {
	view := &sessionView{
		ID:          session.ID.String(),
		AccountID:   session.AccountID.String(),
		Provider:    session.Provider,
		OSName:      session.Client.OSName,
		ClientName:  session.Client.ClientName,
		DeviceName:  session.Client.DeviceName,
		IP:          session.Client.IP,
		CountryCode: session.Client.CountryCode,
		CountryName: session.Client.CountryName,
		ExpiresAt:   session.ExpiresAt,
		CreatedAt:   session.CreatedAt,
		Current:     current,
		Secret:      secret,
	}

	if session.IsOAuth2() {
		view.ProviderAccessToken = session.ProviderAccessToken
		view.ProviderRefreshToken = session.ProviderRefreshToken
		expiry := session.ProviderAccessTokenExpiry
		view.ProviderAccessTokenExpiry = &expiry
	}

	return view
}

type targetView struct {
	ID         string    `json:"id"`
	AccountID  string    `json:"accountId"`
	ProviderID string    `json:"providerId,omitempty"`
	Identifier string    `json:"identifier"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func newTargetView(target *entity.Target) *targetView {
	return &targetView{
		ID:         target.ID.String(),
		AccountID:  target.AccountID.String(),
		ProviderID: target.ProviderID,
		Identifier: target.Identifier,
		CreatedAt:  target.CreatedAt,
		UpdatedAt:  target.UpdatedAt,
	}
}

type challengeView struct {
	ChallengeID string    `json:"challengeId"`
	AccountID   string    `json:"accountId"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

func newChallengeView(output *usecase.ChallengeOutput) *challengeView {
	return &challengeView{
		ChallengeID: output.ChallengeID.String(),
		AccountID:   output.AccountID.String(),
		ExpiresAt:   output.ExpiresAt,
	}
}

type auditEntryView struct {
	Seq         int64     `json:"seq"`
	Event       string    `json:"event"`
	IP          string    `json:"ip,omitempty"`
	OSName      string    `json:"osName,omitempty"`
	ClientName  string    `json:"clientName,omitempty"`
	DeviceName  string    `json:"deviceName,omitempty"`
	CountryCode string    `json:"countryCode,omitempty"`
	CountryName string    `json:"countryName,omitempty"`
	Time        time.Time `json:"time"`
}

func newAuditEntryView(entry *entity.AuditLogEntry) *auditEntryView {
	return &auditEntryView{
		Seq:         entry.Seq,
		Event:       entry.Event,
		IP:          entry.Client.IP,
		OSName:      entry.Client.OSName,
		ClientName:  entry.Client.ClientName,
		DeviceName:  entry.Client.DeviceName,
		CountryCode: entry.Client.CountryCode,
		CountryName: entry.Client.CountryName,
		Time:        entry.Time,
	}
}
