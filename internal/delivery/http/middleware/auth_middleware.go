package middleware

import (
	"crypto/subtle"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"passport/config"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"
)

// Context keys set by the authentication middleware.
const (
	// KeyPrincipal holds the resolved *usecase.Principal.
	KeyPrincipal = "principal"
	// KeyIsAdmin marks requests authenticated with the project API key.
	KeyIsAdmin = "isAdmin"

	// HeaderSessionJWT carries a session-bound JWT as an alternative to the cookie.
	HeaderSessionJWT = "X-Auth-JWT"
	// HeaderAPIKey authenticates server-side admin callers.
	HeaderAPIKey = "X-API-Key"

	sessionCookiePrefix = "session_"
)

// SessionCookieName returns the project-scoped cookie carrying the opaque
// session secret.
func SessionCookieName(projectID string) string {
	return sessionCookiePrefix + projectID
}

// AuthMiddleware resolves the caller's identity from the session cookie, a
// session-bound JWT header or the project API key.
type AuthMiddleware struct {
	sessionUsecase usecase.SessionUsecase
	cfg            *config.Config
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(sessionUsecase usecase.SessionUsecase, cfg *config.Config) *AuthMiddleware {
	return &AuthMiddleware{sessionUsecase: sessionUsecase, cfg: cfg}
}

// Authenticate requires a valid session credential. The cookie wins over the
// JWT header when both are present. Expired sessions and blocked accounts
// never pass.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, err := m.resolve(c)
		if err != nil {
			return err
		}
		if principal == nil {
			return errors.Wrap(domainerrors.ErrUnauthorized, "no session credential on request")
		}

		c.Set(KeyPrincipal, principal)

		return next(c)
	}
}

// Resolve attaches the principal when a credential is present but lets
// unauthenticated requests through. Used on routes that behave differently for
// logged-in callers, like anonymous session creation and the OAuth callback.
func (m *AuthMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal, err := m.resolve(c)
		if err == nil && principal != nil {
			c.Set(KeyPrincipal, principal)
		}

		return next(c)
	}
}

// RequireAdmin authenticates server-side callers via the project API key.
// It must come before route registration on the admin group.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Header.Get(HeaderAPIKey)
		if key == "" {
			return errors.Wrap(domainerrors.ErrUnauthorized, "missing api key")
		}
		if m.cfg.Project == nil || subtle.ConstantTimeCompare([]byte(key), []byte(m.cfg.Project.APIKey)) != 1 {
			return errors.Wrap(domainerrors.ErrForbidden, "invalid api key")
		}

		c.Set(KeyIsAdmin, true)

		return next(c)
	}
}

// resolve tries the cookie first, then the JWT header. A nil principal with a
// nil error means no credential was presented at all.
func (m *AuthMiddleware) resolve(c echo.Context) (*usecase.Principal, error) {
	ctx := c.Request().Context()

	if cookie, err := c.Cookie(SessionCookieName(m.cfg.Project.ID)); err == nil && cookie.Value != "" {
		principal, err := m.sessionUsecase.AuthenticateBySecret(ctx, cookie.Value)
		if err != nil {
			return nil, err
		}

		return principal, nil
	}

	if token := c.Request().Header.Get(HeaderSessionJWT); token != "" {
		principal, err := m.sessionUsecase.AuthenticateByJWT(ctx, token)
		if err != nil {
			return nil, err
		}

		return principal, nil
	}

	return nil, nil
}

// GetPrincipal returns the principal attached by Authenticate or Resolve.
func GetPrincipal(c echo.Context) (*usecase.Principal, bool) {
	principal, ok := c.Get(KeyPrincipal).(*usecase.Principal)

	return principal, ok
}

// IsAdmin reports whether the request authenticated with the project API key.
func IsAdmin(c echo.Context) bool {
	isAdmin, ok := c.Get(KeyIsAdmin).(bool)

	return ok && isAdmin
}
