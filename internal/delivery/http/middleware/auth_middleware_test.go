package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/config"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/usecase"
)

// stubSessionUsecase overrides only the authentication methods; everything else
// panics if touched.
type stubSessionUsecase struct {
	usecase.SessionUsecase

	bySecret func(ctx context.Context, secret string) (*usecase.Principal, error)
	byJWT    func(ctx context.Context, token string) (*usecase.Principal, error)
}

func (s *stubSessionUsecase) AuthenticateBySecret(ctx context.Context, secret string) (*usecase.Principal, error) {
	return s.bySecret(ctx, secret)
}

func (s *stubSessionUsecase) AuthenticateByJWT(ctx context.Context, token string) (*usecase.Principal, error) {
	return s.byJWT(ctx, token)
}

func newTestAuthMiddleware(stub *stubSessionUsecase) *AuthMiddleware {
	cfg := &config.Config{}
	cfg.Project = &config.ProjectConfig{ID: "demo", APIKey: "server-key"}

	return NewAuthMiddleware(stub, cfg)
}

func testPrincipal() *usecase.Principal {
	accountID := uuid.New()

	return &usecase.Principal{
		Account: &entity.Account{ID: accountID},
		Session: &entity.Session{ID: uuid.New(), AccountID: accountID},
	}
}

func invoke(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (echo.Context, error) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := mw(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	return c, handler(c)
}

func TestAuthenticate_CookieCredential(t *testing.T) {
	principal := testPrincipal()
	stub := &stubSessionUsecase{
		bySecret: func(_ context.Context, secret string) (*usecase.Principal, error) {
			assert.Equal(t, "opaque-secret", secret)

			return principal, nil
		},
	}
	mw := newTestAuthMiddleware(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/account", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName("demo"), Value: "opaque-secret"})

	c, err := invoke(t, mw.Authenticate, req)

	require.NoError(t, err)
	got, ok := GetPrincipal(c)
	require.True(t, ok)
	assert.Equal(t, principal.Account.ID, got.Account.ID)
}

func TestAuthenticate_JWTHeader(t *testing.T) {
	principal := testPrincipal()
	stub := &stubSessionUsecase{
		byJWT: func(_ context.Context, token string) (*usecase.Principal, error) {
			assert.Equal(t, "some-jwt", token)

			return principal, nil
		},
	}
	mw := newTestAuthMiddleware(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/account", nil)
	req.Header.Set(HeaderSessionJWT, "some-jwt")

	c, err := invoke(t, mw.Authenticate, req)

	require.NoError(t, err)
	got, ok := GetPrincipal(c)
	require.True(t, ok)
	assert.Equal(t, principal.Session.ID, got.Session.ID)
}

func TestAuthenticate_NoCredential(t *testing.T) {
	mw := newTestAuthMiddleware(&stubSessionUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/v1/account", nil)

	_, err := invoke(t, mw.Authenticate, req)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestAuthenticate_BadSecret(t *testing.T) {
	stub := &stubSessionUsecase{
		bySecret: func(_ context.Context, _ string) (*usecase.Principal, error) {
			return nil, domainerrors.ErrSessionNotFound
		},
	}
	mw := newTestAuthMiddleware(stub)

	req := httptest.NewRequest(http.MethodGet, "/v1/account", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName("demo"), Value: "stale"})

	_, err := invoke(t, mw.Authenticate, req)

	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestResolve_PassesThroughUnauthenticated(t *testing.T) {
	mw := newTestAuthMiddleware(&stubSessionUsecase{})

	req := httptest.NewRequest(http.MethodPost, "/v1/account/sessions/anonymous", nil)

	c, err := invoke(t, mw.Resolve, req)

	require.NoError(t, err)
	_, ok := GetPrincipal(c)
	assert.False(t, ok)
}

func TestResolve_AttachesPrincipal(t *testing.T) {
	principal := testPrincipal()
	stub := &stubSessionUsecase{
		bySecret: func(_ context.Context, _ string) (*usecase.Principal, error) {
			return principal, nil
		},
	}
	mw := newTestAuthMiddleware(stub)

	req := httptest.NewRequest(http.MethodPost, "/v1/account/sessions/anonymous", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName("demo"), Value: "opaque-secret"})

	c, err := invoke(t, mw.Resolve, req)

	require.NoError(t, err)
	_, ok := GetPrincipal(c)
	assert.True(t, ok)
}

func TestRequireAdmin(t *testing.T) {
	mw := newTestAuthMiddleware(&stubSessionUsecase{})

	tests := []struct {
		name    string
		key     string
		wantErr error
	}{
		{name: "missing key", key: "", wantErr: domainerrors.ErrUnauthorized},
		{name: "wrong key", key: "guess", wantErr: domainerrors.ErrForbidden},
		{name: "correct key", key: "server-key", wantErr: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPatch, "/v1/admin/accounts/x/status", nil)
			if tt.key != "" {
				req.Header.Set(HeaderAPIKey, tt.key)
			}

			c, err := invoke(t, mw.RequireAdmin, req)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, IsAdmin(c))

				return
			}

			require.NoError(t, err)
			assert.True(t, IsAdmin(c))
		})
	}
}
