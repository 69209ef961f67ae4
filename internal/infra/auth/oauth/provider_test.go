package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/config"
	domainerrors "passport/internal/domain/errors"
)

func testProviderConfig(authURL, tokenURL, userInfoURL string) *config.OAuthProviderConfig {
	return &config.OAuthProviderConfig{
		Enabled:      true,
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		AuthURL:      authURL,
		TokenURL:     tokenURL,
		UserInfoURL:  userInfoURL,
		RedirectURL:  "https://example.com/v1/account/sessions/oauth2/callback/mock",
		Scopes:       []string{"openid", "email"},
	}
}

func TestRegistry_Provider(t *testing.T) {
	cfg := &config.Config{
		OAuth: map[string]*config.OAuthProviderConfig{
			"mock":     testProviderConfig("https://auth", "https://token", "https://userinfo"),
			"disabled": {Enabled: false},
		},
	}

	reg := NewRegistry(cfg)

	provider, err := reg.Provider("mock")
	require.NoError(t, err)
	assert.Equal(t, "mock", provider.Name())

	// Disabled providers resolve to the precondition error, not not-found.
	_, err = reg.Provider("disabled")
	assert.True(t, errors.Is(err, domainerrors.ErrProviderDisabled))

	_, err = reg.Provider("nope")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestCodeFlowProvider_AuthorizationURL(t *testing.T) {
	provider := NewProvider("mock", testProviderConfig("https://auth.example.com/authorize", "https://token", "https://userinfo"))

	raw := provider.AuthorizationURL("signed-state")
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "auth.example.com", parsed.Host)
	query := parsed.Query()
	assert.Equal(t, "client-id", query.Get("client_id"))
	assert.Equal(t, "signed-state", query.Get("state"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Contains(t, query.Get("scope"), "email")
}

func TestCodeFlowProvider_ExchangeCode(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "provider-access",
			"refresh_token": "provider-refresh",
			"token_type":    "Bearer",
			"expires_in":    3600,
		}))
	}))
	defer tokenServer.Close()

	provider := NewProvider("mock", testProviderConfig("https://auth", tokenServer.URL, "https://userinfo"))

	tokens, err := provider.ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "provider-access", tokens.AccessToken)
	assert.Equal(t, "provider-refresh", tokens.RefreshToken)
	assert.False(t, tokens.Expiry.IsZero())
}

func TestCodeFlowProvider_FetchUser(t *testing.T) {
	userInfoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer provider-access", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"sub":   "user-123",
			"email": "person@example.com",
			"name":  "Person Example",
		}))
	}))
	defer userInfoServer.Close()

	provider := NewProvider("mock", testProviderConfig("https://auth", "https://token", userInfoServer.URL))

	user, err := provider.FetchUser(context.Background(), "provider-access")
	require.NoError(t, err)
	assert.Equal(t, "user-123", user.ID)
	assert.Equal(t, "person@example.com", user.Email)
	assert.Equal(t, "Person Example", user.Name)
}

func TestCodeFlowProvider_FetchUserLegacyIDField(t *testing.T) {
	userInfoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"id":    "legacy-456",
			"email": "legacy@example.com",
		}))
	}))
	defer userInfoServer.Close()

	provider := NewProvider("mock", testProviderConfig("https://auth", "https://token", userInfoServer.URL))

	user, err := provider.FetchUser(context.Background(), "token")
	require.NoError(t, err)
	assert.Equal(t, "legacy-456", user.ID)
}

func TestCodeFlowProvider_FetchUserNoIdentifier(t *testing.T) {
	userInfoServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{"email": "nobody@example.com"}))
	}))
	defer userInfoServer.Close()

	provider := NewProvider("mock", testProviderConfig("https://auth", "https://token", userInfoServer.URL))

	_, err := provider.FetchUser(context.Background(), "token")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no user identifier")
}

func TestCodeFlowProvider_RefreshKeepsOldRefreshToken(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		// No refresh_token in the renewal response.
		assert.NoError(t, json.NewEncoder(w).Encode(map[string]any{
			"access_token": "renewed-access",
			"token_type":   "Bearer",
			"expires_in":   3600,
		}))
	}))
	defer tokenServer.Close()

	provider := NewProvider("mock", testProviderConfig("https://auth", tokenServer.URL, "https://userinfo"))

	tokens, err := provider.Refresh(context.Background(), "old-refresh")
	require.NoError(t, err)
	assert.Equal(t, "renewed-access", tokens.AccessToken)
	assert.Equal(t, "old-refresh", tokens.RefreshToken)
}
