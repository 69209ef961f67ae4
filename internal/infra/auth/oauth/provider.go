// Package oauth implements the authorization-code flow against external
// identity providers, driven entirely by configuration.
package oauth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"

	"passport/config"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/service"
)

const userInfoTimeout = 10 * time.Second

// codeFlowProvider implements service.OAuthProvider on top of golang.org/x/oauth2.
type codeFlowProvider struct {
	name        string
	conf        *oauth2.Config
	userInfoURL string
	httpClient  *http.Client
}

// NewProvider builds one provider from its configuration entry.
func NewProvider(name string, cfg *config.OAuthProviderConfig) service.OAuthProvider {
	return &codeFlowProvider{
		name: name,
		conf: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint: oauth2.Endpoint{
				AuthURL:  cfg.AuthURL,
				TokenURL: cfg.TokenURL,
			},
		},
		userInfoURL: cfg.UserInfoURL,
		httpClient:  &http.Client{Timeout: userInfoTimeout},
	}
}

// Name returns the provider name used in routes and session providers.
func (p *codeFlowProvider) Name() string {
	return p.name
}

// AuthorizationURL builds the provider redirect for the given signed state.
func (p *codeFlowProvider) AuthorizationURL(state string) string {
	return p.conf.AuthCodeURL(state, oauth2.AccessTypeOffline)
}

// ExchangeCode swaps an authorization code for provider tokens.
func (p *codeFlowProvider) ExchangeCode(ctx context.Context, code string) (*service.OAuthTokens, error) {
	token, err := p.conf.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrapf(err, "exchange code with provider %s", p.name)
	}

	return tokensFromOAuth2(token), nil
}

// FetchUser resolves the provider-side identity for an access token.
func (p *codeFlowProvider) FetchUser(ctx context.Context, accessToken string) (*service.OAuthUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create user info request")
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "get user info from provider %s", p.name)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	// Providers disagree on field names; accept both OIDC and legacy shapes.
	var raw struct {
		Sub   string `json:"sub"`
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "decode user info response")
	}

	providerUserID := raw.Sub
	if providerUserID == "" {
		providerUserID = raw.ID
	}
	if providerUserID == "" {
		return nil, errors.Errorf("provider %s returned no user identifier", p.name)
	}

	return &service.OAuthUser{
		ID:    providerUserID,
		Email: raw.Email,
		Name:  raw.Name,
	}, nil
}

// Refresh obtains fresh tokens from a refresh token with a single provider call.
func (p *codeFlowProvider) Refresh(ctx context.Context, refreshToken string) (*service.OAuthTokens, error) {
	src := p.conf.TokenSource(ctx, &oauth2.Token{RefreshToken: refreshToken})
	token, err := src.Token()
	if err != nil {
		return nil, errors.Wrapf(err, "refresh tokens with provider %s", p.name)
	}

	tokens := tokensFromOAuth2(token)
	// Providers may omit the refresh token on renewal; keep the old one.
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = refreshToken
	}

	return tokens, nil
}

func tokensFromOAuth2(token *oauth2.Token) *service.OAuthTokens {
	return &service.OAuthTokens{
		AccessToken:  token.AccessToken,
		RefreshToken: token.RefreshToken,
		Expiry:       token.Expiry,
	}
}

// registry resolves configured providers by name.
type registry struct {
	providers map[string]service.OAuthProvider
	disabled  map[string]bool
}

// NewRegistry builds the provider registry from configuration. Disabled
// providers are remembered so resolution can distinguish "disabled" from
// "unknown".
func NewRegistry(cfg *config.Config) service.OAuthProviderRegistry {
	reg := &registry{
		providers: make(map[string]service.OAuthProvider),
		disabled:  make(map[string]bool),
	}

	for name, providerCfg := range cfg.OAuth {
		if providerCfg == nil {
			continue
		}
		if !providerCfg.Enabled {
			reg.disabled[name] = true

			continue
		}
		reg.providers[name] = NewProvider(name, providerCfg)
	}

	return reg
}

// Provider returns the named provider when it is configured and enabled.
func (r *registry) Provider(name string) (service.OAuthProvider, error) {
	if provider, ok := r.providers[name]; ok {
		return provider, nil
	}
	if r.disabled[name] {
		return nil, errors.Wrapf(domainerrors.ErrProviderDisabled, "provider %s", name)
	}

	return nil, errors.Wrapf(domainerrors.ErrNotFound, "unknown oauth provider %s", name)
}
