package service

import (
	"context"
	"time"
)

// OAuthUser represents the identity a provider reports for an exchanged code.
type OAuthUser struct {
	ID    string // Provider-specific user ID (e.g. the 'sub' claim).
	Email string // User's email address as reported by the provider.
	Name  string // User's display name as reported by the provider.
}

// OAuthTokens holds the provider tokens obtained from an exchange or refresh.
type OAuthTokens struct {
	AccessToken  string
	RefreshToken string
	Expiry       time.Time
}

// OAuthProvider performs the authorization-code flow against one external
// provider. Implementations must bound every network call with the context.
type OAuthProvider interface {
	// Name returns the provider name used in routes and session providers.
	Name() string

	// AuthorizationURL builds the provider redirect for the given signed state.
	AuthorizationURL(state string) string

	// ExchangeCode swaps an authorization code for provider tokens.
	ExchangeCode(ctx context.Context, code string) (*OAuthTokens, error)

	// FetchUser resolves the provider-side identity for an access token.
	FetchUser(ctx context.Context, accessToken string) (*OAuthUser, error)

	// Refresh obtains fresh tokens from a refresh token. Exactly one provider
	// call per invocation; callers arbitrate concurrent refreshes.
	Refresh(ctx context.Context, refreshToken string) (*OAuthTokens, error)
}

// OAuthProviderRegistry resolves configured providers by name and enforces the
// project-level enabled/disabled gate before any flow proceeds.
type OAuthProviderRegistry interface {
	// Provider returns the named provider when it is configured and enabled.
	// Disabled providers surface the domain's ProviderDisabled error.
	Provider(name string) (OAuthProvider, error)
}
