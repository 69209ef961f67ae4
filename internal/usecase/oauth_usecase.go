package usecase

import (
	"context"

	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

// --- Input DTOs ---

// BeginAuthorizationInput starts an OAuth2 code flow.
type BeginAuthorizationInput struct {
	Provider   string
	SuccessURL string
	FailureURL string
}

// CompleteAuthorizationInput finishes the flow with the provider callback data.
// CurrentAccountID carries the caller's account when the request already holds
// a session; an anonymous account is then upgraded in place instead of a new
// account being created.
type CompleteAuthorizationInput struct {
	Provider         string
	Code             string
	State            string
	CurrentAccountID uuid.UUID
	Client           entity.ClientInfo
}

// --- Output DTOs ---

// CompleteAuthorizationOutput returns the created session and the application
// URL to redirect the browser to.
type CompleteAuthorizationOutput struct {
	Session     *entity.Session
	Secret      string
	RedirectURL string
}

// OAuthUsecase defines the interface for the OAuth2 login flows.
type OAuthUsecase interface {
	// BeginAuthorization validates the provider and returns the provider
	// redirect URL carrying a signed state.
	BeginAuthorization(ctx context.Context, input *BeginAuthorizationInput) (string, error)

	// CompleteAuthorization exchanges the code, resolves or creates the
	// account via its provider binding, and opens a session carrying the
	// provider tokens.
	CompleteAuthorization(ctx context.Context, input *CompleteAuthorizationInput) (*CompleteAuthorizationOutput, error)

	// RefreshProviderTokens renews the provider tokens stored on an OAuth2
	// session. Concurrent refreshes collapse to one provider call; losers
	// return the winner's tokens.
	RefreshProviderTokens(ctx context.Context, accountID, sessionID uuid.UUID) (*entity.Session, error)
}
