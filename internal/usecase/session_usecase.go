package usecase

import (
	"context"

	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

// --- Input DTOs ---

// CreateEmailSessionInput defines the data required for an email/password login.
type CreateEmailSessionInput struct {
	Email    string
	Password string
	Client   entity.ClientInfo
}

// CreateAnonymousSessionInput defines the data for an anonymous session.
// HasActiveSession reflects whether the request already authenticated; creation
// is rejected in that case.
type CreateAnonymousSessionInput struct {
	HasActiveSession bool
	Client           entity.ClientInfo
}

// --- Output DTOs ---

// SessionOutput returns a created session together with its opaque secret.
// The secret exists only in this output; the store keeps just its hash.
type SessionOutput struct {
	Session *entity.Session
	Secret  string
}

// Principal is the authenticated identity resolved for a request.
type Principal struct {
	Account *entity.Account
	Session *entity.Session
}

// SessionUsecase defines the interface for session-related business operations.
type SessionUsecase interface {
	// CreateEmailSession performs an email/password login.
	CreateEmailSession(ctx context.Context, input *CreateEmailSessionInput) (*SessionOutput, error)

	// CreateAnonymousSession creates a fresh anonymous account with a session.
	CreateAnonymousSession(ctx context.Context, input *CreateAnonymousSessionInput) (*SessionOutput, error)

	// ListSessions returns all sessions of the account, newest first.
	ListSessions(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error)

	// GetSession returns one session of the account. Foreign or unknown IDs are
	// indistinguishable: both yield not-found.
	GetSession(ctx context.Context, accountID, sessionID uuid.UUID) (*entity.Session, error)

	// DeleteSession revokes one session of the account.
	DeleteSession(ctx context.Context, accountID, sessionID uuid.UUID, client entity.ClientInfo) error

	// IssueJWT issues a short-lived token bound to the calling session.
	IssueJWT(ctx context.Context, accountID, sessionID uuid.UUID, client entity.ClientInfo) (string, error)

	// AuthenticateBySecret resolves the principal for an opaque cookie secret.
	AuthenticateBySecret(ctx context.Context, secret string) (*Principal, error)

	// AuthenticateByJWT resolves the principal for a session-bound JWT. The
	// referenced session must still exist; a valid signature alone is not enough.
	AuthenticateByJWT(ctx context.Context, token string) (*Principal, error)
}
