package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"passport/config"
	deliverycontext "passport/internal/delivery/context"
	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/domain/service"
	"passport/internal/usecase"
	"passport/internal/util"
)

const defaultSessionDuration = 365 * 24 * time.Hour

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager       repository.TransactionManager
	hasher          service.PasswordHasher
	tokenService    service.TokenService
	secretGenerator service.SecretGenerator
	sessionDuration time.Duration
	logger          *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	Hasher          service.PasswordHasher
	TokenService    service.TokenService
	SecretGenerator service.SecretGenerator
	Config          *config.Config
	Logger          *slog.Logger
}

// NewSessionService is the constructor for sessionService. It receives all dependencies as interfaces.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	sessionDuration := defaultSessionDuration
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.SessionDuration > 0 {
		sessionDuration = params.Config.Auth.SessionDuration
	}

	return &sessionService{
		txManager:       params.TxManager,
		hasher:          params.Hasher,
		tokenService:    params.TokenService,
		secretGenerator: params.SecretGenerator,
		sessionDuration: sessionDuration,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateEmailSession performs an email/password login.
func (srv *sessionService) CreateEmailSession(ctx context.Context, input *usecase.CreateEmailSessionInput) (*usecase.SessionOutput, error) {
	srv.log(ctx).Info("Creating email session", slog.String("email", input.Email))

	var output *usecase.SessionOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Resolve the account by email.
		account, err := repoFactory.AccountRepo().FindByEmail(ctx, strings.ToLower(input.Email))
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				// Unknown email and wrong password are indistinguishable to the caller.
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
			}

			return errors.Wrap(err, "failed to find account")
		}

		// 2. Verify the password.
		if !srv.hasher.Check(input.Password, account.PasswordHash) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "wrong password")
		}

		// 3. A blocked account never opens new sessions.
		if account.IsBlocked() {
			return errors.Wrap(domainerrors.ErrAccountBlocked, "account is blocked")
		}

		// 4. Create the session and record the login.
		out, err := srv.openSession(ctx, repoFactory, account.ID, entity.SessionProviderEmail, input.Client)
		if err != nil {
			return err
		}
		output = out

		return appendAuditEntry(ctx, repoFactory, account.ID, entity.EventSessionCreate, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create email session", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Email session created", slog.Any("sessionID", output.Session.ID))

	return output, nil
}

// CreateAnonymousSession creates a fresh anonymous account with a session. A
// request that already authenticated cannot stack a second anonymous identity.
func (srv *sessionService) CreateAnonymousSession(ctx context.Context, input *usecase.CreateAnonymousSessionInput) (*usecase.SessionOutput, error) {
	if input.HasActiveSession {
		return nil, errors.Wrap(domainerrors.ErrAnonymousSessionExists, "request already holds a session")
	}

	srv.log(ctx).Info("Creating anonymous session")

	var output *usecase.SessionOutput

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 1. Create the empty account.
		account := &entity.Account{Status: entity.AccountStatusEnabled}
		if err := repoFactory.AccountRepo().Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create anonymous account")
		}

		if err := appendAuditEntry(ctx, repoFactory, account.ID, entity.EventAccountCreate, input.Client); err != nil {
			return err
		}

		// 2. Open its first session.
		out, err := srv.openSession(ctx, repoFactory, account.ID, entity.SessionProviderAnonymous, input.Client)
		if err != nil {
			return err
		}
		output = out

		return appendAuditEntry(ctx, repoFactory, account.ID, entity.EventSessionCreate, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create anonymous session", slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// ListSessions returns all sessions of the account, newest first.
func (srv *sessionService) ListSessions(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error) {
	var sessions []*entity.Session

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SessionRepo().FindByAccountID(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to list sessions")
		}
		sessions = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

// GetSession returns one session of the account. A session belonging to a
// different account is reported as not-found, never as forbidden.
func (srv *sessionService) GetSession(ctx context.Context, accountID, sessionID uuid.UUID) (*entity.Session, error) {
	var session *entity.Session

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SessionRepo().FindByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}
		if found.AccountID != accountID {
			return errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
		}
		session = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return session, nil
}

// DeleteSession revokes one session of the account. Deletion is terminal; the
// session's secret and any JWT bound to it stop authenticating immediately.
func (srv *sessionService) DeleteSession(ctx context.Context, accountID, sessionID uuid.UUID, client entity.ClientInfo) error {
	srv.log(ctx).Info("Deleting session", slog.Any("sessionID", sessionID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		found, err := sessionRepo.FindByID(ctx, sessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
			}

			return errors.Wrap(err, "failed to find session")
		}
		if found.AccountID != accountID {
			return errors.Wrap(domainerrors.ErrSessionNotFound, "session not found")
		}

		if err := sessionRepo.Delete(ctx, sessionID); err != nil {
			return errors.Wrap(err, "failed to delete session")
		}

		return appendAuditEntry(ctx, repoFactory, accountID, entity.EventSessionDelete, client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to delete session", slog.Any("sessionID", sessionID), slog.Any("error", err))

		return err
	}

	return nil
}

// IssueJWT issues a short-lived token bound to the calling session.
func (srv *sessionService) IssueJWT(ctx context.Context, accountID, sessionID uuid.UUID, client entity.ClientInfo) (string, error) {
	token, err := srv.tokenService.IssueSessionJWT(accountID, sessionID)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue session jwt")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return appendAuditEntry(ctx, repoFactory, accountID, entity.EventJWTCreate, client)
	})
	if err != nil {
		return "", err
	}

	return token, nil
}

// AuthenticateBySecret resolves the principal for an opaque cookie secret.
func (srv *sessionService) AuthenticateBySecret(ctx context.Context, secret string) (*usecase.Principal, error) {
	var principal *usecase.Principal

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, err := repoFactory.SessionRepo().FindBySecretHash(ctx, util.SHA256Hex(secret))
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrUnauthorized, "unknown session secret")
			}

			return errors.Wrap(err, "failed to find session by secret")
		}

		resolved, err := srv.resolvePrincipal(ctx, repoFactory, session)
		if err != nil {
			return err
		}
		principal = resolved

		return nil
	})
	if err != nil {
		return nil, err
	}

	return principal, nil
}

// AuthenticateByJWT resolves the principal for a session-bound JWT. The claims
// alone never authenticate: the referenced session row must still exist.
func (srv *sessionService) AuthenticateByJWT(ctx context.Context, token string) (*usecase.Principal, error) {
	claims, err := srv.tokenService.ValidateSessionJWT(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrJWTInvalid, err.Error())
	}

	var principal *usecase.Principal

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		session, err := repoFactory.SessionRepo().FindByID(ctx, claims.SessionID)
		if err != nil {
			if errors.Is(err, repository.ErrSessionNotFound) {
				return errors.Wrap(domainerrors.ErrJWTInvalid, "session no longer exists")
			}

			return errors.Wrap(err, "failed to find session")
		}
		if session.AccountID != claims.AccountID {
			return errors.Wrap(domainerrors.ErrJWTInvalid, "token does not match session")
		}

		resolved, err := srv.resolvePrincipal(ctx, repoFactory, session)
		if err != nil {
			return err
		}
		principal = resolved

		return nil
	})
	if err != nil {
		return nil, err
	}

	return principal, nil
}

// resolvePrincipal checks session liveness and loads the owning account.
// Expired sessions are deleted on sight rather than waiting for the reaper.
func (srv *sessionService) resolvePrincipal(ctx context.Context, repoFactory repository.RepositoryFactory, session *entity.Session) (*usecase.Principal, error) {
	if time.Now().After(session.ExpiresAt) {
		if err := repoFactory.SessionRepo().Delete(ctx, session.ID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
			return nil, errors.Wrap(err, "failed to delete expired session")
		}

		return nil, errors.Wrap(domainerrors.ErrUnauthorized, "session expired")
	}

	account, err := repoFactory.AccountRepo().FindByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if account.IsBlocked() {
		return nil, errors.Wrap(domainerrors.ErrAccountBlocked, "account is blocked")
	}

	return &usecase.Principal{Account: account, Session: session}, nil
}

// openSession generates the opaque secret, stores its hash and returns both.
func (srv *sessionService) openSession(ctx context.Context, repoFactory repository.RepositoryFactory, accountID uuid.UUID, provider string, client entity.ClientInfo) (*usecase.SessionOutput, error) {
	return openSession(ctx, repoFactory, srv.secretGenerator, srv.sessionDuration, accountID, provider, client)
}

// openSession is shared by every flow that mints a session: the secret is
// generated once, only its hash is stored, and the raw value rides out in the
// output exactly once.
func openSession(ctx context.Context, repoFactory repository.RepositoryFactory, gen service.SecretGenerator, duration time.Duration, accountID uuid.UUID, provider string, client entity.ClientInfo) (*usecase.SessionOutput, error) {
	secret, err := gen.OpaqueToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session secret")
	}

	session := &entity.Session{
		AccountID:  accountID,
		Provider:   provider,
		SecretHash: util.SHA256Hex(secret),
		Client:     client,
		ExpiresAt:  time.Now().Add(duration),
	}
	if err := repoFactory.SessionRepo().Create(ctx, session); err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return &usecase.SessionOutput{Session: session, Secret: secret}, nil
}
