package impl

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
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

const (
	oauthStateTTL       = 15 * time.Minute
	providerCallTimeout = 10 * time.Second
)

// oauthService implements the OAuthUsecase interface.
type oauthService struct {
	txManager       repository.TransactionManager
	registry        service.OAuthProviderRegistry
	secretGenerator service.SecretGenerator
	stateSecret     []byte
	sessionDuration time.Duration
	logger          *slog.Logger
}

// OAuthServiceParams holds dependencies for OAuthService, injected by Fx.
type OAuthServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	Registry        service.OAuthProviderRegistry
	SecretGenerator service.SecretGenerator
	Config          *config.Config
	Logger          *slog.Logger
}

// NewOAuthService is the constructor for oauthService. It receives all dependencies as interfaces.
func NewOAuthService(params OAuthServiceParams) usecase.OAuthUsecase {
	sessionDuration := defaultSessionDuration
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.SessionDuration > 0 {
		sessionDuration = params.Config.Auth.SessionDuration
	}

	return &oauthService{
		txManager:       params.TxManager,
		registry:        params.Registry,
		secretGenerator: params.SecretGenerator,
		stateSecret:     []byte(params.Config.SecretKey.OAuthState),
		sessionDuration: sessionDuration,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *oauthService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// oauthState is the payload signed into the state parameter. The state is the
// only place the redirect URLs live between begin and complete, so it must be
// tamper-proof.
type oauthState struct {
	Provider   string `json:"provider"`
	SuccessURL string `json:"success"`
	FailureURL string `json:"failure"`
	ExpiresAt  int64  `json:"exp"`
}

// BeginAuthorization validates the provider and builds the redirect URL with a signed state.
func (srv *oauthService) BeginAuthorization(ctx context.Context, input *usecase.BeginAuthorizationInput) (string, error) {
	srv.log(ctx).Info("Beginning OAuth2 authorization", slog.String("provider", input.Provider))

	provider, err := srv.registry.Provider(input.Provider)
	if err != nil {
		return "", err
	}

	state, err := srv.signState(&oauthState{
		Provider:   input.Provider,
		SuccessURL: input.SuccessURL,
		FailureURL: input.FailureURL,
		ExpiresAt:  time.Now().Add(oauthStateTTL).Unix(),
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to sign state")
	}

	return provider.AuthorizationURL(state), nil
}

// CompleteAuthorization exchanges the callback code, resolves the account via
// its provider binding and opens an OAuth2 session carrying the provider tokens.
func (srv *oauthService) CompleteAuthorization(ctx context.Context, input *usecase.CompleteAuthorizationInput) (*usecase.CompleteAuthorizationOutput, error) {
	srv.log(ctx).Info("Completing OAuth2 authorization", slog.String("provider", input.Provider))

	provider, err := srv.registry.Provider(input.Provider)
	if err != nil {
		return nil, err
	}

	// 1. The state must verify before anything provider-side happens.
	state, err := srv.verifyState(input.State)
	if err != nil {
		return nil, err
	}
	if state.Provider != input.Provider {
		return nil, errors.Wrap(domainerrors.ErrOAuthCodeInvalid, "state issued for a different provider")
	}

	// 2. Exchange and identity fetch run outside the transaction; provider
	// latency must not hold database locks.
	exchangeCtx, cancel := context.WithTimeout(ctx, providerCallTimeout)
	defer cancel()

	tokens, err := provider.ExchangeCode(exchangeCtx, input.Code)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthCodeInvalid, err.Error())
	}

	oauthUser, err := provider.FetchUser(exchangeCtx, tokens.AccessToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, err.Error())
	}
	if oauthUser.ID == "" {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, "provider returned no user id")
	}

	var output *usecase.CompleteAuthorizationOutput

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		// 3. Resolve the account behind the provider identity.
		account, err := srv.resolveAccount(ctx, repoFactory, input, oauthUser, tokens)
		if err != nil {
			return err
		}

		if account.IsBlocked() {
			return errors.Wrap(domainerrors.ErrAccountBlocked, "account is blocked")
		}

		// 4. Open the session with the provider tokens on board.
		secret, err := srv.secretGenerator.OpaqueToken()
		if err != nil {
			return errors.Wrap(err, "failed to generate session secret")
		}

		session := &entity.Session{
			AccountID:                 account.ID,
			Provider:                  entity.OAuth2SessionProvider(input.Provider),
			SecretHash:                util.SHA256Hex(secret),
			ProviderAccessToken:       tokens.AccessToken,
			ProviderRefreshToken:      tokens.RefreshToken,
			ProviderAccessTokenExpiry: tokens.Expiry,
			Client:                    input.Client,
			ExpiresAt:                 time.Now().Add(srv.sessionDuration),
		}
		if err := repoFactory.SessionRepo().Create(ctx, session); err != nil {
			return errors.Wrap(err, "failed to create session")
		}

		output = &usecase.CompleteAuthorizationOutput{
			Session:     session,
			Secret:      secret,
			RedirectURL: state.SuccessURL,
		}

		return appendAuditEntry(ctx, repoFactory, account.ID, entity.EventSessionCreate, input.Client)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to complete OAuth2 authorization", slog.String("provider", input.Provider), slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// resolveAccount finds the account for a provider identity, upgrading the
// caller's anonymous account or creating a fresh one when the identity is new.
func (srv *oauthService) resolveAccount(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.CompleteAuthorizationInput, oauthUser *service.OAuthUser, tokens *service.OAuthTokens) (*entity.Account, error) {
	accountRepo := repoFactory.AccountRepo()
	bindingRepo := repoFactory.BindingRepo()

	binding, err := bindingRepo.FindByProviderUser(ctx, input.Provider, oauthUser.ID)
	if err == nil {
		// Known identity: refresh the stored tokens and return its account.
		binding.AccessToken = tokens.AccessToken
		binding.RefreshToken = tokens.RefreshToken
		binding.TokenExpiry = tokens.Expiry
		if err := bindingRepo.Update(ctx, binding); err != nil {
			return nil, errors.Wrap(err, "failed to update binding tokens")
		}

		account, err := accountRepo.FindByID(ctx, binding.AccountID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find bound account")
		}

		return account, nil
	}
	if !errors.Is(err, repository.ErrBindingNotFound) {
		return nil, errors.Wrap(err, "failed to find binding")
	}

	account, err := srv.accountForNewIdentity(ctx, repoFactory, input, oauthUser)
	if err != nil {
		return nil, err
	}

	binding = &entity.ProviderBinding{
		AccountID:      account.ID,
		Provider:       input.Provider,
		ProviderUserID: oauthUser.ID,
		AccessToken:    tokens.AccessToken,
		RefreshToken:   tokens.RefreshToken,
		TokenExpiry:    tokens.Expiry,
	}
	if err := bindingRepo.Create(ctx, binding); err != nil {
		return nil, err
	}

	return account, nil
}

// accountForNewIdentity upgrades the caller's anonymous account in place when
// one rides on the request, otherwise creates a new account from the provider
// profile. Provider-reported email addresses count as verified.
func (srv *oauthService) accountForNewIdentity(ctx context.Context, repoFactory repository.RepositoryFactory, input *usecase.CompleteAuthorizationInput, oauthUser *service.OAuthUser) (*entity.Account, error) {
	accountRepo := repoFactory.AccountRepo()
	email := strings.ToLower(oauthUser.Email)

	if input.CurrentAccountID != uuid.Nil {
		account, err := accountRepo.FindByID(ctx, input.CurrentAccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return nil, errors.Wrap(err, "failed to find account")
		}

		if account.IsAnonymous() {
			if account.Email == "" && email != "" {
				account.Email = email
				account.EmailVerification = true
			}
			if account.Name == "" {
				account.Name = oauthUser.Name
			}
			if err := accountRepo.Update(ctx, account); err != nil {
				if errors.Is(err, repository.ErrDuplicateEmail) {
					return nil, errors.Wrap(domainerrors.ErrAccountAlreadyExists, "email already registered")
				}

				return nil, errors.Wrap(err, "failed to upgrade account")
			}
			if err := appendAuditEntry(ctx, repoFactory, account.ID, entity.EventAccountUpdateEmail, input.Client); err != nil {
				return nil, err
			}
		}

		return account, nil
	}

	account := &entity.Account{
		Email:             email,
		Name:              oauthUser.Name,
		Status:            entity.AccountStatusEnabled,
		EmailVerification: email != "",
	}
	if err := accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errors.Wrap(domainerrors.ErrAccountAlreadyExists, "email already registered")
		}

		return nil, errors.Wrap(err, "failed to create account")
	}
	if err := appendAuditEntry(ctx, repoFactory, account.ID, entity.EventAccountCreate, input.Client); err != nil {
		return nil, err
	}

	return account, nil
}

// RefreshProviderTokens renews the stored provider tokens of an OAuth2 session.
// The conditional write on the stored expiry collapses concurrent refreshes to
// a single provider call; the loser re-reads and returns the winner's tokens.
func (srv *oauthService) RefreshProviderTokens(ctx context.Context, accountID, sessionID uuid.UUID) (*entity.Session, error) {
	srv.log(ctx).Info("Refreshing provider tokens", slog.Any("sessionID", sessionID))

	var session *entity.Session

	// 1. Load and validate the session.
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
		if !found.IsOAuth2() {
			return errors.Wrap(domainerrors.ErrValidationFailed, "session has no provider tokens")
		}
		session = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	providerName := entity.OAuth2ProviderName(session.Provider)

	provider, err := srv.registry.Provider(providerName)
	if err != nil {
		return nil, err
	}

	// 2. One provider call, outside the transaction.
	refreshCtx, cancel := context.WithTimeout(ctx, providerCallTimeout)
	defer cancel()

	tokens, err := provider.Refresh(refreshCtx, session.ProviderRefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrProviderUnavailable, err.Error())
	}
	if tokens.RefreshToken == "" {
		tokens.RefreshToken = session.ProviderRefreshToken
	}

	// 3. Install conditionally; a lost race means another refresh already
	// landed, so the stored row is the answer.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()

		err := sessionRepo.UpdateProviderTokens(ctx, session.ID, session.ProviderAccessTokenExpiry, tokens.AccessToken, tokens.RefreshToken, tokens.Expiry)
		if err != nil && !errors.Is(err, repository.ErrStaleTokenExpiry) {
			return errors.Wrap(err, "failed to update provider tokens")
		}

		session, err = sessionRepo.FindByID(ctx, session.ID)
		if err != nil {
			return errors.Wrap(err, "failed to re-read session")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to refresh provider tokens", slog.Any("sessionID", sessionID), slog.Any("error", err))

		return nil, err
	}

	return session, nil
}

// signState serializes and signs the state as payload.signature, both base64url.
func (srv *oauthService) signState(state *oauthState) (string, error) {
	payload, err := json.Marshal(state)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal state")
	}

	mac := hmac.New(sha256.New, srv.stateSecret)
	mac.Write(payload)

	return base64.RawURLEncoding.EncodeToString(payload) + "." + base64.RawURLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// verifyState checks the signature and expiry and returns the decoded payload.
func (srv *oauthService) verifyState(raw string) (*oauthState, error) {
	payloadPart, sigPart, ok := strings.Cut(raw, ".")
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrOAuthCodeInvalid, "malformed state")
	}

	payload, err := base64.RawURLEncoding.DecodeString(payloadPart)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthCodeInvalid, "malformed state payload")
	}
	sig, err := base64.RawURLEncoding.DecodeString(sigPart)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthCodeInvalid, "malformed state signature")
	}

	mac := hmac.New(sha256.New, srv.stateSecret)
	mac.Write(payload)
	if !hmac.Equal(sig, mac.Sum(nil)) {
		return nil, errors.Wrap(domainerrors.ErrOAuthCodeInvalid, "state signature mismatch")
	}

	var state oauthState
	if err := json.Unmarshal(payload, &state); err != nil {
		return nil, errors.Wrap(domainerrors.ErrOAuthCodeInvalid, "malformed state payload")
	}
	if time.Now().Unix() > state.ExpiresAt {
		return nil, errors.Wrap(domainerrors.ErrOAuthCodeInvalid, "state expired")
	}

	return &state, nil
}
