package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	domainservice "passport/internal/domain/service"
	mockRepo "passport/internal/mocks/repository"
	mockService "passport/internal/mocks/service"
	"passport/internal/usecase"
	"passport/internal/util"
)

func newTestOAuthService(t *testing.T, txManager repository.TransactionManager) (usecase.OAuthUsecase, *mockService.MockOAuthProviderRegistry, *mockService.MockOAuthProvider, *mockService.MockSecretGenerator) {
	registry := mockService.NewMockOAuthProviderRegistry(t)
	provider := mockService.NewMockOAuthProvider(t)
	secretGenerator := mockService.NewMockSecretGenerator(t)

	service := NewOAuthService(OAuthServiceParams{
		TxManager:       txManager,
		Registry:        registry,
		SecretGenerator: secretGenerator,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	return service, registry, provider, secretGenerator
}

// signTestState produces a valid state through the service's own BeginAuthorization.
func signTestState(t *testing.T, service usecase.OAuthUsecase, registry *mockService.MockOAuthProviderRegistry, provider *mockService.MockOAuthProvider, providerName string) string {
	t.Helper()

	registry.EXPECT().Provider(providerName).Return(provider, nil).Once()
	provider.EXPECT().
		AuthorizationURL(mock.AnythingOfType("string")).
		RunAndReturn(func(state string) string {
			return "https://provider.example/authorize?state=" + state
		}).
		Once()

	url, err := service.BeginAuthorization(context.Background(), &usecase.BeginAuthorizationInput{
		Provider:   providerName,
		SuccessURL: "https://app.example/success",
		FailureURL: "https://app.example/failure",
	})
	require.NoError(t, err)

	_, state, ok := strings.Cut(url, "state=")
	require.True(t, ok)

	return state
}

func TestOAuthService_BeginAuthorization_SignedState(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, registry, provider, _ := newTestOAuthService(t, txManager)

	state := signTestState(t, service, registry, provider, "github")

	// payload.signature, both base64url.
	parts := strings.Split(state, ".")
	assert.Len(t, parts, 2)
	assert.NotEmpty(t, parts[0])
	assert.NotEmpty(t, parts[1])
}

func TestOAuthService_CompleteAuthorization_NewIdentity(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, registry, provider, secretGenerator := newTestOAuthService(t, txManager)

	ctx := context.Background()
	state := signTestState(t, service, registry, provider, "github")
	tokens := &domainservice.OAuthTokens{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		Expiry:       time.Now().Add(time.Hour),
	}

	registry.EXPECT().Provider("github").Return(provider, nil)
	provider.EXPECT().ExchangeCode(mock.Anything, "auth-code").Return(tokens, nil)
	provider.EXPECT().FetchUser(mock.Anything, "access-token").Return(&domainservice.OAuthUser{
		ID:    "gh-123",
		Email: "User@Example.com",
		Name:  "User",
	}, nil)
	secretGenerator.EXPECT().OpaqueToken().Return("session-secret", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockBindingRepo := mockRepo.NewMockBindingRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().BindingRepo().Return(mockBindingRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)

			mockBindingRepo.EXPECT().FindByProviderUser(ctx, "github", "gh-123").Return(nil, repository.ErrBindingNotFound)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					assert.Equal(t, "user@example.com", account.Email)
					assert.True(t, account.EmailVerification)
					account.ID = uuid.New()
				}).
				Return(nil)
			mockBindingRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ProviderBinding")).
				Run(func(ctx context.Context, binding *entity.ProviderBinding) {
					assert.Equal(t, "gh-123", binding.ProviderUserID)
					assert.Equal(t, "access-token", binding.AccessToken)
				}).
				Return(nil)
			mockSessionRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Session")).
				Run(func(ctx context.Context, session *entity.Session) {
					assert.Equal(t, entity.OAuth2SessionProvider("github"), session.Provider)
					assert.Equal(t, util.SHA256Hex("session-secret"), session.SecretHash)
					assert.Equal(t, "access-token", session.ProviderAccessToken)
				}).
				Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil).Times(2)

			return fn(mockFactory)
		})

	output, err := service.CompleteAuthorization(ctx, &usecase.CompleteAuthorizationInput{
		Provider: "github",
		Code:     "auth-code",
		State:    state,
	})

	require.NoError(t, err)
	assert.Equal(t, "session-secret", output.Secret)
	assert.Equal(t, "https://app.example/success", output.RedirectURL)
}

func TestOAuthService_CompleteAuthorization_AnonymousUpgrade(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, registry, provider, secretGenerator := newTestOAuthService(t, txManager)

	ctx := context.Background()
	state := signTestState(t, service, registry, provider, "google")
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Status: entity.AccountStatusEnabled}
	tokens := &domainservice.OAuthTokens{AccessToken: "access-token", Expiry: time.Now().Add(time.Hour)}

	registry.EXPECT().Provider("google").Return(provider, nil)
	provider.EXPECT().ExchangeCode(mock.Anything, "auth-code").Return(tokens, nil)
	provider.EXPECT().FetchUser(mock.Anything, "access-token").Return(&domainservice.OAuthUser{
		ID:    "g-456",
		Email: "user@example.com",
		Name:  "User",
	}, nil)
	secretGenerator.EXPECT().OpaqueToken().Return("session-secret", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockBindingRepo := mockRepo.NewMockBindingRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().BindingRepo().Return(mockBindingRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)

			mockBindingRepo.EXPECT().FindByProviderUser(ctx, "google", "g-456").Return(nil, repository.ErrBindingNotFound)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			// The anonymous account is upgraded in place, never replaced.
			mockAccountRepo.EXPECT().
				Update(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, updated *entity.Account) {
					assert.Equal(t, accountID, updated.ID)
					assert.Equal(t, "user@example.com", updated.Email)
					assert.True(t, updated.EmailVerification)
					assert.Equal(t, "User", updated.Name)
				}).
				Return(nil)
			mockBindingRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.ProviderBinding")).
				Run(func(ctx context.Context, binding *entity.ProviderBinding) {
					assert.Equal(t, accountID, binding.AccountID)
				}).
				Return(nil)
			mockSessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil).Times(2)

			return fn(mockFactory)
		})

	output, err := service.CompleteAuthorization(ctx, &usecase.CompleteAuthorizationInput{
		Provider:         "google",
		Code:             "auth-code",
		State:            state,
		CurrentAccountID: accountID,
	})

	require.NoError(t, err)
	assert.Equal(t, accountID, output.Session.AccountID)
}

func TestOAuthService_CompleteAuthorization_StateProviderMismatch(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, registry, provider, _ := newTestOAuthService(t, txManager)

	ctx := context.Background()
	state := signTestState(t, service, registry, provider, "github")

	registry.EXPECT().Provider("google").Return(provider, nil)

	output, err := service.CompleteAuthorization(ctx, &usecase.CompleteAuthorizationInput{
		Provider: "google",
		Code:     "auth-code",
		State:    state,
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthCodeInvalid)
}

func TestOAuthService_CompleteAuthorization_TamperedState(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, registry, provider, _ := newTestOAuthService(t, txManager)

	ctx := context.Background()
	state := signTestState(t, service, registry, provider, "github")

	registry.EXPECT().Provider("github").Return(provider, nil)

	output, err := service.CompleteAuthorization(ctx, &usecase.CompleteAuthorizationInput{
		Provider: "github",
		Code:     "auth-code",
		State:    state + "x",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthCodeInvalid)
}

func TestOAuthService_RefreshProviderTokens_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, registry, provider, _ := newTestOAuthService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	sessionID := uuid.New()
	oldExpiry := time.Now().Add(-time.Minute)
	session := &entity.Session{
		ID:                        sessionID,
		AccountID:                 accountID,
		Provider:                  entity.OAuth2SessionProvider("github"),
		ProviderAccessToken:       "old-access",
		ProviderRefreshToken:      "old-refresh",
		ProviderAccessTokenExpiry: oldExpiry,
		ExpiresAt:                 time.Now().Add(time.Hour),
	}
	refreshed := &entity.Session{
		ID:                        sessionID,
		AccountID:                 accountID,
		Provider:                  entity.OAuth2SessionProvider("github"),
		ProviderAccessToken:       "new-access",
		ProviderRefreshToken:      "new-refresh",
		ProviderAccessTokenExpiry: time.Now().Add(time.Hour),
		ExpiresAt:                 session.ExpiresAt,
	}

	registry.EXPECT().Provider("github").Return(provider, nil)
	provider.EXPECT().Refresh(mock.Anything, "old-refresh").Return(&domainservice.OAuthTokens{
		AccessToken:  "new-access",
		RefreshToken: "new-refresh",
		Expiry:       refreshed.ProviderAccessTokenExpiry,
	}, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)

			return fn(mockFactory)
		}).
		Once()
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().
				UpdateProviderTokens(ctx, sessionID, oldExpiry, "new-access", "new-refresh", refreshed.ProviderAccessTokenExpiry).
				Return(nil)
			mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(refreshed, nil)

			return fn(mockFactory)
		}).
		Once()

	result, err := service.RefreshProviderTokens(ctx, accountID, sessionID)

	require.NoError(t, err)
	assert.Equal(t, "new-access", result.ProviderAccessToken)
	assert.Equal(t, "new-refresh", result.ProviderRefreshToken)
}

func TestOAuthService_RefreshProviderTokens_LostRace(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, registry, provider, _ := newTestOAuthService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	sessionID := uuid.New()
	session := &entity.Session{
		ID:                        sessionID,
		AccountID:                 accountID,
		Provider:                  entity.OAuth2SessionProvider("github"),
		ProviderAccessToken:       "old-access",
		ProviderRefreshToken:      "old-refresh",
		ProviderAccessTokenExpiry: time.Now().Add(-time.Minute),
		ExpiresAt:                 time.Now().Add(time.Hour),
	}
	winner := &entity.Session{
		ID:                        sessionID,
		AccountID:                 accountID,
		Provider:                  entity.OAuth2SessionProvider("github"),
		ProviderAccessToken:       "winner-access",
		ProviderRefreshToken:      "winner-refresh",
		ProviderAccessTokenExpiry: time.Now().Add(time.Hour),
		ExpiresAt:                 session.ExpiresAt,
	}

	registry.EXPECT().Provider("github").Return(provider, nil)
	provider.EXPECT().Refresh(mock.Anything, "old-refresh").Return(&domainservice.OAuthTokens{
		AccessToken: "loser-access",
		Expiry:      time.Now().Add(time.Hour),
	}, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)

			return fn(mockFactory)
		}).
		Once()
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			// Another refresh landed first; the conditional write loses and the
			// stored row wins.
			mockSessionRepo.EXPECT().
				UpdateProviderTokens(ctx, sessionID, session.ProviderAccessTokenExpiry, "loser-access", "old-refresh", mock.AnythingOfType("time.Time")).
				Return(repository.ErrStaleTokenExpiry)
			mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(winner, nil)

			return fn(mockFactory)
		}).
		Once()

	result, err := service.RefreshProviderTokens(ctx, accountID, sessionID)

	require.NoError(t, err)
	assert.Equal(t, "winner-access", result.ProviderAccessToken)
}

func TestOAuthService_RefreshProviderTokens_NotOAuth2(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, _, _ := newTestOAuthService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	sessionID := uuid.New()
	session := &entity.Session{
		ID:        sessionID,
		AccountID: accountID,
		Provider:  entity.SessionProviderEmail,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)

			return fn(mockFactory)
		})

	result, err := service.RefreshProviderTokens(ctx, accountID, sessionID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestOAuthService_RefreshProviderTokens_OwnerMismatch(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, _, _ := newTestOAuthService(t, txManager)

	ctx := context.Background()
	sessionID := uuid.New()
	session := &entity.Session{
		ID:        sessionID,
		AccountID: uuid.New(),
		Provider:  entity.OAuth2SessionProvider("github"),
		ExpiresAt: time.Now().Add(time.Hour),
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)

			return fn(mockFactory)
		})

	result, err := service.RefreshProviderTokens(ctx, uuid.New(), sessionID)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}
