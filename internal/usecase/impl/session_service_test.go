package impl

import (
	"context"
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

func newTestSessionService(t *testing.T, txManager repository.TransactionManager) (usecase.SessionUsecase, *mockService.MockPasswordHasher, *mockService.MockTokenService, *mockService.MockSecretGenerator) {
	hasher := mockService.NewMockPasswordHasher(t)
	tokenService := mockService.NewMockTokenService(t)
	secretGenerator := mockService.NewMockSecretGenerator(t)

	service := NewSessionService(SessionServiceParams{
		TxManager:       txManager,
		Hasher:          hasher,
		TokenService:    tokenService,
		SecretGenerator: secretGenerator,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	return service, hasher, tokenService, secretGenerator
}

func TestSessionService_CreateEmailSession_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, hasher, _, secretGenerator := newTestSessionService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "user@example.com", PasswordHash: "hashed", Status: entity.AccountStatusEnabled}

	hasher.EXPECT().Check("password123", "hashed").Return(true)
	secretGenerator.EXPECT().OpaqueToken().Return("opaque-secret", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(account, nil)
			mockSessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil)

			return fn(mockFactory)
		})

	output, err := service.CreateEmailSession(ctx, &usecase.CreateEmailSessionInput{
		Email:    "User@Example.com",
		Password: "password123",
	})

	require.NoError(t, err)
	assert.Equal(t, "opaque-secret", output.Secret)
	assert.Equal(t, accountID, output.Session.AccountID)
	assert.Equal(t, entity.SessionProviderEmail, output.Session.Provider)
	assert.Equal(t, util.SHA256Hex("opaque-secret"), output.Session.SecretHash)
}

func TestSessionService_CreateEmailSession_WrongPassword(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, hasher, _, _ := newTestSessionService(t, txManager)

	ctx := context.Background()
	account := &entity.Account{ID: uuid.New(), Email: "user@example.com", PasswordHash: "hashed", Status: entity.AccountStatusEnabled}

	hasher.EXPECT().Check("wrong", "hashed").Return(false)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, "user@example.com").Return(account, nil)

			return fn(mockFactory)
		})

	output, err := service.CreateEmailSession(ctx, &usecase.CreateEmailSessionInput{
		Email:    "user@example.com",
		Password: "wrong",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_CreateEmailSession_UnknownEmail(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, _, _ := newTestSessionService(t, txManager)

	ctx := context.Background()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	output, err := service.CreateEmailSession(ctx, &usecase.CreateEmailSessionInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	assert.Nil(t, output)
	// Unknown email must be indistinguishable from a wrong password.
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_CreateAnonymousSession_AlreadyAuthenticated(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, _, _ := newTestSessionService(t, txManager)

	output, err := service.CreateAnonymousSession(context.Background(), &usecase.CreateAnonymousSessionInput{
		HasActiveSession: true,
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrAnonymousSessionExists)
}

func TestSessionService_CreateAnonymousSession_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, _, secretGenerator := newTestSessionService(t, txManager)

	ctx := context.Background()

	secretGenerator.EXPECT().OpaqueToken().Return("anon-secret", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
				}).
				Return(nil)
			mockSessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil).Times(2)

			return fn(mockFactory)
		})

	output, err := service.CreateAnonymousSession(ctx, &usecase.CreateAnonymousSessionInput{})

	require.NoError(t, err)
	assert.Equal(t, entity.SessionProviderAnonymous, output.Session.Provider)
	assert.Equal(t, "anon-secret", output.Secret)
}

func TestSessionService_DeleteSession_OwnerMismatch(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, _, _ := newTestSessionService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	sessionID := uuid.New()
	foreign := &entity.Session{ID: sessionID, AccountID: uuid.New()}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(foreign, nil)

			return fn(mockFactory)
		})

	err := service.DeleteSession(ctx, accountID, sessionID, entity.ClientInfo{})

	// A foreign session must look exactly like a missing one.
	assert.ErrorIs(t, err, domainerrors.ErrSessionNotFound)
}

func TestSessionService_AuthenticateBySecret_ExpiredSessionDeleted(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, _, _ := newTestSessionService(t, txManager)

	ctx := context.Background()
	secret := "expired-secret"
	session := &entity.Session{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindBySecretHash(ctx, util.SHA256Hex(secret)).Return(session, nil)
			mockSessionRepo.EXPECT().Delete(ctx, session.ID).Return(nil)

			return fn(mockFactory)
		})

	principal, err := service.AuthenticateBySecret(ctx, secret)

	assert.Nil(t, principal)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestSessionService_AuthenticateByJWT_SessionGone(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, tokenService, _ := newTestSessionService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	sessionID := uuid.New()

	tokenService.EXPECT().
		ValidateSessionJWT("token").
		Return(&domainservice.Claims{AccountID: accountID, SessionID: sessionID}, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(nil, repository.ErrSessionNotFound)

			return fn(mockFactory)
		})

	principal, err := service.AuthenticateByJWT(ctx, "token")

	assert.Nil(t, principal)
	// The claims alone never authenticate once the session row is gone.
	assert.ErrorIs(t, err, domainerrors.ErrJWTInvalid)
}

func TestSessionService_AuthenticateByJWT_AccountMismatch(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, tokenService, _ := newTestSessionService(t, txManager)

	ctx := context.Background()
	sessionID := uuid.New()
	session := &entity.Session{ID: sessionID, AccountID: uuid.New(), ExpiresAt: time.Now().Add(time.Hour)}

	tokenService.EXPECT().
		ValidateSessionJWT("token").
		Return(&domainservice.Claims{AccountID: uuid.New(), SessionID: sessionID}, nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)

			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockSessionRepo.EXPECT().FindByID(ctx, sessionID).Return(session, nil)

			return fn(mockFactory)
		})

	principal, err := service.AuthenticateByJWT(ctx, "token")

	assert.Nil(t, principal)
	assert.ErrorIs(t, err, domainerrors.ErrJWTInvalid)
}
