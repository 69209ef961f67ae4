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

func newTestChallengeService(t *testing.T, txManager repository.TransactionManager) (usecase.ChallengeUsecase, *mockService.MockMessageDispatcher, *mockService.MockSecretGenerator) {
	dispatcher := mockService.NewMockMessageDispatcher(t)
	secretGenerator := mockService.NewMockSecretGenerator(t)

	service := NewChallengeService(ChallengeServiceParams{
		TxManager:       txManager,
		Dispatcher:      dispatcher,
		SecretGenerator: secretGenerator,
		Config:          newTestConfig(),
		Logger:          newDiscardLogger(),
	})

	return service, dispatcher, secretGenerator
}

func TestChallengeService_CreatePhoneSession_NewAccount(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, dispatcher, secretGenerator := newTestChallengeService(t, txManager)

	ctx := context.Background()
	phone := "+15551234567"

	secretGenerator.EXPECT().NumericCode(6).Return("123456", nil)
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.AnythingOfType("*service.Message")).
		RunAndReturn(func(ctx context.Context, msg *domainservice.Message) error {
			assert.Equal(t, entity.ChallengeChannelPhone, msg.Channel)
			assert.Equal(t, phone, msg.To)
			assert.Equal(t, "123456", msg.Body)
			return nil
		})

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockChallengeRepo := mockRepo.NewMockChallengeRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ChallengeRepo().Return(mockChallengeRepo)
			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().FindByPhone(ctx, phone).Return(nil, repository.ErrAccountNotFound)
			mockAccountRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Account")).
				Run(func(ctx context.Context, account *entity.Account) {
					account.ID = uuid.New()
				}).
				Return(nil)
			mockChallengeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Challenge")).
				Run(func(ctx context.Context, challenge *entity.Challenge) {
					// Only the hash of the code is stored.
					assert.Equal(t, util.SHA256Hex("123456"), challenge.SecretHash)
				}).
				Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil).Times(2)

			return fn(mockFactory)
		})

	output, err := service.CreatePhoneSession(ctx, &usecase.CreatePhoneSessionInput{Phone: phone})

	require.NoError(t, err)
	// The code never rides back to the caller.
	assert.Empty(t, output.Secret)
	assert.NotEqual(t, uuid.Nil, output.AccountID)
}

func TestChallengeService_CreatePhoneSession_DeliveryFailure(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, dispatcher, secretGenerator := newTestChallengeService(t, txManager)

	ctx := context.Background()
	phone := "+15551234567"
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Phone: phone, Status: entity.AccountStatusEnabled}
	challengeID := uuid.New()

	secretGenerator.EXPECT().NumericCode(6).Return("123456", nil)
	// One retry, then the failure surfaces as service-unavailable.
	dispatcher.EXPECT().
		Dispatch(mock.Anything, mock.AnythingOfType("*service.Message")).
		Return(assert.AnError).
		Times(2)

	// First transaction stores the challenge and commits before any
	// provider call happens.
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockChallengeRepo := mockRepo.NewMockChallengeRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ChallengeRepo().Return(mockChallengeRepo)
			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().FindByPhone(ctx, phone).Return(account, nil)
			mockChallengeRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Challenge")).
				Run(func(ctx context.Context, challenge *entity.Challenge) {
					challenge.ID = challengeID
				}).
				Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil)

			return fn(mockFactory)
		}).
		Once()

	// Second transaction withdraws the committed challenge so no confirmable
	// challenge outlives the failed send.
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockChallengeRepo := mockRepo.NewMockChallengeRepository(t)

			mockFactory.EXPECT().ChallengeRepo().Return(mockChallengeRepo)
			mockChallengeRepo.EXPECT().Delete(ctx, challengeID).Return(nil)

			return fn(mockFactory)
		}).
		Once()

	output, err := service.CreatePhoneSession(ctx, &usecase.CreatePhoneSessionInput{Phone: phone})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrDeliveryFailed)
}

func TestChallengeService_ConfirmPhoneSession_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, secretGenerator := newTestChallengeService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Phone: "+15551234567", Status: entity.AccountStatusEnabled}
	challenge := &entity.Challenge{
		ID:         uuid.New(),
		AccountID:  accountID,
		Channel:    entity.ChallengeChannelPhone,
		SecretHash: util.SHA256Hex("123456"),
		ExpiresAt:  time.Now().Add(10 * time.Minute),
	}

	secretGenerator.EXPECT().OpaqueToken().Return("session-secret", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockChallengeRepo := mockRepo.NewMockChallengeRepository(t)
			mockSessionRepo := mockRepo.NewMockSessionRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ChallengeRepo().Return(mockChallengeRepo)
			mockFactory.EXPECT().SessionRepo().Return(mockSessionRepo)
			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockChallengeRepo.EXPECT().FindLatestByAccount(ctx, accountID, entity.ChallengeChannelPhone).Return(challenge, nil)
			mockChallengeRepo.EXPECT().Consume(ctx, challenge.ID).Return(nil)
			mockAccountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
			mockSessionRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Session")).Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil).Times(2)

			return fn(mockFactory)
		})

	output, err := service.ConfirmPhoneSession(ctx, &usecase.ConfirmPhoneSessionInput{
		AccountID: accountID,
		Secret:    "123456",
	})

	require.NoError(t, err)
	assert.Equal(t, entity.SessionProviderPhone, output.Session.Provider)
	assert.Equal(t, "session-secret", output.Secret)
	// Code receipt is proof of phone ownership.
	assert.True(t, account.PhoneVerification)
}

func TestChallengeService_ConfirmPhoneSession_WrongSecret(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, _ := newTestChallengeService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Phone: "+15551234567", Status: entity.AccountStatusEnabled}
	challenge := &entity.Challenge{
		ID:         uuid.New(),
		AccountID:  accountID,
		Channel:    entity.ChallengeChannelPhone,
		SecretHash: util.SHA256Hex("123456"),
		ExpiresAt:  time.Now().Add(10 * time.Minute),
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockChallengeRepo := mockRepo.NewMockChallengeRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ChallengeRepo().Return(mockChallengeRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockChallengeRepo.EXPECT().FindLatestByAccount(ctx, accountID, entity.ChallengeChannelPhone).Return(challenge, nil)

			return fn(mockFactory)
		})

	output, err := service.ConfirmPhoneSession(ctx, &usecase.ConfirmPhoneSessionInput{
		AccountID: accountID,
		Secret:    "654321",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrChallengeInvalid)
}

func TestChallengeService_ConfirmPhoneSession_AlreadyConsumed(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, _ := newTestChallengeService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Phone: "+15551234567", Status: entity.AccountStatusEnabled}
	challenge := &entity.Challenge{
		ID:         uuid.New(),
		AccountID:  accountID,
		Channel:    entity.ChallengeChannelPhone,
		SecretHash: util.SHA256Hex("123456"),
		ExpiresAt:  time.Now().Add(10 * time.Minute),
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockChallengeRepo := mockRepo.NewMockChallengeRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ChallengeRepo().Return(mockChallengeRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockChallengeRepo.EXPECT().FindLatestByAccount(ctx, accountID, entity.ChallengeChannelPhone).Return(challenge, nil)
			// A concurrent confirmation won the conditional consume.
			mockChallengeRepo.EXPECT().Consume(ctx, challenge.ID).Return(repository.ErrChallengeConsumed)

			return fn(mockFactory)
		})

	output, err := service.ConfirmPhoneSession(ctx, &usecase.ConfirmPhoneSessionInput{
		AccountID: accountID,
		Secret:    "123456",
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, domainerrors.ErrChallengeInvalid)
}

func TestChallengeService_ConfirmPhoneSession_UnknownAccount(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, _ := newTestChallengeService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

			return fn(mockFactory)
		})

	output, err := service.ConfirmPhoneSession(ctx, &usecase.ConfirmPhoneSessionInput{
		AccountID: accountID,
		Secret:    "123456",
	})

	assert.Nil(t, output)
	// An unknown account is not an authentication failure.
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestChallengeService_ConfirmEmailVerification_MarksVerified(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _, _ := newTestChallengeService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "user@example.com", Status: entity.AccountStatusEnabled}
	challenge := &entity.Challenge{
		ID:         uuid.New(),
		AccountID:  accountID,
		Channel:    entity.ChallengeChannelEmail,
		SecretHash: util.SHA256Hex("123456"),
		ExpiresAt:  time.Now().Add(10 * time.Minute),
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockChallengeRepo := mockRepo.NewMockChallengeRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().ChallengeRepo().Return(mockChallengeRepo)
			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockChallengeRepo.EXPECT().FindLatestByAccount(ctx, accountID, entity.ChallengeChannelEmail).Return(challenge, nil)
			mockChallengeRepo.EXPECT().Consume(ctx, challenge.ID).Return(nil)
			mockAccountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil)

			return fn(mockFactory)
		})

	err := service.ConfirmEmailVerification(ctx, &usecase.ConfirmVerificationInput{
		AccountID: accountID,
		Secret:    "123456",
	})

	require.NoError(t, err)
	assert.True(t, account.EmailVerification)
}
