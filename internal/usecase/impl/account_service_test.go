package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	mockService "passport/internal/mocks/service"
	"passport/internal/usecase"
)

func newTestAccountService(t *testing.T, txManager repository.TransactionManager) (usecase.AccountUsecase, *mockService.MockPasswordHasher) {
	hasher := mockService.NewMockPasswordHasher(t)

	service := NewAccountService(AccountServiceParams{
		TxManager: txManager,
		Hasher:    hasher,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	})

	return service, hasher
}

func TestAccountService_CreateAccount_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, hasher := newTestAccountService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()

	hasher.EXPECT().Hash("password123").Return("hashed", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil)

			return fn(mockFactory)
		})

	account, err := service.CreateAccount(ctx, &usecase.CreateAccountInput{
		ID:       accountID,
		Email:    "New@Example.com",
		Password: "password123",
		Name:     "New User",
	})

	require.NoError(t, err)
	assert.Equal(t, accountID, account.ID)
	assert.Equal(t, "new@example.com", account.Email)
	assert.Equal(t, "hashed", account.PasswordHash)
	assert.Equal(t, entity.AccountStatusEnabled, account.Status)
}

func TestAccountService_CreateAccount_DuplicateEmail(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, hasher := newTestAccountService(t, txManager)

	ctx := context.Background()

	hasher.EXPECT().Hash("password123").Return("hashed", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Account")).Return(repository.ErrDuplicateEmail)

			return fn(mockFactory)
		})

	account, err := service.CreateAccount(ctx, &usecase.CreateAccountInput{
		Email:    "taken@example.com",
		Password: "password123",
	})

	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_UpdateEmail_AnonymousUpgrade(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, hasher := newTestAccountService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	anonymous := &entity.Account{ID: accountID, Status: entity.AccountStatusEnabled}

	// No stored credential yet, so the provided password becomes the first one.
	hasher.EXPECT().Hash("first-password").Return("hashed", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(anonymous, nil)
			mockAccountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil)

			return fn(mockFactory)
		})

	account, err := service.UpdateEmail(ctx, &usecase.UpdateEmailInput{
		AccountID: accountID,
		Email:     "Upgraded@Example.com",
		Password:  "first-password",
	})

	require.NoError(t, err)
	// The upgrade happens in place: same ID, new identity.
	assert.Equal(t, accountID, account.ID)
	assert.Equal(t, "upgraded@example.com", account.Email)
	assert.Equal(t, "hashed", account.PasswordHash)
	assert.False(t, account.EmailVerification)
}

func TestAccountService_UpdateEmail_WrongPassword(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, hasher := newTestAccountService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "old@example.com", PasswordHash: "hashed", Status: entity.AccountStatusEnabled}

	hasher.EXPECT().Check("wrong", "hashed").Return(false)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)

			return fn(mockFactory)
		})

	updated, err := service.UpdateEmail(ctx, &usecase.UpdateEmailInput{
		AccountID: accountID,
		Email:     "new@example.com",
		Password:  "wrong",
	})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_UpdateEmail_TakenEmail(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, hasher := newTestAccountService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "old@example.com", PasswordHash: "hashed", Status: entity.AccountStatusEnabled}

	hasher.EXPECT().Check("password123", "hashed").Return(true)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockAccountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(repository.ErrDuplicateEmail)

			return fn(mockFactory)
		})

	updated, err := service.UpdateEmail(ctx, &usecase.UpdateEmailInput{
		AccountID: accountID,
		Email:     "taken@example.com",
		Password:  "password123",
	})

	assert.Nil(t, updated)
	assert.ErrorIs(t, err, domainerrors.ErrAccountAlreadyExists)
}

func TestAccountService_GetAccount_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _ := newTestAccountService(t, txManager)

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

	account, err := service.GetAccount(ctx, accountID)

	assert.Nil(t, account)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestAccountService_BlockSelf_DeletesSessions(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _ := newTestAccountService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "user@example.com", Status: entity.AccountStatusEnabled}

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

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockAccountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
			mockSessionRepo.EXPECT().DeleteByAccountID(ctx, accountID).Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil)

			return fn(mockFactory)
		})

	blocked, err := service.BlockSelf(ctx, &usecase.SetStatusInput{
		AccountID: accountID,
		Status:    entity.AccountStatusBlocked,
	})

	require.NoError(t, err)
	assert.Equal(t, entity.AccountStatusBlocked, blocked.Status)
}

func TestAccountService_SetStatus_UnblockKeepsSessions(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service, _ := newTestAccountService(t, txManager)

	ctx := context.Background()
	accountID := uuid.New()
	account := &entity.Account{ID: accountID, Email: "user@example.com", Status: entity.AccountStatusBlocked}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAccountRepo := mockRepo.NewMockAccountRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AccountRepo().Return(mockAccountRepo)
			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)

			mockAccountRepo.EXPECT().FindByID(ctx, accountID).Return(account, nil)
			mockAccountRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Account")).Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil)

			return fn(mockFactory)
		})

	unblocked, err := service.SetStatus(ctx, &usecase.SetStatusInput{
		AccountID: accountID,
		Status:    entity.AccountStatusEnabled,
	})

	require.NoError(t, err)
	// Unblocking never resurrects sessions, so no session deletion either.
	assert.Equal(t, entity.AccountStatusEnabled, unblocked.Status)
}
