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
	"passport/internal/usecase"
)

func newTestTargetService(txManager repository.TransactionManager) usecase.TargetUsecase {
	return NewTargetService(TargetServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})
}

func TestTargetService_CreateTarget_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := newTestTargetService(txManager)

	ctx := context.Background()
	accountID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTargetRepo := mockRepo.NewMockTargetRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().TargetRepo().Return(mockTargetRepo)
			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)

			mockTargetRepo.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Target")).
				Run(func(ctx context.Context, target *entity.Target) {
					target.ID = uuid.New()
				}).
				Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil)

			return fn(mockFactory)
		})

	target, err := service.CreateTarget(ctx, &usecase.CreateTargetInput{
		AccountID:  accountID,
		ProviderID: "mailgun",
		Identifier: "user@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, accountID, target.AccountID)
	assert.Equal(t, "user@example.com", target.Identifier)
	assert.NotEqual(t, uuid.Nil, target.ID)
}

func TestTargetService_CreateTarget_MissingIdentifier(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := newTestTargetService(txManager)

	target, err := service.CreateTarget(context.Background(), &usecase.CreateTargetInput{
		AccountID: uuid.New(),
	})

	assert.Nil(t, target)
	assert.ErrorIs(t, err, domainerrors.ErrMissingRequiredField)
}

func TestTargetService_GetTarget_ForeignOwner(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := newTestTargetService(txManager)

	ctx := context.Background()
	targetID := uuid.New()
	// Belongs to somebody else.
	stored := &entity.Target{ID: targetID, AccountID: uuid.New(), Identifier: "user@example.com"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTargetRepo := mockRepo.NewMockTargetRepository(t)

			mockFactory.EXPECT().TargetRepo().Return(mockTargetRepo)
			mockTargetRepo.EXPECT().FindByID(ctx, targetID).Return(stored, nil)

			return fn(mockFactory)
		})

	target, err := service.GetTarget(ctx, uuid.New(), targetID)

	assert.Nil(t, target)
	// Foreign targets read the same as missing ones.
	assert.ErrorIs(t, err, domainerrors.ErrTargetNotFound)
}

func TestTargetService_UpdateTarget_Success(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := newTestTargetService(txManager)

	ctx := context.Background()
	accountID := uuid.New()
	targetID := uuid.New()
	stored := &entity.Target{ID: targetID, AccountID: accountID, Identifier: "old@example.com"}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTargetRepo := mockRepo.NewMockTargetRepository(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().TargetRepo().Return(mockTargetRepo)
			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)

			mockTargetRepo.EXPECT().FindByID(ctx, targetID).Return(stored, nil)
			mockTargetRepo.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Target")).Return(nil)
			mockAuditRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.AuditLogEntry")).Return(nil)

			return fn(mockFactory)
		})

	target, err := service.UpdateTarget(ctx, &usecase.UpdateTargetInput{
		AccountID:  accountID,
		TargetID:   targetID,
		Identifier: "new@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", target.Identifier)
}

func TestTargetService_DeleteTarget_NotFound(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := newTestTargetService(txManager)

	ctx := context.Background()
	accountID := uuid.New()
	targetID := uuid.New()

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTargetRepo := mockRepo.NewMockTargetRepository(t)

			mockFactory.EXPECT().TargetRepo().Return(mockTargetRepo)
			mockTargetRepo.EXPECT().FindByID(ctx, targetID).Return(nil, repository.ErrTargetNotFound)

			return fn(mockFactory)
		})

	err := service.DeleteTarget(ctx, accountID, targetID, entity.ClientInfo{})

	assert.ErrorIs(t, err, domainerrors.ErrTargetNotFound)
}

func TestTargetService_ListTargets(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := newTestTargetService(txManager)

	ctx := context.Background()
	accountID := uuid.New()
	stored := []*entity.Target{
		{ID: uuid.New(), AccountID: accountID, Identifier: "a@example.com"},
		{ID: uuid.New(), AccountID: accountID, Identifier: "+15551234567"},
	}

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockTargetRepo := mockRepo.NewMockTargetRepository(t)

			mockFactory.EXPECT().TargetRepo().Return(mockTargetRepo)
			mockTargetRepo.EXPECT().ListByAccountID(ctx, accountID).Return(stored, nil)

			return fn(mockFactory)
		})

	targets, err := service.ListTargets(ctx, accountID)

	require.NoError(t, err)
	assert.Len(t, targets, 2)
}
