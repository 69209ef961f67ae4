package impl

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	mockRepo "passport/internal/mocks/repository"
	"passport/internal/usecase"
)

func newTestAuditService(txManager repository.TransactionManager) usecase.AuditUsecase {
	return NewAuditService(AuditServiceParams{
		TxManager: txManager,
		Logger:    newDiscardLogger(),
	})
}

func expectAuditQuery(t *testing.T, txManager *mockRepo.MockTransactionManager, ctx context.Context, accountID uuid.UUID, limit, offset int, entries []*entity.AuditLogEntry, total int64) {
	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockAuditRepo := mockRepo.NewMockAuditLogRepository(t)

			mockFactory.EXPECT().AuditLogRepo().Return(mockAuditRepo)
			mockAuditRepo.EXPECT().Query(ctx, accountID, limit, offset).Return(entries, nil)
			mockAuditRepo.EXPECT().CountByAccountID(ctx, accountID).Return(total, nil)

			return fn(mockFactory)
		})
}

func TestAuditService_Query_ReturnsPage(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := newTestAuditService(txManager)

	ctx := context.Background()
	accountID := uuid.New()
	entries := []*entity.AuditLogEntry{
		{Seq: 2, AccountID: accountID, Event: entity.EventSessionCreate},
		{Seq: 1, AccountID: accountID, Event: entity.EventAccountCreate},
	}

	expectAuditQuery(t, txManager, ctx, accountID, 10, 5, entries, 42)

	page, err := service.Query(ctx, accountID, 10, 5)

	require.NoError(t, err)
	assert.Len(t, page.Entries, 2)
	assert.Equal(t, int64(42), page.Total)
}

func TestAuditService_Query_DefaultsLimit(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := newTestAuditService(txManager)

	ctx := context.Background()
	accountID := uuid.New()

	expectAuditQuery(t, txManager, ctx, accountID, defaultAuditPageSize, 0, nil, 0)

	_, err := service.Query(ctx, accountID, 0, -3)

	require.NoError(t, err)
}

func TestAuditService_Query_CapsLimit(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	service := newTestAuditService(txManager)

	ctx := context.Background()
	accountID := uuid.New()

	expectAuditQuery(t, txManager, ctx, accountID, maxAuditPageSize, 0, nil, 0)

	_, err := service.Query(ctx, accountID, 5000, 0)

	require.NoError(t, err)
}
