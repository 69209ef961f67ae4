package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"
)

// auditLogRepository implements the domain's AuditLogRepository interface using GORM.
// The table is append-only; no update or delete path exists here.
type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository is the constructor for auditLogRepository.
func NewAuditLogRepository(db *gorm.DB) repository.AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Append persists a new entry and assigns its sequence number.
func (repo *auditLogRepository) Append(ctx context.Context, entry *entity.AuditLogEntry) error {
	entryM := fromAuditLogDomain(entry)

	if err := repo.db.WithContext(ctx).Create(entryM).Error; err != nil {
		return errors.Wrap(err, "failed to append audit log entry")
	}

	entry.Seq = entryM.Seq
	entry.Time = entryM.CreatedAt

	return nil
}

// Query returns entries of an account, most recent first. Ordering by the
// insert sequence keeps limit/offset pages consistent slices of one total
// ordering even when entries share a timestamp.
func (repo *auditLogRepository) Query(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.AuditLogEntry, error) {
	var entryMs []model.AuditLogModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("seq DESC").
		Limit(limit).
		Offset(offset).
		Find(&entryMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to query audit log")
	}

	entries := make([]*entity.AuditLogEntry, 0, len(entryMs))
	for i := range entryMs {
		entries = append(entries, toAuditLogDomain(&entryMs[i]))
	}

	return entries, nil
}

// CountByAccountID returns the total number of entries of an account.
func (repo *auditLogRepository) CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AuditLogModel{}).
		Where("account_id = ?", accountID).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "failed to count audit log entries")
	}

	return count, nil
}

// --- Mapper Functions ---

// toAuditLogDomain converts a GORM AuditLogModel to a domain AuditLogEntry.
func toAuditLogDomain(data *model.AuditLogModel) *entity.AuditLogEntry {
	if data == nil {
		return nil
	}

	return &entity.AuditLogEntry{
		Seq:       data.Seq,
		AccountID: data.AccountID,
		Event:     data.Event,
		Client:    toClientInfoDomain(data.Client),
		Time:      data.CreatedAt,
	}
}

// fromAuditLogDomain converts a domain AuditLogEntry to a GORM AuditLogModel.
func fromAuditLogDomain(data *entity.AuditLogEntry) *model.AuditLogModel {
	if data == nil {
		return nil
	}

	return &model.AuditLogModel{
		AccountID: data.AccountID,
		Event:     data.Event,
		Client:    fromClientInfoDomain(data.Client),
	}
}
