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

// targetRepository implements the domain's TargetRepository interface using GORM.
type targetRepository struct {
	db *gorm.DB
}

// NewTargetRepository is the constructor for targetRepository.
func NewTargetRepository(db *gorm.DB) repository.TargetRepository {
	return &targetRepository{db: db}
}

// Create persists a new target.
func (repo *targetRepository) Create(ctx context.Context, target *entity.Target) error {
	targetM := fromTargetDomain(target)

	if err := repo.db.WithContext(ctx).Create(targetM).Error; err != nil {
		return errors.Wrap(err, "failed to create target")
	}

	target.ID = targetM.ID
	target.CreatedAt = targetM.CreatedAt
	target.UpdatedAt = targetM.UpdatedAt

	return nil
}

// FindByID retrieves a target record by its unique ID.
func (repo *targetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Target, error) {
	var targetM model.TargetModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&targetM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTargetNotFound
		}

		return nil, errors.Wrap(err, "failed to find target by id")
	}

	return toTargetDomain(&targetM), nil
}

// ListByAccountID returns all targets of an account.
func (repo *targetRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Target, error) {
	var targetMs []model.TargetModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&targetMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list targets by account id")
	}

	targets := make([]*entity.Target, 0, len(targetMs))
	for i := range targetMs {
		targets = append(targets, toTargetDomain(&targetMs[i]))
	}

	return targets, nil
}

// Update modifies an existing target.
func (repo *targetRepository) Update(ctx context.Context, target *entity.Target) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TargetModel{}).
		Where("id = ?", target.ID).
		UpdateColumn("identifier", target.Identifier)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update target")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTargetNotFound
	}

	return nil
}

// Delete removes a target by its ID.
func (repo *targetRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TargetModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete target")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTargetNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toTargetDomain converts a GORM TargetModel to a domain Target entity.
func toTargetDomain(data *model.TargetModel) *entity.Target {
	if data == nil {
		return nil
	}

	return &entity.Target{
		ID:         data.ID,
		AccountID:  data.AccountID,
		ProviderID: data.ProviderID,
		Identifier: data.Identifier,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromTargetDomain converts a domain Target entity to a GORM TargetModel.
func fromTargetDomain(data *entity.Target) *model.TargetModel {
	if data == nil {
		return nil
	}

	return &model.TargetModel{
		ID:         data.ID,
		AccountID:  data.AccountID,
		ProviderID: data.ProviderID,
		Identifier: data.Identifier,
	}
}
