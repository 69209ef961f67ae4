package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"passport/internal/domain/entity"
	domainerrors "passport/internal/domain/errors"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"
)

// bindingRepository implements the domain's BindingRepository interface using GORM.
type bindingRepository struct {
	db *gorm.DB
}

// NewBindingRepository is the constructor for bindingRepository.
func NewBindingRepository(db *gorm.DB) repository.BindingRepository {
	return &bindingRepository{db: db}
}

// Create persists a new provider binding. The unique indexes reject both a
// provider identity already linked elsewhere and a second identity for the same
// (account, provider) pair.
func (repo *bindingRepository) Create(ctx context.Context, binding *entity.ProviderBinding) error {
	bindingM := fromBindingDomain(binding)

	if err := repo.db.WithContext(ctx).Create(bindingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrBindingConflict.WrapMessage("provider identity already linked")
		}

		return errors.Wrap(err, "failed to create provider binding")
	}

	binding.ID = bindingM.ID
	binding.CreatedAt = bindingM.CreatedAt
	binding.UpdatedAt = bindingM.UpdatedAt

	return nil
}

// FindByProviderUser retrieves a binding by provider name and provider-side user ID.
func (repo *bindingRepository) FindByProviderUser(ctx context.Context, provider, providerUserID string) (*entity.ProviderBinding, error) {
	var bindingM model.BindingModel
	err := repo.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&bindingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBindingNotFound
		}

		return nil, errors.Wrap(err, "failed to find binding by provider user")
	}

	return toBindingDomain(&bindingM), nil
}

// FindByAccountAndProvider retrieves the binding of an account for one provider.
func (repo *bindingRepository) FindByAccountAndProvider(ctx context.Context, accountID uuid.UUID, provider string) (*entity.ProviderBinding, error) {
	var bindingM model.BindingModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND provider = ?", accountID, provider).
		First(&bindingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBindingNotFound
		}

		return nil, errors.Wrap(err, "failed to find binding by account and provider")
	}

	return toBindingDomain(&bindingM), nil
}

// ListByAccountID returns all bindings of an account.
func (repo *bindingRepository) ListByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.ProviderBinding, error) {
	var bindingMs []model.BindingModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at ASC").
		Find(&bindingMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bindings by account id")
	}

	bindings := make([]*entity.ProviderBinding, 0, len(bindingMs))
	for i := range bindingMs {
		bindings = append(bindings, toBindingDomain(&bindingMs[i]))
	}

	return bindings, nil
}

// Update replaces the stored provider tokens of an existing binding.
func (repo *bindingRepository) Update(ctx context.Context, binding *entity.ProviderBinding) error {
	result := repo.db.WithContext(ctx).
		Model(&model.BindingModel{}).
		Where("id = ?", binding.ID).
		Updates(map[string]any{
			"access_token":  binding.AccessToken,
			"refresh_token": binding.RefreshToken,
			"token_expiry":  binding.TokenExpiry,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update provider binding")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBindingNotFound
	}

	return nil
}

// Delete removes a binding by its ID.
func (repo *bindingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.BindingModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete provider binding")
	}
	if result.RowsAffected == 0 {
		return repository.ErrBindingNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toBindingDomain converts a GORM BindingModel to a domain ProviderBinding entity.
func toBindingDomain(data *model.BindingModel) *entity.ProviderBinding {
	if data == nil {
		return nil
	}

	return &entity.ProviderBinding{
		ID:             data.ID,
		AccountID:      data.AccountID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		AccessToken:    data.AccessToken,
		RefreshToken:   data.RefreshToken,
		TokenExpiry:    data.TokenExpiry,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

// fromBindingDomain converts a domain ProviderBinding entity to a GORM BindingModel.
func fromBindingDomain(data *entity.ProviderBinding) *model.BindingModel {
	if data == nil {
		return nil
	}

	return &model.BindingModel{
		ID:             data.ID,
		AccountID:      data.AccountID,
		Provider:       data.Provider,
		ProviderUserID: data.ProviderUserID,
		AccessToken:    data.AccessToken,
		RefreshToken:   data.RefreshToken,
		TokenExpiry:    data.TokenExpiry,
	}
}
