// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"
)

// accountRepository implements the domain's AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a repository.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&accountM).Error
	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its lower-cased email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).Where("email = ?", email).First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// FindByPhone retrieves a single account by its E.164 phone number.
func (repo *accountRepository) FindByPhone(ctx context.Context, phone string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).Where("phone = ?", phone).First(&accountM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by phone")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity to the database.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return duplicateAccountError(err)
		}

		return errors.Wrap(err, "failed to create account")
	}

	// Propagate the generated ID and timestamps back to the entity.
	account.ID = accountM.ID
	account.Registration = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account entity in the database.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	accountM.CreatedAt = account.Registration

	if err := repo.db.WithContext(ctx).Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return duplicateAccountError(err)
		}

		return errors.Wrap(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// TouchAccessedAt updates only the last-accessed timestamp of an account.
func (repo *accountRepository) TouchAccessedAt(ctx context.Context, id uuid.UUID, accessedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		UpdateColumn("accessed_at", accessedAt)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to touch account accessed_at")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Delete removes an account; sessions, challenges, bindings and targets cascade.
func (repo *accountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.AccountModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// duplicateAccountError inspects which unique index rejected the write.
func duplicateAccountError(err error) error {
	if strings.Contains(strings.ToLower(err.Error()), "phone") {
		return repository.ErrDuplicatePhone
	}

	return repository.ErrDuplicateEmail
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	account := &entity.Account{
		ID:                data.ID,
		Name:              data.Name,
		PasswordHash:      data.PasswordHash,
		Status:            entity.AccountStatus(data.Status),
		EmailVerification: data.EmailVerification,
		PhoneVerification: data.PhoneVerification,
		Registration:      data.CreatedAt,
		AccessedAt:        data.AccessedAt,
		UpdatedAt:         data.UpdatedAt,
	}
	if data.Email != nil {
		account.Email = *data.Email
	}
	if data.Phone != nil {
		account.Phone = *data.Phone
	}

	return account
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel for persistence.
// Empty email/phone become NULL so the unique indexes ignore anonymous accounts.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	accountM := &model.AccountModel{
		ID:                data.ID,
		Name:              data.Name,
		PasswordHash:      data.PasswordHash,
		Status:            string(data.Status),
		EmailVerification: data.EmailVerification,
		PhoneVerification: data.PhoneVerification,
		AccessedAt:        data.AccessedAt,
	}
	if data.Email != "" {
		email := data.Email
		accountM.Email = &email
	}
	if data.Phone != "" {
		phone := data.Phone
		accountM.Phone = &phone
	}

	return accountM
}
