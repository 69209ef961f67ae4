package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"passport/internal/domain/entity"
	"passport/internal/domain/repository"
	"passport/internal/infra/persistence/model"
)

// challengeRepository implements the domain's ChallengeRepository interface using GORM.
type challengeRepository struct {
	db *gorm.DB
}

// NewChallengeRepository is the constructor for challengeRepository.
func NewChallengeRepository(db *gorm.DB) repository.ChallengeRepository {
	return &challengeRepository{db: db}
}

// Create persists a new challenge.
func (repo *challengeRepository) Create(ctx context.Context, challenge *entity.Challenge) error {
	challengeM := fromChallengeDomain(challenge)

	if err := repo.db.WithContext(ctx).Create(challengeM).Error; err != nil {
		return errors.Wrap(err, "failed to create challenge")
	}

	challenge.ID = challengeM.ID
	challenge.CreatedAt = challengeM.CreatedAt

	return nil
}

// FindByID retrieves a challenge record by its unique ID.
func (repo *challengeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Challenge, error) {
	var challengeM model.ChallengeModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&challengeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find challenge by id")
	}

	return toChallengeDomain(&challengeM), nil
}

// FindLatestByAccount retrieves the most recent unconsumed challenge for an account and channel.
func (repo *challengeRepository) FindLatestByAccount(ctx context.Context, accountID uuid.UUID, channel entity.ChallengeChannel) (*entity.Challenge, error) {
	var challengeM model.ChallengeModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ? AND channel = ? AND consumed = false", accountID, string(channel)).
		Order("created_at DESC").
		First(&challengeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrChallengeNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest challenge")
	}

	return toChallengeDomain(&challengeM), nil
}

// Consume marks a challenge used. The WHERE clause on the consumed flag makes
// this a conditional write: of two concurrent validations exactly one flips the
// flag, the other sees zero rows and fails.
func (repo *challengeRepository) Consume(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ChallengeModel{}).
		Where("id = ? AND consumed = false", id).
		UpdateColumn("consumed", true)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to consume challenge")
	}
	if result.RowsAffected == 0 {
		return repository.ErrChallengeConsumed
	}

	return nil
}

// Delete removes one challenge.
func (repo *challengeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	err := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ChallengeModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete challenge")
	}

	return nil
}

// DeleteByAccountID removes all challenges of an account.
func (repo *challengeRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Where("account_id = ?", accountID).Delete(&model.ChallengeModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete challenges by account id")
	}

	return nil
}

// DeleteExpired removes challenges past their expiry.
func (repo *challengeRepository) DeleteExpired(ctx context.Context) error {
	err := repo.db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&model.ChallengeModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete expired challenges")
	}

	return nil
}

// --- Mapper Functions ---

// toChallengeDomain converts a GORM ChallengeModel to a domain Challenge entity.
func toChallengeDomain(data *model.ChallengeModel) *entity.Challenge {
	if data == nil {
		return nil
	}

	return &entity.Challenge{
		ID:         data.ID,
		AccountID:  data.AccountID,
		Channel:    entity.ChallengeChannel(data.Channel),
		SecretHash: data.SecretHash,
		Consumed:   data.Consumed,
		ExpiresAt:  data.ExpiresAt,
		CreatedAt:  data.CreatedAt,
	}
}

// fromChallengeDomain converts a domain Challenge entity to a GORM ChallengeModel.
func fromChallengeDomain(data *entity.Challenge) *model.ChallengeModel {
	if data == nil {
		return nil
	}

	return &model.ChallengeModel{
		ID:         data.ID,
		AccountID:  data.AccountID,
		Channel:    string(data.Channel),
		SecretHash: data.SecretHash,
		Consumed:   data.Consumed,
		ExpiresAt:  data.ExpiresAt,
	}
}
