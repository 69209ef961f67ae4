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

// sessionRepository implements the domain's SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a new session.
func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return errors.Wrap(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindByID retrieves a session record by its unique ID.
func (repo *sessionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by id")
	}

	return toSessionDomain(&sessionM), nil
}

// FindBySecretHash retrieves a session by the SHA-256 hash of its opaque secret.
func (repo *sessionRepository) FindBySecretHash(ctx context.Context, secretHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).Where("secret_hash = ?", secretHash).First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by secret hash")
	}

	return toSessionDomain(&sessionM), nil
}

// FindByAccountID retrieves all sessions of an account, newest first.
func (repo *sessionRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*entity.Session, error) {
	var sessionMs []model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Find(&sessionMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find sessions by account id")
	}

	sessions := make([]*entity.Session, 0, len(sessionMs))
	for i := range sessionMs {
		sessions = append(sessions, toSessionDomain(&sessionMs[i]))
	}

	return sessions, nil
}

// UpdateProviderTokens conditionally replaces the stored OAuth2 tokens.
// The WHERE clause on the previous expiry is the compare-and-swap guard: of two
// concurrent refreshes only one matches, the other sees zero rows and backs off.
func (repo *sessionRepository) UpdateProviderTokens(ctx context.Context, id uuid.UUID, expectedExpiry time.Time, accessToken, refreshToken string, newExpiry time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ? AND provider_access_token_expiry = ?", id, expectedExpiry).
		Updates(map[string]any{
			"provider_access_token":        accessToken,
			"provider_refresh_token":       refreshToken,
			"provider_access_token_expiry": newExpiry,
		})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update provider tokens")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStaleTokenExpiry
	}

	return nil
}

// Delete removes a session by its ID, revoking it terminally.
func (repo *sessionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.SessionModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// DeleteByAccountID removes all sessions of an account.
func (repo *sessionRepository) DeleteByAccountID(ctx context.Context, accountID uuid.UUID) error {
	err := repo.db.WithContext(ctx).Where("account_id = ?", accountID).Delete(&model.SessionModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete sessions by account id")
	}

	return nil
}

// DeleteExpired removes all sessions past their expiry.
func (repo *sessionRepository) DeleteExpired(ctx context.Context) error {
	err := repo.db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&model.SessionModel{}).Error
	if err != nil {
		return errors.Wrap(err, "failed to delete expired sessions")
	}

	return nil
}

// --- Mapper Functions ---

// toSessionDomain converts a GORM SessionModel to a domain Session entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	if data == nil {
		return nil
	}

	return &entity.Session{
		ID:                        data.ID,
		AccountID:                 data.AccountID,
		Provider:                  data.Provider,
		SecretHash:                data.SecretHash,
		ProviderAccessToken:       data.ProviderAccessToken,
		ProviderRefreshToken:      data.ProviderRefreshToken,
		ProviderAccessTokenExpiry: data.ProviderAccessTokenExpiry,
		Client:                    toClientInfoDomain(data.Client),
		ExpiresAt:                 data.ExpiresAt,
		CreatedAt:                 data.CreatedAt,
	}
}

// fromSessionDomain converts a domain Session entity to a GORM SessionModel for persistence.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	if data == nil {
		return nil
	}

	return &model.SessionModel{
		ID:                        data.ID,
		AccountID:                 data.AccountID,
		Provider:                  data.Provider,
		SecretHash:                data.SecretHash,
		ProviderAccessToken:       data.ProviderAccessToken,
		ProviderRefreshToken:      data.ProviderRefreshToken,
		ProviderAccessTokenExpiry: data.ProviderAccessTokenExpiry,
		Client:                    fromClientInfoDomain(data.Client),
		ExpiresAt:                 data.ExpiresAt,
	}
}

// toClientInfoDomain converts embedded client columns to the domain value.
func toClientInfoDomain(data model.ClientInfoColumns) entity.ClientInfo {
	return entity.ClientInfo{
		OSName:        data.OSName,
		OSCode:        data.OSCode,
		OSVersion:     data.OSVersion,
		ClientType:    data.ClientType,
		ClientName:    data.ClientName,
		ClientCode:    data.ClientCode,
		ClientVersion: data.ClientVersion,
		ClientEngine:  data.ClientEngine,
		DeviceName:    data.DeviceName,
		DeviceBrand:   data.DeviceBrand,
		DeviceModel:   data.DeviceModel,
		IP:            data.IP,
		CountryCode:   data.CountryCode,
		CountryName:   data.CountryName,
	}
}

// fromClientInfoDomain converts the domain value to embedded client columns.
func fromClientInfoDomain(data entity.ClientInfo) model.ClientInfoColumns {
	return model.ClientInfoColumns{
		OSName:        data.OSName,
		OSCode:        data.OSCode,
		OSVersion:     data.OSVersion,
		ClientType:    data.ClientType,
		ClientName:    data.ClientName,
		ClientCode:    data.ClientCode,
		ClientVersion: data.ClientVersion,
		ClientEngine:  data.ClientEngine,
		DeviceName:    data.DeviceName,
		DeviceBrand:   data.DeviceBrand,
		DeviceModel:   data.DeviceModel,
		IP:            data.IP,
		CountryCode:   data.CountryCode,
		CountryName:   data.CountryName,
	}
}
