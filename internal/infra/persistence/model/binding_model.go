package model

import (
	"time"

	"github.com/google/uuid"
)

// BindingModel mirrors the 'provider_bindings' table. Two unique indexes carry
// the linking rules: a provider identity belongs to at most one account, and an
// account holds at most one identity per provider.
type BindingModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uniq_account_provider"`
	Provider       string    `gorm:"type:varchar(64);not null;uniqueIndex:uniq_account_provider;uniqueIndex:uniq_provider_identity"`
	ProviderUserID string    `gorm:"type:varchar(255);not null;uniqueIndex:uniq_provider_identity"`
	AccessToken    string    `gorm:"type:text"`
	RefreshToken   string    `gorm:"type:text"`
	TokenExpiry    time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (BindingModel) TableName() string {
	return "provider_bindings"
}
