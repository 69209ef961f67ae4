// Package model holds the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Email and phone are nullable because anonymous accounts carry neither; the partial
// unique indexes only apply to non-null values.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type AccountModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email             *string   `gorm:"type:varchar(255);unique"`
	Phone             *string   `gorm:"type:varchar(32);unique"`
	Name              string    `gorm:"type:varchar(128)"`
	PasswordHash      string    `gorm:"type:varchar(255)"`
	Status            string    `gorm:"type:varchar(16);not null;default:'enabled'"`
	EmailVerification bool      `gorm:"not null;default:false"`
	PhoneVerification bool      `gorm:"not null;default:false"`
	AccessedAt        time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Sessions   []SessionModel   `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Challenges []ChallengeModel `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Bindings   []BindingModel   `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
	Targets    []TargetModel    `gorm:"foreignKey:AccountID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
