package model

import (
	"time"

	"github.com/google/uuid"
)

// TargetModel mirrors the 'targets' table.
type TargetModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ProviderID string    `gorm:"type:varchar(64);not null"`
	Identifier string    `gorm:"type:varchar(255);not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (TargetModel) TableName() string {
	return "targets"
}
