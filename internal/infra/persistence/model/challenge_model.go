package model

import (
	"time"

	"github.com/google/uuid"
)

// ChallengeModel mirrors the 'challenges' table. Consumption flips the consumed
// flag through a conditional update; rows are never reused.
type ChallengeModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Channel    string    `gorm:"type:varchar(16);not null"`
	SecretHash string    `gorm:"type:varchar(64);not null"`
	Consumed   bool      `gorm:"not null;default:false"`
	ExpiresAt  time.Time `gorm:"not null;index"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ChallengeModel) TableName() string {
	return "challenges"
}
