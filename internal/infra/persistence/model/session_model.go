package model

import (
	"time"

	"github.com/google/uuid"
)

// ClientInfoColumns holds the parsed client metadata embedded in sessions and
// audit log entries with a "client_" column prefix.
type ClientInfoColumns struct {
	OSName        string `gorm:"type:varchar(64)"`
	OSCode        string `gorm:"type:varchar(64)"`
	OSVersion     string `gorm:"type:varchar(32)"`
	ClientType    string `gorm:"type:varchar(32)"`
	ClientName    string `gorm:"type:varchar(64)"`
	ClientCode    string `gorm:"type:varchar(64)"`
	ClientVersion string `gorm:"type:varchar(32)"`
	ClientEngine  string `gorm:"type:varchar(32)"`
	DeviceName    string `gorm:"type:varchar(32)"`
	DeviceBrand   string `gorm:"type:varchar(64)"`
	DeviceModel   string `gorm:"type:varchar(64)"`
	IP            string `gorm:"type:varchar(45)"`
	CountryCode   string `gorm:"type:varchar(4)"`
	CountryName   string `gorm:"type:varchar(64)"`
}

// SessionModel mirrors the 'sessions' table. The secret hash is unique so a
// presented cookie secret resolves to at most one session.
type SessionModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Provider   string    `gorm:"type:varchar(64);not null"`
	SecretHash string    `gorm:"type:varchar(64);not null;uniqueIndex"`

	ProviderAccessToken       string `gorm:"type:text"`
	ProviderRefreshToken      string `gorm:"type:text"`
	ProviderAccessTokenExpiry time.Time

	Client ClientInfoColumns `gorm:"embedded;embeddedPrefix:client_"`

	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}
