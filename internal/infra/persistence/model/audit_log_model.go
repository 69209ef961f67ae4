package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel mirrors the append-only 'audit_logs' table. Seq is a bigserial
// insert sequence; queries order by it, never by wall-clock time. No account
// foreign key: entries outlive the accounts they describe.
type AuditLogModel struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Event     string    `gorm:"type:varchar(64);not null"`

	Client ClientInfoColumns `gorm:"embedded;embeddedPrefix:client_"`

	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
