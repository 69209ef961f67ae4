package repository

import (
	"context"

	"passport/internal/domain/entity"

	"github.com/google/uuid"
)

// AuditLogRepository defines the interface for the append-only security log.
// Entries are ordered by their insert sequence; there is no update or delete.
type AuditLogRepository interface {
	// Append persists a new entry and assigns its sequence number.
	Append(ctx context.Context, entry *entity.AuditLogEntry) error

	// Query returns entries of an account, most recent first, as the strict
	// slice entries[offset : offset+limit] of the unpaged ordering.
	Query(ctx context.Context, accountID uuid.UUID, limit, offset int) ([]*entity.AuditLogEntry, error)

	// CountByAccountID returns the total number of entries of an account.
	CountByAccountID(ctx context.Context, accountID uuid.UUID) (int64, error)
}
