package usecase

import (
	"context"

	"github.com/google/uuid"

	"passport/internal/domain/entity"
)

// AuditLogPage is one page of the account's security log.
type AuditLogPage struct {
	Entries []*entity.AuditLogEntry
	Total   int64
}

// AuditUsecase defines the read side of the append-only security log. Writes
// happen inside the mutating use cases, in the same transaction as the change
// they describe.
type AuditUsecase interface {
	// Query returns entries of the account, most recent first. limit and offset
	// select a strict slice of that single ordering.
	Query(ctx context.Context, accountID uuid.UUID, limit, offset int) (*AuditLogPage, error)
}
