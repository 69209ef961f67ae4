package service

import (
	"context"
	"time"
)

// RateCounter exposes the per-account, per-operation counters that an external
// rate-limiting middleware layers on. The core only increments and reports;
// enforcement is not a core concern.
type RateCounter interface {
	// Hit increments the counter for one (scope, operation) pair within the
	// fixed window and returns the remaining allowance.
	Hit(ctx context.Context, scope, operation string, limit int, window time.Duration) (remaining int, err error)
}
