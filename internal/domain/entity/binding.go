package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderBinding stores the linkage between a local account and an external
// OAuth2 identity, including the refreshable provider tokens.
//
// Exactly one bound identity per (account, provider) pair is supported, and a
// provider-side identity can belong to at most one account. Multi-identity
// linking is a deliberate simplification, not a defect.
type ProviderBinding struct {
	ID             uuid.UUID // The unique ID for this binding record.
	AccountID      uuid.UUID // Links this binding to the Account it belongs to.
	Provider       string    // The OAuth2 provider name, e.g. "github", "mock".
	ProviderUserID string    // The user's unique ID on the provider side.
	AccessToken    string    // Latest provider access token.
	RefreshToken   string    // Provider refresh token, used for transparent renewal.
	TokenExpiry    time.Time // Expiry of the access token.
	CreatedAt      time.Time // Timestamp of when the identity was linked.
	UpdatedAt      time.Time // Timestamp of the last token refresh.
}
