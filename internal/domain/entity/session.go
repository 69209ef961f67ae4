package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Session providers. OAuth2 sessions use the "oauth2:<name>" form so the concrete
// provider survives in the session record.
const (
	SessionProviderEmail     = "email"
	SessionProviderAnonymous = "anonymous"
	SessionProviderPhone     = "phone"

	sessionProviderOAuth2Prefix = "oauth2:"
)

// OAuth2SessionProvider builds the provider string for an OAuth2 session.
func OAuth2SessionProvider(provider string) string {
	return sessionProviderOAuth2Prefix + provider
}

// OAuth2ProviderName extracts the provider name from an "oauth2:<name>" session
// provider string. Returns "" for non-OAuth2 sessions.
func OAuth2ProviderName(sessionProvider string) string {
	if !strings.HasPrefix(sessionProvider, sessionProviderOAuth2Prefix) {
		return ""
	}

	return strings.TrimPrefix(sessionProvider, sessionProviderOAuth2Prefix)
}

// Session represents one authenticated context bound to a single account, provider
// and client. The opaque secret is handed to the client exactly once at creation;
// only its SHA-256 hash is stored. Deleting the row revokes the session terminally.
type Session struct {
	ID         uuid.UUID // The unique ID for this session record.
	AccountID  uuid.UUID // Links this session to the Account it belongs to.
	Provider   string    // email, anonymous, phone or oauth2:<name>.
	SecretHash string    // SHA-256 hash of the opaque session secret carried in the cookie.

	// Provider tokens, populated for oauth2 sessions only. The access token expiry
	// doubles as the compare-and-swap guard for concurrent refreshes.
	ProviderAccessToken       string
	ProviderRefreshToken      string
	ProviderAccessTokenExpiry time.Time

	Client ClientInfo // Parsed client metadata captured at session creation.

	ExpiresAt time.Time // The time after which this session no longer authenticates.
	CreatedAt time.Time // Timestamp of when the session was created.
}

// IsOAuth2 reports whether the session carries provider tokens.
func (s *Session) IsOAuth2() bool {
	return OAuth2ProviderName(s.Provider) != ""
}

// Placeholders recorded when geolocation cannot be resolved.
const (
	UnknownCountryCode = "--"
	UnknownCountryName = "Unknown"
)

// ClientInfo holds the parsed user-agent, IP and geolocation fields recorded on
// sessions and audit log entries.
type ClientInfo struct {
	OSName        string
	OSCode        string
	OSVersion     string
	ClientType    string // browser, app, crawler...
	ClientName    string
	ClientCode    string
	ClientVersion string
	ClientEngine  string
	DeviceName    string
	DeviceBrand   string
	DeviceModel   string
	IP            string
	CountryCode   string // ISO code, "--" when unresolved.
	CountryName   string // "Unknown" when unresolved.
}
