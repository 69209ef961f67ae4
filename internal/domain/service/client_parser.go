package service

import "passport/internal/domain/entity"

// ClientParser turns a raw user-agent string and client IP into the structured
// device/OS/browser/country fields recorded on sessions and audit log entries.
// Unresolvable geolocation yields CountryCode "--" and CountryName "Unknown".
type ClientParser interface {
	Parse(userAgent, ip string) entity.ClientInfo
}
