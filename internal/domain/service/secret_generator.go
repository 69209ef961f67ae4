package service

// SecretGenerator produces the random secrets used by sessions and challenges.
// Implementations must use a cryptographically secure source.
type SecretGenerator interface {
	// NumericCode returns a code of exactly length decimal digits, suitable for
	// SMS/email delivery. Length is fixed at configuration time (6 minimum).
	NumericCode(length int) (string, error)

	// OpaqueToken returns a URL-safe random token for session cookies.
	OpaqueToken() (string, error)
}
