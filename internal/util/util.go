package util

import (
	"crypto/sha256"
	"fmt"
)

// SHA256Hex returns the lowercase hex SHA-256 digest of the input.
// Session secrets and one-time codes are stored only in this form.
func SHA256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))

	return fmt.Sprintf("%x", sum)
}
