package auth

import (
	"crypto/rand"
	"encoding/hex"
	"math/big"

	"github.com/pkg/errors"

	"passport/internal/domain/service"
)

// secretGenerator produces random secrets from crypto/rand.
type secretGenerator struct{}

// NewSecretGenerator is the constructor for secretGenerator.
func NewSecretGenerator() service.SecretGenerator {
	return &secretGenerator{}
}

// NumericCode generates a random code of the given length using digits 0-9.
// Leading zeros are allowed, so every length-n string is equally likely.
func (g *secretGenerator) NumericCode(length int) (string, error) {
	if length <= 0 {
		return "", errors.New("code length must be positive")
	}

	code := make([]byte, length)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			return "", errors.Wrap(err, "generate random digit")
		}
		code[i] = byte('0' + n.Int64())
	}

	return string(code), nil
}

// OpaqueToken generates a 64-character hex token from 32 random bytes.
func (g *secretGenerator) OpaqueToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "read random bytes")
	}

	return hex.EncodeToString(buf), nil
}
