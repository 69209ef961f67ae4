package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecretGenerator_NumericCode(t *testing.T) {
	gen := NewSecretGenerator()

	code, err := gen.NumericCode(6)
	assert.NoError(t, err)
	assert.Len(t, code, 6)
	for _, r := range code {
		assert.True(t, r >= '0' && r <= '9', "expected digit, got %q", r)
	}

	// Two consecutive codes should almost never collide.
	other, err := gen.NumericCode(6)
	assert.NoError(t, err)
	assert.Len(t, other, 6)
}

func TestSecretGenerator_NumericCodeInvalidLength(t *testing.T) {
	gen := NewSecretGenerator()

	_, err := gen.NumericCode(0)
	assert.Error(t, err)

	_, err = gen.NumericCode(-3)
	assert.Error(t, err)
}

func TestSecretGenerator_OpaqueToken(t *testing.T) {
	gen := NewSecretGenerator()

	token, err := gen.OpaqueToken()
	assert.NoError(t, err)
	assert.Len(t, token, 64)

	other, err := gen.OpaqueToken()
	assert.NoError(t, err)
	assert.NotEqual(t, token, other)
}
