package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateRandomToken(t *testing.T) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	token := GenerateRandomToken(6)
	require.Len(t, token, 6)
	for _, r := range token {
		assert.True(t, strings.ContainsRune(charset, r), "unexpected character %q", r)
	}

	// two consecutive codes should not collide
	assert.NotEqual(t, GenerateRandomToken(16), GenerateRandomToken(16))
}
