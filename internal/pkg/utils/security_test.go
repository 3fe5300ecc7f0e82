package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOpaqueToken(t *testing.T) {
	urlSafe := regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

	token, err := GenerateOpaqueToken(32)
	require.NoError(t, err)
	assert.Len(t, token, 43, "32 bytes encode to 43 unpadded characters")
	assert.True(t, urlSafe.MatchString(token))

	second, err := GenerateOpaqueToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, token, second)
}

func TestRedactToken(t *testing.T) {
	assert.Equal(t, "abcdefgh...", RedactToken("abcdefghijklmnop"))
	assert.Equal(t, "***", RedactToken("short"))
	assert.Equal(t, "***", RedactToken(""))
	assert.Equal(t, "***", RedactToken("12345678"), "tokens at the cutoff stay fully hidden")
}
