package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateOpaqueToken returns a URL-safe token built from byteLen bytes of
// cryptographically secure randomness.
func GenerateOpaqueToken(byteLen int) (string, error) {
	buf := make([]byte, byteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
