package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

// 32 random bytes encode to a 43-character verifier, the RFC 7636 minimum.
const codeVerifierByteLen = 32

// GeneratePKCEPair returns a fresh code verifier and its S256 challenge:
// the URL-safe, unpadded base64 encoding of the verifier's SHA-256 digest.
func GeneratePKCEPair() (string, string, error) {
	buf := make([]byte, codeVerifierByteLen)
	if _, err := rand.Read(buf); err != nil {
		return "", "", err
	}
	verifier := base64.RawURLEncoding.EncodeToString(buf)

	digest := sha256.Sum256([]byte(verifier))
	challenge := base64.RawURLEncoding.EncodeToString(digest[:])

	return verifier, challenge, nil
}
