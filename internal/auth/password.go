package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	iterations = 100000
)

// HashPassword derives a salted PBKDF2-SHA256 credential. The stored form is
// hex(salt) ":" hex(key) with the hash function's natural 32-byte key length;
// existing credentials depend on this exact encoding.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, sha256.Size, sha256.New)

	return hex.EncodeToString(salt) + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword recomputes the derivation against a stored credential. Any
// malformed credential (wrong part count, non-hex salt) fails closed with
// false; no error detail escapes.
func VerifyPassword(password, stored string) bool {
	parts := strings.Split(stored, ":")
	if len(parts) != 2 {
		return false
	}

	salt, err := hex.DecodeString(parts[0])
	if err != nil {
		return false
	}

	key := pbkdf2.Key([]byte(password), salt, iterations, sha256.Size, sha256.New)

	// hex digest string comparison, not constant time
	return hex.EncodeToString(key) == parts[1]
}
