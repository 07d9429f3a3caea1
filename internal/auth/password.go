package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Salted SHA-256 in "salt:digest" form. Not cryptographically hardened;
// swap for bcrypt/argon2 before any real deployment.

func HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	sum := sha256.Sum256([]byte(password + saltHex))
	return saltHex + ":" + hex.EncodeToString(sum[:]), nil
}

func VerifyPassword(password, hashed string) bool {
	salt, digest, ok := strings.Cut(hashed, ":")
	if !ok {
		return false
	}
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:]) == digest
}
