package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword hashes a plaintext password using bcrypt. A fresh salt is
// generated per call and embedded in the output, so the hash is
// self-describing.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckPasswordHash compares a plaintext password with a bcrypt hash.
// Malformed hashes never produce an error, only a non-match.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CheckLegacyPasswordHash verifies a password against the previous platform's
// unsalted sha256 hex scheme. Compatibility shim for migrated accounts that
// have not set a bcrypt hash yet; compared in constant time.
func CheckLegacyPasswordHash(password, legacyHash string) bool {
	if legacyHash == "" {
		return false
	}
	sum := sha256.Sum256([]byte(password))
	computed := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(computed), []byte(legacyHash)) == 1
}
