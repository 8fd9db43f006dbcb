// File: internal/service/password.go
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// HashPassword returns the hex SHA-256 digest of the password. The digest is
// deterministic and unsalted: the default secret derived from the birth date
// must always map to the same stored value.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// DefaultPassword derives the account's default secret from its birth date,
// formatted ddMMyyyy (e.g. 1998-11-25 -> "25111998").
func DefaultPassword(birthDate time.Time) string {
	return birthDate.Format("02012006")
}

// CheckPassword compares a plaintext password against a stored digest.
func CheckPassword(hash, password string) bool {
	return hash == HashPassword(password)
}
