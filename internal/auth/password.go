// Package auth provides password hashing, token issuance and the password
// reset handshake.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// ResetCodeTTL is how long a password reset code stays valid.
const ResetCodeTTL = 10 * time.Minute

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// ComparePassword reports whether the plaintext matches the stored hash.
func ComparePassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}

// NewResetCode generates a password reset code. The plain code is sent to the
// user; only its sha256 is stored.
func NewResetCode() (code, hashed string, expires int64, err error) {
	buf := make([]byte, 16)
	if _, err = rand.Read(buf); err != nil {
		return "", "", 0, fmt.Errorf("failed to generate reset code: %w", err)
	}
	code = hex.EncodeToString(buf)
	return code, HashResetCode(code), time.Now().Add(ResetCodeTTL).Unix(), nil
}

// HashResetCode hashes a reset code for storage and lookup.
func HashResetCode(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}
