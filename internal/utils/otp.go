package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashCode hashes a one-time code using bcrypt.
func HashCode(code string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	return string(hash), err
}

// CheckCodeHash compares a plaintext one-time code with a bcrypt hash.
func CheckCodeHash(code, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(code)) == nil
}
