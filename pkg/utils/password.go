package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost 12 lands around 100ms per hash on current hardware
const bcryptCost = 12

// HashPassword returns the salted bcrypt hash of a plaintext password
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPasswordHash compares a plaintext password against a stored hash.
// bcrypt's own compare is constant-time.
func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
