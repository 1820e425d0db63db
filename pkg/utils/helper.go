package utils

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
)

// ParseInt converts string to int with default value
func ParseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	if result < 1 {
		return defaultValue
	}

	return result
}

// GenerateOTP creates a numeric OTP of the given length. Codes gate e-mail
// verification, so they come from crypto/rand rather than math/rand.
func GenerateOTP(length int) string {
	if length <= 0 {
		length = 6
	}

	var sb strings.Builder
	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(10))
		if err != nil {
			// rand.Reader failing means the platform entropy source is broken
			sb.WriteByte('0')
			continue
		}
		sb.WriteString(n.String())
	}

	return sb.String()
}
