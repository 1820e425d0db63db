package utils_test

import (
	"testing"

	"artisan-market/pkg/utils"

	"github.com/stretchr/testify/assert"
)

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, utils.ParseInt("5", 1))
	assert.Equal(t, 1, utils.ParseInt("", 1))
	assert.Equal(t, 1, utils.ParseInt("abc", 1))
	assert.Equal(t, 1, utils.ParseInt("0", 1))
	assert.Equal(t, 1, utils.ParseInt("-3", 1))
}

func TestGenerateOTP(t *testing.T) {
	otp := utils.GenerateOTP(6)

	assert.Len(t, otp, 6)
	for _, c := range otp {
		assert.True(t, c >= '0' && c <= '9', "OTP must be numeric, got %q", otp)
	}

	// Zero and negative lengths fall back to 6 digits
	assert.Len(t, utils.GenerateOTP(0), 6)
	assert.Len(t, utils.GenerateOTP(-1), 6)

	assert.Len(t, utils.GenerateOTP(4), 4)
}
