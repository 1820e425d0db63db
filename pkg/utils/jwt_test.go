package utils_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"artisan-market/pkg/utils"

	"github.com/stretchr/testify/assert"
)

var signKey, _ = rsa.GenerateKey(rand.Reader, 2048)

func testClaims() utils.TokenClaims {
	return utils.TokenClaims{
		UserID:   "0d4907a2-1f4a-4a90-b9e0-6a3b0f9f2a11",
		Email:    "maria@example.com",
		Role:     "customer",
		FullName: "Maria Santos",
	}
}

func TestIssueAndVerifyToken(t *testing.T) {
	token, err := utils.IssueToken(testClaims(), signKey, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := utils.VerifyToken(token, &signKey.PublicKey)
	assert.NoError(t, err)
	assert.Equal(t, "0d4907a2-1f4a-4a90-b9e0-6a3b0f9f2a11", claims.UserID)
	assert.Equal(t, "maria@example.com", claims.Email)
	assert.Equal(t, "customer", claims.Role)
	assert.Equal(t, "Maria Santos", claims.FullName)
}

func TestIssueToken_RequiresUserID(t *testing.T) {
	claims := testClaims()
	claims.UserID = ""

	token, err := utils.IssueToken(claims, signKey, time.Hour)

	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestIssueToken_RequiresKey(t *testing.T) {
	token, err := utils.IssueToken(testClaims(), nil, time.Hour)

	assert.Error(t, err)
	assert.Empty(t, token)
}

func TestVerifyToken_Expired(t *testing.T) {
	token, err := utils.IssueToken(testClaims(), signKey, -time.Minute)
	assert.NoError(t, err)

	claims, err := utils.VerifyToken(token, &signKey.PublicKey)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifyToken_WrongKey(t *testing.T) {
	token, err := utils.IssueToken(testClaims(), signKey, time.Hour)
	assert.NoError(t, err)

	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	assert.NoError(t, err)

	claims, err := utils.VerifyToken(token, &otherKey.PublicKey)

	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestVerifyToken_Garbage(t *testing.T) {
	claims, err := utils.VerifyToken("not.a.token", &signKey.PublicKey)
	assert.Error(t, err)
	assert.Nil(t, claims)

	claims, err = utils.VerifyToken("", &signKey.PublicKey)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
