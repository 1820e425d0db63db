package utils

import (
	"crypto/rsa"
	"time"

	"artisan-market/pkg/apperr"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the identity a bearer token carries. Verification only
// needs the public key, no database round trip.
type TokenClaims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	FullName string `json:"fullName"`
	GoogleID string `json:"googleId,omitempty"`
	jwt.RegisteredClaims
}

// ParseRSAPrivateKey parses a PEM-encoded RSA private key
func ParseRSAPrivateKey(pemStr string) (*rsa.PrivateKey, error) {
	return jwt.ParseRSAPrivateKeyFromPEM([]byte(pemStr))
}

// ParseRSAPublicKey parses a PEM-encoded RSA public key
func ParseRSAPublicKey(pemStr string) (*rsa.PublicKey, error) {
	return jwt.ParseRSAPublicKeyFromPEM([]byte(pemStr))
}

// IssueToken signs claims with RS256 for the given TTL
func IssueToken(claims TokenClaims, privateKey *rsa.PrivateKey, ttl time.Duration) (string, error) {
	if claims.UserID == "" {
		return "", apperr.InvalidInput("Token claims must not be empty")
	}
	if privateKey == nil {
		return "", apperr.InvalidInput("Signing key is missing")
	}

	now := time.Now()
	claims.IssuedAt = jwt.NewNumericDate(now)
	claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(privateKey)
	if err != nil {
		return "", apperr.Internal("Failed to sign token", err)
	}

	return signed, nil
}

// VerifyToken checks signature and expiry and returns the decoded claims
func VerifyToken(tokenString string, publicKey *rsa.PublicKey) (*TokenClaims, error) {
	if tokenString == "" {
		return nil, apperr.Unauthorized("Token is missing")
	}
	if publicKey == nil {
		return nil, apperr.InvalidInput("Verification key is missing")
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		// Reject anything but the expected asymmetric method
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return publicKey, nil
	})
	if err != nil || !token.Valid {
		return nil, apperr.Unauthorized("Invalid or expired token")
	}

	return claims, nil
}
