package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateOperatorJWT signs an HS256 token whose subject is the operator id.
// The subject is recorded as deletedBy on every sale the operator deletes.
func GenerateOperatorJWT(operatorID, secret, issuer string, expiry time.Duration, now time.Time) (string, error) {
	if strings.TrimSpace(operatorID) == "" {
		return "", fmt.Errorf("operator id is required")
	}
	if secret == "" {
		return "", fmt.Errorf("secret is required")
	}
	if expiry <= 0 {
		return "", fmt.Errorf("expiry must be positive, got %s", expiry)
	}

	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   operatorID,
		ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
