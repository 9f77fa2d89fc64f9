package api

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenClaims struct {
	Subject   string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ParseAccessToken reads the claims of an access token without verifying
// its signature. The server is the only party that validates tokens; the
// client uses the claims for display and expiry hints.
func ParseAccessToken(token string) (TokenClaims, error) {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenClaims{}, fmt.Errorf("parse access token: %w", err)
	}

	result := TokenClaims{Subject: claims.Subject}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}
