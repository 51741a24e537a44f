package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by TokenExpiry when the token carries no exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// TokenExpiry reads the exp claim of a JWT without verifying its signature.
// The client never holds the signing key; the backend stays the authority on
// validity.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// TokenExpired reports whether tokenString is a JWT whose exp lies before
// now. Opaque or exp-less tokens are never considered expired.
func TokenExpired(tokenString string, now time.Time) bool {
	exp, err := TokenExpiry(tokenString)
	if err != nil {
		return false
	}
	return !now.Before(exp)
}
