package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo is what can be read from a credential without the server's key.
// It is informational only: nothing in the client rejects a token because
// of it, the API stays the only judge of validity.
type TokenInfo struct {
	JWT       bool
	Subject   string
	ExpiresAt time.Time
}

// Expired reports whether the embedded expiry lies before now. A token with
// no readable expiry is never considered expired.
func (i TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && i.ExpiresAt.Before(now)
}

func (i TokenInfo) String() string {
	if !i.JWT {
		return "opaque token"
	}
	s := "jwt"
	if i.Subject != "" {
		s += fmt.Sprintf(", subject %s", i.Subject)
	}
	if !i.ExpiresAt.IsZero() {
		s += fmt.Sprintf(", expires %s", i.ExpiresAt.UTC().Format(time.RFC3339))
	}
	return s
}

// DescribeToken decodes the claims of a JWT credential without verifying
// its signature. Non-JWT credentials yield TokenInfo{JWT: false}.
func DescribeToken(token string) TokenInfo {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return TokenInfo{}
	}

	info := TokenInfo{JWT: true}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	return info
}
