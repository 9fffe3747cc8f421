// Package models defines the payloads exchanged with the ResearchHub API.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ID is an identifier the API may send either as a JSON number or a string.
// It is kept in its decimal/string form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON writes integral ids back as numbers so the API sees what it sent.
func (id ID) MarshalJSON() ([]byte, error) {
	if _, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return []byte(id), nil
	}
	return json.Marshal(string(id))
}

func (id ID) String() string { return string(id) }

// User is the profile snapshot returned by GET /api/me at login time.
// It is never refreshed except by logging in again.
type User struct {
	ID        ID     `json:"id"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	Username  string `json:"username,omitempty"`
	CreatedAt string `json:"created_at,omitempty"`
}

// DisplayName prefers the full name, then the username, then the email.
func (u User) DisplayName() string {
	switch {
	case u.FullName != "":
		return u.FullName
	case u.Username != "":
		return u.Username
	default:
		return u.Email
	}
}

// TokenResponse is the body of POST /api/auth/token.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// TokenRequest is the form body of POST /api/auth/token. The API follows the
// OAuth2 password flow, so the email travels in the username field.
type TokenRequest struct {
	Username string `url:"username"`
	Password string `url:"password"`
}

// RegisterRequest is the JSON body of POST /api/auth/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}
