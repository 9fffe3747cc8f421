package client

import (
	"context"
	"fmt"

	"github.com/google/go-querystring/query"
	"github.com/researchhub/hubcli/internal/client/models"
)

const (
	PathRegister = "/api/auth/register"
	PathToken    = "/api/auth/token"
	PathMe       = "/api/me"
)

// Register creates an account. It never carries a credential.
func Register(ctx context.Context, c Client, body models.RegisterRequest) error {
	req := Post(PathRegister, body)
	req.Public = true
	return c.Do(ctx, req, nil)
}

// IssueToken exchanges an email and password for a bearer token. The body is
// form-encoded with the email under the "username" key.
func IssueToken(ctx context.Context, c Client, body models.TokenRequest) (models.TokenResponse, error) {
	form, err := query.Values(body)
	if err != nil {
		return models.TokenResponse{}, fmt.Errorf("encode token request: %w", err)
	}

	req := Post(PathToken, form)
	req.Public = true

	var resp models.TokenResponse
	if err := c.Do(ctx, req, &resp); err != nil {
		return models.TokenResponse{}, err
	}
	if resp.AccessToken == "" {
		return models.TokenResponse{}, &RequestFailedError{Status: 200, Detail: "no access token in response"}
	}
	return resp, nil
}

// CurrentUser fetches the profile belonging to token, which need not be the
// stored one.
func CurrentUser(ctx context.Context, c Client, token string) (models.User, error) {
	req := Get(PathMe)
	req.Token = token

	var u models.User
	if err := c.Do(ctx, req, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}
