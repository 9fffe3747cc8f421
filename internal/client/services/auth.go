// Package services holds the flows behind the CLI commands. Each service
// talks to the API only through client.Client.
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/researchhub/hubcli/internal/client/client"
	"github.com/researchhub/hubcli/internal/client/models"
	"github.com/researchhub/hubcli/internal/logging"
)

const (
	fallbackLoginFailed    = "Login failed"
	fallbackRegisterFailed = "Registration failed"
)

// SessionWriter is the part of the session store the auth flow writes to.
type SessionWriter interface {
	SetSession(ctx context.Context, token string, profile *models.User)
	Clear(ctx context.Context)
}

// LoginResult is the session established by a successful login. Profile is
// nil when the profile could not be fetched; ProfileErr then says why.
type LoginResult struct {
	Token      string
	Profile    *models.User
	ProfileErr error
}

// AuthError is a failed login or registration, carrying the message shown
// to the user and the underlying client error.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string { return e.Message }
func (e *AuthError) Unwrap() error { return e.Err }

// AuthService defines the login, registration and logout flows.
//
// Contract:
//   - Login: validate, exchange credentials for a token, fetch the profile
//     with that token, store both. Nothing is stored on failure. A 401 from
//     /api/me fails the whole login; any other profile failure still logs
//     in, with LoginResult.ProfileErr set and no profile.
//   - Register: validate, create the account. Never touches the session.
//   - Logout: clear the session.
type AuthService interface {
	Login(ctx context.Context, form LoginForm) (LoginResult, error)
	Register(ctx context.Context, form SignupForm) error
	Logout(ctx context.Context)
}

type authService struct {
	client  client.Client
	session SessionWriter
	logger  logging.Logger
}

func NewAuthService(c client.Client, session SessionWriter, logger logging.Logger) AuthService {
	return &authService{client: c, session: session, logger: logger}
}

func (s *authService) Login(ctx context.Context, form LoginForm) (LoginResult, error) {
	if err := validateForm(form); err != nil {
		return LoginResult{}, err
	}

	tok, err := client.IssueToken(ctx, s.client, models.TokenRequest{Username: form.Email, Password: form.Password})
	if err != nil {
		return LoginResult{}, authFailure(err, fallbackLoginFailed)
	}

	res := LoginResult{Token: tok.AccessToken}

	profile, err := client.CurrentUser(ctx, s.client, tok.AccessToken)
	switch {
	case errors.Is(err, client.ErrUnauthorized):
		// the token was issued and rejected at once; storing it would only
		// produce a session-expired notice on the next call
		return LoginResult{}, authFailure(err, fallbackLoginFailed)
	case err != nil:
		s.logger.Warn(ctx, "profile fetch failed, continuing without profile", "error", err)
		res.ProfileErr = fmt.Errorf("fetch profile: %w", err)
	default:
		res.Profile = &profile
	}

	s.session.SetSession(ctx, res.Token, res.Profile)
	s.logger.Info(ctx, "logged in", "email", form.Email)
	return res, nil
}

func (s *authService) Register(ctx context.Context, form SignupForm) error {
	if err := validateForm(form); err != nil {
		return err
	}

	err := client.Register(ctx, s.client, models.RegisterRequest{
		Email:    form.Email,
		Username: form.Username,
		FullName: form.FullName,
		Password: form.Password,
	})
	if err != nil {
		return authFailure(err, fallbackRegisterFailed)
	}

	s.logger.Info(ctx, "registered", "email", form.Email)
	return nil
}

func (s *authService) Logout(ctx context.Context) {
	s.session.Clear(ctx)
	s.logger.Info(ctx, "logged out")
}

func authFailure(err error, fallback string) error {
	return &AuthError{Message: client.DetailOr(err, fallback), Err: err}
}
