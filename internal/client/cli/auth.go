package cli

import (
	"context"
	"time"

	"github.com/researchhub/hubcli/internal/client/notify"
	"github.com/researchhub/hubcli/internal/client/services"
	"github.com/researchhub/hubcli/internal/client/session"
	"github.com/researchhub/hubcli/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
)

const (
	idAuthError     = "auth-error"
	idSignupSuccess = "signup-success"
	idLoginSuccess  = "login-success"
	idProfile       = "profile"
	idLogout        = "logout"
)

// Register prompts for the signup form and creates the account. On success
// the next login prompt is prefilled with the email.
func (a *App) Register(ctx context.Context) error {
	var (
		form services.SignupForm
		err  error
	)
	if form.Email, err = getSimpleText(a.reader, "Email", a.out); err != nil {
		return err
	}
	if form.Username, err = getSimpleText(a.reader, "Username", a.out); err != nil {
		return err
	}
	if form.FullName, err = getSimpleText(a.reader, "Full name", a.out); err != nil {
		return err
	}
	if form.Password, err = getPassword("Password", a.out); err != nil {
		return err
	}
	if form.ConfirmPassword, err = getPassword("Confirm password", a.out); err != nil {
		return err
	}

	if err := a.authService.Register(ctx, form); err != nil {
		a.report(ctx, err, idAuthError, "Registration failed")
		return err
	}

	a.lastEmail = form.Email
	a.notices.Push(idSignupSuccess, notify.Success, "Account created successfully! Please login.")
	return nil
}

// Login prompts for credentials and establishes the session. The view does
// not change: the user stays where they were.
func (a *App) Login(ctx context.Context) error {
	prompt := "Email"
	if a.lastEmail != "" {
		prompt += " [" + a.lastEmail + "]"
	}

	var (
		form services.LoginForm
		err  error
	)
	if form.Email, err = getSimpleText(a.reader, prompt, a.out); err != nil {
		return err
	}
	if form.Email == "" {
		form.Email = a.lastEmail
	}
	if form.Password, err = getPassword("Password", a.out); err != nil {
		return err
	}

	res, err := a.authService.Login(ctx, form)
	if err != nil {
		a.report(ctx, err, idAuthError, "Login failed")
		return err
	}

	a.lastEmail = ""
	name := form.Email
	if res.Profile != nil {
		name = res.Profile.DisplayName()
	}
	a.notices.Push(idLoginSuccess, notify.Success, "Welcome back, "+name+"!")
	if res.ProfileErr != nil {
		a.notices.Push(idProfile, notify.Info, "Logged in, but your profile could not be loaded")
	}
	return nil
}

// Logout clears the session and returns to the landing route.
func (a *App) Logout(ctx context.Context) error {
	a.authService.Logout(ctx)
	a.router.Navigate(common.LandingRoute)
	a.notices.Push(idLogout, notify.Info, "Logged out")
	return nil
}

// Whoami prints the stored session. It makes no API call: a stale token is
// shown as if valid until a request proves otherwise.
func (a *App) Whoami(ctx context.Context) error {
	token, ok := a.session.Token()
	if !ok {
		a.printf("Not logged in\n")
		return nil
	}

	if p, ok := a.session.Profile(); ok {
		a.printf("%s <%s>\n", p.DisplayName(), p.Email)
		if p.Username != "" {
			a.printf("username: %s\n", p.Username)
		}
	} else {
		a.printf("Logged in (profile unavailable)\n")
	}

	info := session.DescribeToken(token)
	a.printf("token: %s\n", info)
	if info.Expired(time.Now()) {
		a.printf("token expiry has passed; the next request will likely ask you to log in again\n")
	}
	return nil
}
