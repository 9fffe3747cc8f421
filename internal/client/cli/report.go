package cli

import (
	"context"
	"errors"

	"github.com/researchhub/hubcli/internal/client/client"
	"github.com/researchhub/hubcli/internal/client/gate"
	"github.com/researchhub/hubcli/internal/client/notify"
	"github.com/researchhub/hubcli/internal/client/services"
)

const (
	msgSessionExpired = "Session expired. Please login again."
	msgUnreachable    = "Server unreachable, try again"
	msgAuthRequired   = "Please login to continue"
)

// report turns a command failure into a notice. id and fallback are the
// feature's notice id and default message for server-side failures. An
// unreachable server wins over the auth failure wrapping it.
func (a *App) report(ctx context.Context, err error, id, fallback string) {
	var (
		ve *services.ValidationError
		ae *services.AuthError
	)

	switch {
	case err == nil:
		return
	case errors.Is(err, gate.ErrRedirected):
		a.notices.Push(notify.IDAuthRequired, notify.Info, msgAuthRequired)
	case errors.As(err, &ve):
		a.logger.Debug(ctx, "form rejected", "violations", ve.Messages())
		a.notices.Push(notify.IDValidation, notify.Error, ve.Error())
	case errors.Is(err, client.ErrUnavailable):
		a.notices.Push(notify.IDNetwork, notify.Error, msgUnreachable)
	case errors.As(err, &ae):
		a.notices.Push(id, notify.Error, ae.Message)
	case errors.Is(err, client.ErrUnauthorized):
		a.notices.Push(notify.IDSessionExpired, notify.Error, msgSessionExpired)
	case errors.Is(err, client.ErrRequestFailed):
		a.notices.Push(id, notify.Error, client.DetailOr(err, fallback))
	default:
		a.logger.Error(ctx, "command failed", "error", err)
		a.notices.Push(id, notify.Error, fallback)
	}
}
