package cli

import (
	"context"
	"fmt"
)

// status renders the prompt state: current route and, when logged in, the
// user's display name.
func (a *App) status() string {
	s := a.router.Current()
	snap := a.session.Snapshot()
	if snap.Token == "" {
		return fmt.Sprintf("(%s)", s)
	}
	if snap.Profile != nil {
		return fmt.Sprintf("(%s %s)", snap.Profile.DisplayName(), s)
	}
	return fmt.Sprintf("(logged in %s)", s)
}

func (a *App) flush() {
	if err := a.notices.Flush(a.out); err != nil {
		a.logger.Warn(context.Background(), "notices not written", "error", err)
	}
}

// Run starts the REPL and blocks until the user exits. The session
// loaded at start-up is reused as is: no request is made until a command
// needs one.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "ResearchHub CLI (type 'help' for commands)")
	if p, ok := a.session.Profile(); ok && a.isLoggedIn() {
		fmt.Fprintf(a.out, "Signed in as %s\n", p.DisplayName())
	}

	runREPL(ctx, a, a.status, a.reader)
}
