package cli

import (
	"context"
	"sync"

	"github.com/researchhub/hubcli/internal/common"
	"github.com/researchhub/hubcli/internal/logging"
)

// Router holds the current REPL route and receives redirect signals from
// the gate and the request helper.
type Router struct {
	mu        sync.Mutex
	current   string
	redirects int
	logger    logging.Logger
}

func NewRouter(logger logging.Logger) *Router {
	return &Router{current: common.LandingRoute, logger: logger}
}

// Redirect moves to route. Redirecting to the route already shown is a
// no-op, which absorbs the duplicate signals of concurrent 401s.
func (r *Router) Redirect(ctx context.Context, route string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == route {
		return
	}
	r.logger.Debug(ctx, "redirect", "from", r.current, "to", route)
	r.current = route
	r.redirects++
}

// Navigate is a user-initiated move and is not counted as a redirect.
func (r *Router) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = route
}

func (r *Router) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Redirects counts the effective redirects since start.
func (r *Router) Redirects() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.redirects
}
