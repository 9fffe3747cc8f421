// Package gate decides whether a protected view may run.
//
// The decision depends only on the presence of a stored token. The token is
// not validated: a stale one passes, and the first API call made by the view
// discovers it (see package client).
package gate

import (
	"context"
	"errors"
	"strings"

	"github.com/researchhub/hubcli/internal/common"
)

// ErrRedirected is returned by Enter when the view was not run because the
// user has no session.
var ErrRedirected = errors.New("not authenticated, redirected to landing")

type TokenReader interface {
	Token() (string, bool)
}

type Navigator interface {
	Redirect(ctx context.Context, route string)
}

type Gate struct {
	tokens TokenReader
	nav    Navigator
}

func New(tokens TokenReader, nav Navigator) *Gate {
	return &Gate{tokens: tokens, nav: nav}
}

// Enter runs view when a token is present, otherwise redirects to the
// landing route. The token is read on every call.
func (g *Gate) Enter(ctx context.Context, route string, view func(context.Context) error) error {
	if _, ok := g.tokens.Token(); !ok {
		g.nav.Redirect(ctx, common.LandingRoute)
		return ErrRedirected
	}
	return view(ctx)
}

// protectedRoutes lists the routes behind the gate. Parameterised routes
// (/analysis/:id, /workspaces/:id) are matched by prefix.
var protectedRoutes = []string{
	"/dashboard",
	"/search",
	"/ai-tools",
	"/upload",
	"/docspace",
}

var protectedPrefixes = []string{
	"/analysis/",
	"/workspaces/",
}

// Protected reports whether route requires a session.
func Protected(route string) bool {
	route = strings.TrimRight(route, "/")
	for _, r := range protectedRoutes {
		if route == r {
			return true
		}
	}
	for _, p := range protectedPrefixes {
		if strings.HasPrefix(route, p) && len(route) > len(p) {
			return true
		}
	}
	return false
}
