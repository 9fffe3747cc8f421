package gate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokens struct{ token string }

func (t *tokens) Token() (string, bool) { return t.token, t.token != "" }

type nav struct{ routes []string }

func (n *nav) Redirect(_ context.Context, route string) { n.routes = append(n.routes, route) }

func TestEnter_NoTokenRedirects(t *testing.T) {
	n := &nav{}
	g := New(&tokens{}, n)

	ran := false
	err := g.Enter(context.Background(), "/dashboard", func(context.Context) error {
		ran = true
		return nil
	})

	require.ErrorIs(t, err, ErrRedirected)
	assert.False(t, ran)
	assert.Equal(t, []string{"/"}, n.routes)
}

func TestEnter_StaleTokenPasses(t *testing.T) {
	n := &nav{}
	g := New(&tokens{token: "expired-but-present"}, n)

	viewErr := errors.New("view failed")
	err := g.Enter(context.Background(), "/search", func(context.Context) error { return viewErr })

	assert.ErrorIs(t, err, viewErr)
	assert.Empty(t, n.routes)
}

func TestEnter_ReadsTokenEveryTime(t *testing.T) {
	tk := &tokens{token: "t"}
	n := &nav{}
	g := New(tk, n)
	view := func(context.Context) error { return nil }

	require.NoError(t, g.Enter(context.Background(), "/docspace", view))
	tk.token = ""
	require.ErrorIs(t, g.Enter(context.Background(), "/docspace", view), ErrRedirected)
	assert.Equal(t, []string{"/"}, n.routes)
}

func TestProtected(t *testing.T) {
	tests := []struct {
		route string
		want  bool
	}{
		{"/", false},
		{"", false},
		{"/dashboard", true},
		{"/dashboard/", true},
		{"/search", true},
		{"/ai-tools", true},
		{"/upload", true},
		{"/docspace", true},
		{"/analysis/42", true},
		{"/analysis/", false},
		{"/workspaces/7", true},
		{"/unknown", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Protected(tt.route), tt.route)
	}
}
