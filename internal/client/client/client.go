package client

import (
	"context"
	"net/http"
	"net/url"
)

// Client is the transport-agnostic API surface used by the services.
type Client interface {
	Do(ctx context.Context, req Request, out any) error
}

// Request describes one API call.
//
// Body is sent as JSON, except a url.Values body which is sent form-encoded.
// Token, when set, is attached instead of the stored credential; a 401 on
// such a call is reported without touching the session, since the rejected
// credential is not the stored one.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   any
	Header http.Header
	Token  string
	Public bool
}

// TokenSource is the part of the session store the helper needs.
type TokenSource interface {
	Token() (string, bool)
	Clear(ctx context.Context)
}

// Navigator receives the redirect signal after a session rejection.
type Navigator interface {
	Redirect(ctx context.Context, route string)
}

func Get(path string) Request {
	return Request{Method: http.MethodGet, Path: path}
}

func Post(path string, body any) Request {
	return Request{Method: http.MethodPost, Path: path, Body: body}
}

func Put(path string, body any) Request {
	return Request{Method: http.MethodPut, Path: path, Body: body}
}

func Delete(path string) Request {
	return Request{Method: http.MethodDelete, Path: path}
}
