package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/researchhub/hubcli/internal/client/metrics"
	"github.com/researchhub/hubcli/internal/common"
	"github.com/researchhub/hubcli/internal/logging"
)

// maxErrorBody bounds how much of an error response is read for its detail.
const maxErrorBody = 64 << 10

type HTTPClient struct {
	baseURL *url.URL
	http    *http.Client
	session TokenSource
	nav     Navigator
	logger  logging.Logger
	metrics metrics.Recorder
}

type Option func(*HTTPClient)

// WithHTTPClient replaces the default http.Client (which has no timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) { c.http = hc }
}

func WithLogger(l logging.Logger) Option {
	return func(c *HTTPClient) { c.logger = l }
}

func WithMetrics(m metrics.Recorder) Option {
	return func(c *HTTPClient) { c.metrics = m }
}

// NewHTTPClient builds the helper for the API rooted at baseURL.
func NewHTTPClient(baseURL string, session TokenSource, nav Navigator, opts ...Option) (*HTTPClient, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("api url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" || u.Host == "" {
		return nil, fmt.Errorf("api url %q: want http(s)://host[:port]", baseURL)
	}

	c := &HTTPClient{
		baseURL: u,
		http:    &http.Client{},
		session: session,
		nav:     nav,
		logger:  logging.Discard(),
		metrics: metrics.Nop{},
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Do performs req and decodes a successful JSON body into out (when out is
// non-nil). See the package documentation for the outcome classes.
func (c *HTTPClient) Do(ctx context.Context, req Request, out any) error {
	token, fromStore := c.credential(req)
	reqID := uuid.NewString()
	log := c.logger.With("request_id", reqID, "method", req.Method, "path", req.Path)

	httpReq, err := c.build(ctx, req, token, reqID)
	if err != nil {
		return err
	}

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		// cancelled by the caller, not a server outage
		if ctxErr := ctx.Err(); ctxErr != nil {
			log.Debug(ctx, "api request abandoned", "error", ctxErr)
			return ctxErr
		}
		c.metrics.RecordOutcome(metrics.OutcomeUnavailable)
		log.Warn(ctx, "api unreachable", "error", err)
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	c.metrics.RecordLatency(time.Since(start))
	log.Debug(ctx, "api response", "status", resp.StatusCode, "elapsed", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusUnauthorized && fromStore:
		c.metrics.RecordOutcome(metrics.OutcomeUnauthorized)
		log.Warn(ctx, "session rejected by api, clearing")
		c.session.Clear(ctx)
		c.nav.Redirect(ctx, common.LandingRoute)
		return ErrUnauthorized

	case resp.StatusCode == http.StatusUnauthorized && req.Token != "":
		c.metrics.RecordOutcome(metrics.OutcomeUnauthorized)
		return ErrUnauthorized

	case resp.StatusCode < 200 || resp.StatusCode > 299:
		c.metrics.RecordOutcome(metrics.OutcomeFailed)
		rf := &RequestFailedError{Status: resp.StatusCode, Detail: readDetail(resp.Body)}
		log.Info(ctx, "api request failed", "status", rf.Status, "detail", rf.Detail)
		return rf
	}

	if err := decode(resp.Body, out); err != nil {
		c.metrics.RecordOutcome(metrics.OutcomeFailed)
		log.Warn(ctx, "undecodable api response", "error", err)
		return &RequestFailedError{Status: resp.StatusCode, Detail: "invalid response from server"}
	}

	c.metrics.RecordOutcome(metrics.OutcomeSuccess)
	return nil
}

// credential picks the token to attach. fromStore is true when the stored
// session is what the server will judge; a 401 then invalidates it. A call
// made without any token also counts: a 401 there still means "log in".
func (c *HTTPClient) credential(req Request) (token string, fromStore bool) {
	switch {
	case req.Token != "":
		return req.Token, false
	case req.Public:
		return "", false
	}
	token, _ = c.session.Token()
	return token, true
}

func (c *HTTPClient) build(ctx context.Context, req Request, token, reqID string) (*http.Request, error) {
	u := *c.baseURL
	u.Path = strings.TrimRight(c.baseURL.Path, "/") + "/" + strings.TrimLeft(req.Path, "/")
	u.RawQuery = req.Query.Encode()

	var (
		body        io.Reader
		contentType string
	)
	switch b := req.Body.(type) {
	case nil:
	case url.Values:
		body = strings.NewReader(b.Encode())
		contentType = "application/x-www-form-urlencoded"
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", req.Method, req.Path, err)
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, req.Path, err)
	}

	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set(common.RequestIDHeaderName, reqID)
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	if token != "" {
		httpReq.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
	}
	return httpReq, nil
}

func decode(r io.Reader, out any) error {
	if out == nil {
		_, _ = io.Copy(io.Discard, r)
		return nil
	}
	err := json.NewDecoder(r).Decode(out)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// readDetail extracts the "detail" field of an error body. FastAPI-style
// validation errors send a list of {"msg": ...}; the first message is used.
func readDetail(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, maxErrorBody))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(body.Detail, &s); err == nil {
		return s
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil && len(items) > 0 {
		return items[0].Msg
	}
	return ""
}
