// Package api wraps outbound HTTP calls to the Carebook backend: it attaches
// the bearer credential, normalizes every success and failure into a single
// Response shape, and logs each round trip.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/carebook/carebook/internal/logging"
)

// TokenSource yields the current access token. The credential store
// satisfies this; the token is read live on every call so a login or logout
// mid-session takes effect immediately.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client performs REST calls against a single base URL.
type Client struct {
	base   string
	http   *http.Client
	tokens TokenSource
	log    logging.Logger
}

type Option func(*Client)

// WithHTTPClient substitutes the underlying transport (tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets a per-request timeout. The default is none: a hung
// request stays pending until its context is cancelled.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func New(base string, tokens TokenSource, log logging.Logger, opts ...Option) *Client {
	c := &Client{
		base:   strings.TrimRight(base, "/"),
		http:   &http.Client{},
		tokens: tokens,
		log:    log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CallOption tweaks a single request.
type CallOption func(*callSettings)

type callSettings struct {
	includeAuth bool
	token       string
}

// NoAuth skips the Authorization header for public endpoints.
func NoAuth() CallOption {
	return func(s *callSettings) { s.includeAuth = false }
}

// WithToken sends the given token instead of the stored one. Used during
// login, when the fresh token exists but has not been persisted yet.
func WithToken(token string) CallOption {
	return func(s *callSettings) { s.token = token }
}

func (c *Client) Get(ctx context.Context, path string, opts ...CallOption) *Response {
	return c.do(ctx, http.MethodGet, path, nil, opts...)
}

func (c *Client) Post(ctx context.Context, path string, body any, opts ...CallOption) *Response {
	return c.do(ctx, http.MethodPost, path, body, opts...)
}

func (c *Client) Put(ctx context.Context, path string, body any, opts ...CallOption) *Response {
	return c.do(ctx, http.MethodPut, path, body, opts...)
}

func (c *Client) Patch(ctx context.Context, path string, body any, opts ...CallOption) *Response {
	return c.do(ctx, http.MethodPatch, path, body, opts...)
}

func (c *Client) Delete(ctx context.Context, path string, opts ...CallOption) *Response {
	return c.do(ctx, http.MethodDelete, path, nil, opts...)
}

func (c *Client) do(ctx context.Context, method, path string, body any, opts ...CallOption) *Response {
	settings := callSettings{includeAuth: true}
	for _, opt := range opts {
		opt(&settings)
	}

	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return &Response{Status: http.StatusInternalServerError, Error: "Failed to encode request"}
		}
		payload = bytes.NewReader(data)
	}

	url := path
	if !strings.HasPrefix(path, "http") {
		url = c.base + path
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return &Response{Status: http.StatusInternalServerError, Error: err.Error()}
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	if settings.token != "" {
		req.Header.Set("Authorization", "JWT "+settings.token)
	} else if settings.includeAuth {
		// fail open: public endpoints stay callable without a token
		tok, err := c.tokens.Token(ctx)
		if err != nil {
			c.log.Warn(ctx, "token read failed, sending unauthenticated", "error", err)
		} else if tok != "" {
			req.Header.Set("Authorization", "JWT "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error(ctx, "request failed", "method", method, "url", url, "request_id", requestID, "error", err)
		msg := err.Error()
		if msg == "" {
			msg = "Network error"
		}
		return &Response{Status: http.StatusInternalServerError, Error: msg}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Response{Status: resp.StatusCode, Error: "Failed to parse response"}
	}

	c.log.Debug(ctx, "request done", "method", method, "url", url, "request_id", requestID, "status", resp.StatusCode)

	out := &Response{Status: resp.StatusCode}
	if len(raw) > 0 && json.Valid(raw) {
		out.Data = json.RawMessage(raw)
	}

	if !out.OK() {
		out.Error = extractError(raw, "Request failed")
		return out
	}

	if len(raw) > 0 && out.Data == nil {
		// 2xx with an unparseable body
		out.Error = "Failed to parse response"
		return out
	}

	out.Message = extractMessage(raw)
	return out
}
