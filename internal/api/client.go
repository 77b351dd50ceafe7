// Package api is the typed client for the storefront backend REST API.
// Every remote interaction in the application goes through it.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

// Error is a failure reported by the backend, carrying the HTTP status and
// the backend's message when one was sent.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend error (%d)", e.Status)
}

// IsAuthError reports whether err indicates an expired or rejected
// session: HTTP 401, or a backend message mentioning the token.
func IsAuthError(err error) bool {
	var apiErr *Error
	if !errors.As(err, &apiErr) {
		return false
	}
	if apiErr.Status == 401 {
		return true
	}
	return strings.Contains(strings.ToLower(apiErr.Message), "token")
}

// envelope matches the backend's error body. Different handlers use
// different keys for the message.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Msg     string `json:"msg"`
	Err     string `json:"error"`
}

func (e *envelope) text() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Msg != "":
		return e.Msg
	default:
		return e.Err
	}
}

// TokenProvider supplies the current bearer token, empty when logged out.
type TokenProvider func() string

// Client wraps the backend REST API. Calls fail fast through a circuit
// breaker once the backend has been consistently unreachable; nothing is
// retried automatically.
type Client struct {
	http        *resty.Client
	breaker     *gobreaker.CircuitBreaker
	logger      *slog.Logger
	token       TokenProvider
	onAuthError func()
}

// Option configures a Client.
type Option func(*Client)

// WithTokenProvider attaches the session token source. When set, every
// request carries an Authorization header.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) { c.token = tp }
}

// WithAuthErrorHook registers a callback invoked whenever the backend
// rejects the session (see IsAuthError). Typically wired to clear the
// local session.
func WithAuthErrorHook(fn func()) Option {
	return func(c *Client) { c.onAuthError = fn }
}

// NewClient creates a client rooted at baseURL/api.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger, opts ...Option) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/") + "/api").
		SetHeader("Content-Type", "application/json").
		SetTimeout(timeout).
		SetRetryCount(0) // retries are user-initiated, never automatic

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "storefront-backend",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	})

	c := &Client{
		http:    httpClient,
		breaker: breaker,
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// do executes one request through the breaker, decoding a 2xx body into
// out (when non-nil) and any error body into an *Error.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	_, err := c.breaker.Execute(func() (interface{}, error) {
		req := c.http.R().SetContext(ctx)

		if c.token != nil {
			if tok := c.token(); tok != "" {
				req.SetHeader("Authorization", tok)
			}
		}
		if body != nil {
			req.SetBody(body)
		}
		if out != nil {
			req.SetResult(out)
		}
		env := &envelope{}
		req.SetError(env)

		resp, err := req.Execute(method, path)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", method, path, err)
		}
		if resp.IsError() {
			return nil, &Error{Status: resp.StatusCode(), Message: env.text()}
		}
		return nil, nil
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return fmt.Errorf("backend unavailable: %w", err)
		}
		if IsAuthError(err) && c.onAuthError != nil {
			c.onAuthError()
		}
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return err
	}
	return nil
}
