package api

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
)

// maxResponseSize is the maximum allowed response size from the backend (10MB)
const maxResponseSize = 10 * 1024 * 1024

// Sentinel errors for classifying backend failures
var (
	ErrConfigMissingBaseURL = errors.New("api: base URL is required")
	ErrUnavailable          = errors.New("api: backend unavailable")
	ErrRequestFailed        = errors.New("api: request failed")
	ErrInvalidResponse      = errors.New("api: invalid response")
	ErrNotFound             = errors.New("api: resource not found")
	ErrUnauthorized         = errors.New("api: unauthorized")
	ErrEmptyProductID       = errors.New("api: product id is empty")
	ErrEmptyID              = errors.New("api: id is empty")
)

// Config holds the connection settings for the backend commerce API
type Config struct {
	BaseURL        string
	TimeoutSeconds int
}

// Validate checks the configuration and applies defaults
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api: base URL must be absolute: %q", c.BaseURL)
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 10
	}
	return nil
}

// TokenSource supplies the bearer token attached to requests. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to the TokenSource interface
type TokenFunc func() string

// Token implements TokenSource
func (f TokenFunc) Token() string { return f() }

// Client is a typed HTTP client for the backend commerce API. All
// responses use the backend's {success,data,message} envelope.
type Client struct {
	config     *Config
	httpClient *http.Client
	tokens     TokenSource
}

// NewClient creates a new API client with the given configuration
func NewClient(config *Config, tokens TokenSource) (*Client, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		tokens: tokens,
	}, nil
}

// Pagination describes the backend's list pagination metadata
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// FieldError is a per-field validation failure reported by the backend
type FieldError struct {
	Path    []string `json:"path,omitempty"`
	Message string   `json:"message"`
}

// envelope is the backend's standard response wrapper
type envelope struct {
	Success    bool            `json:"success"`
	Data       json.RawMessage `json:"data,omitempty"`
	Message    string          `json:"message,omitempty"`
	Pagination *Pagination     `json:"pagination,omitempty"`
	Errors     []FieldError    `json:"errors,omitempty"`
}

// Error is a failure response from the backend. It unwraps to one of the
// package sentinel errors so callers can classify without string matching.
type Error struct {
	Status  int
	Message string
	Fields  []FieldError
}

// Error implements the error interface
func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for _, f := range e.Fields {
			if len(f.Path) > 0 {
				parts = append(parts, strings.Join(f.Path, ".")+": "+f.Message)
			} else {
				parts = append(parts, f.Message)
			}
		}
		return fmt.Sprintf("api: HTTP %d: %s", e.Status, strings.Join(parts, ", "))
	}
	return fmt.Sprintf("api: HTTP %d: %s", e.Status, e.Message)
}

// Unwrap maps the HTTP status to a sentinel error
func (e *Error) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	default:
		return ErrRequestFailed
	}
}

// do performs a request against the backend and decodes the envelope
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (*envelope, error) {
	endpoint := strings.TrimRight(c.config.BaseURL, "/") + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("api: failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("api: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("api: failed to read response: %w", err)
	}

	var env envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			if resp.StatusCode >= 400 {
				return nil, &Error{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
			}
			return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
		}
	}

	if resp.StatusCode >= 400 || !env.Success {
		msg := env.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, &Error{Status: resp.StatusCode, Message: msg, Fields: env.Errors}
	}

	return &env, nil
}

// decode unmarshals the envelope's data payload into T
func decode[T any](env *envelope) (T, error) {
	var out T
	if len(env.Data) == 0 {
		return out, fmt.Errorf("%w: missing data", ErrInvalidResponse)
	}
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return out, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return out, nil
}
