package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/odyssey-travel/odyssey-console/internal/config"
	"github.com/odyssey-travel/odyssey-console/pkg/apperr"
)

// Client is a thin JSON wrapper over the backend REST API. It owns base URL
// resolution, auth headers, request correlation, and error decoding; the
// repositories own everything else.
type Client struct {
	baseURL string
	httpc   *http.Client
	token   func() string
	logger  *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithTokenProvider installs a bearer-token source consulted per request.
func WithTokenProvider(provider func() string) Option {
	return func(c *Client) {
		c.token = provider
	}
}

// WithHTTPClient replaces the underlying transport.
func WithHTTPClient(httpc *http.Client) Option {
	return func(c *Client) {
		c.httpc = httpc
	}
}

// New builds a Client for the configured backend.
func New(cfg config.APIConfig, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpc:   &http.Client{Timeout: cfg.RequestTimeout()},
		logger:  logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get issues a GET and decodes the JSON response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with an optional JSON body and decodes the response into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return apperr.NewInternal(fmt.Errorf("encode request body: %w", err))
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return apperr.NewInternal(err)
	}
	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Debug("request failed",
				zap.String("method", method),
				zap.String("path", path),
				zap.String("request_id", requestID),
				zap.Error(err))
		}
		return &apperr.Error{Kind: apperr.KindInternal, Message: "backend unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.decodeError(resp, method, path)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperr.NewInternal(fmt.Errorf("decode response for %s %s: %w", method, path, err))
	}
	return nil
}

// errorEnvelope matches the backend's error response body.
type errorEnvelope struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Message string `json:"message"`
}

func (c *Client) decodeError(resp *http.Response, method, path string) error {
	message := resp.Status
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 8192))
	if err == nil && len(raw) > 0 {
		var envelope errorEnvelope
		if json.Unmarshal(raw, &envelope) == nil {
			if envelope.Error.Message != "" {
				message = envelope.Error.Message
			} else if envelope.Message != "" {
				message = envelope.Message
			}
		}
	}
	if c.logger != nil {
		c.logger.Debug("backend rejected request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("message", message))
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		return apperr.NewAuth(message, nil)
	case http.StatusForbidden:
		return apperr.NewPermission(message)
	case http.StatusNotFound:
		return &apperr.Error{Kind: apperr.KindNotFound, Message: message}
	case http.StatusBadRequest:
		return apperr.NewValidation(message, nil)
	default:
		return &apperr.Error{Kind: apperr.KindInternal, Message: message}
	}
}
