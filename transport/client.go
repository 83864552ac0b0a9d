// ABOUTME: Authenticated JSON GET client shared by the platform adapters
// ABOUTME: Applies timeouts and body limits and maps failures to typed errors
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/harperreed/crmdash/logging"
)

const (
	// DefaultTimeout bounds a single request including reading the body.
	DefaultTimeout = 30 * time.Second

	// MaxBodyBytes caps how much of any response body is read.
	MaxBodyBytes = 10 << 20
)

// Config configures a Client.
type Config struct {
	// Platform labels errors and log lines, e.g. "Airtable".
	Platform   string
	HTTPClient *http.Client
	Timeout    time.Duration
	Logger     *zap.Logger
}

// Client performs JSON GET requests for one platform. It holds no mutable
// state and is safe for concurrent use.
type Client struct {
	platform   string
	httpClient *http.Client
	timeout    time.Duration
	logger     *zap.Logger
}

// New creates a client. A nil HTTPClient uses http.DefaultClient and a zero
// Timeout uses DefaultTimeout.
func New(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		platform:   cfg.Platform,
		httpClient: httpClient,
		timeout:    timeout,
		logger:     logging.OrNop(cfg.Logger).Named("transport"),
	}
}

// Platform returns the label used in error messages.
func (c *Client) Platform() string {
	return c.platform
}

// Get issues a GET to url with headers and decodes the JSON body into T.
func Get[T any](ctx context.Context, c *Client, url string, headers map[string]string) (T, error) {
	var out T

	body, err := c.do(ctx, url, headers)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("%s: %w: %v", c.platform, ErrInvalidResponse, err)
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", c.platform, err)
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("platform", c.platform),
			zap.String("url", req.URL.Redacted()),
			zap.Error(err))
		return nil, &NetworkError{Platform: c.platform, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodyBytes))
	if err != nil {
		return nil, &NetworkError{Platform: c.platform, Err: err}
	}

	c.logger.Debug("request complete",
		zap.String("platform", c.platform),
		zap.String("url", req.URL.Redacted()),
		zap.Int("status", resp.StatusCode),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.statusError(resp.StatusCode, body)
	}
	return body, nil
}

func (c *Client) statusError(status int, body []byte) *HTTPError {
	var parsed map[string]any
	msg := ""
	if err := json.Unmarshal(body, &parsed); err == nil {
		msg = extractMessage(parsed)
	}
	if msg == "" {
		msg = fallbackMessage(c.platform, status)
	}
	return &HTTPError{Platform: c.platform, StatusCode: status, Message: msg}
}

// IsHTTPStatus reports whether err is an HTTPError with the given status.
func IsHTTPStatus(err error, status int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == status
}
