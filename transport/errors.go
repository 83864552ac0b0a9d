// ABOUTME: Typed failures raised by the transport client
// ABOUTME: Separates HTTP status failures from network failures and bad bodies
package transport

import (
	"errors"
	"fmt"
)

// ErrInvalidResponse marks a success response whose body could not be decoded.
var ErrInvalidResponse = errors.New("invalid response body")

// HTTPError is a non-2xx response. Message is the server-provided error text
// when one could be extracted, otherwise "<Platform> error: <status>".
type HTTPError struct {
	Platform   string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NetworkError wraps DNS, connection and timeout failures.
type NetworkError struct {
	Platform string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s request failed: %v", e.Platform, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// fallbackMessage is used when the error body carries no message.
func fallbackMessage(platform string, status int) string {
	return fmt.Sprintf("%s error: %d", platform, status)
}

// extractMessage looks for error.message, then message, then a string error
// field in a JSON error body.
func extractMessage(body map[string]any) string {
	if body == nil {
		return ""
	}
	if nested, ok := body["error"].(map[string]any); ok {
		if msg, ok := nested["message"].(string); ok && msg != "" {
			return msg
		}
	}
	if msg, ok := body["message"].(string); ok && msg != "" {
		return msg
	}
	if msg, ok := body["error"].(string); ok && msg != "" {
		return msg
	}
	return ""
}
