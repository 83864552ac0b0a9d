// ABOUTME: Error kinds surfaced by adapters besides transport failures
// ABOUTME: Messages are the user-facing text shown in the fallback banner
package integrations

import (
	"errors"

	"github.com/harperreed/crmdash/models"
)

var (
	// ErrNotConfigured matches a ConfigError.
	ErrNotConfigured = errors.New("integration not configured")
	// ErrNotAvailable matches an UnavailableError.
	ErrNotAvailable = errors.New("integration not available")
	// ErrReceiveOnly matches a ReceiveOnlyError.
	ErrReceiveOnly = errors.New("integration is receive-only")
)

// ConfigError reports a required setting that is blank.
type ConfigError struct {
	Platform models.Platform
	Field    string // JSON name of the missing setting
	Message  string
}

func (e *ConfigError) Error() string { return e.Message }

func (e *ConfigError) Is(target error) bool { return target == ErrNotConfigured }

// UnavailableError is returned by platforms that are listed but not yet
// implemented.
type UnavailableError struct {
	Platform models.Platform
}

func (e *UnavailableError) Error() string {
	return e.Platform.DisplayName() + " integration belum tersedia."
}

func (e *UnavailableError) Is(target error) bool { return target == ErrNotAvailable }

// ReceiveOnlyError is returned when pulling data from a push-only platform.
type ReceiveOnlyError struct {
	Platform models.Platform
}

func (e *ReceiveOnlyError) Error() string {
	return e.Platform.DisplayName() + " hanya menerima data masuk."
}

func (e *ReceiveOnlyError) Is(target error) bool { return target == ErrReceiveOnly }
