// ABOUTME: Settings store persisting one JSON blob in the local KV backend
// ABOUTME: Loads with defaults on any failure and never lets a write failure escape as a crash
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/harperreed/crmdash/kv"
	"github.com/harperreed/crmdash/logging"
	"github.com/harperreed/crmdash/models"
)

// StorageKey is the fixed key the settings blob lives under.
const StorageKey = "nateecrm_integration_settings"

// Store holds the current settings and persists them to a kv.Store.
type Store struct {
	backend kv.Store
	logger  *zap.Logger

	mu      sync.RWMutex
	current IntegrationSettings
}

// NewStore creates a store over backend. The current value starts at Defaults
// until Load is called.
func NewStore(backend kv.Store, logger *zap.Logger) *Store {
	return &Store{
		backend: backend,
		logger:  logging.OrNop(logger).Named("settings"),
		current: Defaults(),
	}
}

// Load reads the persisted blob and merges it over the defaults. A missing,
// unreadable or corrupt blob yields the defaults.
func (s *Store) Load() IntegrationSettings {
	loaded := Defaults()

	blob, err := s.backend.Get([]byte(StorageKey))
	switch {
	case errors.Is(err, kv.ErrNotFound):
		// First run
	case err != nil:
		s.logger.Warn("failed to read settings, using defaults", zap.Error(err))
	default:
		merged, mergeErr := Merge(loaded, blob)
		if mergeErr != nil {
			s.logger.Warn("stored settings partially unreadable", zap.Error(mergeErr))
		}
		loaded = merged
	}

	s.mu.Lock()
	s.current = loaded.Clone()
	s.mu.Unlock()
	return loaded
}

// Save replaces the in-memory value with next and then overwrites the
// persisted blob. The in-memory value is updated even if persisting fails;
// the error is logged and returned so callers may surface it or ignore it.
func (s *Store) Save(next IntegrationSettings) error {
	s.mu.Lock()
	s.current = next.Clone()
	s.mu.Unlock()

	data, err := json.Marshal(next)
	if err != nil {
		s.logger.Warn("failed to encode settings", zap.Error(err))
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	if err := s.backend.Set([]byte(StorageKey), data); err != nil {
		s.logger.Warn("failed to persist settings", zap.Error(err))
		return fmt.Errorf("failed to persist settings: %w", err)
	}
	return nil
}

// Current returns a copy of the last loaded or saved settings.
func (s *Store) Current() IntegrationSettings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// Disconnect switches the platform back to none, keeping every
// per-platform config so reconnecting does not require re-entering it.
func (s *Store) Disconnect() error {
	next := s.Current()
	next.Platform = models.PlatformNone
	return s.Save(next)
}

// Reset overwrites everything with the defaults.
func (s *Store) Reset() error {
	return s.Save(Defaults())
}
