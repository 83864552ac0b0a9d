// ABOUTME: Local key-value storage used to persist integration settings
// ABOUTME: Defines the Store contract and opens badger or sqlite backends at XDG paths
package kv

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG data home.
const AppName = "crmdash"

// ErrNotFound is returned by Get when a key has never been written.
var ErrNotFound = errors.New("kv: key not found")

// Store is a minimal byte-oriented key-value store.
type Store interface {
	Get(key []byte) ([]byte, error)
	Set(key, value []byte) error
	Delete(key []byte) error
	Close() error
}

// Backend selects the storage engine behind a Store.
type Backend string

const (
	BackendBadger Backend = "badger"
	BackendSQLite Backend = "sqlite"
)

// DefaultDir returns the XDG-compliant data directory.
func DefaultDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// Open opens the requested backend inside dir. An empty dir means DefaultDir.
func Open(backend Backend, dir string) (Store, error) {
	if dir == "" {
		dir = DefaultDir()
	}

	switch backend {
	case BackendBadger, "":
		return OpenBadger(filepath.Join(dir, "settings.badger"))
	case BackendSQLite:
		return OpenSQLite(filepath.Join(dir, "settings.db"))
	default:
		return nil, fmt.Errorf("unknown store backend %q (want badger or sqlite)", backend)
	}
}
