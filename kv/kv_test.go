// ABOUTME: Contract tests shared by every Store backend
// ABOUTME: Exercises badger (disk and memory) and sqlite with the same cases
package kv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func backends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	disk, err := OpenBadger(filepath.Join(dir, "badger"))
	require.NoError(t, err)
	mem, err := OpenBadgerInMemory()
	require.NoError(t, err)
	lite, err := OpenSQLite(filepath.Join(dir, "lite", "settings.db"))
	require.NoError(t, err)

	stores := map[string]Store{"badger": disk, "badger-memory": mem, "sqlite": lite}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})
	return stores
}

func TestStoreContract(t *testing.T) {
	for name, store := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.Get([]byte("missing"))
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, store.Set([]byte("k"), []byte(`{"platform":"none"}`)))
			got, err := store.Get([]byte("k"))
			require.NoError(t, err)
			assert.Equal(t, `{"platform":"none"}`, string(got))

			// Overwrite replaces the whole value
			require.NoError(t, store.Set([]byte("k"), []byte(`{}`)))
			got, err = store.Get([]byte("k"))
			require.NoError(t, err)
			assert.Equal(t, `{}`, string(got))

			require.NoError(t, store.Delete([]byte("k")))
			_, err = store.Get([]byte("k"))
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.Set([]byte("k"), []byte("v")))
	require.NoError(t, store.Close())

	store, err = OpenSQLite(path)
	require.NoError(t, err)
	defer store.Close()

	got, err := store.Get([]byte("k"))
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func TestOpenUsesXDGDataHome(t *testing.T) {
	origHome := xdg.DataHome
	xdg.DataHome = t.TempDir()
	defer func() { xdg.DataHome = origHome }()

	store, err := Open(BackendSQLite, "")
	require.NoError(t, err)
	defer store.Close()

	_, err = os.Stat(filepath.Join(xdg.DataHome, AppName, "settings.db"))
	assert.NoError(t, err, "sqlite file should live under the XDG data home")
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(Backend("redis"), t.TempDir())
	assert.Error(t, err)
}
