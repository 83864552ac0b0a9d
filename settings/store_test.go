// ABOUTME: Tests for settings persistence over an in-memory badger store
// ABOUTME: Covers round-trips, corrupt blobs, failing writes and disconnect/reset
package settings

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/harperreed/crmdash/kv"
	"github.com/harperreed/crmdash/models"
)

func memStore(t *testing.T) kv.Store {
	t.Helper()
	backend, err := kv.OpenBadgerInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })
	return backend
}

// failingStore reads fine but refuses every write.
type failingStore struct {
	blob []byte
}

func (f *failingStore) Get(key []byte) ([]byte, error) {
	if f.blob == nil {
		return nil, kv.ErrNotFound
	}
	return f.blob, nil
}
func (f *failingStore) Set(key, value []byte) error { return errors.New("quota exceeded") }
func (f *failingStore) Delete(key []byte) error     { return nil }
func (f *failingStore) Close() error                { return nil }

func TestLoadWithoutBlobReturnsDefaults(t *testing.T) {
	store := NewStore(memStore(t), nil)

	got := store.Load()
	assert.Equal(t, Defaults(), got)
	assert.Equal(t, models.PlatformNone, got.Platform)
	assert.Equal(t, "Contacts", got.Airtable.ContactsTable)
	assert.Equal(t, "Authorization", got.CustomAPI.AuthHeader)
	assert.NotNil(t, got.ERP.ModulesEnabled)
	assert.NotNil(t, got.Webhook.Events)
}

func TestSaveThenLoadRoundTrips(t *testing.T) {
	backend := memStore(t)
	store := NewStore(backend, nil)

	next := Defaults()
	next.Platform = models.PlatformAirtable
	next.Airtable.APIKey = "key123"
	next.Airtable.BaseID = "appABC"
	next.Webhook.Events = []string{"contact.created", "deal.updated"}
	require.NoError(t, store.Save(next))

	// A fresh store over the same backend sees the saved value
	reloaded := NewStore(backend, nil).Load()
	assert.Equal(t, next, reloaded)

	blob, err := json.Marshal(next)
	require.NoError(t, err)
	merged, err := Merge(Defaults(), blob)
	require.NoError(t, err)
	assert.Equal(t, merged, reloaded)
}

func TestLoadCorruptBlobFallsBackToDefaults(t *testing.T) {
	backend := memStore(t)
	require.NoError(t, backend.Set([]byte(StorageKey), []byte("{not json")))

	core, logs := observer.New(zapcore.WarnLevel)
	store := NewStore(backend, zap.New(core))

	assert.Equal(t, Defaults(), store.Load())
	assert.Equal(t, 1, logs.Len())
}

func TestLoadPartialBlobKeepsOtherDefaults(t *testing.T) {
	backend := memStore(t)
	require.NoError(t, backend.Set([]byte(StorageKey), []byte(`{"platform":"hubspot","hubspot":{"apiKey":"hs"}}`)))

	got := NewStore(backend, nil).Load()
	assert.Equal(t, models.PlatformHubSpot, got.Platform)
	assert.Equal(t, "hs", got.HubSpot.APIKey)
	assert.Equal(t, Defaults().Airtable, got.Airtable)
	assert.Equal(t, Defaults().CustomAPI, got.CustomAPI)
}

func TestSaveFailureKeepsInMemoryValue(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	store := NewStore(&failingStore{}, zap.New(core))

	next := Defaults()
	next.Platform = models.PlatformCustomAPI
	next.CustomAPI.BaseURL = "https://crm.example.com"

	err := store.Save(next)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
	assert.Equal(t, next, store.Current())
	assert.Equal(t, 1, logs.FilterMessage("failed to persist settings").Len())
}

func TestCurrentReturnsCopy(t *testing.T) {
	store := NewStore(memStore(t), nil)
	next := Defaults()
	next.ERP.ModulesEnabled = []string{"inventory"}
	require.NoError(t, store.Save(next))

	cur := store.Current()
	cur.ERP.ModulesEnabled[0] = "changed"
	assert.Equal(t, []string{"inventory"}, store.Current().ERP.ModulesEnabled)
}

func TestDisconnectKeepsPlatformConfigs(t *testing.T) {
	backend := memStore(t)
	store := NewStore(backend, nil)

	next := Defaults()
	next.Platform = models.PlatformAirtable
	next.Airtable.APIKey = "key"
	next.Airtable.BaseID = "base"
	require.NoError(t, store.Save(next))

	require.NoError(t, store.Disconnect())
	got := NewStore(backend, nil).Load()
	assert.Equal(t, models.PlatformNone, got.Platform)
	assert.Equal(t, "key", got.Airtable.APIKey)
	assert.Equal(t, "base", got.Airtable.BaseID)
}

func TestResetRestoresDefaults(t *testing.T) {
	backend := memStore(t)
	store := NewStore(backend, nil)

	next := Defaults()
	next.Platform = models.PlatformHubSpot
	next.HubSpot.APIKey = "hs"
	require.NoError(t, store.Save(next))

	require.NoError(t, store.Reset())
	assert.Equal(t, Defaults(), NewStore(backend, nil).Load())
}

func TestLoadReadErrorUsesDefaults(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	store := NewStore(&brokenReader{}, zap.New(core))

	assert.Equal(t, Defaults(), store.Load())
	assert.Equal(t, 1, logs.FilterMessage("failed to read settings, using defaults").Len())
}

type brokenReader struct{ failingStore }

func (b *brokenReader) Get(key []byte) ([]byte, error) { return nil, errors.New("disk on fire") }
