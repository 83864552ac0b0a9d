// ABOUTME: Tests for the web dashboard routes
// ABOUTME: Serves pages from an httptest server over demo data
package web

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/crmdash/dashboard"
	"github.com/harperreed/crmdash/kv"
	"github.com/harperreed/crmdash/settings"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	backend, err := kv.OpenBadgerInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	store := settings.NewStore(backend, nil)
	store.Load()

	srv, err := NewServer(store, dashboard.NewLoader(nil, nil), nil)
	require.NoError(t, err)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestDashboardPage(t *testing.T) {
	ts := setupServer(t)

	status, body := get(t, ts.URL+"/")
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "Menampilkan data demo.")
	assert.Contains(t, body, "Rp 1.8M")
	assert.Contains(t, body, "Negotiation")
}

func TestListPages(t *testing.T) {
	ts := setupServer(t)

	for path, want := range map[string]string{
		"/contacts":   "Budi Santoso",
		"/deals":      "Implementasi ERP",
		"/activities": "Follow-up proposal ERP",
		"/companies":  "PT Maju Bersama",
	} {
		status, body := get(t, ts.URL+path)
		assert.Equal(t, http.StatusOK, status, path)
		assert.Contains(t, body, want, path)
	}
}

func TestContactSearch(t *testing.T) {
	ts := setupServer(t)

	_, body := get(t, ts.URL+"/contacts?q=berkah")
	assert.Contains(t, body, "Siti Rahayu")
	assert.NotContains(t, body, "Budi Santoso")
	assert.Contains(t, body, "1 records")
}

func TestStatsJSON(t *testing.T) {
	ts := setupServer(t)

	status, body := get(t, ts.URL+"/api/stats")
	require.Equal(t, http.StatusOK, status)

	var stats dashboard.Stats
	require.NoError(t, json.Unmarshal([]byte(body), &stats))
	assert.Equal(t, 8, stats.TotalContacts)
	assert.Len(t, stats.Pipeline, 6)
}

func TestSnapshotJSON(t *testing.T) {
	ts := setupServer(t)

	_, body := get(t, ts.URL+"/api/snapshot")

	var snap snapshotJSON
	require.NoError(t, json.Unmarshal([]byte(body), &snap))
	assert.Len(t, snap.Deals, 8)
	assert.Len(t, snap.Companies, 8)
}

func TestUnknownRoute(t *testing.T) {
	ts := setupServer(t)

	status, _ := get(t, ts.URL+"/nope")
	assert.Equal(t, http.StatusNotFound, status)
}
