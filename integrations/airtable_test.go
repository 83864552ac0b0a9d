// ABOUTME: Tests for the Airtable adapter against an httptest server
// ABOUTME: Verifies URLs, bearer auth, normalization and error propagation
package integrations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/settings"
	"github.com/harperreed/crmdash/transport"
)

func airtableConfig() settings.AirtableConfig {
	cfg := settings.Defaults().Airtable
	cfg.APIKey = "patTEST"
	cfg.BaseID = "appBASE"
	return cfg
}

func newAirtable(t *testing.T, handler http.HandlerFunc, cfg settings.AirtableConfig, opts ...Option) *AirtableAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	opts = append([]Option{WithAirtableBaseURL(srv.URL + "/v0"), WithHTTPClient(srv.Client())}, opts...)
	return NewAirtableAdapter(cfg, opts...)
}

func TestAirtableFetchContacts(t *testing.T) {
	a := newAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/appBASE/Contacts", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("maxRecords"))
		assert.Equal(t, "Bearer patTEST", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{"records":[
			{"id":"rec1","createdTime":"2024-01-01T00:00:00.000Z","fields":{"Name":"Budi Santoso","Company":"PT Maju Bersama","Status":"Lead"}},
			{"fields":{}}
		]}`))
	}, airtableConfig())

	got, err := a.FetchContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "rec1", got[0].ID)
	assert.Equal(t, "Budi Santoso", got[0].Name)
	assert.Equal(t, models.ContactLead, got[0].Status)
	assert.Equal(t, "1", got[1].ID)
	assert.Equal(t, models.PlaceholderName, got[1].Name)
}

func TestAirtableEscapesTableName(t *testing.T) {
	cfg := airtableConfig()
	cfg.DealsTable = "Sales Deals/2024"

	a := newAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/appBASE/Sales%20Deals%2F2024", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{"records":[{"id":"d1","fields":{"Title":"Lisensi","Value":125000000}}]}`))
	}, cfg)

	got, err := a.FetchDeals(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Rp 125Jt", got[0].ValueFmt)
}

func TestAirtableMaxRecordsOption(t *testing.T) {
	a := newAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/appBASE/Companies", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("maxRecords"))
		_, _ = w.Write([]byte(`{"records":[]}`))
	}, airtableConfig(), WithMaxRecords(25))

	got, err := a.FetchCompanies(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAirtableErrorMessageSurfaces(t *testing.T) {
	a := newAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":{"message":"INVALID_BASE_ID"}}`))
	}, airtableConfig())

	_, err := a.FetchActivities(context.Background())
	require.Error(t, err)
	assert.Equal(t, "INVALID_BASE_ID", err.Error())
	assert.True(t, transport.IsHTTPStatus(err, http.StatusUnprocessableEntity))
}

func TestAirtableMissingRecordsIsInvalid(t *testing.T) {
	a := newAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"offset":"itr1"}`))
	}, airtableConfig())

	_, err := a.FetchContacts(context.Background())
	assert.ErrorIs(t, err, transport.ErrInvalidResponse)
}

func TestAirtableTestConnection(t *testing.T) {
	var calls atomic.Int32
	a := newAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v0/appBASE/Contacts", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("maxRecords"))
		if calls.Add(1) == 1 {
			_, _ = w.Write([]byte(`{"records":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{}`))
	}, airtableConfig())

	ok, err := a.TestConnection(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = a.TestConnection(context.Background())
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, int32(2), calls.Load())
}

func TestAirtableTestConnectionAuthFailure(t *testing.T) {
	a := newAirtable(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"type":"AUTHENTICATION_REQUIRED","message":"Authentication required"}}`))
	}, airtableConfig())

	ok, err := a.TestConnection(context.Background())
	assert.False(t, ok)
	assert.EqualError(t, err, "Authentication required")
}
