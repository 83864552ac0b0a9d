// ABOUTME: Tests for the factory, placeholder, webhook and custom REST adapters
// ABOUTME: Checks user-facing messages and that misconfiguration never hits the network
package integrations

import (
	"context"
	"errors"
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

func withPlatform(p models.Platform, mutate func(*settings.IntegrationSettings)) settings.IntegrationSettings {
	s := settings.Defaults()
	s.Platform = p
	if mutate != nil {
		mutate(&s)
	}
	return s
}

func TestBuild(t *testing.T) {
	assert.Nil(t, Build(settings.Defaults()))
	assert.Nil(t, Build(withPlatform("pipedrive", nil)))
	assert.Nil(t, Build(withPlatform(models.PlatformAirtable, nil)))
	assert.Nil(t, Build(withPlatform(models.PlatformAirtable, func(s *settings.IntegrationSettings) {
		s.Airtable.BaseID = "appX"
	})))

	a := Build(withPlatform(models.PlatformAirtable, func(s *settings.IntegrationSettings) {
		s.Airtable.APIKey, s.Airtable.BaseID = "k", "b"
	}))
	require.NotNil(t, a)
	assert.IsType(t, &AirtableAdapter{}, a)

	// Built even when unconfigured
	for _, p := range []models.Platform{models.PlatformHubSpot, models.PlatformSalesforce, models.PlatformERP, models.PlatformWebhook, models.PlatformCustomAPI} {
		built := Build(withPlatform(p, nil))
		require.NotNil(t, built, p)
		assert.Equal(t, p, built.Platform())
	}
}

func TestBuilderBindsOptions(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"records":[]}`))
	}))
	defer srv.Close()

	build := Builder(WithAirtableBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	a := build(withPlatform(models.PlatformAirtable, func(s *settings.IntegrationSettings) {
		s.Airtable.APIKey, s.Airtable.BaseID = "k", "b"
	}))
	require.NotNil(t, a)

	_, err := a.FetchDeals(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestUnavailableAdapters(t *testing.T) {
	tests := []struct {
		adapter     *UnavailableAdapter
		unavailable string
		missing     string
	}{
		{NewHubSpotAdapter(settings.HubSpotConfig{}), "HubSpot integration belum tersedia.", "HubSpot API Key belum diisi."},
		{NewSalesforceAdapter(settings.SalesforceConfig{}), "Salesforce integration belum tersedia.", "Salesforce Access Token belum diisi."},
		{NewERPAdapter(settings.ERPConfig{}), "ERP integration belum tersedia.", "ERP Base URL belum diisi."},
	}

	for _, tt := range tests {
		t.Run(tt.unavailable, func(t *testing.T) {
			ctx := context.Background()

			_, err := tt.adapter.FetchContacts(ctx)
			assert.EqualError(t, err, tt.unavailable)
			assert.ErrorIs(t, err, ErrNotAvailable)
			_, err = tt.adapter.FetchDeals(ctx)
			assert.EqualError(t, err, tt.unavailable)
			_, err = tt.adapter.FetchActivities(ctx)
			assert.EqualError(t, err, tt.unavailable)
			_, err = tt.adapter.FetchCompanies(ctx)
			assert.EqualError(t, err, tt.unavailable)

			ok, err := tt.adapter.TestConnection(ctx)
			assert.False(t, ok)
			assert.EqualError(t, err, tt.missing)
			assert.ErrorIs(t, err, ErrNotConfigured)
		})
	}
}

func TestUnavailableAdapterConfigured(t *testing.T) {
	a := NewHubSpotAdapter(settings.HubSpotConfig{APIKey: "pat-na1-123"})
	ok, err := a.TestConnection(context.Background())
	assert.False(t, ok)
	assert.EqualError(t, err, "HubSpot integration belum tersedia.")

	var cfgErr *ConfigError
	assert.False(t, errors.As(err, &cfgErr))
}

func TestWebhookAdapter(t *testing.T) {
	a := NewWebhookAdapter(settings.WebhookConfig{})
	_, err := a.FetchCompanies(context.Background())
	assert.EqualError(t, err, "Webhook hanya menerima data masuk.")
	assert.ErrorIs(t, err, ErrReceiveOnly)

	ok, err := a.TestConnection(context.Background())
	assert.False(t, ok)
	assert.EqualError(t, err, "Webhook URL belum diisi.")

	ok, err = NewWebhookAdapter(settings.WebhookConfig{IncomingURL: "https://hooks.example.com/in"}).TestConnection(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCustomAPIBlankBaseMakesNoRequest(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	cfg := settings.Defaults().CustomAPI
	a := NewCustomAPIAdapter(cfg, WithHTTPClient(srv.Client()))
	ctx := context.Background()

	_, err := a.FetchContacts(ctx)
	assert.EqualError(t, err, "Custom API Base URL belum diisi.")
	assert.ErrorIs(t, err, ErrNotConfigured)
	_, err = a.FetchDeals(ctx)
	assert.Error(t, err)
	_, err = a.FetchActivities(ctx)
	assert.Error(t, err)
	_, err = a.FetchCompanies(ctx)
	assert.Error(t, err)
	ok, err := a.TestConnection(ctx)
	assert.False(t, ok)
	assert.Error(t, err)

	assert.Equal(t, int32(0), hits.Load())
}

func TestCustomAPIFetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer sk-123", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		switch r.URL.Path {
		case "/api/people":
			_, _ = w.Write([]byte(`[{"id":"p1","name":"Budi Santoso","email":"budi@example.com"},42]`))
		case "/deals":
			_, _ = w.Write([]byte(`[{"title":"Lisensi","value":2000000}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	cfg := settings.Defaults().CustomAPI
	cfg.BaseURL = srv.URL
	cfg.APIKey = "sk-123"
	cfg.AuthHeader = "X-Api-Key"
	cfg.ContactsEndpoint = "/api/people"
	a := NewCustomAPIAdapter(cfg, WithHTTPClient(srv.Client()))

	contacts, err := a.FetchContacts(context.Background())
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Budi Santoso", contacts[0].Name)
	assert.Equal(t, "-", contacts[0].Phone)
	assert.Equal(t, "1", contacts[1].ID)

	deals, err := a.FetchDeals(context.Background())
	require.NoError(t, err)
	require.Len(t, deals, 1)
	assert.Equal(t, "Rp 2Jt", deals[0].ValueFmt)

	_, err = a.FetchCompanies(context.Background())
	assert.EqualError(t, err, "Custom API error: 404")

	ok, err := a.TestConnection(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCustomAPIRejectsNonArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))
	defer srv.Close()

	cfg := settings.Defaults().CustomAPI
	cfg.BaseURL = srv.URL
	a := NewCustomAPIAdapter(cfg, WithHTTPClient(srv.Client()))

	_, err := a.FetchActivities(context.Background())
	assert.ErrorIs(t, err, transport.ErrInvalidResponse)

	ok, err := a.TestConnection(context.Background())
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCustomAPIDefaultAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	a := NewCustomAPIAdapter(settings.CustomAPIConfig{BaseURL: srv.URL, APIKey: "tok", ContactsEndpoint: "/c"}, WithHTTPClient(srv.Client()))
	got, err := a.FetchContacts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}
