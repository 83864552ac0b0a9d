// ABOUTME: Tests for the CLI commands
// ABOUTME: Runs commands against an in-memory settings store and captures their output
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harperreed/crmdash/dashboard"
	"github.com/harperreed/crmdash/kv"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/settings"
)

func setupEnv(t *testing.T, asJSON bool) (*Env, *bytes.Buffer) {
	t.Helper()
	backend, err := kv.OpenBadgerInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = backend.Close() })

	store := settings.NewStore(backend, nil)
	store.Load()

	var out bytes.Buffer
	return &Env{
		Store:  store,
		Loader: dashboard.NewLoader(nil, nil),
		Out:    &out,
		JSON:   asJSON,
	}, &out
}

func TestPlatformsCommand(t *testing.T) {
	env, out := setupEnv(t, false)
	require.NoError(t, PlatformsCommand(env, nil))

	assert.Contains(t, out.String(), "airtable")
	assert.Contains(t, out.String(), "Custom API")
}

func TestPlatformsCommandJSON(t *testing.T) {
	env, out := setupEnv(t, true)
	require.NoError(t, SettingsCommand(env, []string{"set", "airtable", "apiKey=patKEY", "baseId=appBASE"}))
	out.Reset()
	require.NoError(t, SettingsCommand(env, []string{"use", "airtable"}))
	out.Reset()

	require.NoError(t, PlatformsCommand(env, nil))

	var rows []platformRow
	require.NoError(t, json.Unmarshal(out.Bytes(), &rows))
	require.Len(t, rows, len(models.Platforms))
	assert.Equal(t, models.PlatformAirtable, rows[0].ID)
	assert.True(t, rows[0].Active)
	assert.True(t, rows[0].Connected)
	assert.False(t, rows[1].Connected)
}

func TestSettingsSetAndShowMasked(t *testing.T) {
	env, out := setupEnv(t, true)

	require.NoError(t, SettingsCommand(env, []string{"set", "custom_api", "baseUrl=https://crm.example.com/api", "apiKey=supersecret"}))
	assert.Equal(t, "https://crm.example.com/api", env.Store.Current().CustomAPI.BaseURL)

	out.Reset()
	require.NoError(t, SettingsCommand(env, []string{"show"}))

	var shown settings.IntegrationSettings
	require.NoError(t, json.Unmarshal(out.Bytes(), &shown))
	assert.Equal(t, "••••cret", shown.CustomAPI.APIKey)
	assert.Equal(t, "supersecret", env.Store.Current().CustomAPI.APIKey)
}

func TestSettingsSetRejectsInvalidURL(t *testing.T) {
	env, _ := setupEnv(t, false)

	err := SettingsCommand(env, []string{"set", "custom_api", "baseUrl=not a url"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customApi.baseUrl")
	assert.Empty(t, env.Store.Current().CustomAPI.BaseURL)
}

func TestSettingsSetErrors(t *testing.T) {
	env, _ := setupEnv(t, false)

	assert.Error(t, SettingsCommand(env, nil))
	assert.Error(t, SettingsCommand(env, []string{"set", "airtable"}))
	assert.Error(t, SettingsCommand(env, []string{"set", "airtable", "apiKey"}))
	assert.Error(t, SettingsCommand(env, []string{"set", "airtable", "nope=1"}))
	assert.Error(t, SettingsCommand(env, []string{"set", "none", "apiKey=1"}))
	assert.Error(t, SettingsCommand(env, []string{"use", "zoho"}))
	assert.Error(t, SettingsCommand(env, []string{"frobnicate"}))
}

func TestSettingsDisconnectAndReset(t *testing.T) {
	env, _ := setupEnv(t, false)
	require.NoError(t, SettingsCommand(env, []string{"set", "airtable", "apiKey=patKEY", "baseId=appBASE"}))
	require.NoError(t, SettingsCommand(env, []string{"use", "airtable"}))

	require.NoError(t, SettingsCommand(env, []string{"disconnect"}))
	assert.Equal(t, models.PlatformNone, env.Store.Current().Platform)
	assert.Equal(t, "patKEY", env.Store.Current().Airtable.APIKey)

	require.NoError(t, SettingsCommand(env, []string{"reset"}))
	assert.Equal(t, settings.Defaults(), env.Store.Current())
}

func TestFetchContactsTable(t *testing.T) {
	env, out := setupEnv(t, false)
	require.NoError(t, FetchCommand(env, []string{"contacts"}))

	assert.Contains(t, out.String(), "Showing demo data")
	assert.Contains(t, out.String(), "Budi Santoso")
	assert.Contains(t, out.String(), "8 records (demo)")
}

func TestFetchDealsJSONFlag(t *testing.T) {
	env, out := setupEnv(t, false)
	require.NoError(t, FetchCommand(env, []string{"--json", "deals"}))

	var got fetchOutput[models.Deal]
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, dashboard.SourceDemo, got.Source)
	assert.Len(t, got.Records, 8)
}

func TestFetchWarnsOnAdapterFailure(t *testing.T) {
	env, out := setupEnv(t, false)
	require.NoError(t, SettingsCommand(env, []string{"use", "hubspot"}))
	out.Reset()

	require.NoError(t, FetchCommand(env, []string{"companies"}))
	assert.Contains(t, out.String(), "HubSpot integration belum tersedia.")
	assert.Contains(t, out.String(), "PT Maju Bersama")
}

func TestFetchErrors(t *testing.T) {
	env, _ := setupEnv(t, false)
	assert.Error(t, FetchCommand(env, nil))
	assert.Error(t, FetchCommand(env, []string{"invoices"}))
}

func TestTestCommand(t *testing.T) {
	env, out := setupEnv(t, false)
	require.NoError(t, TestCommand(env, nil))
	assert.Contains(t, out.String(), "Belum ada platform yang dipilih.")

	env, out = setupEnv(t, true)
	require.NoError(t, SettingsCommand(env, []string{"use", "webhook"}))
	out.Reset()
	require.NoError(t, TestCommand(env, nil))

	var got testOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.False(t, got.OK)
	assert.Equal(t, "Webhook", got.Platform)
	assert.Equal(t, "Webhook URL belum diisi.", got.Message)
}

func TestDashboardCommand(t *testing.T) {
	env, out := setupEnv(t, false)
	require.NoError(t, DashboardCommand(env, nil))
	assert.Contains(t, out.String(), "CRM DASHBOARD")
	assert.Contains(t, out.String(), "DEMO DATA")

	env, out = setupEnv(t, true)
	require.NoError(t, DashboardCommand(env, nil))

	var stats dashboard.Stats
	require.NoError(t, json.Unmarshal(out.Bytes(), &stats))
	assert.Equal(t, 8, stats.TotalDeals)
	assert.False(t, stats.Live)
}

func TestMCPServerRegistersTools(t *testing.T) {
	env, _ := setupEnv(t, false)
	server := NewMCPServer(env, "test")

	ctx := context.Background()
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	defer serverSession.Close()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, &mcp.ListToolsParams{})
	require.NoError(t, err)

	var names []string
	for _, tool := range tools.Tools {
		names = append(names, tool.Name)
	}
	assert.ElementsMatch(t, []string{
		"list_contacts", "list_deals", "list_activities", "list_companies",
		"test_connection", "get_integration_status",
	}, names)

	resources, err := session.ListResources(ctx, &mcp.ListResourcesParams{})
	require.NoError(t, err)
	assert.Len(t, resources.Resources, 5)

	prompts, err := session.ListPrompts(ctx, &mcp.ListPromptsParams{})
	require.NoError(t, err)
	assert.Len(t, prompts.Prompts, 4)
}
