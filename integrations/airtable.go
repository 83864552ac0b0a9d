// ABOUTME: Airtable adapter reading one page of records per table
// ABOUTME: Authenticates with a static bearer token and normalizes the field bags
package integrations

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/normalize"
	"github.com/harperreed/crmdash/settings"
	"github.com/harperreed/crmdash/transport"
)

// airtableList is the list-records response. Records is a pointer so a
// missing key can be told apart from an empty table.
type airtableList struct {
	Records *[]normalize.Record `json:"records"`
	Offset  string              `json:"offset,omitempty"`
}

type AirtableAdapter struct {
	cfg        settings.AirtableConfig
	client     *transport.Client
	baseURL    string
	maxRecords int
	logger     *zap.Logger
}

// NewAirtableAdapter builds an adapter for cfg. It does not check that the
// credentials are present; Build does.
func NewAirtableAdapter(cfg settings.AirtableConfig, opts ...Option) *AirtableAdapter {
	o := newOptions(opts)
	return &AirtableAdapter{
		cfg:        cfg,
		client:     o.newClient(models.PlatformAirtable.DisplayName(), bearerClient(o.httpClient, cfg.APIKey)),
		baseURL:    strings.TrimRight(o.airtableBaseURL, "/"),
		maxRecords: o.maxRecords,
		logger:     o.logger.Named("airtable"),
	}
}

// bearerClient wraps base so every request carries the API key as a bearer
// token.
func bearerClient(base *http.Client, apiKey string) *http.Client {
	var rt http.RoundTripper = http.DefaultTransport
	var wrapped http.Client
	if base != nil {
		wrapped = *base
		if base.Transport != nil {
			rt = base.Transport
		}
	}
	wrapped.Transport = &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: apiKey, TokenType: "Bearer"}),
		Base:   rt,
	}
	return &wrapped
}

func (a *AirtableAdapter) adapter() {}

func (a *AirtableAdapter) Platform() models.Platform { return models.PlatformAirtable }

func (a *AirtableAdapter) tableURL(table string, maxRecords int) string {
	return fmt.Sprintf("%s/%s/%s?maxRecords=%d", a.baseURL, url.PathEscape(a.cfg.BaseID), url.PathEscape(table), maxRecords)
}

func (a *AirtableAdapter) list(ctx context.Context, table string, maxRecords int) (airtableList, error) {
	return transport.Get[airtableList](ctx, a.client, a.tableURL(table, maxRecords), nil)
}

// fetchTable reads one page of table and maps every record through fn.
func fetchTable[T any](ctx context.Context, a *AirtableAdapter, table string, fn func(normalize.Record, int) T) ([]T, error) {
	page, err := a.list(ctx, table, a.maxRecords)
	if err != nil {
		return nil, err
	}
	if page.Records == nil {
		return nil, fmt.Errorf("Airtable table %q: %w", table, transport.ErrInvalidResponse)
	}

	a.logger.Debug("fetched table",
		zap.String("table", table),
		zap.Int("records", len(*page.Records)),
		zap.Bool("truncated", page.Offset != ""))

	return normalize.Each(*page.Records, fn), nil
}

func (a *AirtableAdapter) FetchContacts(ctx context.Context) ([]models.Contact, error) {
	return fetchTable(ctx, a, a.cfg.ContactsTable, normalize.Contact)
}

func (a *AirtableAdapter) FetchDeals(ctx context.Context) ([]models.Deal, error) {
	return fetchTable(ctx, a, a.cfg.DealsTable, normalize.Deal)
}

func (a *AirtableAdapter) FetchActivities(ctx context.Context) ([]models.Activity, error) {
	return fetchTable(ctx, a, a.cfg.ActivitiesTable, normalize.Activity)
}

func (a *AirtableAdapter) FetchCompanies(ctx context.Context) ([]models.Company, error) {
	return fetchTable(ctx, a, a.cfg.CompaniesTable, normalize.Company)
}

// TestConnection lists a single contact. A list (even empty) means the base
// and key work; a body without records reports false without an error.
func (a *AirtableAdapter) TestConnection(ctx context.Context) (bool, error) {
	page, err := a.list(ctx, a.cfg.ContactsTable, 1)
	if err != nil {
		return false, err
	}
	return page.Records != nil, nil
}
