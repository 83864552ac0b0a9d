// ABOUTME: Generic REST adapter reading bare JSON arrays from configured endpoints
// ABOUTME: Sends the API key as a bearer token in a configurable header
package integrations

import (
	"context"

	"go.uber.org/zap"

	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/normalize"
	"github.com/harperreed/crmdash/settings"
	"github.com/harperreed/crmdash/transport"
)

type CustomAPIAdapter struct {
	cfg    settings.CustomAPIConfig
	client *transport.Client
	logger *zap.Logger
}

func NewCustomAPIAdapter(cfg settings.CustomAPIConfig, opts ...Option) *CustomAPIAdapter {
	o := newOptions(opts)
	return &CustomAPIAdapter{
		cfg:    cfg,
		client: o.newClient(models.PlatformCustomAPI.DisplayName(), nil),
		logger: o.logger.Named("custom_api"),
	}
}

func (a *CustomAPIAdapter) adapter() {}

func (a *CustomAPIAdapter) Platform() models.Platform { return models.PlatformCustomAPI }

func (a *CustomAPIAdapter) headers() map[string]string {
	header := a.cfg.AuthHeader
	if header == "" {
		header = "Authorization"
	}
	return map[string]string{
		header:         "Bearer " + a.cfg.APIKey,
		"Content-Type": "application/json",
	}
}

// checkBaseURL fails before any request is made.
func (a *CustomAPIAdapter) checkBaseURL() error {
	if a.cfg.BaseURL == "" {
		return &ConfigError{Platform: models.PlatformCustomAPI, Field: "baseUrl", Message: "Custom API Base URL belum diisi."}
	}
	return nil
}

func fetchEndpoint[T any](ctx context.Context, a *CustomAPIAdapter, endpoint string, fn func(normalize.Record, int) T) ([]T, error) {
	if err := a.checkBaseURL(); err != nil {
		return nil, err
	}

	items, err := transport.Get[[]any](ctx, a.client, a.cfg.BaseURL+endpoint, a.headers())
	if err != nil {
		return nil, err
	}

	a.logger.Debug("fetched endpoint", zap.String("endpoint", endpoint), zap.Int("items", len(items)))
	return normalize.Each(normalize.Items(items), fn), nil
}

func (a *CustomAPIAdapter) FetchContacts(ctx context.Context) ([]models.Contact, error) {
	return fetchEndpoint(ctx, a, a.cfg.ContactsEndpoint, normalize.LenientContact)
}

func (a *CustomAPIAdapter) FetchDeals(ctx context.Context) ([]models.Deal, error) {
	return fetchEndpoint(ctx, a, a.cfg.DealsEndpoint, normalize.LenientDeal)
}

func (a *CustomAPIAdapter) FetchActivities(ctx context.Context) ([]models.Activity, error) {
	return fetchEndpoint(ctx, a, a.cfg.ActivitiesEndpoint, normalize.LenientActivity)
}

func (a *CustomAPIAdapter) FetchCompanies(ctx context.Context) ([]models.Company, error) {
	return fetchEndpoint(ctx, a, a.cfg.CompaniesEndpoint, normalize.LenientCompany)
}

// TestConnection succeeds when the contacts endpoint answers with any JSON.
func (a *CustomAPIAdapter) TestConnection(ctx context.Context) (bool, error) {
	if err := a.checkBaseURL(); err != nil {
		return false, err
	}
	if _, err := transport.Get[any](ctx, a.client, a.cfg.BaseURL+a.cfg.ContactsEndpoint, a.headers()); err != nil {
		return false, err
	}
	return true, nil
}
