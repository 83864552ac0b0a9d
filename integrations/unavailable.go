// ABOUTME: Placeholder adapters for listed platforms that are not implemented yet
// ABOUTME: HubSpot, Salesforce and ERP report missing credentials before unavailability
package integrations

import (
	"context"

	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/settings"
)

// requirement is the one setting a platform must have before its
// connection test gets as far as reporting unavailability.
type requirement struct {
	field   string
	value   string
	message string
}

type UnavailableAdapter struct {
	platform models.Platform
	required requirement
}

func NewHubSpotAdapter(cfg settings.HubSpotConfig) *UnavailableAdapter {
	return &UnavailableAdapter{
		platform: models.PlatformHubSpot,
		required: requirement{field: "apiKey", value: cfg.APIKey, message: "HubSpot API Key belum diisi."},
	}
}

func NewSalesforceAdapter(cfg settings.SalesforceConfig) *UnavailableAdapter {
	return &UnavailableAdapter{
		platform: models.PlatformSalesforce,
		required: requirement{field: "accessToken", value: cfg.AccessToken, message: "Salesforce Access Token belum diisi."},
	}
}

func NewERPAdapter(cfg settings.ERPConfig) *UnavailableAdapter {
	return &UnavailableAdapter{
		platform: models.PlatformERP,
		required: requirement{field: "baseUrl", value: cfg.BaseURL, message: "ERP Base URL belum diisi."},
	}
}

func (a *UnavailableAdapter) adapter() {}

func (a *UnavailableAdapter) Platform() models.Platform { return a.platform }

func (a *UnavailableAdapter) unavailable() error {
	return &UnavailableError{Platform: a.platform}
}

func (a *UnavailableAdapter) FetchContacts(context.Context) ([]models.Contact, error) {
	return nil, a.unavailable()
}

func (a *UnavailableAdapter) FetchDeals(context.Context) ([]models.Deal, error) {
	return nil, a.unavailable()
}

func (a *UnavailableAdapter) FetchActivities(context.Context) ([]models.Activity, error) {
	return nil, a.unavailable()
}

func (a *UnavailableAdapter) FetchCompanies(context.Context) ([]models.Company, error) {
	return nil, a.unavailable()
}

func (a *UnavailableAdapter) TestConnection(context.Context) (bool, error) {
	if a.required.value == "" {
		return false, &ConfigError{Platform: a.platform, Field: a.required.field, Message: a.required.message}
	}
	return false, a.unavailable()
}
