// ABOUTME: Chooses the adapter for the active platform in settings
// ABOUTME: A nil result means the caller should show demo data
package integrations

import (
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/settings"
)

// Build returns the adapter for s.Platform, handing it only that platform's
// config. It returns nil for "none", unknown platforms and an Airtable
// config missing its key or base id. The other platforms are always built so
// their own configuration messages reach the user. Build performs no I/O.
func Build(s settings.IntegrationSettings, opts ...Option) Adapter {
	switch s.Platform {
	case models.PlatformAirtable:
		if s.Airtable.APIKey == "" || s.Airtable.BaseID == "" {
			return nil
		}
		return NewAirtableAdapter(s.Airtable, opts...)
	case models.PlatformHubSpot:
		return NewHubSpotAdapter(s.HubSpot)
	case models.PlatformSalesforce:
		return NewSalesforceAdapter(s.Salesforce)
	case models.PlatformERP:
		return NewERPAdapter(s.ERP)
	case models.PlatformWebhook:
		return NewWebhookAdapter(s.Webhook)
	case models.PlatformCustomAPI:
		return NewCustomAPIAdapter(s.CustomAPI, opts...)
	default:
		return nil
	}
}

// BuildFunc is the factory signature consumers depend on so tests can swap it.
type BuildFunc func(settings.IntegrationSettings) Adapter

// Builder binds opts into a BuildFunc.
func Builder(opts ...Option) BuildFunc {
	return func(s settings.IntegrationSettings) Adapter {
		return Build(s, opts...)
	}
}
