// ABOUTME: Integration settings shape and hard-coded defaults
// ABOUTME: Mirrors the persisted JSON blob: platform selector plus six per-platform configs
package settings

import (
	"slices"

	"github.com/harperreed/crmdash/models"
)

type AirtableConfig struct {
	APIKey          string `json:"apiKey"`
	BaseID          string `json:"baseId"`
	ContactsTable   string `json:"contactsTable"`
	DealsTable      string `json:"dealsTable"`
	ActivitiesTable string `json:"activitiesTable"`
	CompaniesTable  string `json:"companiesTable"`
}

type HubSpotConfig struct {
	APIKey   string `json:"apiKey"`
	PortalID string `json:"portalId"`
}

type SalesforceConfig struct {
	InstanceURL  string `json:"instanceUrl" validate:"omitempty,url"`
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	AccessToken  string `json:"accessToken"`
}

// ERPAuthType selects how ERP credentials are presented.
type ERPAuthType string

const (
	ERPAuthBearer ERPAuthType = "bearer"
	ERPAuthBasic  ERPAuthType = "basic"
	ERPAuthAPIKey ERPAuthType = "api_key"
)

type ERPConfig struct {
	BaseURL        string      `json:"baseUrl" validate:"omitempty,url"`
	APIKey         string      `json:"apiKey"`
	AuthType       ERPAuthType `json:"authType" validate:"omitempty,oneof=bearer basic api_key"`
	Username       string      `json:"username"`
	Password       string      `json:"password"`
	ModulesEnabled []string    `json:"modulesEnabled"`
}

type WebhookConfig struct {
	IncomingURL string   `json:"incomingUrl" validate:"omitempty,url"`
	OutgoingURL string   `json:"outgoingUrl" validate:"omitempty,url"`
	Secret      string   `json:"secret"`
	Events      []string `json:"events"`
}

type CustomAPIConfig struct {
	BaseURL            string `json:"baseUrl" validate:"omitempty,url"`
	APIKey             string `json:"apiKey"`
	AuthHeader         string `json:"authHeader"`
	ContactsEndpoint   string `json:"contactsEndpoint"`
	DealsEndpoint      string `json:"dealsEndpoint"`
	ActivitiesEndpoint string `json:"activitiesEndpoint"`
	CompaniesEndpoint  string `json:"companiesEndpoint"`
}

// IntegrationSettings is the only persisted entity.
type IntegrationSettings struct {
	Platform   models.Platform  `json:"platform" validate:"platform"`
	Airtable   AirtableConfig   `json:"airtable"`
	HubSpot    HubSpotConfig    `json:"hubspot"`
	Salesforce SalesforceConfig `json:"salesforce"`
	ERP        ERPConfig        `json:"erp"`
	Webhook    WebhookConfig    `json:"webhook"`
	CustomAPI  CustomAPIConfig  `json:"customApi"`
}

// Defaults returns a fresh copy of the default settings.
func Defaults() IntegrationSettings {
	return IntegrationSettings{
		Platform: models.PlatformNone,
		Airtable: AirtableConfig{
			ContactsTable:   "Contacts",
			DealsTable:      "Deals",
			ActivitiesTable: "Activities",
			CompaniesTable:  "Companies",
		},
		ERP: ERPConfig{
			AuthType:       ERPAuthBearer,
			ModulesEnabled: []string{},
		},
		Webhook: WebhookConfig{
			Events: []string{},
		},
		CustomAPI: CustomAPIConfig{
			AuthHeader:         "Authorization",
			ContactsEndpoint:   "/contacts",
			DealsEndpoint:      "/deals",
			ActivitiesEndpoint: "/activities",
			CompaniesEndpoint:  "/companies",
		},
	}
}

// Clone returns a copy that shares no slices with s.
func (s IntegrationSettings) Clone() IntegrationSettings {
	out := s
	out.ERP.ModulesEnabled = cloneList(s.ERP.ModulesEnabled)
	out.Webhook.Events = cloneList(s.Webhook.Events)
	return out
}

func cloneList(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}

// IsConnected reports whether platform is the active one and carries the
// credentials it needs to be considered connected.
func IsConnected(s IntegrationSettings, platform models.Platform) bool {
	if s.Platform != platform {
		return false
	}

	switch platform {
	case models.PlatformAirtable:
		return s.Airtable.APIKey != "" && s.Airtable.BaseID != ""
	case models.PlatformHubSpot:
		return s.HubSpot.APIKey != ""
	case models.PlatformSalesforce:
		return s.Salesforce.AccessToken != ""
	case models.PlatformERP:
		return s.ERP.BaseURL != "" && s.ERP.APIKey != ""
	case models.PlatformWebhook:
		return s.Webhook.IncomingURL != "" || s.Webhook.OutgoingURL != ""
	case models.PlatformCustomAPI:
		return s.CustomAPI.BaseURL != ""
	default:
		return false
	}
}
