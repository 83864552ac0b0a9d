// ABOUTME: Integration platform tags and display metadata
// ABOUTME: Closed set of platforms the adapter factory can dispatch on
package models

// Platform identifies the data source selected in settings.
type Platform string

const (
	PlatformNone       Platform = "none"
	PlatformAirtable   Platform = "airtable"
	PlatformHubSpot    Platform = "hubspot"
	PlatformSalesforce Platform = "salesforce"
	PlatformERP        Platform = "erp"
	PlatformWebhook    Platform = "webhook"
	PlatformCustomAPI  Platform = "custom_api"
)

// IsValid returns true for every known tag, including PlatformNone.
func (p Platform) IsValid() bool {
	switch p {
	case PlatformNone, PlatformAirtable, PlatformHubSpot, PlatformSalesforce,
		PlatformERP, PlatformWebhook, PlatformCustomAPI:
		return true
	default:
		return false
	}
}

// DisplayName returns the label used in messages and listings.
func (p Platform) DisplayName() string {
	switch p {
	case PlatformAirtable:
		return "Airtable"
	case PlatformHubSpot:
		return "HubSpot"
	case PlatformSalesforce:
		return "Salesforce"
	case PlatformERP:
		return "ERP"
	case PlatformWebhook:
		return "Webhook"
	case PlatformCustomAPI:
		return "Custom API"
	case PlatformNone:
		return "Demo"
	default:
		return string(p)
	}
}

type PlatformMeta struct {
	ID          Platform `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Available   bool     `json:"available"`
}

// Platforms is the catalogue shown on the integrations screen.
var Platforms = []PlatformMeta{
	{ID: PlatformAirtable, Name: "Airtable", Description: "Database + REST API. Cocok untuk tim kecil-menengah.", Available: true},
	{ID: PlatformHubSpot, Name: "HubSpot", Description: "CRM lengkap dengan marketing & sales automation.", Available: false},
	{ID: PlatformSalesforce, Name: "Salesforce", Description: "Enterprise CRM terdepan di dunia.", Available: false},
	{ID: PlatformERP, Name: "ERP System", Description: "Integrasi dengan SAP, Oracle, Odoo, atau ERP lainnya via REST/SOAP.", Available: false},
	{ID: PlatformWebhook, Name: "Webhook", Description: "Terima & kirim data otomatis via webhook endpoints.", Available: false},
	{ID: PlatformCustomAPI, Name: "Custom API", Description: "Hubungkan ke REST API apapun dengan konfigurasi endpoint.", Available: false},
}
