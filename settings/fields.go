// ABOUTME: Field-level editing and masking of per-platform configs
// ABOUTME: Backs the CLI settings set/show commands using JSON field names
package settings

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harperreed/crmdash/models"
)

// textFields maps JSON field names of one platform section to their storage.
func (s *IntegrationSettings) textFields(platform models.Platform) (map[string]*string, map[string]*[]string, error) {
	switch platform {
	case models.PlatformAirtable:
		c := &s.Airtable
		return map[string]*string{
			"apiKey":          &c.APIKey,
			"baseId":          &c.BaseID,
			"contactsTable":   &c.ContactsTable,
			"dealsTable":      &c.DealsTable,
			"activitiesTable": &c.ActivitiesTable,
			"companiesTable":  &c.CompaniesTable,
		}, nil, nil
	case models.PlatformHubSpot:
		c := &s.HubSpot
		return map[string]*string{
			"apiKey":   &c.APIKey,
			"portalId": &c.PortalID,
		}, nil, nil
	case models.PlatformSalesforce:
		c := &s.Salesforce
		return map[string]*string{
			"instanceUrl":  &c.InstanceURL,
			"clientId":     &c.ClientID,
			"clientSecret": &c.ClientSecret,
			"accessToken":  &c.AccessToken,
		}, nil, nil
	case models.PlatformERP:
		c := &s.ERP
		return map[string]*string{
			"baseUrl":  &c.BaseURL,
			"apiKey":   &c.APIKey,
			"authType": (*string)(&c.AuthType),
			"username": &c.Username,
			"password": &c.Password,
		}, map[string]*[]string{
			"modulesEnabled": &c.ModulesEnabled,
		}, nil
	case models.PlatformWebhook:
		c := &s.Webhook
		return map[string]*string{
			"incomingUrl": &c.IncomingURL,
			"outgoingUrl": &c.OutgoingURL,
			"secret":      &c.Secret,
		}, map[string]*[]string{
			"events": &c.Events,
		}, nil
	case models.PlatformCustomAPI:
		c := &s.CustomAPI
		return map[string]*string{
			"baseUrl":            &c.BaseURL,
			"apiKey":             &c.APIKey,
			"authHeader":         &c.AuthHeader,
			"contactsEndpoint":   &c.ContactsEndpoint,
			"dealsEndpoint":      &c.DealsEndpoint,
			"activitiesEndpoint": &c.ActivitiesEndpoint,
			"companiesEndpoint":  &c.CompaniesEndpoint,
		}, nil, nil
	default:
		return nil, nil, fmt.Errorf("platform %q has no configurable fields", platform)
	}
}

// SetField assigns value to the named field of a platform section. List
// fields take a comma-separated value; an empty value clears them.
func (s *IntegrationSettings) SetField(platform models.Platform, field, value string) error {
	texts, lists, err := s.textFields(platform)
	if err != nil {
		return err
	}

	if ptr, ok := texts[field]; ok {
		*ptr = strings.TrimSpace(value)
		return nil
	}
	if ptr, ok := lists[field]; ok {
		*ptr = splitList(value)
		return nil
	}
	return fmt.Errorf("unknown %s field %q (known: %s)", platform, field, strings.Join(FieldNames(platform), ", "))
}

// FieldNames lists the editable fields of a platform section, sorted.
func FieldNames(platform models.Platform) []string {
	var s IntegrationSettings
	texts, lists, err := s.textFields(platform)
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(texts)+len(lists))
	for name := range texts {
		names = append(names, name)
	}
	for name := range lists {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Masked returns a copy safe to print: secrets keep only their last four
// characters.
func (s IntegrationSettings) Masked() IntegrationSettings {
	out := s.Clone()
	for _, secret := range []*string{
		&out.Airtable.APIKey,
		&out.HubSpot.APIKey,
		&out.Salesforce.ClientSecret,
		&out.Salesforce.AccessToken,
		&out.ERP.APIKey,
		&out.ERP.Password,
		&out.Webhook.Secret,
		&out.CustomAPI.APIKey,
	} {
		*secret = mask(*secret)
	}
	return out
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}
	runes := []rune(secret)
	if len(runes) <= 4 {
		return strings.Repeat("•", len(runes))
	}
	return strings.Repeat("•", 4) + string(runes[len(runes)-4:])
}
