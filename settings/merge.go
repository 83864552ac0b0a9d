// ABOUTME: Shallow merge of a persisted settings blob over the defaults
// ABOUTME: Present top-level keys replace defaults wholesale; absent keys keep them
package settings

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Merge decodes blob and lays it over base one top-level key at a time.
//
// Nested per-platform objects are replaced in full, not deep-merged: a stored
// {"customApi":{"baseUrl":"x"}} leaves customApi.authHeader empty rather than
// the default. A section that fails to decode keeps the base value and is
// reported in the returned error; the merged result is still usable.
func Merge(base IntegrationSettings, blob []byte) (IntegrationSettings, error) {
	out := base.Clone()

	var top map[string]json.RawMessage
	if err := json.Unmarshal(blob, &top); err != nil {
		return out, fmt.Errorf("failed to decode settings: %w", err)
	}

	var errs []error
	for key, raw := range top {
		if string(raw) == "null" {
			continue
		}

		var    err error
		switch key {
		case "platform":
			err = replace(raw, &out.Platform)
		case "airtable":
			err = replace(raw, &out.Airtable)
		case "hubspot":
			err = replace(raw, &out.HubSpot)
		case "salesforce":
			err = replace(raw, &out.Salesforce)
		case "erp":
			err = replace(raw, &out.ERP)
			if out.ERP.ModulesEnabled == nil {
				out.ERP.ModulesEnabled = []string{}
			}
		case "webhook":
			err = replace(raw, &out.Webhook)
			if out.Webhook.Events == nil {
				out.Webhook.Events = []string{}
			}
		case "customApi":
			err = replace(raw, &out.CustomAPI)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("settings key %q: %w", key, err))
		}
	}

	return out, errors.Join(errs...)
}

// replace decodes raw into a zero value and only assigns it on success, so
// the destination is either fully replaced or untouched.
func replace[T any](raw json.RawMessage, dst *T) error {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	*dst = v
	return nil
}
