// ABOUTME: MCP resource handlers exposing loaded CRM data
// ABOUTME: Serves crmdash://contacts, deals, activities, companies and dashboard as JSON
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/crmdash/dashboard"
	"github.com/harperreed/crmdash/settings"
)

const resourceScheme = "crmdash://"

type ResourceHandlers struct {
	store  *settings.Store
	loader *dashboard.Loader
}

func NewResourceHandlers(store *settings.Store, loader *dashboard.Loader) *ResourceHandlers {
	return &ResourceHandlers{store: store, loader: loader}
}

// Resources lists what ReadResource can serve.
func (h *ResourceHandlers) Resources() []*mcp.Resource {
	return []*mcp.Resource{
		{URI: resourceScheme + "contacts", Name: "contacts", Description: "All contacts", MIMEType: "application/json"},
		{URI: resourceScheme + "deals", Name: "deals", Description: "All deals", MIMEType: "application/json"},
		{URI: resourceScheme + "activities", Name: "activities", Description: "All activities", MIMEType: "application/json"},
		{URI: resourceScheme + "companies", Name: "companies", Description: "All companies", MIMEType: "application/json"},
		{URI: resourceScheme + "dashboard", Name: "dashboard", Description: "Pipeline and activity statistics", MIMEType: "application/json"},
	}
}

// ReadResource handles resource read requests
func (h *ResourceHandlers) ReadResource(ctx context.Context, request *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	uri := request.Params.URI
	if !strings.HasPrefix(uri, resourceScheme) {
		return nil, fmt.Errorf("invalid URI scheme: expected %s", resourceScheme)
	}

	s := h.store.Load()
	var payload any
	switch strings.TrimPrefix(uri, resourceScheme) {
	case "contacts":
		payload = h.loader.Contacts(ctx, s).Records
	case "deals":
		payload = h.loader.Deals(ctx, s).Records
	case "activities":
		payload = h.loader.Activities(ctx, s).Records
	case "companies":
		payload = h.loader.Companies(ctx, s).Records
	case "dashboard":
		payload = dashboard.ComputeStats(h.loader.Snapshot(ctx, s))
	default:
		return nil, fmt.Errorf("unknown resource: %s", uri)
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s: %w", uri, err)
	}

	return &mcp.ReadResourceResult{Contents: []*mcp.ResourceContents{
		{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}}, nil
}
