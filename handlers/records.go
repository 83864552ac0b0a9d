// ABOUTME: Record listing MCP tool handlers
// ABOUTME: Implements list_contacts, list_deals, list_activities and list_companies with demo fallback
package handlers

import (
	"context"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/crmdash/dashboard"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/settings"
)

const defaultLimit = 50

type RecordHandlers struct {
	store  *settings.Store
	loader *dashboard.Loader
}

func NewRecordHandlers(store *settings.Store, loader *dashboard.Loader) *RecordHandlers {
	return &RecordHandlers{store: store, loader: loader}
}

type ListInput struct {
	Query string `json:"query,omitempty" jsonschema:"Case-insensitive substring matched against names, emails, companies and titles"`
	Limit int    `json:"limit,omitempty" jsonschema:"Maximum number of results (default 50)"`
}

// listMeta carries the fields every list output repeats.
type listMeta struct {
	total   int
	source  dashboard.Source
	warning string
}

type ListContactsOutput struct {
	Contacts []models.Contact `json:"contacts"`
	Total    int              `json:"total"`
	Source   dashboard.Source `json:"source" jsonschema:"live or demo"`
	Warning  string           `json:"warning,omitempty" jsonschema:"Why demo data is shown instead of live data"`
}

type ListDealsOutput struct {
	Deals   []models.Deal    `json:"deals"`
	Total   int              `json:"total"`
	Source  dashboard.Source `json:"source" jsonschema:"live or demo"`
	Warning string           `json:"warning,omitempty" jsonschema:"Why demo data is shown instead of live data"`
}

type ListActivitiesOutput struct {
	Activities []models.Activity `json:"activities"`
	Total      int               `json:"total"`
	Source     dashboard.Source  `json:"source" jsonschema:"live or demo"`
	Warning    string            `json:"warning,omitempty" jsonschema:"Why demo data is shown instead of live data"`
}

type ListCompaniesOutput struct {
	Companies []models.Company `json:"companies"`
	Total     int              `json:"total"`
	Source    dashboard.Source `json:"source" jsonschema:"live or demo"`
	Warning   string           `json:"warning,omitempty" jsonschema:"Why demo data is shown instead of live data"`
}

// filter keeps records whose fields contain query, up to limit.
func filter[T any](res dashboard.Result[T], input ListInput, fields func(T) []string) ([]T, listMeta) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	query := strings.ToLower(strings.TrimSpace(input.Query))

	out := []T{}
	for _, r := range res.Records {
		if len(out) == limit {
			break
		}
		if query == "" || matches(fields(r), query) {
			out = append(out, r)
		}
	}
	return out, listMeta{total: len(out), source: res.Source, warning: res.Warning()}
}

func matches(fields []string, query string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func (h *RecordHandlers) ListContacts(ctx context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListContactsOutput, error) {
	res := h.loader.Contacts(ctx, h.store.Load())
	contacts, meta := filter(res, input, func(c models.Contact) []string {
		return []string{c.Name, c.Email, c.Company, c.Position}
	})
	return nil, ListContactsOutput{Contacts: contacts, Total: meta.total, Source: meta.source, Warning: meta.warning}, nil
}

func (h *RecordHandlers) ListDeals(ctx context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListDealsOutput, error) {
	res := h.loader.Deals(ctx, h.store.Load())
	deals, meta := filter(res, input, func(d models.Deal) []string {
		return []string{d.Title, d.Company, string(d.Stage)}
	})
	return nil, ListDealsOutput{Deals: deals, Total: meta.total, Source: meta.source, Warning: meta.warning}, nil
}

func (h *RecordHandlers) ListActivities(ctx context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListActivitiesOutput, error) {
	res := h.loader.Activities(ctx, h.store.Load())
	activities, meta := filter(res, input, func(a models.Activity) []string {
		return []string{a.Title, a.Description, a.Contact, a.Company, string(a.Type)}
	})
	return nil, ListActivitiesOutput{Activities: activities, Total: meta.total, Source: meta.source, Warning: meta.warning}, nil
}

func (h *RecordHandlers) ListCompanies(ctx context.Context, _ *mcp.CallToolRequest, input ListInput) (*mcp.CallToolResult, ListCompaniesOutput, error) {
	res := h.loader.Companies(ctx, h.store.Load())
	companies, meta := filter(res, input, func(c models.Company) []string {
		return []string{c.Name, c.Industry, c.Website, c.Address}
	})
	return nil, ListCompaniesOutput{Companies: companies, Total: meta.total, Source: meta.source, Warning: meta.warning}, nil
}
