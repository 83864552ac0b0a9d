// ABOUTME: Integration status MCP tool handlers
// ABOUTME: Implements test_connection and get_integration_status
package handlers

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/crmdash/dashboard"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/settings"
)

type StatusHandlers struct {
	store  *settings.Store
	loader *dashboard.Loader
}

func NewStatusHandlers(store *settings.Store, loader *dashboard.Loader) *StatusHandlers {
	return &StatusHandlers{store: store, loader: loader}
}

type TestConnectionInput struct{}

type TestConnectionOutput struct {
	Platform models.Platform `json:"platform"`
	OK       bool            `json:"ok"`
	Message  string          `json:"message,omitempty"`
}

// TestConnection reports failures in the output rather than as tool errors so
// the configuration message reaches the caller verbatim.
func (h *StatusHandlers) TestConnection(ctx context.Context, _ *mcp.CallToolRequest, _ TestConnectionInput) (*mcp.CallToolResult, TestConnectionOutput, error) {
	s := h.store.Load()
	ok, err := h.loader.TestConnection(ctx, s)

	out := TestConnectionOutput{Platform: s.Platform, OK: ok && err == nil}
	if err != nil {
		out.Message = err.Error()
	}
	return nil, out, nil
}

type StatusInput struct{}

type PlatformStatus struct {
	ID          models.Platform `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Available   bool            `json:"available"`
	Active      bool            `json:"active"`
	Connected   bool            `json:"connected"`
}

type StatusOutput struct {
	Platform     models.Platform  `json:"platform"`
	PlatformName string           `json:"platformName"`
	Connected    bool             `json:"connected"`
	Platforms    []PlatformStatus `json:"platforms"`
}

func (h *StatusHandlers) GetIntegrationStatus(_ context.Context, _ *mcp.CallToolRequest, _ StatusInput) (*mcp.CallToolResult, StatusOutput, error) {
	return nil, integrationStatus(h.store.Load()), nil
}

func integrationStatus(s settings.IntegrationSettings) StatusOutput {
	out := StatusOutput{
		Platform:     s.Platform,
		PlatformName: s.Platform.DisplayName(),
		Connected:    settings.IsConnected(s, s.Platform),
		Platforms:    make([]PlatformStatus, 0, len(models.Platforms)),
	}
	for _, meta := range models.Platforms {
		out.Platforms = append(out.Platforms, PlatformStatus{
			ID:          meta.ID,
			Name:        meta.Name,
			Description: meta.Description,
			Available:   meta.Available,
			Active:      meta.ID == s.Platform,
			Connected:   settings.IsConnected(s, meta.ID),
		})
	}
	return out
}
