// ABOUTME: MCP prompt handlers for reusable CRM workflow templates
// ABOUTME: Builds analysis prompts from the live or demo snapshot
package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/harperreed/crmdash/dashboard"
	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/settings"
)

type PromptHandlers struct {
	store  *settings.Store
	loader *dashboard.Loader
}

func NewPromptHandlers(store *settings.Store, loader *dashboard.Loader) *PromptHandlers {
	return &PromptHandlers{store: store, loader: loader}
}

// Prompts lists the templates GetPrompt understands.
func (h *PromptHandlers) Prompts() []*mcp.Prompt {
	return []*mcp.Prompt{
		{
			Name:        "contact-summary",
			Description: "Summarize a contact with their company, deals and recent activities",
			Arguments: []*mcp.PromptArgument{
				{Name: "contact_name", Description: "Contact name (case-insensitive)", Required: true},
			},
		},
		{
			Name:        "deal-analysis",
			Description: "Analyze pipeline health by stage with weighted value and win rate",
		},
		{
			Name:        "follow-up-suggestions",
			Description: "Suggest follow-ups from open tasks and deals close to closing",
		},
		{
			Name:        "company-overview",
			Description: "Overview of a company with its contacts, deals and activities",
			Arguments: []*mcp.PromptArgument{
				{Name: "company_name", Description: "Company name (case-insensitive)", Required: true},
			},
		},
	}
}

// GetPrompt generates the prompt message based on the template
func (h *PromptHandlers) GetPrompt(ctx context.Context, request *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	name := request.Params.Name
	arguments := request.Params.Arguments

	switch name {
	case "contact-summary":
		return h.getContactSummaryPrompt(ctx, arguments)
	case "deal-analysis":
		return h.getDealAnalysisPrompt(ctx)
	case "follow-up-suggestions":
		return h.getFollowUpSuggestionsPrompt(ctx)
	case "company-overview":
		return h.getCompanyOverviewPrompt(ctx, arguments)
	default:
		return nil, fmt.Errorf("unknown prompt: %s", name)
	}
}

func (h *PromptHandlers) snapshot(ctx context.Context) dashboard.Snapshot {
	return h.loader.Snapshot(ctx, h.store.Current())
}

func promptResult(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []*mcp.PromptMessage{
			{
				Role:    "user",
				Content: &mcp.TextContent{Text: text},
			},
		},
	}
}

func writeSourceNote(b *strings.Builder, snap dashboard.Snapshot) {
	if !snap.Live() {
		b.WriteString("Note: these are demo records, no integration is connected.\n")
	}
	for _, w := range snap.Warnings() {
		fmt.Fprintf(b, "Warning: %s\n", w)
	}
	b.WriteString("\n")
}

func (h *PromptHandlers) getContactSummaryPrompt(ctx context.Context, args map[string]string) (*mcp.GetPromptResult, error) {
	name := strings.TrimSpace(args["contact_name"])
	if name == "" {
		return nil, fmt.Errorf("contact_name is required")
	}

	snap := h.snapshot(ctx)

	var contact *models.Contact
	for i := range snap.Contacts.Records {
		if strings.EqualFold(snap.Contacts.Records[i].Name, name) {
			contact = &snap.Contacts.Records[i]
			break
		}
	}
	if contact == nil {
		return nil, fmt.Errorf("contact not found: %s", name)
	}

	var promptText strings.Builder
	promptText.WriteString("Please provide a comprehensive summary of this contact:\n\n")
	writeSourceNote(&promptText, snap)
	fmt.Fprintf(&promptText, "Name: %s\n", contact.Name)
	fmt.Fprintf(&promptText, "Position: %s\n", contact.Position)
	fmt.Fprintf(&promptText, "Company: %s\n", contact.Company)
	fmt.Fprintf(&promptText, "Email: %s\n", contact.Email)
	fmt.Fprintf(&promptText, "Phone: %s\n", contact.Phone)
	fmt.Fprintf(&promptText, "Status: %s\n", contact.Status)
	fmt.Fprintf(&promptText, "Last Contact: %s\n", contact.LastContact)

	var deals []models.Deal
	for _, d := range snap.Deals.Records {
		if strings.EqualFold(d.Company, contact.Company) {
			deals = append(deals, d)
		}
	}
	if len(deals) > 0 {
		promptText.WriteString("\nCompany Deals:\n")
		for _, d := range deals {
			fmt.Fprintf(&promptText, "  - %s: %s, %s (%d%%)\n", d.Title, d.ValueFmt, d.Stage, d.Probability)
		}
	}

	var activities []models.Activity
	for _, a := range snap.Activities.Records {
		if strings.EqualFold(a.Contact, contact.Name) {
			activities = append(activities, a)
		}
	}
	if len(activities) > 0 {
		promptText.WriteString("\nActivities:\n")
		for _, a := range activities {
			fmt.Fprintf(&promptText, "  - [%s] %s on %s (completed: %t)\n", a.Type, a.Title, a.Date, a.Completed)
		}
	}

	promptText.WriteString("\nPlease analyze this contact and provide:")
	promptText.WriteString("\n1. A brief summary of their role and relationship")
	promptText.WriteString("\n2. Recommendations for next steps or follow-up actions")
	promptText.WriteString("\n3. Any patterns or insights from their interaction history")

	return promptResult(fmt.Sprintf("Summary for contact: %s", contact.Name), promptText.String()), nil
}

func (h *PromptHandlers) getDealAnalysisPrompt(ctx context.Context) (*mcp.GetPromptResult, error) {
	snap := h.snapshot(ctx)
	stats := dashboard.ComputeStats(snap)

	var promptText strings.Builder
	promptText.WriteString("Please analyze the current deal pipeline:\n\n")
	writeSourceNote(&promptText, snap)
	fmt.Fprintf(&promptText, "Total Deals: %d\n", stats.TotalDeals)
	fmt.Fprintf(&promptText, "Open Pipeline: %d deals, %s\n", stats.OpenDeals, stats.OpenValueFmt)
	fmt.Fprintf(&promptText, "Weighted Pipeline: %s\n", stats.WeightedValueFmt)
	fmt.Fprintf(&promptText, "Won: %s\n", stats.WonValueFmt)
	fmt.Fprintf(&promptText, "Win Rate: %.0f%%\n\n", stats.WinRate)
	promptText.WriteString("Pipeline by Stage:\n")
	for _, stage := range stats.Pipeline {
		fmt.Fprintf(&promptText, "  - %s: %d deals, %s\n", stage.Stage, stage.Count, stage.ValueFmt)
	}

	promptText.WriteString("\nPlease provide:")
	promptText.WriteString("\n1. Analysis of pipeline health and distribution")
	promptText.WriteString("\n2. Recommendations for deals that may need attention")
	promptText.WriteString("\n3. Suggestions for improving conversion rates")

	return promptResult("Deal pipeline analysis", promptText.String()), nil
}

func (h *PromptHandlers) getFollowUpSuggestionsPrompt(ctx context.Context) (*mcp.GetPromptResult, error) {
	snap := h.snapshot(ctx)

	var promptText strings.Builder
	promptText.WriteString("Suggest follow-up actions based on this CRM state:\n\n")
	writeSourceNote(&promptText, snap)

	promptText.WriteString("Incomplete Activities:\n")
	pending := 0
	for _, a := range snap.Activities.Records {
		if a.Completed {
			continue
		}
		pending++
		fmt.Fprintf(&promptText, "  - [%s] %s with %s (%s) on %s\n", a.Type, a.Title, a.Contact, a.Company, a.Date)
	}
	if pending == 0 {
		promptText.WriteString("  (none)\n")
	}

	promptText.WriteString("\nOpen Deals:\n")
	for _, d := range snap.Deals.Records {
		if d.Stage == models.StageClosedWon || d.Stage == models.StageClosedLost {
			continue
		}
		fmt.Fprintf(&promptText, "  - %s (%s): %s, %s, %d%%, closes %s\n", d.Title, d.Company, d.ValueFmt, d.Stage, d.Probability, d.CloseDate)
	}

	promptText.WriteString("\nPlease provide:")
	promptText.WriteString("\n1. Prioritized follow-ups for this week")
	promptText.WriteString("\n2. Deals at risk and how to move them forward")
	promptText.WriteString("\n3. Suggested message or agenda for each follow-up")

	return promptResult("Follow-up suggestions", promptText.String()), nil
}

func (h *PromptHandlers) getCompanyOverviewPrompt(ctx context.Context, args map[string]string) (*mcp.GetPromptResult, error) {
	name := strings.TrimSpace(args["company_name"])
	if name == "" {
		return nil, fmt.Errorf("company_name is required")
	}

	snap := h.snapshot(ctx)

	var company *models.Company
	for i := range snap.Companies.Records {
		if strings.EqualFold(snap.Companies.Records[i].Name, name) {
			company = &snap.Companies.Records[i]
			break
		}
	}
	if company == nil {
		return nil, fmt.Errorf("company not found: %s", name)
	}

	var promptText strings.Builder
	fmt.Fprintf(&promptText, "Provide an overview of %s:\n\n", company.Name)
	writeSourceNote(&promptText, snap)
	fmt.Fprintf(&promptText, "Industry: %s\n", company.Industry)
	fmt.Fprintf(&promptText, "Website: %s\n", company.Website)
	fmt.Fprintf(&promptText, "Address: %s\n", company.Address)
	fmt.Fprintf(&promptText, "Revenue: %s\n", company.RevenueFmt)
	fmt.Fprintf(&promptText, "Status: %s\n", company.Status)

	promptText.WriteString("\nContacts:\n")
	for _, c := range snap.Contacts.Records {
		if strings.EqualFold(c.Company, company.Name) {
			fmt.Fprintf(&promptText, "  - %s, %s (%s)\n", c.Name, c.Position, c.Status)
		}
	}

	promptText.WriteString("\nDeals:\n")
	for _, d := range snap.Deals.Records {
		if strings.EqualFold(d.Company, company.Name) {
			fmt.Fprintf(&promptText, "  - %s: %s, %s\n", d.Title, d.ValueFmt, d.Stage)
		}
	}

	promptText.WriteString("\nPlease provide:")
	promptText.WriteString("\n1. Account health summary")
	promptText.WriteString("\n2. Expansion opportunities")
	promptText.WriteString("\n3. Key stakeholders to engage next")

	return promptResult(fmt.Sprintf("Overview of company: %s", company.Name), promptText.String()), nil
}
