// ABOUTME: Terminal rendering of dashboard statistics
// ABOUTME: Pipeline bars, totals and fallback warnings styled with lipgloss
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/crmdash/models"
)

var (
	ruleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("170"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

const rule = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// Render returns the dashboard as text. Styling degrades to plain text when
// the output is not a terminal.
func Render(stats Stats) string {
	var out strings.Builder

	out.WriteString(ruleStyle.Render(rule) + "\n")
	title := "  CRM DASHBOARD"
	if stats.Live {
		title += " · " + stats.Platform.DisplayName()
	} else {
		title += " · DEMO DATA"
	}
	out.WriteString(headerStyle.Render(title) + "\n")
	out.WriteString(ruleStyle.Render(rule) + "\n\n")

	for _, w := range stats.Warnings {
		out.WriteString(warnStyle.Render("  ⚠️  "+w) + "\n")
	}
	if len(stats.Warnings) > 0 {
		out.WriteString("\n")
	}

	out.WriteString(sectionStyle.Render("PIPELINE OVERVIEW") + "\n")
	renderPipeline(&out, stats.Pipeline)
	out.WriteString("\n")

	out.WriteString(sectionStyle.Render("DEALS") + "\n")
	out.WriteString(fmt.Sprintf("  %d open worth %s (weighted %s)\n", stats.OpenDeals, stats.OpenValueFmt, stats.WeightedValueFmt))
	out.WriteString(fmt.Sprintf("  won %s · win rate %.0f%%\n\n", stats.WonValueFmt, stats.WinRate))

	out.WriteString(sectionStyle.Render("STATS") + "\n")
	out.WriteString(fmt.Sprintf("  📇 %d contacts  🏢 %d companies  💼 %d deals  📅 %d activities\n",
		stats.TotalContacts, stats.TotalCompanies, stats.TotalDeals, stats.TotalActivities))
	out.WriteString(fmt.Sprintf("  contacts: %s\n", countsLine(stats.ContactsByStatus, models.ContactStatuses)))
	out.WriteString(fmt.Sprintf("  companies: %s · revenue %s\n", countsLine(stats.CompaniesByStatus, models.CompanyStatuses), stats.TotalRevenueFmt))
	out.WriteString(fmt.Sprintf("  activities: %d/%d done (%.0f%%), %d open tasks\n",
		stats.CompletedActivities, stats.TotalActivities, stats.ActivityCompletion, stats.OpenTasks))

	return out.String()
}

func renderPipeline(out *strings.Builder, pipeline []StageStats) {
	maxCount := 0
	for _, s := range pipeline {
		if s.Count > maxCount {
			maxCount = s.Count
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, s := range pipeline {
		barLength := (s.Count * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)
		out.WriteString(fmt.Sprintf("  %-12s %s  %2d (%s)\n", s.Stage, bar, s.Count, s.ValueFmt))
	}
}

func countsLine[K ~string](counts map[K]int, order []K) string {
	parts := make([]string, 0, len(order))
	for _, k := range order {
		parts = append(parts, fmt.Sprintf("%d %s", counts[k], strings.ToLower(string(k))))
	}
	return strings.Join(parts, ", ")
}
