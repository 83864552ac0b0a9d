package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/crmdash/dashboard"
)

func (m Model) renderListView() string {
	var s strings.Builder

	title := "CRM DASHBOARD"
	if m.snapshot.Live() {
		title += " · " + m.snapshot.Platform.DisplayName()
	}
	s.WriteString(titleStyle.Render(title))
	s.WriteString("\n")

	if banner := m.renderBanner(); banner != "" {
		s.WriteString(banner)
		s.WriteString("\n")
	}
	s.WriteString("\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	if m.loading {
		s.WriteString("Loading…")
	} else {
		s.WriteString(m.renderTable())
	}
	s.WriteString("\n\n")

	s.WriteString(m.renderListHelp())

	return s.String()
}

// renderBanner explains why demo data is on screen for the current tab.
func (m Model) renderBanner() string {
	if m.loading {
		return ""
	}
	source, warning := m.currentSource()
	if source != dashboard.SourceDemo {
		return ""
	}
	if warning == "" {
		return bannerStyle.Render("Menampilkan data demo. Hubungkan integrasi untuk data live.")
	}
	return bannerStyle.Render("⚠ " + warning + " Menampilkan data demo.")
}

func (m Model) currentSource() (dashboard.Source, string) {
	switch m.entityType {
	case EntityContacts:
		return m.snapshot.Contacts.Source, m.snapshot.Contacts.Warning()
	case EntityDeals:
		return m.snapshot.Deals.Source, m.snapshot.Deals.Warning()
	case EntityActivities:
		return m.snapshot.Activities.Source, m.snapshot.Activities.Warning()
	case EntityCompanies:
		return m.snapshot.Companies.Source, m.snapshot.Companies.Warning()
	}
	return "", ""
}

func (m Model) renderTabs() string {
	var rendered []string

	for i, tab := range entityTabs {
		if EntityType(i) == m.entityType {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) rowCount() int {
	switch m.entityType {
	case EntityContacts:
		return len(m.snapshot.Contacts.Records)
	case EntityDeals:
		return len(m.snapshot.Deals.Records)
	case EntityActivities:
		return len(m.snapshot.Activities.Records)
	case EntityCompanies:
		return len(m.snapshot.Companies.Records)
	}
	return 0
}

func (m Model) tableData() ([]table.Column, []table.Row) {
	switch m.entityType {
	case EntityContacts:
		columns := []table.Column{
			{Title: "Name", Width: 22},
			{Title: "Company", Width: 24},
			{Title: "Email", Width: 26},
			{Title: "Status", Width: 9},
		}
		rows := make([]table.Row, 0, len(m.snapshot.Contacts.Records))
		for _, c := range m.snapshot.Contacts.Records {
			rows = append(rows, table.Row{c.Name, c.Company, c.Email, string(c.Status)})
		}
		return columns, rows

	case EntityDeals:
		columns := []table.Column{
			{Title: "Title", Width: 26},
			{Title: "Company", Width: 22},
			{Title: "Value", Width: 10},
			{Title: "Stage", Width: 12},
			{Title: "Prob", Width: 5},
		}
		rows := make([]table.Row, 0, len(m.snapshot.Deals.Records))
		for _, d := range m.snapshot.Deals.Records {
			rows = append(rows, table.Row{d.Title, d.Company, d.ValueFmt, string(d.Stage), strconv.Itoa(d.Probability) + "%"})
		}
		return columns, rows

	case EntityActivities:
		columns := []table.Column{
			{Title: "Type", Width: 8},
			{Title: "Title", Width: 30},
			{Title: "Contact", Width: 16},
			{Title: "Date", Width: 12},
			{Title: "Done", Width: 5},
		}
		rows := make([]table.Row, 0, len(m.snapshot.Activities.Records))
		for _, a := range m.snapshot.Activities.Records {
			done := ""
			if a.Completed {
				done = "✓"
			}
			rows = append(rows, table.Row{string(a.Type), a.Title, a.Contact, a.Date, done})
		}
		return columns, rows

	case EntityCompanies:
		columns := []table.Column{
			{Title: "Name", Width: 24},
			{Title: "Industry", Width: 14},
			{Title: "City", Width: 16},
			{Title: "Revenue", Width: 10},
			{Title: "Status", Width: 9},
		}
		rows := make([]table.Row, 0, len(m.snapshot.Companies.Records))
		for _, c := range m.snapshot.Companies.Records {
			rows = append(rows, table.Row{c.Name, c.Industry, c.Address, c.RevenueFmt, string(c.Status)})
		}
		return columns, rows
	}
	return nil, nil
}

func (m Model) renderTable() string {
	columns, rows := m.tableData()
	if len(rows) == 0 {
		return "No records."
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-12, 5)),
	)

	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}

	return t.View()
}

func (m Model) renderListHelp() string {
	return helpStyle.Render(fmt.Sprintf("tab: switch view • ↑/↓: navigate • enter: details • r: reload • q: quit  (%d records)", m.rowCount()))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "right", "l":
		m.entityType = (m.entityType + 1) % EntityType(len(entityTabs))
		m.selectedRow = 0
	case "shift+tab", "left", "h":
		m.entityType = (m.entityType + EntityType(len(entityTabs)) - 1) % EntityType(len(entityTabs))
		m.selectedRow = 0
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.rowCount()-1 {
			m.selectedRow++
		}
	case "enter":
		if !m.loading && m.rowCount() > 0 {
			m.viewMode = ViewDetail
		}
	}
	return m, nil
}
