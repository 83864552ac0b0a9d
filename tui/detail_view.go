package tui

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Width(16)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

func (m Model) renderDetailView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DETAIL · " + entityTabs[m.entityType]))
	s.WriteString("\n\n")

	for _, field := range m.detailFields() {
		s.WriteString(m.renderField(field[0], field[1]))
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("esc: back • q: quit"))

	return s.String()
}

// detailFields returns label/value pairs for the selected record.
func (m Model) detailFields() [][2]string {
	i := m.selectedRow
	switch m.entityType {
	case EntityContacts:
		if i >= len(m.snapshot.Contacts.Records) {
			return nil
		}
		c := m.snapshot.Contacts.Records[i]
		return [][2]string{
			{"Name", c.Name}, {"Email", c.Email}, {"Phone", c.Phone}, {"Company", c.Company},
			{"Position", c.Position}, {"Status", string(c.Status)}, {"Last Contact", c.LastContact},
		}
	case EntityDeals:
		if i >= len(m.snapshot.Deals.Records) {
			return nil
		}
		d := m.snapshot.Deals.Records[i]
		return [][2]string{
			{"Title", d.Title}, {"Company", d.Company}, {"Value", d.ValueFmt}, {"Stage", string(d.Stage)},
			{"Owner", d.Owner}, {"Probability", strconv.Itoa(d.Probability) + "%"}, {"Close Date", d.CloseDate},
		}
	case EntityActivities:
		if i >= len(m.snapshot.Activities.Records) {
			return nil
		}
		a := m.snapshot.Activities.Records[i]
		done := "no"
		if a.Completed {
			done = "yes"
		}
		return [][2]string{
			{"Type", string(a.Type)}, {"Title", a.Title}, {"Description", a.Description}, {"Contact", a.Contact},
			{"Company", a.Company}, {"Date", strings.TrimSpace(a.Date + " " + a.Time)}, {"Completed", done},
		}
	case EntityCompanies:
		if i >= len(m.snapshot.Companies.Records) {
			return nil
		}
		c := m.snapshot.Companies.Records[i]
		return [][2]string{
			{"Name", c.Name}, {"Industry", c.Industry}, {"Website", c.Website}, {"Phone", c.Phone},
			{"Address", c.Address}, {"Contacts", strconv.Itoa(c.ContactCount)}, {"Deals", strconv.Itoa(c.DealCount)},
			{"Revenue", c.RevenueFmt}, {"Status", string(c.Status)}, {"Created", c.CreatedAt},
		}
	}
	return nil
}

func (m Model) renderField(label, value string) string {
	return fieldLabelStyle.Render(label+":") + " " + fieldValueStyle.Render(value) + "\n"
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace":
		m.viewMode = ViewList
	}
	return m, nil
}
