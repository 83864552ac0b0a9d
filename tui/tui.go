// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Read-only browser over a dashboard snapshot with reload and detail views
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harperreed/crmdash/dashboard"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewList ViewMode = iota
	ViewDetail
)

// EntityType represents the type of entity being viewed
type EntityType int

const (
	EntityContacts EntityType = iota
	EntityDeals
	EntityActivities
	EntityCompanies
)

var entityTabs = []string{"Contacts", "Deals", "Activities", "Companies"}

// LoadFunc produces a fresh snapshot; it is called on start and on reload.
type LoadFunc func(ctx context.Context) dashboard.Snapshot

type snapshotMsg dashboard.Snapshot

// Model is the main bubbletea model
type Model struct {
	load     LoadFunc
	snapshot dashboard.Snapshot
	loading  bool

	viewMode    ViewMode
	entityType  EntityType
	selectedRow int

	width  int
	height int
}

// NewModel creates a new TUI model
func NewModel(load LoadFunc) Model {
	return Model{
		load:       load,
		loading:    true,
		viewMode:   ViewList,
		entityType: EntityContacts,
		width:      80,
		height:     24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) loadCmd() tea.Cmd {
	load := m.load
	return func() tea.Msg {
		return snapshotMsg(load(context.Background()))
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case snapshotMsg:
		m.snapshot = dashboard.Snapshot(msg)
		m.loading = false
		if m.selectedRow >= m.rowCount() {
			m.selectedRow = 0
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.viewMode == ViewDetail {
		return m.renderDetailView()
	}
	return m.renderListView()
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		if m.loading {
			return m, nil
		}
		m.loading = true
		return m, m.loadCmd()
	}

	switch m.viewMode {
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	}
	return m, nil
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)
)
