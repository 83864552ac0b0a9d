// ABOUTME: Interactive browser subcommand
// ABOUTME: Runs the bubbletea snapshot browser in the alternate screen
package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/harperreed/crmdash/dashboard"
	"github.com/harperreed/crmdash/tui"
)

// TUICommand launches the interactive browser.
func TUICommand(env *Env, _ []string) error {
	model := tui.NewModel(func(ctx context.Context) dashboard.Snapshot {
		return env.Loader.Snapshot(ctx, env.Store.Current())
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
