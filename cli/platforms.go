// ABOUTME: Platform catalogue CLI command
// ABOUTME: Lists integration platforms with availability and connection state
package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/settings"
)

type platformRow struct {
	ID          models.Platform `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Available   bool            `json:"available"`
	Active      bool            `json:"active"`
	Connected   bool            `json:"connected"`
}

// PlatformsCommand lists every platform in the catalogue.
func PlatformsCommand(env *Env, _ []string) error {
	current := env.Store.Current()

	rows := make([]platformRow, 0, len(models.Platforms))
	for _, p := range models.Platforms {
		rows = append(rows, platformRow{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Available:   p.Available,
			Active:      current.Platform == p.ID,
			Connected:   settings.IsConnected(current, p.ID),
		})
	}

	if env.JSON {
		return env.writeJSON(rows)
	}

	w := tabwriter.NewWriter(env.out(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tAVAILABLE\tSTATUS")
	fmt.Fprintln(w, "--\t----\t---------\t------")
	for _, r := range rows {
		status := ""
		switch {
		case r.Connected:
			status = "connected"
		case r.Active:
			status = "selected"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.ID, r.Name, yesNo(r.Available), status)
	}
	return w.Flush()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
