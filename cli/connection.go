// ABOUTME: Connection test and dashboard CLI commands
// ABOUTME: Probes the active integration and renders aggregate statistics
package cli

import (
	"context"
	"fmt"

	"github.com/harperreed/crmdash/dashboard"
)

type testOutput struct {
	Platform string `json:"platform"`
	OK       bool   `json:"ok"`
	Message  string `json:"message,omitempty"`
}

// TestCommand runs a connection test against the active platform. A failed
// test is reported, not returned as an error.
func TestCommand(env *Env, _ []string) error {
	s := env.Store.Current()
	ok, err := env.Loader.TestConnection(context.Background(), s)

	out := testOutput{Platform: s.Platform.DisplayName(), OK: ok}
	if err != nil {
		out.Message = err.Error()
	}

	if env.JSON {
		return env.writeJSON(out)
	}

	if ok {
		fmt.Fprintf(env.out(), "✓ Connected to %s\n", out.Platform)
		return nil
	}
	msg := out.Message
	if msg == "" {
		msg = "connection test failed"
	}
	fmt.Fprintf(env.out(), "✗ %s: %s\n", out.Platform, msg)
	return nil
}

// DashboardCommand loads a snapshot and prints its statistics.
func DashboardCommand(env *Env, _ []string) error {
	snap := env.Loader.Snapshot(context.Background(), env.Store.Current())
	stats := dashboard.ComputeStats(snap)

	if env.JSON {
		return env.writeJSON(stats)
	}

	fmt.Fprint(env.out(), dashboard.Render(stats))
	return nil
}
