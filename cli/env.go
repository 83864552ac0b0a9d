// ABOUTME: Shared dependencies handed to every CLI command
// ABOUTME: Bundles the settings store, data loader, output writer and output mode
package cli

import (
	"encoding/json"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/harperreed/crmdash/dashboard"
	"github.com/harperreed/crmdash/logging"
	"github.com/harperreed/crmdash/settings"
)

// Env carries what commands need. Out defaults to stdout.
type Env struct {
	Store  *settings.Store
	Loader *dashboard.Loader
	Logger *zap.Logger
	Out    io.Writer
	JSON   bool
}

// NewEnv wires a store and loader together. JSON output is chosen when
// forced or when stdout is not a terminal.
func NewEnv(store *settings.Store, loader *dashboard.Loader, logger *zap.Logger, forceJSON bool) *Env {
	return &Env{
		Store:  store,
		Loader: loader,
		Logger: logging.OrNop(logger),
		Out:    os.Stdout,
		JSON:   forceJSON || !term.IsTerminal(int(os.Stdout.Fd())),
	}
}

func (e *Env) out() io.Writer {
	if e.Out == nil {
		return os.Stdout
	}
	return e.Out
}

func (e *Env) writeJSON(v any) error {
	enc := json.NewEncoder(e.out())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
