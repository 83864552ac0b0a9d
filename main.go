// ABOUTME: Entry point for the CRM dashboard CLI and MCP server
// ABOUTME: Opens settings storage and routes to subcommands based on arguments
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/harperreed/crmdash/cli"
	"github.com/harperreed/crmdash/dashboard"
	"github.com/harperreed/crmdash/integrations"
	"github.com/harperreed/crmdash/kv"
	"github.com/harperreed/crmdash/logging"
	"github.com/harperreed/crmdash/settings"
)

const version = "0.1.0"

func main() {
	// A missing .env is fine
	_ = godotenv.Load()

	// Global flags
	showVersion := flag.Bool("version", false, "Show version and exit")
	dataDir := flag.String("data-dir", os.Getenv("CRMDASH_DATA_DIR"), "Settings directory (default: ~/.local/share/crmdash)")
	storeBackend := flag.String("store", envOr("CRMDASH_STORE", string(kv.BackendBadger)), "Settings backend: badger or sqlite")
	logLevel := flag.String("log-level", envOr("CRMDASH_LOG_LEVEL", "warn"), "Log level: debug, info, warn, error")
	forceJSON := flag.Bool("json", false, "Force JSON output")

	// Parse global flags but don't fail on unknown (for subcommands)
	_ = flag.CommandLine.Parse(os.Args[1:])

	// Handle version flag
	if *showVersion {
		fmt.Printf("crmdash version %s\n", version)
		os.Exit(0)
	}

	// Get remaining args after flags
	args := flag.Args()

	// If no command specified, show usage
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	logCfg := logging.DefaultConfig()
	logCfg.Level = *logLevel
	logger := logging.New(logCfg)
	defer func() { _ = logger.Sync() }()

	backend, err := kv.Open(kv.Backend(*storeBackend), *dataDir)
	if err != nil {
		log.Fatalf("Failed to open settings store: %v", err)
	}
	defer backend.Close()

	store := settings.NewStore(backend, logger)
	store.Load()

	loader := dashboard.NewLoader(integrations.Builder(integrations.WithLogger(logger)), logger)
	env := cli.NewEnv(store, loader, logger, *forceJSON)

	logger.Debug("settings loaded",
		zap.String("backend", *storeBackend),
		zap.String("platform", string(store.Current().Platform)))

	switch command {
	case "mcp":
		err = cli.MCPCommand(env, version)
	case "tui":
		err = cli.TUICommand(env, commandArgs)
	case "platforms":
		err = cli.PlatformsCommand(env, commandArgs)
	case "settings":
		err = cli.SettingsCommand(env, commandArgs)
	case "fetch":
		err = cli.FetchCommand(env, commandArgs)
	case "test":
		err = cli.TestCommand(env, commandArgs)
	case "dashboard":
		err = cli.DashboardCommand(env, commandArgs)
	case "web":
		err = cli.WebCommand(env, commandArgs)
	default:
		fmt.Printf("Unknown command: %s\n\n", command)
		printUsage()
		backend.Close()
		os.Exit(1)
	}

	if err != nil {
		backend.Close()
		log.Fatalf("Error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func printUsage() {
	fmt.Printf(`crmdash v%s - CRM dashboard integration toolkit

USAGE:
  crmdash [global flags] <command> [subcommand] [flags]

GLOBAL FLAGS:
  --version              Show version and exit
  --data-dir <dir>       Settings directory (default: ~/.local/share/crmdash)
  --store <backend>      Settings backend: badger (default) or sqlite
  --log-level <level>    Log level: debug, info, warn (default), error
  --json                 Force JSON output (default when stdout is not a terminal)

ENVIRONMENT:
  CRMDASH_DATA_DIR, CRMDASH_STORE, CRMDASH_LOG_LEVEL override the defaults.
  A .env file in the working directory is loaded when present.

COMMANDS:
  platforms              List integration platforms and their status
  settings show          Show settings with secrets masked
  settings use <p>       Select the active platform (none, airtable, hubspot,
                         salesforce, erp, webhook, custom_api)
  settings set <p> k=v   Set platform fields, e.g. apiKey=... baseId=...
  settings disconnect    Switch back to demo data, keeping platform settings
  settings reset         Restore every setting to its default
  fetch <entity>         Fetch contacts, deals, activities or companies
    --json                 Output JSON
  test                   Test the connection to the active platform
  dashboard              Show pipeline and activity statistics
  tui                    Browse records interactively
  web                    Serve the read-only web dashboard
    --port <n>             Port to listen on (default: 8080)
  mcp                    Start MCP server (for Claude Desktop integration)

EXAMPLES:
  # Connect Airtable
  crmdash settings set airtable apiKey=patXXXX baseId=appXXXX
  crmdash settings use airtable
  crmdash test

  # List deals as JSON
  crmdash fetch deals --json

  # Use the sqlite backend so the MCP server and CLI can run side by side
  crmdash --store sqlite mcp

`, version)
}
