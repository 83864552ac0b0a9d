// ABOUTME: Settings CLI commands
// ABOUTME: Show, select, edit, disconnect and reset the persisted integration settings
package cli

import (
	"fmt"
	"strings"

	"github.com/harperreed/crmdash/models"
	"github.com/harperreed/crmdash/settings"
)

// SettingsCommand routes settings subcommands.
func SettingsCommand(env *Env, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("settings requires a subcommand (show, use, set, disconnect, reset)")
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "show":
		return settingsShow(env)
	case "use":
		return settingsUse(env, rest)
	case "set":
		return settingsSet(env, rest)
	case "disconnect":
		if err := env.Store.Disconnect(); err != nil {
			return err
		}
		fmt.Fprintln(env.out(), "✓ Disconnected. Per-platform settings were kept.")
		return nil
	case "reset":
		if err := env.Store.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(env.out(), "✓ Settings reset to defaults")
		return nil
	default:
		return fmt.Errorf("unknown settings command: %s", sub)
	}
}

func settingsShow(env *Env) error {
	masked := env.Store.Current().Masked()
	if env.JSON {
		return env.writeJSON(masked)
	}

	fmt.Fprintf(env.out(), "Platform: %s (%s)\n\n", masked.Platform, masked.Platform.DisplayName())
	return env.writeJSON(masked)
}

func settingsUse(env *Env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: settings use <platform>")
	}

	platform := models.Platform(strings.ToLower(args[0]))
	if !platform.IsValid() {
		return fmt.Errorf("unknown platform: %s", args[0])
	}

	next := env.Store.Current()
	next.Platform = platform
	if err := env.Store.Save(next); err != nil {
		return err
	}

	fmt.Fprintf(env.out(), "✓ Active platform: %s\n", platform.DisplayName())
	if platform != models.PlatformNone && !settings.IsConnected(next, platform) {
		fmt.Fprintf(env.out(), "  Not connected yet. Fields: %s\n", strings.Join(settings.FieldNames(platform), ", "))
	}
	return nil
}

func settingsSet(env *Env, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: settings set <platform> key=value [key=value...]")
	}

	platform := models.Platform(strings.ToLower(args[0]))
	next := env.Store.Current()

	for _, pair := range args[1:] {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("expected key=value, got %q", pair)
		}
		if err := next.SetField(platform, strings.TrimSpace(key), value); err != nil {
			return err
		}
	}

	if err := settings.Validate(next); err != nil {
		return err
	}
	if err := env.Store.Save(next); err != nil {
		return err
	}

	fmt.Fprintf(env.out(), "✓ Updated %s settings\n", platform.DisplayName())
	return nil
}
