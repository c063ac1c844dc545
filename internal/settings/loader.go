package settings

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// envPrefix maps DECKD_LOG_LEVEL to log_level, DECKD_GRID_ROWS to grid.rows
// via the underscore-to-dot transform below.
const envPrefix = "DECKD_"

// Load assembles the settings from, in increasing precedence: built-in
// defaults, the settings file, DECKD_* environment variables, and explicitly
// set command-line flags. A missing settings file is not an error; a broken
// one is.
func Load(settingsPath string, flags *pflag.FlagSet) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if settingsPath == "" {
		if p, err := SettingsPath(); err == nil {
			settingsPath = p
		}
	}
	if settingsPath != "" {
		if _, err := os.Stat(settingsPath); err == nil {
			if err := k.Load(file.Provider(settingsPath), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("failed to read settings %s: %w", settingsPath, err)
			}
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return flagToKey(f.Name), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	if s.ButtonsPath == "" {
		p, err := DefaultButtonsPath()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve default buttons path: %w", err)
		}
		s.ButtonsPath = p
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// envToKey turns DECKD_GRID_ROWS into grid.rows. Single-level keys that
// themselves contain underscores are fixed up afterwards.
func envToKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
	key = strings.ReplaceAll(key, "_", ".")
	for _, flat := range []string{"buttons_path", "log_level", "timeout_ms", "empty_stdout_is_success", "success_indicators", "failure_indicators"} {
		dotted := strings.ReplaceAll(flat, "_", ".")
		key = strings.ReplaceAll(key, dotted, flat)
	}
	return key
}

// flagToKey maps kebab-case flag names onto settings keys.
func flagToKey(name string) string {
	switch name {
	case "buttons":
		return "buttons_path"
	case "log-level":
		return "log_level"
	case "rows":
		return "grid.rows"
	case "columns":
		return "grid.columns"
	case "trigger-port":
		return "trigger.port"
	case "trigger":
		return "trigger.enabled"
	default:
		return strings.ReplaceAll(name, "-", "_")
	}
}
