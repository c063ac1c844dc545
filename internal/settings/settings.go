package settings

import (
	"fmt"
	"time"

	"github.com/averill/deckd/internal/probe"
)

// Settings are the runtime options of the daemon, as opposed to the button
// tree which describes what the deck shows.
type Settings struct {
	// ButtonsPath locates the button tree YAML.
	ButtonsPath string `koanf:"buttons_path"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `koanf:"log_level"`
	// Watch enables reloading the button tree when its file changes.
	Watch bool `koanf:"watch"`

	Grid    GridSettings    `koanf:"grid"`
	Probe   ProbeSettings   `koanf:"probe"`
	Trigger TriggerSettings `koanf:"trigger"`
}

// GridSettings fix the deck dimensions. The defaults match a 15-key deck.
type GridSettings struct {
	Rows    int `koanf:"rows"`
	Columns int `koanf:"columns"`
}

// ProbeSettings govern how toggle state probes are run and interpreted.
type ProbeSettings struct {
	TimeoutMS            int      `koanf:"timeout_ms"`
	EmptyStdoutIsSuccess bool     `koanf:"empty_stdout_is_success"`
	SuccessIndicators    []string `koanf:"success_indicators"`
	FailureIndicators    []string `koanf:"failure_indicators"`
}

// TriggerSettings configure the websocket press-injection server.
type TriggerSettings struct {
	Enabled   bool `koanf:"enabled"`
	Port      int  `koanf:"port"`
	Advertise bool `koanf:"advertise"`
}

// defaults returns the built-in configuration, lowest in precedence.
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"buttons_path":                  "",
		"log_level":                     "info",
		"watch":                         true,
		"grid.rows":                     3,
		"grid.columns":                  5,
		"probe.timeout_ms":              5000,
		"probe.empty_stdout_is_success": true,
		"trigger.enabled":               false,
		"trigger.port":                  8667,
		"trigger.advertise":             true,
	}
}

// ProbeConfig converts the probe settings to the runner's config type.
func (s *Settings) ProbeConfig() probe.Config {
	return probe.Config{
		Timeout:              time.Duration(s.Probe.TimeoutMS) * time.Millisecond,
		EmptyStdoutIsSuccess: s.Probe.EmptyStdoutIsSuccess,
		SuccessIndicators:    s.Probe.SuccessIndicators,
		FailureIndicators:    s.Probe.FailureIndicators,
	}
}

// Validate rejects settings that cannot produce a usable deck.
func (s *Settings) Validate() error {
	if s.Grid.Rows < 1 || s.Grid.Columns < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", s.Grid.Rows, s.Grid.Columns)
	}
	if s.Probe.TimeoutMS < 1 {
		return fmt.Errorf("probe timeout must be positive, got %dms", s.Probe.TimeoutMS)
	}
	if s.Trigger.Enabled && (s.Trigger.Port < 1 || s.Trigger.Port > 65535) {
		return fmt.Errorf("trigger port out of range: %d", s.Trigger.Port)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", s.LogLevel)
	}
	return nil
}
