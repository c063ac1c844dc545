package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/averill/deckd/internal/button"
)

// defaultBackName labels a declared back entry that omits its name.
const defaultBackName = "Back"

// ParseError reports a malformed button definition.
type ParseError struct {
	Button string
	Reason string
}

func (e *ParseError) Error() string {
	if e.Button == "" {
		return fmt.Sprintf("invalid button config: %s", e.Reason)
	}
	return fmt.Sprintf("invalid button %q: %s", e.Button, e.Reason)
}

// rawButton is the YAML shape of any button kind; the type and mode tags
// select which fields are meaningful.
type rawButton struct {
	Type    string      `yaml:"type"`
	Name    string      `yaml:"name"`
	Icon    string      `yaml:"icon"`
	Command string      `yaml:"command"`
	Args    []string    `yaml:"args"`
	Buttons []rawButton `yaml:"buttons"`

	Mode       string   `yaml:"mode"`
	OnCommand  string   `yaml:"on_command"`
	OnArgs     []string `yaml:"on_args"`
	OffCommand string   `yaml:"off_command"`
	OffArgs    []string `yaml:"off_args"`

	ProbeCommand string   `yaml:"probe_command"`
	ProbeArgs    []string `yaml:"probe_args"`
	OnIcon       string   `yaml:"on_icon"`
	OffIcon      string   `yaml:"off_icon"`
}

type rawMenu struct {
	Name    string      `yaml:"name"`
	Buttons []rawButton `yaml:"buttons"`
}

type rawConfig struct {
	Menu rawMenu `yaml:"menu"`
}

// Load reads and parses the button tree from a YAML file.
func Load(path string) (*button.Menu, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	menu, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return menu, nil
}

// Parse decodes a YAML document into the button tree.
func Parse(data []byte) (*button.Menu, error) {
	var raw rawConfig
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw.Menu.Name == "" {
		return nil, &ParseError{Reason: "top-level menu has no name"}
	}
	return buildMenu(raw.Menu.Name, "", raw.Menu.Buttons)
}

func buildMenu(name, icon string, raws []rawButton) (*button.Menu, error) {
	menu := &button.Menu{Name: name, Icon: icon}
	for _, r := range raws {
		b, err := buildButton(r)
		if err != nil {
			return nil, err
		}
		menu.Buttons = append(menu.Buttons, b)
	}
	return menu, nil
}

func buildButton(r rawButton) (button.Button, error) {
	switch r.Type {
	case "command":
		if r.Name == "" {
			return nil, &ParseError{Reason: "command button has no name"}
		}
		if r.Command == "" {
			return nil, &ParseError{Button: r.Name, Reason: "command button has no command"}
		}
		return &button.Command{Name: r.Name, Command: r.Command, Args: r.Args, Icon: r.Icon}, nil

	case "menu":
		if r.Name == "" {
			return nil, &ParseError{Reason: "menu button has no name"}
		}
		return buildMenu(r.Name, r.Icon, r.Buttons)

	case "back":
		name := r.Name
		if name == "" {
			name = defaultBackName
		}
		return &button.Back{Name: name, Icon: r.Icon}, nil

	case "toggle":
		if r.Name == "" {
			return nil, &ParseError{Reason: "toggle button has no name"}
		}
		mode, err := buildMode(r)
		if err != nil {
			return nil, err
		}
		return &button.Toggle{
			Name:         r.Name,
			Mode:         mode,
			ProbeCommand: r.ProbeCommand,
			ProbeArgs:    r.ProbeArgs,
			OnIcon:       r.OnIcon,
			OffIcon:      r.OffIcon,
			Icon:         r.Icon,
		}, nil

	case "":
		return nil, &ParseError{Button: r.Name, Reason: "button has no type"}
	default:
		return nil, &ParseError{Button: r.Name, Reason: fmt.Sprintf("unknown button type %q", r.Type)}
	}
}

func buildMode(r rawButton) (button.ToggleMode, error) {
	switch r.Mode {
	case "single":
		if r.Command == "" {
			return nil, &ParseError{Button: r.Name, Reason: "single-mode toggle has no command"}
		}
		return &button.SingleMode{Command: r.Command, Args: r.Args}, nil
	case "separate":
		if r.OnCommand == "" || r.OffCommand == "" {
			return nil, &ParseError{Button: r.Name, Reason: "separate-mode toggle needs both on_command and off_command"}
		}
		return &button.SeparateMode{
			OnCommand:  r.OnCommand,
			OnArgs:     r.OnArgs,
			OffCommand: r.OffCommand,
			OffArgs:    r.OffArgs,
		}, nil
	case "":
		return nil, &ParseError{Button: r.Name, Reason: "toggle has no mode"}
	default:
		return nil, &ParseError{Button: r.Name, Reason: fmt.Sprintf("unknown toggle mode %q", r.Mode)}
	}
}
