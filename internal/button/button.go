package button

// Button is the closed set of button kinds a menu may contain. Consumers
// type-switch over the four concrete types; adding a kind means updating
// every switch, which is the point.
type Button interface {
	// Label returns the declared display name of the button.
	Label() string

	// IconSpec returns the declared icon specification ("style:name" or
	// bare "name"), or the empty string when no icon was declared.
	IconSpec() string

	button()
}

// Command runs an external command when pressed.
type Command struct {
	Name    string
	Command string
	Args    []string
	Icon    string
}

func (b *Command) Label() string    { return b.Name }
func (b *Command) IconSpec() string { return b.Icon }
func (*Command) button()            {}

// Menu descends into a named submenu when pressed.
type Menu struct {
	Name    string
	Buttons []Button
	Icon    string
}

func (b *Menu) Label() string    { return b.Name }
func (b *Menu) IconSpec() string { return b.Icon }
func (*Menu) button()            {}

// Back is a user-declared return-to-parent entry. The navigator supplies
// its own back affordance, so declared Back buttons are absorbed at
// render time and never occupy a cell.
type Back struct {
	Name string
	Icon string
}

func (b *Back) Label() string    { return b.Name }
func (b *Back) IconSpec() string { return b.Icon }
func (*Back) button()            {}

// Toggle flips an external on/off state when pressed. Its current state
// is tracked in the state store and optionally observed via a probe
// command.
type Toggle struct {
	Name         string
	Mode         ToggleMode
	ProbeCommand string
	ProbeArgs    []string
	OnIcon       string
	OffIcon      string
	Icon         string
}

func (b *Toggle) Label() string    { return b.Name }
func (b *Toggle) IconSpec() string { return b.Icon }
func (*Toggle) button()            {}

// HasProbe reports whether a probe command is configured.
func (b *Toggle) HasProbe() bool { return b.ProbeCommand != "" }

// ToggleMode selects how a Toggle maps states to commands.
type ToggleMode interface {
	toggleMode()
}

// SingleMode runs one command for both directions; the effect direction
// is inferred from the current state.
type SingleMode struct {
	Command string
	Args    []string
}

func (*SingleMode) toggleMode() {}

// SeparateMode runs distinct commands per target state.
type SeparateMode struct {
	OnCommand  string
	OnArgs     []string
	OffCommand string
	OffArgs    []string
}

func (*SeparateMode) toggleMode() {}
