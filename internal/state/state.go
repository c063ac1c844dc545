package state

// State is the tri-state condition of a toggle button.
type State int

const (
	// Unknown is the state of a never-observed toggle, and the
	// classification when a probe could not run.
	Unknown State = iota
	// On means the probed or assumed condition is active.
	On
	// Off means the probed or assumed condition is inactive.
	Off
)

// Toggle returns the opposite state. Unknown cannot be inverted and
// maps to itself.
func (s State) Toggle() State {
	switch s {
	case On:
		return Off
	case Off:
		return On
	default:
		return Unknown
	}
}

// Known reports whether the state is definitively On or Off.
func (s State) Known() bool {
	return s == On || s == Off
}

func (s State) String() string {
	switch s {
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return "unknown"
	}
}

// Description returns a human-readable sentence for UI footers.
func (s State) Description() string {
	switch s {
	case On:
		return "Currently enabled"
	case Off:
		return "Currently disabled"
	default:
		return "State unknown"
	}
}
