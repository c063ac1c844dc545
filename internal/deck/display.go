package deck

import (
	"github.com/averill/deckd/internal/button"
	"github.com/averill/deckd/internal/icons"
	"github.com/averill/deckd/internal/state"
)

// State glyph suffixes appended to toggle labels.
const (
	suffixOn      = " ●"
	suffixOff     = " ○"
	suffixUnknown = " ?"
)

// DisplayLabel derives the rendered label for a button. Toggles carry a
// state suffix; everything else shows its bare name.
func DisplayLabel(b button.Button, store *state.Store) string {
	t, ok := b.(*button.Toggle)
	if !ok {
		return b.Label()
	}
	switch store.Get(t.Name) {
	case state.On:
		return t.Name + suffixOn
	case state.Off:
		return t.Name + suffixOff
	default:
		return t.Name + suffixUnknown
	}
}

// DisplayGlyph derives the rendered icon for a button. Non-toggles
// resolve their declared icon (absent means no icon). Toggles pick per
// current state: the state-specific icon first, then the general icon,
// then a canonical default for that state.
func DisplayGlyph(b button.Button, store *state.Store) (icons.Glyph, bool) {
	t, ok := b.(*button.Toggle)
	if !ok {
		return icons.Resolve(b.IconSpec())
	}

	switch store.Get(t.Name) {
	case state.On:
		return toggleGlyph(t.OnIcon, t.Icon, "toggle_on")
	case state.Off:
		return toggleGlyph(t.OffIcon, t.Icon, "toggle_off")
	default:
		return toggleGlyph("", t.Icon, "help")
	}
}

// toggleGlyph walks the fallback chain: the state icon, the general
// icon, then the canonical default name. The resolver returns a glyph
// for any non-empty spec, so in practice the chain stops at the first
// declared field.
func toggleGlyph(stateIcon, generalIcon, defaultName string) (icons.Glyph, bool) {
	if g, ok := icons.Resolve(stateIcon); ok {
		return g, true
	}
	if g, ok := icons.Resolve(generalIcon); ok {
		return g, true
	}
	return icons.Resolve(defaultName)
}
