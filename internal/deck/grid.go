package deck

import (
	"go.uber.org/zap"

	"github.com/averill/deckd/internal/button"
	"github.com/averill/deckd/internal/icons"
	"github.com/averill/deckd/internal/logging"
	"github.com/averill/deckd/internal/state"
)

// CellKind tells the front end and the press dispatcher what a cell is
// bound to.
type CellKind int

const (
	// CellEmpty is an unbound cell; presses on it are ignored.
	CellEmpty CellKind = iota
	// CellCommand dispatches its command fire-and-forget.
	CellCommand
	// CellMenu descends into a submenu.
	CellMenu
	// CellToggle invokes the toggle press protocol.
	CellToggle
	// CellBack ascends to the parent node. Only the navigator creates
	// these; user-declared Back buttons never become cells.
	CellBack
)

// Cell is one grid position: label, icon, and the button it is bound to.
// Button is nil for empty cells and for the automatic back affordance.
type Cell struct {
	Kind     CellKind
	Label    string
	Glyph    icons.Glyph
	HasGlyph bool
	Button   button.Button
}

// Grid is the cell assignment for one menu screen, row-major.
type Grid struct {
	Rows  int
	Cols  int
	cells []Cell
}

// At returns the cell at (row, col). Out-of-range coordinates yield an
// empty cell.
func (g Grid) At(row, col int) Cell {
	if row < 0 || row >= g.Rows || col < 0 || col >= g.Cols {
		return Cell{}
	}
	return g.cells[row*g.Cols+col]
}

// backLabel is the label of the automatic back affordance.
const backLabel = "Back"

// Layout renders a node's buttons into a rows×cols grid in declaration
// order. Declared Back buttons are suppressed (later buttons shift up to
// fill the gap). When the node has a parent, the bottom-right cell is
// reserved for the automatic back affordance and declared buttons that
// would spill past the remaining capacity are silently not rendered.
func Layout(n *Node, rows, cols int, store *state.Store) Grid {
	g := Grid{Rows: rows, Cols: cols, cells: make([]Cell, rows*cols)}

	capacity := rows * cols
	if !n.IsRoot() {
		capacity--
	}

	idx := 0
	for _, b := range n.Menu().Buttons {
		if _, isBack := b.(*button.Back); isBack {
			continue
		}
		if idx >= capacity {
			logging.Debug("Button does not fit on screen, not rendered",
				zap.String("menu", n.Menu().Name),
				zap.String("button", b.Label()),
			)
			continue
		}

		cell := Cell{
			Label:  DisplayLabel(b, store),
			Button: b,
		}
		cell.Glyph, cell.HasGlyph = DisplayGlyph(b, store)

		switch b.(type) {
		case *button.Command:
			cell.Kind = CellCommand
		case *button.Menu:
			cell.Kind = CellMenu
		case *button.Toggle:
			cell.Kind = CellToggle
		}

		g.cells[idx] = cell
		idx++
	}

	if !n.IsRoot() {
		back := Cell{Kind: CellBack, Label: backLabel}
		back.Glyph, back.HasGlyph = icons.Resolve("arrow_back")
		g.cells[rows*cols-1] = back
	}

	return g
}
