package deck

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/averill/deckd/internal/button"
	"github.com/averill/deckd/internal/logging"
	"github.com/averill/deckd/internal/runner"
	"github.com/averill/deckd/internal/state"
	"github.com/averill/deckd/internal/toggle"
)

// Navigator owns the current menu node and dispatches presses to the
// command runner, the toggle orchestrator, or itself (descend/ascend).
// It is safe for concurrent use: front ends deliver presses one at a
// time, but a remote trigger may inject a press while the render path
// reads the grid.
type Navigator struct {
	mu    sync.Mutex
	rows  int
	cols  int
	store *state.Store
	orch  *toggle.Orchestrator
	node  *Node
}

// NewNavigator creates a navigator rooted at the given menu.
func NewNavigator(root *button.Menu, rows, cols int, store *state.Store, orch *toggle.Orchestrator) *Navigator {
	return &Navigator{
		rows:  rows,
		cols:  cols,
		store: store,
		orch:  orch,
		node:  NewRoot(root),
	}
}

// Grid returns the cell assignment for the current node. Toggle labels
// and icons reflect the state store at the time of the call.
func (nv *Navigator) Grid() Grid {
	nv.mu.Lock()
	node := nv.node
	nv.mu.Unlock()
	return Layout(node, nv.rows, nv.cols, nv.store)
}

// Path returns the breadcrumb of menu names down to the current node.
func (nv *Navigator) Path() []string {
	nv.mu.Lock()
	defer nv.mu.Unlock()
	return nv.node.Path()
}

// Reset replaces the tree with a fresh root, discarding the current
// position. Used after a config reload.
func (nv *Navigator) Reset(root *button.Menu) {
	nv.mu.Lock()
	nv.node = NewRoot(root)
	nv.mu.Unlock()
	logging.Info("Navigator reset", zap.String("menu", root.Name))
}

// Press dispatches the button occupying (row, col) on the current
// screen. Command cells are fire-and-forget; toggle cells run the full
// press protocol synchronously so the caller can refresh icons from the
// updated store when this returns.
func (nv *Navigator) Press(ctx context.Context, row, col int) {
	nv.mu.Lock()
	node := nv.node
	cell := Layout(node, nv.rows, nv.cols, nv.store).At(row, col)

	switch cell.Kind {
	case CellMenu:
		child := cell.Button.(*button.Menu)
		nv.node = node.Descend(child)
		nv.mu.Unlock()
		logging.Info("Descending into menu", zap.String("menu", child.Name))
		return

	case CellBack:
		if parent := node.Parent(); parent != nil {
			nv.node = parent
			nv.mu.Unlock()
			logging.Info("Ascending to parent menu", zap.String("menu", parent.Menu().Name))
		} else {
			nv.mu.Unlock()
		}
		return
	}
	nv.mu.Unlock()

	switch cell.Kind {
	case CellCommand:
		cmd := cell.Button.(*button.Command)
		logging.LogPress("deck", row, col, cmd.Name)
		// Dispatch and forget: the grid refresh must not block on the
		// command, and errors surface only in the logs.
		go func() {
			if out, err := runner.Run(context.Background(), cmd.Command, cmd.Args, cmd.Name); err != nil {
				logging.Error("Command button failed",
					zap.String("button", cmd.Name),
					zap.Error(err),
				)
			} else if out.ExitCode != 0 {
				logging.Warn("Command button exited non-zero",
					zap.String("button", cmd.Name),
					zap.Int("exit_code", out.ExitCode),
				)
			}
		}()

	case CellToggle:
		t := cell.Button.(*button.Toggle)
		logging.LogPress("deck", row, col, t.Name)
		result := nv.orch.Press(ctx, t)
		if !result.Success {
			logging.Warn("Toggle press failed",
				zap.String("button", t.Name),
				zap.String("error", result.ErrorMessage),
			)
		}

	case CellEmpty:
		logging.Debug("Press on empty cell ignored",
			zap.Int("row", row),
			zap.Int("col", col),
		)
	}
}
