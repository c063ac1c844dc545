package deck

import (
	"context"
	"testing"

	"github.com/averill/deckd/internal/button"
	"github.com/averill/deckd/internal/probe"
	"github.com/averill/deckd/internal/state"
	"github.com/averill/deckd/internal/toggle"
)

func newTestNavigator(root *button.Menu) (*Navigator, *state.Store) {
	store := state.NewStore()
	orch := toggle.NewOrchestrator(store, probe.DefaultConfig())
	return NewNavigator(root, 2, 3, store, orch), store
}

func TestNavigatorDescendAndBack(t *testing.T) {
	sub := &button.Menu{Name: "Git", Buttons: []button.Button{
		&button.Command{Name: "Status", Command: "true"},
	}}
	root := &button.Menu{Name: "Main", Buttons: []button.Button{sub}}
	nv, _ := newTestNavigator(root)

	// Press the menu button at (0,0).
	nv.Press(context.Background(), 0, 0)

	path := nv.Path()
	if len(path) != 2 || path[1] != "Git" {
		t.Fatalf("after descend Path() = %v, want [Main Git]", path)
	}
	if g := nv.Grid(); g.At(1, 2).Kind != CellBack {
		t.Error("submenu grid missing back affordance")
	}

	// Press the back cell.
	nv.Press(context.Background(), 1, 2)

	path = nv.Path()
	if len(path) != 1 || path[0] != "Main" {
		t.Errorf("after back Path() = %v, want [Main]", path)
	}
}

func TestNavigatorBackRestoresGrandparentChain(t *testing.T) {
	inner := &button.Menu{Name: "Inner"}
	mid := &button.Menu{Name: "Mid", Buttons: []button.Button{inner}}
	root := &button.Menu{Name: "Main", Buttons: []button.Button{mid}}
	nv, _ := newTestNavigator(root)

	nv.Press(context.Background(), 0, 0) // into Mid
	nv.Press(context.Background(), 0, 0) // into Inner
	nv.Press(context.Background(), 1, 2) // back to Mid

	path := nv.Path()
	if len(path) != 2 || path[1] != "Mid" {
		t.Fatalf("Path() = %v, want [Main Mid]", path)
	}

	// The restored node keeps its own parent chain: back again reaches
	// the root.
	nv.Press(context.Background(), 1, 2)
	if path := nv.Path(); len(path) != 1 || path[0] != "Main" {
		t.Errorf("Path() = %v, want [Main]", path)
	}
}

func TestNavigatorTogglePressUpdatesStore(t *testing.T) {
	tog := &button.Toggle{Name: "Echo", Mode: &button.SingleMode{Command: "echo", Args: []string{"flip"}}}
	root := &button.Menu{Name: "Main", Buttons: []button.Button{tog}}
	nv, store := newTestNavigator(root)

	store.Set("Echo", state.Off)
	nv.Press(context.Background(), 0, 0)

	if got := store.Get("Echo"); got != state.On {
		t.Errorf("store after toggle press = %v, want On", got)
	}
}

func TestNavigatorPressEmptyCellIsNoop(t *testing.T) {
	root := &button.Menu{Name: "Main"}
	nv, _ := newTestNavigator(root)

	nv.Press(context.Background(), 1, 1)

	if path := nv.Path(); len(path) != 1 {
		t.Errorf("empty press changed position: %v", path)
	}
}

func TestNavigatorReset(t *testing.T) {
	sub := &button.Menu{Name: "Sub"}
	root := &button.Menu{Name: "Main", Buttons: []button.Button{sub}}
	nv, _ := newTestNavigator(root)

	nv.Press(context.Background(), 0, 0)
	nv.Reset(&button.Menu{Name: "Fresh"})

	if path := nv.Path(); len(path) != 1 || path[0] != "Fresh" {
		t.Errorf("after Reset Path() = %v, want [Fresh]", path)
	}
}
