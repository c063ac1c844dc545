package deck

import (
	"reflect"
	"testing"

	"github.com/averill/deckd/internal/button"
)

func TestNodeRoot(t *testing.T) {
	root := NewRoot(&button.Menu{Name: "Main"})

	if !root.IsRoot() {
		t.Error("NewRoot node should be root")
	}
	if root.Parent() != nil {
		t.Error("root Parent() should be nil")
	}
	if root.Depth() != 0 {
		t.Errorf("root Depth() = %d, want 0", root.Depth())
	}
}

func TestNodeDescendAndPath(t *testing.T) {
	main := &button.Menu{Name: "Main"}
	git := &button.Menu{Name: "Git"}
	remotes := &button.Menu{Name: "Remotes"}

	node := NewRoot(main).Descend(git).Descend(remotes)

	if node.IsRoot() {
		t.Error("descended node should not be root")
	}
	if node.Depth() != 2 {
		t.Errorf("Depth() = %d, want 2", node.Depth())
	}
	want := []string{"Main", "Git", "Remotes"}
	if got := node.Path(); !reflect.DeepEqual(got, want) {
		t.Errorf("Path() = %v, want %v", got, want)
	}
}

func TestNodeAscendRestoresPriorContext(t *testing.T) {
	main := &button.Menu{Name: "Main"}
	git := &button.Menu{Name: "Git"}

	child := NewRoot(main).Descend(git)
	parent := child.Parent()

	if parent == nil {
		t.Fatal("descended node has no parent")
	}
	if parent.Menu().Name != "Main" {
		t.Errorf("parent menu = %q, want Main", parent.Menu().Name)
	}
	if !parent.IsRoot() {
		t.Error("restored parent should still be the root")
	}
}

func TestNodeDescendOwnsChainCopy(t *testing.T) {
	main := &button.Menu{Name: "Main"}
	git := &button.Menu{Name: "Git"}

	base := NewRoot(main)
	childA := base.Descend(git)
	childB := base.Descend(git)

	// Each descent owns its own ancestor chain; sibling descents must
	// not share node storage.
	if childA.Parent() == childB.Parent() {
		t.Error("sibling descents share a parent node")
	}
	if childA.Parent().Menu() != childB.Parent().Menu() {
		t.Error("parent chain copies should still reference the same menu data")
	}
}
