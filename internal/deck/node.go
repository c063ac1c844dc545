package deck

import "github.com/averill/deckd/internal/button"

// Node is the runtime representation of "which menu is currently
// displayed". Each node exclusively owns a copy of its ancestor chain:
// descending clones the current chain rather than back-referencing it,
// so "back" is a pure data read and parent and child never form a
// reference cycle. Button data itself is immutable after config load and
// is shared, not copied.
type Node struct {
	menu   *button.Menu
	parent *Node
}

// NewRoot creates the node for the top-level menu. It has no parent and
// reserves no back cell.
func NewRoot(menu *button.Menu) *Node {
	return &Node{menu: menu}
}

// Descend creates the node for a child menu, carrying a private copy of
// the current node's full chain as its parent.
func (n *Node) Descend(child *button.Menu) *Node {
	return &Node{menu: child, parent: n.clone()}
}

// Parent returns the node to ascend to, or nil at the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Menu returns the menu this node displays.
func (n *Node) Menu() *button.Menu {
	return n.menu
}

// IsRoot reports whether this node has no parent.
func (n *Node) IsRoot() bool {
	return n.parent == nil
}

// Depth returns the number of ancestors above this node.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// Path returns the menu names from the root down to this node.
func (n *Node) Path() []string {
	var rev []string
	for p := n; p != nil; p = p.parent {
		rev = append(rev, p.menu.Name)
	}
	out := make([]string, len(rev))
	for i, name := range rev {
		out[len(rev)-1-i] = name
	}
	return out
}

func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	return &Node{menu: n.menu, parent: n.parent.clone()}
}
