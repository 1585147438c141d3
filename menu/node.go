package menu

import (
	"errors"
	"sort"
	"strings"
)

// ErrNotATree is returned when adding a child would give a node two parents
// or introduce a cycle.
var ErrNotATree = errors.New("menu: node already attached or would create a cycle")

const defaultChildCapacity = 4

// Node is a named, typed entry in the menu tree. The node type is an opaque
// tag whose meaning (root, spacer, rom, ...) belongs to the host.
type Node struct {
	name     string
	typ      int
	parent   *Node
	children []*Node
}

// NewNode creates a node with no children.
func NewNode(typ int, name string) *Node {
	return &Node{
		name:     name,
		typ:      typ,
		children: make([]*Node, 0, defaultChildCapacity),
	}
}

func (n *Node) Name() string { return n.name }
func (n *Node) Type() int    { return n.typ }

// SetName renames the node. Hosts use this for entries whose label tracks a
// setting.
func (n *Node) SetName(name string) { n.name = name }

// Parent returns the node this one is attached to, nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the child slice. Callers must not modify it.
func (n *Node) Children() []*Node { return n.children }

func (n *Node) ChildCount() int { return len(n.children) }

// Cap returns the current child capacity; it grows as children are added.
func (n *Node) Cap() int { return cap(n.children) }

// Child returns the i-th child or nil when i is out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// HasChildren reports whether the node has any children.
func (n *Node) HasChildren() bool { return len(n.children) > 0 }

// AddChild appends child, keeping insertion order. The same node cannot be
// attached twice and a node cannot be added below itself.
func (n *Node) AddChild(child *Node) error {
	if child == nil || child.parent != nil {
		return ErrNotATree
	}
	for p := n; p != nil; p = p.parent {
		if p == child {
			return ErrNotATree
		}
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// Add is AddChild for menu construction code where the child is always fresh.
// It returns the child so calls can be chained.
func (n *Node) Add(typ int, name string) *Node {
	child := NewNode(typ, name)
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Find returns the first node of the given type in depth-first pre-order,
// starting with n itself.
func (n *Node) Find(typ int) *Node {
	if n == nil {
		return nil
	}
	if n.typ == typ {
		return n
	}
	for _, c := range n.children {
		if found := c.Find(typ); found != nil {
			return found
		}
	}
	return nil
}

// ClearChildren detaches every descendant of n. n itself is kept.
func (n *Node) ClearChildren() {
	for i, c := range n.children {
		c.ClearChildren()
		c.parent = nil
		n.children[i] = nil
	}
	n.children = n.children[:0]
}

// CompareNames orders nodes by name, ignoring case first and falling back to
// a case-sensitive comparison so the order is total.
func CompareNames(a, b *Node) int {
	if c := strings.Compare(strings.ToLower(a.name), strings.ToLower(b.name)); c != 0 {
		return c
	}
	return strings.Compare(a.name, b.name)
}

// SortChildren sorts the children with CompareNames. The sort is stable, so
// equal names keep their insertion order.
func (n *Node) SortChildren() {
	sort.SliceStable(n.children, func(i, j int) bool {
		return CompareNames(n.children[i], n.children[j]) < 0
	})
}
