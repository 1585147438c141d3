package menu

// Host is implemented by the application embedding the menu. The session
// calls these once per relevant node per display cycle, so they should be
// cheap and free of surprising side effects.
type Host interface {
	IsNodeVisible(n *Node) bool
	IsNodeSelectable(n *Node) bool
	// NodeName returns the label and optional value column for a node.
	NodeName(n *Node) (name, value string)
	// SelectNode is invoked when a leaf node is confirmed.
	SelectNode(n *Node)
	Header(menu *Node) string
	Footer(menu *Node) string
	// Update runs once per display cycle for the menu on screen.
	Update(menu *Node)
	PreLoop()
	PostLoop()
	HomeButton()
	SpacerType() int
	ROMType() int
}

// Adjuster is an optional Host capability. When implemented, left and right
// input on a leaf node cycles its value instead of being ignored.
type Adjuster interface {
	AdjustNode(n *Node, delta int)
}

// SubMenu is an optional Host capability for menus whose children are
// filled in later, such as a file list. Nodes it reports open on confirm
// even while empty.
type SubMenu interface {
	IsSubMenu(n *Node) bool
}

// BaseHost supplies neutral defaults. Applications embed it and override
// what they need.
type BaseHost struct {
	Spacer int
	ROM    int
}

func (BaseHost) IsNodeVisible(*Node) bool { return true }

// IsNodeSelectable treats everything except spacer rows as selectable.
func (h BaseHost) IsNodeSelectable(n *Node) bool { return n.Type() != h.Spacer }

func (BaseHost) NodeName(n *Node) (string, string) { return n.Name(), "" }
func (BaseHost) SelectNode(*Node)                  {}
func (BaseHost) Header(*Node) string               { return "" }
func (BaseHost) Footer(*Node) string               { return "" }
func (BaseHost) Update(*Node)                      {}
func (BaseHost) PreLoop()                          {}
func (BaseHost) PostLoop()                         {}
func (BaseHost) HomeButton()                       {}
func (h BaseHost) SpacerType() int                 { return h.Spacer }
func (h BaseHost) ROMType() int                    { return h.ROM }

// qualifies reports whether n can hold the selection.
func qualifies(h Host, n *Node) bool {
	return n != nil && h.IsNodeVisible(n) && h.IsNodeSelectable(n)
}

// opens reports whether confirming n pushes it rather than selecting it.
func opens(h Host, n *Node) bool {
	if n.HasChildren() {
		return true
	}
	sm, ok := h.(SubMenu)
	return ok && sm.IsSubMenu(n)
}
