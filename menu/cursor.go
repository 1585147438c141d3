package menu

// NoSelection is the cursor index when no child of the menu qualifies.
const NoSelection = -1

// Cursor tracks the highlighted child of one menu level. Start is the first
// visible row shown when the list is longer than the screen.
type Cursor struct {
	Index int
	Start int
}

func newCursor() Cursor { return Cursor{Index: NoSelection} }

// Row is one visible entry of the menu on screen.
type Row struct {
	Node     *Node
	Index    int // index into the menu's children
	Selected bool
}

// step moves idx by steps over qualifying children, wrapping at both ends.
// The caller guarantees at least one child qualifies.
func step(h Host, children []*Node, idx, steps int) int {
	n := len(children)
	if idx < NoSelection || idx >= n {
		idx = NoSelection
	}
	dir := 1
	if steps < 0 {
		dir, steps = -1, -steps
	}
	for ; steps > 0; steps-- {
		for {
			idx += dir
			if idx >= n {
				idx = 0
			} else if idx < 0 {
				idx = n - 1
			}
			if qualifies(h, children[idx]) {
				break
			}
		}
	}
	return idx
}

func anyQualifying(h Host, children []*Node) bool {
	for _, c := range children {
		if qualifies(h, c) {
			return true
		}
	}
	return false
}

// visiblePos returns the position of children[idx] among visible children.
func visiblePos(h Host, children []*Node, idx int) int {
	pos := 0
	for i := 0; i < idx && i < len(children); i++ {
		if h.IsNodeVisible(children[i]) {
			pos++
		}
	}
	return pos
}

// scroll keeps the selected row inside a window of rows visible entries.
func (c *Cursor) scroll(h Host, children []*Node, rows int) {
	if rows <= 0 || c.Index == NoSelection {
		c.Start = 0
		return
	}
	p := visiblePos(h, children, c.Index)
	if p < c.Start {
		c.Start = p
	} else if p >= c.Start+rows {
		c.Start = p - rows + 1
	}
}
