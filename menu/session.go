package menu

import (
	"errors"
	"fmt"
)

// Action is a logical menu input, already decoded from the controller.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionConfirm
	ActionCancel
	ActionHome
)

// StatusSeconds is how long a status message stays in the footer.
const StatusSeconds = 5

// Options tunes a Session. Zero values pick the defaults.
type Options struct {
	// Rows is the number of entries that fit on screen. Zero disables
	// scrolling.
	Rows int
	// StackLimit caps the menu depth, StackCapacity when zero.
	StackLimit int
	// FrameRate drives the status message countdown (50 for PAL, 60 for
	// NTSC). Defaults to 60.
	FrameRate int
}

// Session owns the navigation state of one interactive menu: the tree, the
// stack of open menus, one cursor per depth and the status line.
type Session struct {
	root    *Node
	host    Host
	stack   *Stack
	cursors []Cursor
	rows    int
	fps     int

	status      string
	statusCount int

	quit   bool
	redraw bool
}

// NewSession creates a session positioned at root. The cursor starts before
// the first child; Open or ResetIndexes selects the first qualifying one.
func NewSession(root *Node, host Host, opts Options) *Session {
	if opts.FrameRate <= 0 {
		opts.FrameRate = 60
	}
	return &Session{
		root:    root,
		host:    host,
		stack:   NewStack(opts.StackLimit),
		cursors: []Cursor{newCursor()},
		rows:    opts.Rows,
		fps:     opts.FrameRate,
		redraw:  true,
	}
}

func (s *Session) Root() *Node { return s.root }
func (s *Session) Host() Host  { return s.host }

// Depth is the number of menus pushed above the root.
func (s *Session) Depth() int { return s.stack.Len() }

// Current returns the menu on screen.
func (s *Session) Current() *Node {
	if top := s.stack.Peek(); top != nil {
		return top
	}
	return s.root
}

func (s *Session) cursor() *Cursor { return &s.cursors[len(s.cursors)-1] }

// Cursor returns a copy of the cursor of the menu on screen.
func (s *Session) Cursor() Cursor { return *s.cursor() }

// Index is the selected child index of the current menu or NoSelection.
func (s *Session) Index() int { return s.cursor().Index }

// Selected returns the highlighted node, nil when nothing qualifies.
func (s *Session) Selected() *Node {
	return s.Current().Child(s.cursor().Index)
}

// Move steps the cursor over visible and selectable children of the current
// menu, wrapping at either end. With steps of zero the current selection is
// kept when it still qualifies and advanced otherwise.
func (s *Session) Move(steps int) {
	menu := s.Current()
	c := s.cursor()
	children := menu.Children()
	if !anyQualifying(s.host, children) {
		c.Index, c.Start = NoSelection, 0
		return
	}
	if steps == 0 {
		if qualifies(s.host, menu.Child(c.Index)) {
			c.scroll(s.host, children, s.rows)
			return
		}
		steps = 1
	}
	c.Index = step(s.host, children, c.Index, steps)
	c.scroll(s.host, children, s.rows)
}

// ResetIndexes selects the first qualifying child of the current menu and
// drops the scroll offset. Call it after rebuilding the current menu.
func (s *Session) ResetIndexes() {
	c := s.cursor()
	c.Index, c.Start = NoSelection, 0
	s.Move(1)
	s.redraw = true
}

// Push opens menu one level deeper with a fresh cursor.
func (s *Session) Push(menu *Node) error {
	if err := s.stack.Push(menu); err != nil {
		return fmt.Errorf("push %q: %w", menu.Name(), err)
	}
	s.cursors = append(s.cursors, newCursor())
	s.ResetIndexes()
	return nil
}

// Pop closes the menu on screen and returns it. At the root it returns
// ErrStackEmpty and leaves the session untouched. The parent's cursor is
// restored, falling forward if its entry no longer qualifies.
func (s *Session) Pop() (*Node, error) {
	top, err := s.stack.Pop()
	if err != nil {
		return nil, err
	}
	s.cursors = s.cursors[:len(s.cursors)-1]
	s.Move(0)
	s.redraw = true
	return top, nil
}

// PopToRoot closes every open menu.
func (s *Session) PopToRoot() {
	s.stack.Reset()
	s.cursors = s.cursors[:1]
	s.Move(0)
	s.redraw = true
}

// Handle applies one decoded input. Cancel at the root reports
// ErrStackEmpty so the host can decide whether that means exit.
func (s *Session) Handle(a Action) error {
	switch a {
	case ActionUp:
		s.Move(-1)
	case ActionDown:
		s.Move(1)
	case ActionLeft, ActionRight:
		adj, ok := s.host.(Adjuster)
		sel := s.Selected()
		if !ok || sel == nil || opens(s.host, sel) {
			return nil
		}
		delta := 1
		if a == ActionLeft {
			delta = -1
		}
		adj.AdjustNode(sel, delta)
		s.Move(0)
	case ActionConfirm:
		sel := s.Selected()
		if sel == nil {
			return nil
		}
		if opens(s.host, sel) {
			return s.Push(sel)
		}
		s.host.SelectNode(sel)
		s.Move(0)
	case ActionCancel:
		_, err := s.Pop()
		return err
	case ActionHome:
		s.host.HomeButton()
	}
	return nil
}

// IgnoreRoot filters the error Handle returns for cancel at the root.
func IgnoreRoot(err error) error {
	if errors.Is(err, ErrStackEmpty) {
		return nil
	}
	return err
}

// Open starts an interactive pass over the menu.
func (s *Session) Open() {
	s.quit = false
	s.host.PreLoop()
	s.ResetIndexes()
}

// Close ends the interactive pass.
func (s *Session) Close() { s.host.PostLoop() }

// Tick runs once per display cycle.
func (s *Session) Tick() {
	s.host.Update(s.Current())
	if s.statusCount > 0 {
		s.statusCount--
		if s.statusCount == 0 {
			s.status = ""
		}
	}
}

// Quit asks the menu loop to end after the current cycle.
func (s *Session) Quit()          { s.quit = true }
func (s *Session) Quitting() bool { return s.quit }

// ForceRedraw marks the menu as changed outside of navigation.
func (s *Session) ForceRedraw() { s.redraw = true }

// TakeRedraw reports and clears the redraw flag.
func (s *Session) TakeRedraw() bool {
	r := s.redraw
	s.redraw = false
	return r
}

// SetStatus shows msg in the footer for StatusSeconds.
func (s *Session) SetStatus(msg string) {
	s.status = msg
	s.statusCount = s.fps * StatusSeconds
}

// Status returns the active status message and the frames it has left.
func (s *Session) Status() (string, int) { return s.status, s.statusCount }

// Footer returns the status message while one is active, otherwise the
// host's footer for the current menu.
func (s *Session) Footer() string {
	if s.statusCount > 0 {
		return s.status
	}
	return s.host.Footer(s.Current())
}

func (s *Session) Header() string { return s.host.Header(s.Current()) }

// Rows returns the visible entries of the current menu that fit on screen.
func (s *Session) Rows() []Row {
	menu := s.Current()
	c := s.cursor()
	var rows []Row
	pos := 0
	for i, child := range menu.Children() {
		if !s.host.IsNodeVisible(child) {
			continue
		}
		if pos >= c.Start && (s.rows <= 0 || pos < c.Start+s.rows) {
			rows = append(rows, Row{Node: child, Index: i, Selected: i == c.Index})
		}
		pos++
	}
	return rows
}

// ListFooter describes the position of the selection within the ROM entries
// of the current menu, e.g. "3 of 12 games".
func (s *Session) ListFooter(listName, plural string) string {
	romType := s.host.ROMType()
	total, pos := 0, 0
	selIdx := s.cursor().Index
	for i, child := range s.Current().Children() {
		if child.Type() != romType || !s.host.IsNodeVisible(child) {
			continue
		}
		total++
		if i == selIdx {
			pos = total
		}
	}
	switch {
	case total == 0:
		return fmt.Sprintf("No %s found", plural)
	case pos == 0 && total == 1:
		return fmt.Sprintf("1 %s", listName)
	case pos == 0:
		return fmt.Sprintf("%d %s", total, plural)
	case total == 1:
		return fmt.Sprintf("1 of 1 %s", listName)
	}
	return fmt.Sprintf("%d of %d %s", pos, total, plural)
}
