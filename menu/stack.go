package menu

import "errors"

// StackCapacity is the deepest menu nesting a session allows.
const StackCapacity = 64

var (
	ErrCapacityExceeded = errors.New("menu: stack capacity exceeded")
	ErrStackEmpty       = errors.New("menu: stack is empty")
)

// Stack is a bounded stack of menus from the root towards the menu on screen.
type Stack struct {
	items []*Node
	limit int
}

// NewStack returns an empty stack holding at most limit entries. A limit of
// zero or less uses StackCapacity.
func NewStack(limit int) *Stack {
	if limit <= 0 {
		limit = StackCapacity
	}
	return &Stack{limit: limit}
}

func (s *Stack) Push(n *Node) error {
	if len(s.items) >= s.limit {
		return ErrCapacityExceeded
	}
	s.items = append(s.items, n)
	return nil
}

func (s *Stack) Pop() (*Node, error) {
	if len(s.items) == 0 {
		return nil, ErrStackEmpty
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
	return top, nil
}

// Peek returns the top entry, or nil when empty.
func (s *Stack) Peek() *Node {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *Stack) Len() int   { return len(s.items) }
func (s *Stack) Limit() int { return s.limit }

// Reset drops every entry.
func (s *Stack) Reset() {
	clear(s.items)
	s.items = s.items[:0]
}
