package render

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// StackCapacity bounds how many renderers can be stacked over each other.
const StackCapacity = 16

var ErrCapacityExceeded = errors.New("render: stack capacity exceeded")

// Renderer draws one full-screen UI. RendersScreen reports whether the
// emulator surface should be drawn underneath it.
type Renderer interface {
	PreRender()
	Render(screen *ebiten.Image)
	RendersScreen() bool
}

// Funcs adapts plain functions to a Renderer. Nil functions are skipped.
type Funcs struct {
	Pre    func()
	Draw   func(screen *ebiten.Image)
	Screen bool
}

func (f Funcs) PreRender() {
	if f.Pre != nil {
		f.Pre()
	}
}

func (f Funcs) Render(screen *ebiten.Image) {
	if f.Draw != nil {
		f.Draw(screen)
	}
}

func (f Funcs) RendersScreen() bool { return f.Screen }

// Stack holds the renderers of nested full-screen UIs. The top entry is
// active; popping it reinstates the one below.
type Stack struct {
	items []Renderer
}

func NewStack() *Stack { return &Stack{} }

// Push installs r as the active renderer.
func (s *Stack) Push(r Renderer) error {
	if len(s.items) >= StackCapacity {
		return ErrCapacityExceeded
	}
	s.items = append(s.items, r)
	return nil
}

// Pop removes the active renderer. It is a no-op on an empty stack.
func (s *Stack) Pop() {
	if len(s.items) == 0 {
		return
	}
	s.items[len(s.items)-1] = nil
	s.items = s.items[:len(s.items)-1]
}

// Active returns the renderer on top, nil when none is installed.
func (s *Stack) Active() Renderer {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s *Stack) Len() int { return len(s.items) }

// Draw runs one frame of the active renderer. main draws the emulator
// surface and is only called when the renderer asks for it, or when no
// renderer is installed.
func (s *Stack) Draw(screen *ebiten.Image, main func(screen *ebiten.Image)) {
	r := s.Active()
	if r == nil {
		if main != nil {
			main(screen)
		}
		return
	}
	r.PreRender()
	if r.RendersScreen() && main != nil {
		main(screen)
	}
	r.Render(screen)
}
