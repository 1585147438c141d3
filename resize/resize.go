// Package resize implements the screen resize dialog: the emulated screen
// is grown or shrunk with the directional controls while a help overlay is
// shown, then accepted or cancelled.
package resize

import "github.com/automoto/emucommon/pad"

// Holding a direction repeats after DelayFrames frames, one frame sooner
// on every repeat, down to no delay.
const (
	DelayFrames = 6
	delayStep   = 1
	delayMin    = 0
)

// CustomSize is returned by FindSize when no preset matches.
const CustomSize = -1

type Size struct {
	Name string
	W, H int
}

// Info is the input and output of a resize operation. CurrentX and
// CurrentY are only updated when the dialog is accepted.
type Info struct {
	Sizes              []Size
	DefaultX, DefaultY float64
	CurrentX, CurrentY float64
}

// FindSize returns the index of the preset of the given dimensions, or
// CustomSize.
func (i *Info) FindSize(w, h int) int {
	for n, s := range i.Sizes {
		if s.W == w && s.H == h {
			return n
		}
	}
	return CustomSize
}

type Result int

const (
	Running Result = iota
	Accepted
	Cancelled
)

// State is a running resize dialog.
type State struct {
	info *Info

	X, Y float64

	locked      bool
	xinc, yinc  float64
	size        int
	delayFrames int
	delayFactor int
}

// Start opens the dialog on info's current size with the aspect ratio
// locked.
func Start(info *Info) *State {
	s := &State{
		info:        info,
		X:           info.CurrentX,
		Y:           info.CurrentY,
		locked:      true,
		delayFrames: -1,
		delayFactor: -1,
	}
	s.size = info.FindSize(int(s.X), int(s.Y))
	s.resetAspectRatio()
	return s
}

func (s *State) resetAspectRatio() {
	s.xinc = 1
	if s.locked && s.Y != 0 {
		s.xinc = s.X / s.Y
	}
	s.yinc = 1
}

func (s *State) Locked() bool { return s.locked }

// Increments returns how far one step moves each dimension.
func (s *State) Increments() (x, y float64) { return s.xinc, s.yinc }

// Size returns the current dimensions rounded down to whole pixels.
func (s *State) Size() (w, h int) { return int(s.X), int(s.Y) }

// SizeName is the name of the matching preset or "Custom".
func (s *State) SizeName() string {
	i := s.info.FindSize(s.Size())
	if i == CustomSize {
		return "Custom"
	}
	return s.info.Sizes[i].Name
}

// Step advances the dialog by one frame. held and pressed are the decoded
// pad inputs of the frame.
func (s *State) Step(held, pressed pad.Input) Result {
	const dirs = pad.InputUp | pad.InputDown | pad.InputLeft | pad.InputRight

	switch {
	case held&dirs == 0:
		s.delayFrames = -1
		s.delayFactor = -1
	case s.delayFrames < 0:
		s.move(held)
		s.delayFactor++
		s.delayFrames = max(DelayFrames-delayStep*s.delayFactor, delayMin)
	default:
		s.delayFrames--
	}

	if s.X < 0 || s.Y < 0 {
		if s.locked || s.X < 0 {
			s.X += s.xinc
		}
		if s.locked || s.Y < 0 {
			s.Y += s.yinc
		}
	}

	result := Running
	if pressed.Has(pad.InputEnter) {
		s.info.CurrentX = s.X
		s.info.CurrentY = s.Y
		result = Accepted
	} else if pressed.Has(pad.InputEsc | pad.InputHome) {
		result = Cancelled
	}

	if pressed.Has(pad.InputMinus) {
		s.locked = !s.locked
		s.resetAspectRatio()
	}
	if pressed.Has(pad.InputPlus) {
		s.nextSize()
	}
	return result
}

// move applies one step in the first held direction. With the aspect
// ratio locked both dimensions change together.
func (s *State) move(held pad.Input) {
	switch {
	case held.Has(pad.InputLeft):
		s.X -= s.xinc
		if s.locked {
			s.Y -= s.yinc
		}
	case held.Has(pad.InputRight):
		s.X += s.xinc
		if s.locked {
			s.Y += s.yinc
		}
	case held.Has(pad.InputDown):
		s.Y += s.yinc
		if s.locked {
			s.X += s.xinc
		}
	case held.Has(pad.InputUp):
		s.Y -= s.yinc
		if s.locked {
			s.X -= s.xinc
		}
	}
}

// nextSize cycles through the presets. Without presets the defaults are
// restored.
func (s *State) nextSize() {
	if len(s.info.Sizes) == 0 {
		s.X, s.Y = s.info.DefaultX, s.info.DefaultY
	} else {
		s.size++
		if s.size >= len(s.info.Sizes) {
			s.size = 0
		}
		sz := s.info.Sizes[s.size]
		s.X, s.Y = float64(sz.W), float64(sz.H)
	}
	s.resetAspectRatio()
}

// Line is one row of the help overlay. Gap is the extra space before the
// next row.
type Line struct {
	Key, Value string
	Gap        bool
}

// Lines returns the help overlay rows for the current state.
func (s *State) Lines() []Line {
	sizes := "Toggle screen sizes"
	if len(s.info.Sizes) <= 1 {
		sizes = "Reset to defaults"
	}
	lock := "Unlocked"
	if s.locked {
		lock = "Locked"
	}
	return []Line{
		{Key: "D-pad/Analog", Value: "Resize screen"},
		{Key: "A/2 button", Value: "Accept changes"},
		{Key: "B/1 button", Value: "Cancel changes", Gap: true},
		{Key: "Minus/LTrigger", Value: "Toggle A/R lock"},
		{Key: "Plus/RTrigger", Value: sizes, Gap: true},
		{Key: "Screen size", Value: s.SizeName()},
		{Key: "Aspect ratio", Value: lock},
	}
}
