package resize

import (
	"testing"

	"github.com/automoto/emucommon/pad"
)

func presets() *Info {
	return &Info{
		Sizes: []Size{
			{Name: "1x", W: 320, H: 240},
			{Name: "2x", W: 640, H: 480},
		},
		DefaultX: 640, DefaultY: 480,
		CurrentX: 640, CurrentY: 480,
	}
}

func TestFindSize(t *testing.T) {
	info := presets()
	if got := info.FindSize(320, 240); got != 0 {
		t.Errorf("FindSize(320, 240) = %d", got)
	}
	if got := info.FindSize(321, 240); got != CustomSize {
		t.Errorf("FindSize(321, 240) = %d", got)
	}
	s := Start(info)
	if s.SizeName() != "2x" {
		t.Errorf("SizeName = %q", s.SizeName())
	}
	s.X++
	if s.SizeName() != "Custom" {
		t.Errorf("SizeName = %q", s.SizeName())
	}
}

func TestStartLocksAspectRatio(t *testing.T) {
	s := Start(&Info{CurrentX: 400, CurrentY: 200})
	if !s.Locked() {
		t.Fatal("aspect ratio not locked")
	}
	if x, y := s.Increments(); x != 2 || y != 1 {
		t.Errorf("increments = %v, %v", x, y)
	}

	s.Step(0, pad.InputMinus)
	if s.Locked() {
		t.Fatal("lock not toggled")
	}
	if x, y := s.Increments(); x != 1 || y != 1 {
		t.Errorf("unlocked increments = %v, %v", x, y)
	}
}

func TestDirections(t *testing.T) {
	tests := []struct {
		name   string
		locked bool
		held   pad.Input
		dx, dy float64
	}{
		{"left locked", true, pad.InputLeft, -2, -1},
		{"right locked", true, pad.InputRight, 2, 1},
		{"down locked", true, pad.InputDown, 2, 1},
		{"up locked", true, pad.InputUp, -2, -1},
		{"left", false, pad.InputLeft, -1, 0},
		{"right", false, pad.InputRight, 1, 0},
		{"down", false, pad.InputDown, 0, 1},
		{"up", false, pad.InputUp, 0, -1},
		{"left wins", false, pad.InputLeft | pad.InputUp, -1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Start(&Info{CurrentX: 400, CurrentY: 200})
			if !tt.locked {
				s.Step(0, pad.InputMinus)
			}
			s.Step(tt.held, 0)
			if s.X != 400+tt.dx || s.Y != 200+tt.dy {
				t.Errorf("size = %v x %v, want %v x %v", s.X, s.Y, 400+tt.dx, 200+tt.dy)
			}
		})
	}
}

func TestHeldDirectionAccelerates(t *testing.T) {
	s := Start(&Info{CurrentX: 100, CurrentY: 100})
	s.Step(0, pad.InputMinus)

	var moves []int
	last := s.X
	for frame := 1; frame <= 60; frame++ {
		s.Step(pad.InputRight, 0)
		if s.X != last {
			moves = append(moves, frame)
			last = s.X
		}
	}

	want := []int{1, 9, 16, 22, 27, 31, 34, 36, 38, 40}
	for i, f := range want {
		if i >= len(moves) || moves[i] != f {
			t.Fatalf("moves at %v, want prefix %v", moves, want)
		}
	}
	if n := len(moves); moves[n-1]-moves[n-2] != 2 {
		t.Errorf("steady repeat = %d frames, want 2", moves[n-1]-moves[n-2])
	}

	// releasing restarts the delay
	s.Step(0, 0)
	x := s.X
	s.Step(pad.InputRight, 0)
	s.Step(pad.InputRight, 0)
	if s.X != x+1 {
		t.Errorf("after release moved %v, want 1", s.X-x)
	}
}

func TestClampAtZero(t *testing.T) {
	s := Start(&Info{CurrentX: 0, CurrentY: 10})
	s.Step(0, pad.InputMinus)
	s.Step(pad.InputLeft, 0)
	if s.X != 0 || s.Y != 10 {
		t.Errorf("unlocked clamp = %v x %v", s.X, s.Y)
	}

	s = Start(&Info{CurrentX: 1, CurrentY: 0.5})
	s.Step(pad.InputLeft, 0)
	if s.X != 1 || s.Y != 0.5 {
		t.Errorf("locked clamp = %v x %v", s.X, s.Y)
	}
}

func TestAcceptAndCancel(t *testing.T) {
	info := &Info{CurrentX: 300, CurrentY: 200}
	s := Start(info)
	s.Step(0, pad.InputMinus)
	s.Step(pad.InputRight, 0)
	if r := s.Step(0, pad.InputEsc); r != Cancelled {
		t.Fatalf("result = %v, want Cancelled", r)
	}
	if info.CurrentX != 300 {
		t.Error("cancel changed the size")
	}

	s = Start(info)
	s.Step(0, pad.InputMinus)
	s.Step(pad.InputRight, 0)
	if r := s.Step(0, pad.InputHome); r != Cancelled {
		t.Errorf("home result = %v", r)
	}

	s = Start(info)
	s.Step(0, pad.InputMinus)
	s.Step(pad.InputRight, 0)
	if r := s.Step(0, 0); r != Running {
		t.Errorf("result = %v, want Running", r)
	}
	if r := s.Step(0, pad.InputEnter); r != Accepted {
		t.Fatalf("result = %v, want Accepted", r)
	}
	if info.CurrentX != 301 || info.CurrentY != 200 {
		t.Errorf("accepted %v x %v", info.CurrentX, info.CurrentY)
	}
}

func TestCycleSizes(t *testing.T) {
	info := presets()
	info.CurrentX, info.CurrentY = 500, 400
	s := Start(info)

	s.Step(0, pad.InputPlus)
	if w, h := s.Size(); w != 320 || h != 240 {
		t.Errorf("first preset = %d x %d", w, h)
	}
	s.Step(0, pad.InputPlus)
	if w, h := s.Size(); w != 640 || h != 480 {
		t.Errorf("second preset = %d x %d", w, h)
	}
	s.Step(0, pad.InputPlus)
	if w, _ := s.Size(); w != 320 {
		t.Errorf("cycle did not wrap: %d", w)
	}
	if !s.Locked() {
		t.Error("cycling changed the lock")
	}

	single := &Info{Sizes: []Size{{Name: "Default", W: 256, H: 192}}, CurrentX: 10, CurrentY: 10}
	s = Start(single)
	if got := s.Lines()[4].Value; got != "Reset to defaults" {
		t.Errorf("plus label = %q", got)
	}
	s.Step(0, pad.InputPlus)
	if w, h := s.Size(); w != 256 || h != 192 {
		t.Errorf("reset = %d x %d", w, h)
	}

	none := &Info{DefaultX: 200, DefaultY: 100, CurrentX: 10, CurrentY: 10}
	s = Start(none)
	s.Step(0, pad.InputPlus)
	if w, h := s.Size(); w != 200 || h != 100 {
		t.Errorf("defaults = %d x %d", w, h)
	}
}

func TestLines(t *testing.T) {
	s := Start(presets())
	lines := s.Lines()
	if len(lines) != 7 {
		t.Fatalf("%d lines", len(lines))
	}
	if lines[4].Value != "Toggle screen sizes" || lines[5].Value != "2x" || lines[6].Value != "Locked" {
		t.Errorf("lines = %+v", lines)
	}
	s.Step(0, pad.InputMinus)
	if s.Lines()[6].Value != "Unlocked" {
		t.Error("lock label not updated")
	}
}
