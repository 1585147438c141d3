package gfx

import "testing"

func TestCoordinates(t *testing.T) {
	tests := []struct {
		sx, sy, gx, gy int
	}{
		{0, 0, -320, 240},
		{320, 240, 0, 0},
		{640, 480, 320, -240},
		{90, 160, -230, 80},
	}
	for _, tt := range tests {
		if got := X(tt.sx, 640); got != tt.gx {
			t.Errorf("X(%d) = %d, want %d", tt.sx, got, tt.gx)
		}
		if got := Y(tt.sy, 480); got != tt.gy {
			t.Errorf("Y(%d) = %d, want %d", tt.sy, got, tt.gy)
		}
	}
}

func TestStyleMasks(t *testing.T) {
	s := AlignTop | JustifyRight
	if s&justifyMask != JustifyRight || s&alignMask != AlignTop {
		t.Errorf("style %#x splits into %#x and %#x", s, s&justifyMask, s&alignMask)
	}
}
