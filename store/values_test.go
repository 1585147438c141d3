package store

import (
	"image/color"
	"testing"
)

func TestParseInt(t *testing.T) {
	tests := map[string]int{
		"42":    42,
		" -7 ":  -7,
		"+3":    3,
		"12abc": 12,
		"abc":   0,
		"":      0,
		"-":     0,
		"007":   7,
		"1.5":   1,
	}
	for in, want := range tests {
		if got := ParseInt(in); got != want {
			t.Errorf("ParseInt(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseBool(t *testing.T) {
	for in, want := range map[string]bool{"1": true, "0": false, "true": true, "2": true, "no": false} {
		if got := ParseBool(in); got != want {
			t.Errorf("ParseBool(%q) = %v, want %v", in, got, want)
		}
	}
	if FormatBool(true) != "1" || FormatBool(false) != "0" {
		t.Error("FormatBool")
	}
}

func TestRGBA(t *testing.T) {
	c, err := ParseRGBA("0a141eff")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("ParseRGBA = %v", c)
	}
	if got := FormatRGBA(c); got != "0a141eff" {
		t.Errorf("FormatRGBA = %q", got)
	}

	c, err = ParseRGBA("#ff8000")
	if err != nil || c.A != 0xff || c.G != 0x80 {
		t.Errorf("ParseRGBA(#ff8000) = %v, %v", c, err)
	}
	for _, bad := range []string{"fff", "zzzzzz", "123456789"} {
		if _, err := ParseRGBA(bad); err == nil {
			t.Errorf("ParseRGBA(%q) accepted", bad)
		}
	}
}
