package settings

import (
	"bytes"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/automoto/emucommon/store"
)

func TestReadValues(t *testing.T) {
	const file = `vsync=0
widescreen=7
mote_menu_vertical=1
top_menu_exit=0
double_strike=true
trap_filter=0
16_9_correction=1
usb_keepalive=0
sel_color=ff000080
sel_offset=-3
last_rom=sd:/roms/pitfall.a26
screen_width=600
screen_height=-20
`
	s := Defaults()
	if err := store.ReadConfig(strings.NewReader(file), s); err != nil {
		t.Fatal(err)
	}
	want := Settings{
		Vsync:        VsyncDisabled,
		Widescreen:   WidescreenAuto,
		MoteVertical: true,
		TopMenuExit:  false,
		DoubleStrike: true,
		TrapFilter:   false,
		Correct169:   true,
		USBKeepAlive: false,
		SelColor:     color.RGBA{R: 0xff, A: 0x80},
		SelOffset:    -3,
		LastROM:      "sd:/roms/pitfall.a26",
		ScreenW:      600,
		ScreenH:      0,
	}
	if *s != want {
		t.Errorf("got %+v\nwant %+v", *s, want)
	}
}

func TestBadColorKeepsDefault(t *testing.T) {
	s := Defaults()
	s.ReadValue(KeySelColor, "blue")
	if s.SelColor != DefaultSelColor {
		t.Errorf("sel color = %v", s.SelColor)
	}
}

func TestUnknownKeysForwarded(t *testing.T) {
	extra := store.Values{}
	s := Defaults()
	s.Next = extra
	if err := store.ReadConfig(strings.NewReader("vsync=0\nfrequency=50\n"), s); err != nil {
		t.Fatal(err)
	}
	if extra["frequency"] != "50" || len(extra) != 1 {
		t.Errorf("forwarded %v", extra)
	}

	var buf bytes.Buffer
	if err := store.WriteConfig(&buf, s); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "vsync=0\n") {
		t.Errorf("output starts %q", out[:min(len(out), 20)])
	}
	if !strings.HasSuffix(out, "frequency=50\n") {
		t.Errorf("forwarded value not written last:\n%s", out)
	}
}

func TestSaveLoad(t *testing.T) {
	f := store.ConfigFile{Backend: store.DirBackend{Root: t.TempDir()}, Name: "settings.conf"}

	s := Defaults()
	if err := s.Load(f); err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if *s != *Defaults() {
		t.Error("missing file changed settings")
	}

	s.Widescreen = WidescreenEnabled
	s.LastROM = "usb:/roms/a.bin"
	s.CycleSelColor(1)
	if err := s.Save(f); err != nil {
		t.Fatal(err)
	}

	got := Defaults()
	if err := got.Load(f); err != nil {
		t.Fatal(err)
	}
	if *got != *s {
		t.Errorf("round trip:\n%+v\n%+v", *got, *s)
	}
}

type failingBackend struct{ store.DirBackend }

var errDisk = errors.New("disk on fire")

func (failingBackend) Load(string) ([]byte, error) { return nil, errDisk }

func TestLoadReportsErrors(t *testing.T) {
	f := store.ConfigFile{Backend: failingBackend{}, Name: "settings.conf"}
	if err := Defaults().Load(f); !errors.Is(err, errDisk) {
		t.Errorf("err = %v", err)
	}
}

func TestCycleSelColor(t *testing.T) {
	s := Defaults()
	s.CycleSelColor(-1)
	if s.SelColor != SelColors[len(SelColors)-1] {
		t.Errorf("backwards from first = %v", s.SelColor)
	}
	s.CycleSelColor(1)
	if s.SelColor != SelColors[0] {
		t.Errorf("wrap forward = %v", s.SelColor)
	}
	s.SelColor = color.RGBA{R: 1}
	if name := SelColorName(s.SelColor); name != "Custom" {
		t.Errorf("unknown colour named %q", name)
	}
	s.CycleSelColor(1)
	if s.SelColor != SelColors[0] {
		t.Errorf("unknown colour = %v", s.SelColor)
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{VsyncEnabled.String(), "Enabled"},
		{VsyncDisabled.String(), "Disabled"},
		{WidescreenAuto.String(), "Auto"},
		{WidescreenEnabled.String(), "Enabled"},
		{WidescreenDisabled.String(), "Disabled"},
		{SelColorName(DefaultSelColor), "Blue"},
		{SelColorName(SelColors[3]), "Orange"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %q, want %q", tt.got, tt.want)
		}
	}
}

func TestScreenSize(t *testing.T) {
	tests := []struct {
		name         string
		w, h         int
		correct      bool
		wide         Widescreen
		wantW, wantH int
	}{
		{"default", 0, 0, false, WidescreenAuto, 640, 480},
		{"resized", 600, 450, false, WidescreenAuto, 600, 450},
		{"half set", 600, 0, false, WidescreenAuto, 640, 480},
		{"corrected", 0, 0, true, WidescreenEnabled, 480, 480},
		{"correction needs widescreen", 0, 0, true, WidescreenAuto, 640, 480},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Defaults()
			s.ScreenW, s.ScreenH = tt.w, tt.h
			s.Correct169 = tt.correct
			s.Widescreen = tt.wide
			w, h := s.ScreenSize(640, 480)
			if w != tt.wantW || h != tt.wantH {
				t.Errorf("ScreenSize = %dx%d, want %dx%d", w, h, tt.wantW, tt.wantH)
			}
		})
	}
}
