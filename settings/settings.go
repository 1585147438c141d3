// Package settings holds the user preferences shared by every front-end
// built on this module, stored as name=value lines.
package settings

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/automoto/emucommon/store"
)

type Vsync int

const (
	VsyncDisabled Vsync = iota
	VsyncEnabled
)

func (v Vsync) String() string {
	if v == VsyncEnabled {
		return "Enabled"
	}
	return "Disabled"
}

type Widescreen int

const (
	WidescreenDisabled Widescreen = iota
	WidescreenEnabled
	WidescreenAuto
)

func (w Widescreen) String() string {
	switch w {
	case WidescreenEnabled:
		return "Enabled"
	case WidescreenAuto:
		return "Auto"
	}
	return "Disabled"
}

// Config keys.
const (
	KeyVsync         = "vsync"
	KeyWidescreen    = "widescreen"
	KeyMoteVertical  = "mote_menu_vertical"
	KeyTopMenuExit   = "top_menu_exit"
	KeyDoubleStrike  = "double_strike"
	KeyTrapFilter    = "trap_filter"
	Key169Correction = "16_9_correction"
	KeyUSBKeepAlive  = "usb_keepalive"
	KeySelColor      = "sel_color"
	KeySelOffset     = "sel_offset"
	KeyLastROM       = "last_rom"
	KeyScreenWidth   = "screen_width"
	KeyScreenHeight  = "screen_height"
)

// DefaultSelColor is the selection bar colour of a fresh install.
var DefaultSelColor = color.RGBA{R: 0x00, G: 0x77, B: 0xff, A: 0xcc}

// SelColors are the selection bar colours offered by the menu.
var SelColors = []color.RGBA{
	DefaultSelColor,
	{R: 0xff, G: 0x40, B: 0x40, A: 0xcc},
	{R: 0x20, G: 0xc0, B: 0x40, A: 0xcc},
	{R: 0xff, G: 0xa0, B: 0x00, A: 0xcc},
	{R: 0x90, G: 0x40, B: 0xff, A: 0xcc},
}

var selColorNames = []string{"Blue", "Red", "Green", "Orange", "Purple"}

// SelColorName names c if it is one of SelColors.
func SelColorName(c color.RGBA) string {
	for i, sc := range SelColors {
		if sc == c {
			return selColorNames[i]
		}
	}
	return "Custom"
}

// Settings is a store.ConfigHandler. Keys it does not know are passed to
// Next so the emulator can keep its own values in the same file.
type Settings struct {
	Vsync        Vsync
	Widescreen   Widescreen
	MoteVertical bool
	TopMenuExit  bool
	DoubleStrike bool
	TrapFilter   bool
	Correct169   bool
	USBKeepAlive bool
	SelColor     color.RGBA
	SelOffset    int
	LastROM      string
	// ScreenW and ScreenH are the emulator screen size picked in the
	// resize dialog, zero for the core's native size.
	ScreenW int
	ScreenH int
	Next    store.ConfigHandler
}

// Defaults returns the settings of a fresh install.
func Defaults() *Settings {
	return &Settings{
		Vsync:        VsyncEnabled,
		Widescreen:   WidescreenAuto,
		TopMenuExit:  true,
		TrapFilter:   true,
		USBKeepAlive: true,
		SelColor:     DefaultSelColor,
	}
}

func (s *Settings) ReadValue(name, value string) {
	switch name {
	case KeyVsync:
		s.Vsync = Vsync(clamp(store.ParseInt(value), int(VsyncDisabled), int(VsyncEnabled)))
	case KeyWidescreen:
		s.Widescreen = Widescreen(clamp(store.ParseInt(value), int(WidescreenDisabled), int(WidescreenAuto)))
	case KeyMoteVertical:
		s.MoteVertical = store.ParseBool(value)
	case KeyTopMenuExit:
		s.TopMenuExit = store.ParseBool(value)
	case KeyDoubleStrike:
		s.DoubleStrike = store.ParseBool(value)
	case KeyTrapFilter:
		s.TrapFilter = store.ParseBool(value)
	case Key169Correction:
		s.Correct169 = store.ParseBool(value)
	case KeyUSBKeepAlive:
		s.USBKeepAlive = store.ParseBool(value)
	case KeySelColor:
		c, err := store.ParseRGBA(value)
		if err != nil {
			log.Printf("Warning: Ignoring %s: %v", name, err)
			return
		}
		s.SelColor = c
	case KeySelOffset:
		s.SelOffset = store.ParseInt(value)
	case KeyLastROM:
		s.LastROM = value
	case KeyScreenWidth:
		s.ScreenW = max(store.ParseInt(value), 0)
	case KeyScreenHeight:
		s.ScreenH = max(store.ParseInt(value), 0)
	default:
		if s.Next != nil {
			s.Next.ReadValue(name, value)
		}
	}
}

func (s *Settings) WriteConfig(w io.Writer) error {
	values := []struct {
		name  string
		value any
	}{
		{KeyVsync, int(s.Vsync)},
		{KeyWidescreen, int(s.Widescreen)},
		{KeyMoteVertical, store.FormatBool(s.MoteVertical)},
		{KeyTopMenuExit, store.FormatBool(s.TopMenuExit)},
		{KeyDoubleStrike, store.FormatBool(s.DoubleStrike)},
		{KeyTrapFilter, store.FormatBool(s.TrapFilter)},
		{Key169Correction, store.FormatBool(s.Correct169)},
		{KeyUSBKeepAlive, store.FormatBool(s.USBKeepAlive)},
		{KeySelColor, store.FormatRGBA(s.SelColor)},
		{KeySelOffset, s.SelOffset},
		{KeyLastROM, s.LastROM},
		{KeyScreenWidth, s.ScreenW},
		{KeyScreenHeight, s.ScreenH},
	}
	for _, v := range values {
		if err := store.WriteValue(w, v.name, v.value); err != nil {
			return err
		}
	}
	if s.Next != nil {
		return s.Next.WriteConfig(w)
	}
	return nil
}

// Load reads f into s. A missing file keeps the current values.
func (s *Settings) Load(f store.ConfigFile) error {
	err := f.Read(s)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("load settings: %w", err)
	}
	return nil
}

func (s *Settings) Save(f store.ConfigFile) error {
	if err := f.Write(s); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// CycleSelColor moves through SelColors. A colour read from the config
// file that is not in the list starts the cycle from the first entry.
func (s *Settings) CycleSelColor(delta int) {
	idx := -1
	for i, c := range SelColors {
		if c == s.SelColor {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.SelColor = SelColors[0]
		return
	}
	n := len(SelColors)
	s.SelColor = SelColors[((idx+delta)%n+n)%n]
}

// ScreenSize is the on-screen size of the emulator picture given its
// default size: the resized size when one was picked, narrowed to 3/4
// when 16:9 correction applies to a widescreen display.
func (s *Settings) ScreenSize(defW, defH int) (int, int) {
	w, h := s.ScreenW, s.ScreenH
	if w <= 0 || h <= 0 {
		w, h = defW, defH
	}
	if s.Correct169 && s.Widescreen == WidescreenEnabled {
		w = w * 3 / 4
	}
	return w, h
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
