package config

import "github.com/automoto/emucommon/resize"

// ScreenConfig contains the emulator screen size presets offered by the
// resize dialog.
type ScreenConfig struct {
	Sizes []resize.Size
	// Scale of the native core size used when no size is saved.
	DefaultScale int
}

// Screen is the global screen size configuration
var Screen ScreenConfig

func init() {
	Screen = ScreenConfig{
		Sizes: []resize.Size{
			{Name: "1x", W: 320, H: 240},
			{Name: "2x", W: 640, H: 480},
			{Name: "Widescreen", W: 640, H: 360},
			{Name: "Overscan", W: 600, H: 450},
		},
		DefaultScale: 2,
	}
}
