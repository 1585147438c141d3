package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers run in the order they are
// added.
const Default ecs.LayerID = 0

type Config struct {
	Width  int
	Height int
	// PAL selects 50 Hz timing.
	PAL bool
}

// FrameRate is the display refresh rate in frames per second.
func (c *Config) FrameRate() int {
	if c.PAL {
		return 50
	}
	return 60
}

// MenuConfig contains menu screen layout and colours. Positions are in
// console coordinates (origin at the screen centre, y up).
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TextColorDisabled color.RGBA
	ValueColor        color.RGBA
	FooterColor       color.RGBA
	TitleSize         int
	ItemSize          int
	FooterSize        int
	TitleY            int
	MenuStartY        int
	MenuItemHeight    int
	FooterY           int
	LabelX            int
	ValueX            int
	BarWidth          int
	// Rows is how many entries fit between the title and the footer.
	Rows int
	// BarSeconds is the time the selection bar takes to slide to a new
	// entry.
	BarSeconds float32
	// RepeatDelay and RepeatRate are in frames.
	RepeatDelay int
	RepeatRate  int
}

// MessageConfig contains the blocking message screen configuration
type MessageConfig struct {
	BoxColor    color.RGBA
	TextColor   color.RGBA
	HintColor   color.RGBA
	BoxPadding  int
	BoxWidth    int
	PauseFrames int // Frames input is ignored after the message appears
}

// ResizeConfig contains the resize overlay layout.
type ResizeConfig struct {
	BoxX, BoxY  int
	BoxW, BoxH  int
	BoxColor    color.RGBA
	TextColor   color.RGBA
	FontSize    int
	KeyX        int
	ValueX      int
	LineSpacing int
	GapSpacing  int
	StartY      int
}

// VideoConfig contains emulator screen drawing options.
type VideoConfig struct {
	// DeflickerStrength is the blend weight of neighbouring lines when the
	// colour trap filter is on.
	DeflickerStrength float32
	BorderColor       color.RGBA
}

var C *Config
var Menu MenuConfig
var Message MessageConfig
var Resize ResizeConfig
var Video VideoConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{A: 255}
	Grey         = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	LightGrey    = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 20, G: 30, B: 60, A: 255}
	BlackOverlay = color.RGBA{A: 0xcc}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
	}

	Menu = MenuConfig{
		BackgroundColor:   DarkBlue,
		TitleColor:        LightBlue,
		TextColorNormal:   White,
		TextColorSelected: White,
		TextColorDisabled: Grey,
		ValueColor:        Yellow,
		FooterColor:       LightGrey,
		TitleSize:         18,
		ItemSize:          14,
		FooterSize:        13,
		TitleY:            200,
		MenuStartY:        150,
		MenuItemHeight:    24,
		FooterY:           -210,
		LabelX:            -260,
		ValueX:            60,
		BarWidth:          560,
		Rows:              14,
		BarSeconds:        0.12,
		RepeatDelay:       20,
		RepeatRate:        5,
	}

	Message = MessageConfig{
		BoxColor:    color.RGBA{R: 20, G: 20, B: 30, A: 230},
		TextColor:   White,
		HintColor:   LightGrey,
		BoxPadding:  16,
		BoxWidth:    480,
		PauseFrames: 60,
	}

	Resize = ResizeConfig{
		BoxX:        -230,
		BoxY:        90,
		BoxW:        460,
		BoxH:        190,
		BoxColor:    BlackOverlay,
		TextColor:   White,
		FontSize:    14,
		KeyX:        -210,
		ValueX:      -20,
		LineSpacing: 16,
		GapSpacing:  28,
		StartY:      60,
	}

	Video = VideoConfig{
		DeflickerStrength: 0.25,
		BorderColor:       Black,
	}
}
