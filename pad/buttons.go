// Package pad decodes polled controller state into menu and dialog input.
// Remote and expansion buttons share one bit set, the same as the console
// driver reports them; nunchuk and classic bits overlap, so callers check
// the expansion type before reading expansion buttons.
package pad

import "math"

// Buttons is the held or pressed bit set of a remote and its expansion.
type Buttons uint32

const (
	Button2     Buttons = 0x0001
	Button1     Buttons = 0x0002
	ButtonB     Buttons = 0x0004
	ButtonA     Buttons = 0x0008
	ButtonMinus Buttons = 0x0010
	ButtonHome  Buttons = 0x0080
	ButtonLeft  Buttons = 0x0100
	ButtonRight Buttons = 0x0200
	ButtonDown  Buttons = 0x0400
	ButtonUp    Buttons = 0x0800
	ButtonPlus  Buttons = 0x1000

	NunchukZ Buttons = 0x0001 << 16
	NunchukC Buttons = 0x0002 << 16

	ClassicUp    Buttons = 0x0001 << 16
	ClassicLeft  Buttons = 0x0002 << 16
	ClassicZR    Buttons = 0x0004 << 16
	ClassicX     Buttons = 0x0008 << 16
	ClassicA     Buttons = 0x0010 << 16
	ClassicY     Buttons = 0x0020 << 16
	ClassicB     Buttons = 0x0040 << 16
	ClassicZL    Buttons = 0x0080 << 16
	ClassicFullR Buttons = 0x0200 << 16
	ClassicPlus  Buttons = 0x0400 << 16
	ClassicHome  Buttons = 0x0800 << 16
	ClassicMinus Buttons = 0x1000 << 16
	ClassicFullL Buttons = 0x2000 << 16
	ClassicDown  Buttons = 0x4000 << 16
	ClassicRight Buttons = 0x8000 << 16
)

// GCButtons is the bit set of a GameCube pad.
type GCButtons uint16

const (
	GCLeft     GCButtons = 0x0001
	GCRight    GCButtons = 0x0002
	GCDown     GCButtons = 0x0004
	GCUp       GCButtons = 0x0008
	GCTriggerZ GCButtons = 0x0010
	GCTriggerR GCButtons = 0x0020
	GCTriggerL GCButtons = 0x0040
	GCA        GCButtons = 0x0100
	GCB        GCButtons = 0x0200
	GCX        GCButtons = 0x0400
	GCY        GCButtons = 0x0800
	GCStart    GCButtons = 0x1000
)

// Expansion is the accessory plugged into the remote.
type Expansion int

const (
	ExpansionNone Expansion = iota
	ExpansionNunchuk
	ExpansionClassic
)

// Stick is an analog stick reading: magnitude in [0,1] (values outside are
// clamped) and angle in degrees clockwise from up.
type Stick struct {
	Mag float64
	Ang float64
}

// State is one poll of remote 0 and GameCube pad 0.
type State struct {
	Held, Down     Buttons
	GCHeld, GCDown GCButtons
	Expansion      Expansion
	// LeftStick is the nunchuk stick or the classic left stick.
	LeftStick  Stick
	RightStick Stick
	GCStickX   int8
	GCStickY   int8
}

func (s State) IsClassic() bool { return s.Expansion == ExpansionClassic }

// Combined masks used by menus and dialogs.
const (
	wiiEnter = ButtonA | Button2
	wiiEsc   = ButtonB | Button1
	wiiHome  = ButtonHome | ClassicHome
	gcHome   = GCTriggerZ
)

// GCState builds a GameCube pad poll from the buttons held this frame and
// the frame before. Stick values run from -1 to 1 with y pointing up.
func GCState(held, prev GCButtons, stickX, stickY float64) State {
	return State{
		GCHeld:   held,
		GCDown:   held &^ prev,
		GCStickX: stickValue(stickX),
		GCStickY: stickValue(stickY),
	}
}

func stickValue(v float64) int8 {
	if math.IsNaN(v) {
		return 0
	}
	return int8(math.Round(max(-1, min(1, v)) * 127))
}
