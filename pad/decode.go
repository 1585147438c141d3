package pad

import "math"

// AnalogRange is the default scale of ExpansionAxis.
const AnalogRange = 128.0

// Thresholds past which an analog stick counts as a direction.
const (
	expThresholdX = 60
	expThresholdY = 70
	gcThresholdX  = 46
	gcThresholdY  = 54
)

// ExpansionAxis returns the X or Y value of an expansion stick scaled to
// [-rng, rng]. right selects the classic right stick. Without an expansion
// the value is zero.
func ExpansionAxis(s State, isX, right bool, rng float64) float64 {
	var st Stick
	switch s.Expansion {
	case ExpansionClassic:
		st = s.LeftStick
		if right {
			st = s.RightStick
		}
	case ExpansionNunchuk:
		st = s.LeftStick
	default:
		return 0
	}

	mag := math.Max(-1, math.Min(1, st.Mag))
	rad := math.Pi * st.Ang / 180
	var v float64
	if isX {
		v = mag * math.Sin(rad)
	} else {
		v = mag * math.Cos(rad)
	}
	if math.IsNaN(v) {
		return 0
	}
	return v * rng
}

func AnalogRight(expX float64, gcX int8) bool { return expX > expThresholdX || gcX > gcThresholdX }
func AnalogLeft(expX float64, gcX int8) bool  { return expX < -expThresholdX || gcX < -gcThresholdX }
func AnalogUp(expY float64, gcY int8) bool    { return expY > expThresholdY || gcY > gcThresholdY }
func AnalogDown(expY float64, gcY int8) bool  { return expY < -expThresholdY || gcY < -gcThresholdY }

// The Digital functions read the remote d-pad, rotated a quarter turn when
// the remote is held sideways, plus the classic d-pad when classic is set.

func DigitalRight(horizontal, classic bool, held Buttons) bool {
	return held&(pick(horizontal, ButtonDown, ButtonRight)|classicBit(classic, ClassicRight)) != 0
}

func DigitalLeft(horizontal, classic bool, held Buttons) bool {
	return held&(pick(horizontal, ButtonUp, ButtonLeft)|classicBit(classic, ClassicLeft)) != 0
}

func DigitalUp(horizontal, classic bool, held Buttons) bool {
	return held&(pick(horizontal, ButtonRight, ButtonUp)|classicBit(classic, ClassicUp)) != 0
}

func DigitalDown(horizontal, classic bool, held Buttons) bool {
	return held&(pick(horizontal, ButtonLeft, ButtonDown)|classicBit(classic, ClassicDown)) != 0
}

func pick(cond bool, a, b Buttons) Buttons {
	if cond {
		return a
	}
	return b
}

func classicBit(classic bool, b Buttons) Buttons {
	if classic {
		return b
	}
	return 0
}

// Input is a decoded set of logical buttons.
type Input uint16

const (
	InputUp Input = 1 << iota
	InputDown
	InputLeft
	InputRight
	InputEnter
	InputEsc
	InputHome
	InputPlus
	InputMinus
)

func (in Input) Has(b Input) bool { return in&b != 0 }

// HeldInput decodes everything currently held, directions included.
// horizontal is true when the remote is held sideways.
func (s State) HeldInput(horizontal bool) Input {
	return decode(s.Held, s.GCHeld, s, horizontal, true)
}

// PressedInput decodes buttons that went down this poll. Analog directions
// are level triggered and not included.
func (s State) PressedInput(horizontal bool) Input {
	return decode(s.Down, s.GCDown, s, horizontal, false)
}

func decode(wii Buttons, gc GCButtons, s State, horizontal, analog bool) Input {
	classic := s.IsClassic()
	var in Input

	expX := ExpansionAxis(s, true, false, AnalogRange)
	expY := ExpansionAxis(s, false, false, AnalogRange)
	gcX, gcY := s.GCStickX, s.GCStickY
	if !analog {
		expX, expY, gcX, gcY = 0, 0, 0, 0
	}

	if DigitalUp(horizontal, classic, wii) || gc&GCUp != 0 || AnalogUp(expY, gcY) {
		in |= InputUp
	}
	if DigitalDown(horizontal, classic, wii) || gc&GCDown != 0 || AnalogDown(expY, gcY) {
		in |= InputDown
	}
	if DigitalLeft(horizontal, classic, wii) || gc&GCLeft != 0 || AnalogLeft(expX, gcX) {
		in |= InputLeft
	}
	if DigitalRight(horizontal, classic, wii) || gc&GCRight != 0 || AnalogRight(expX, gcX) {
		in |= InputRight
	}

	enter, esc := wiiEnter, wiiEsc
	if classic {
		enter |= ClassicA
		esc |= ClassicB
	} else if s.Expansion == ExpansionNunchuk {
		enter |= NunchukC
		esc |= NunchukZ
	}
	if wii&enter != 0 || gc&GCA != 0 {
		in |= InputEnter
	}
	if wii&esc != 0 || gc&GCB != 0 {
		in |= InputEsc
	}
	if wii&wiiHome != 0 || gc&gcHome != 0 {
		in |= InputHome
	}

	plus, minus := ButtonPlus, ButtonMinus
	if classic {
		plus |= ClassicPlus | ClassicFullR
		minus |= ClassicMinus | ClassicFullL
	}
	if wii&plus != 0 || gc&GCTriggerR != 0 {
		in |= InputPlus
	}
	if wii&minus != 0 || gc&GCTriggerL != 0 {
		in |= InputMinus
	}
	return in
}

// ButtonPressed reports 1 when an action button is held, -1 when home was
// pressed or a hardware button is latched, and 0 otherwise.
func ButtonPressed(s State, hw *HardwareLatch) int {
	if s.Down&wiiHome != 0 || s.GCDown&gcHome != 0 || (hw != nil && hw.Get() != HardwareNone) {
		return -1
	}
	mask := ButtonA | ButtonB | Button1 | Button2 | ButtonPlus | ButtonMinus
	if s.IsClassic() {
		mask |= ClassicPlus | ClassicMinus | ClassicX | ClassicA | ClassicY | ClassicB
	} else {
		mask |= NunchukZ | NunchukC
	}
	if s.Held&mask != 0 || s.GCHeld&(GCStart|GCA|GCB|GCX|GCY) != 0 {
		return 1
	}
	return 0
}

// AnyHeld reports whether any button is held on any of the given pads.
func AnyHeld(states ...State) bool {
	for _, s := range states {
		if s.Held != 0 || s.GCHeld != 0 {
			return true
		}
	}
	return false
}
