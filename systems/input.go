package systems

import (
	"github.com/automoto/emucommon/components"
	cfg "github.com/automoto/emucommon/config"
	"github.com/automoto/emucommon/pad"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Hardware is the reset/power latch every input singleton shares. main
// presses it from signal handlers.
var Hardware = &pad.HardwareLatch{}

// lastFrame carries the pressed actions into the next scene's world so a
// button held across a scene change is not seen as a new press.
var lastFrame [cfg.ActionCount]bool

// padButtons maps actions onto the GameCube pad the decoders understand.
var padButtons = [cfg.ActionCount]pad.GCButtons{
	cfg.ActionUp:    pad.GCUp,
	cfg.ActionDown:  pad.GCDown,
	cfg.ActionLeft:  pad.GCLeft,
	cfg.ActionRight: pad.GCRight,
	cfg.ActionEnter: pad.GCA,
	cfg.ActionEsc:   pad.GCB,
	cfg.ActionHome:  pad.GCTriggerZ,
	cfg.ActionPlus:  pad.GCTriggerR,
	cfg.ActionMinus: pad.GCTriggerL,
}

// UpdateInput polls raw input and updates the Input singleton.
// Must run before any system reading it.
func UpdateInput(e *ecs.ECS) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	lastFrame = input.Current

	stickX, stickY := getAnalogStick(gamepadIDs)
	input.Pad = pad.GCState(actionButtons(input.Current), actionButtons(input.Previous), stickX, stickY)

	if GetAction(input, cfg.ActionReset).JustPressed {
		input.Hardware.Press(pad.HardwareReset)
	}
	if GetAction(input, cfg.ActionPower).JustPressed {
		input.Hardware.Press(pad.HardwarePower)
	}
}

func actionButtons(actions [cfg.ActionCount]bool) pad.GCButtons {
	var b pad.GCButtons
	for id, on := range actions {
		if on {
			b |= padButtons[id]
		}
	}
	return b
}

// getAnalogStick returns the left stick of the first gamepad pushed past
// the deadzone, y pointing up.
func getAnalogStick(gamepads []ebiten.GamepadID) (x, y float64) {
	deadzone := cfg.Input.AnalogDeadzone
	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		h := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -deadzone || h > deadzone || v < -deadzone || v > deadzone {
			return h, -v
		}
	}
	return 0, 0
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		components.Input.SetValue(entry, components.InputData{
			Current:  lastFrame,
			Hardware: Hardware,
		})
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
