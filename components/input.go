package components

import (
	cfg "github.com/automoto/emucommon/config"
	"github.com/automoto/emucommon/pad"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions, and the same frame as a console pad poll.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	// Pad is the frame translated into GameCube pad buttons and stick.
	Pad pad.State
	// Hardware is the reset/power latch shared with the signal handler.
	Hardware *pad.HardwareLatch
}

var Input = donburi.NewComponentType[InputData]()
