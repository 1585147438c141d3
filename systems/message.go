package systems

import (
	"github.com/automoto/emucommon/components"
	cfg "github.com/automoto/emucommon/config"
	"github.com/automoto/emucommon/pad"
	"github.com/automoto/emucommon/ui"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMessage creates the system behind a blocking message. Input is
// ignored for cfg.Message.PauseFrames, then until every button is released,
// and the first press afterwards dismisses the message. next builds the
// scene to change to; a nil scene only marks the message done.
func NewUpdateMessage(sceneChanger SceneChanger, mui *ui.MessageUI, next func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		state := getOrCreateMessageState(e)
		if state.Done {
			return
		}
		input := getOrCreateInput(e)

		if state.PauseTimer > 0 {
			state.PauseTimer--
			if state.PauseTimer == 0 {
				mui.SetHint(ui.HintContinue)
			}
			return
		}
		if !state.Released {
			state.Released = !pad.AnyHeld(input.Pad) && input.Hardware.Get() == pad.HardwareNone
			return
		}
		if pad.ButtonPressed(input.Pad, input.Hardware) == 0 {
			return
		}

		input.Hardware.Clear()
		state.Done = true
		if scene := next(); scene != nil {
			sceneChanger.ChangeScene(scene)
		}
	}
}

// getOrCreateMessageState returns the singleton MessageState component,
// creating if needed
func getOrCreateMessageState(e *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.MessageState))
		components.MessageState.SetValue(entry, components.MessageStateData{
			PauseTimer: cfg.Message.PauseFrames,
		})
	}
	return components.MessageState.Get(entry)
}
