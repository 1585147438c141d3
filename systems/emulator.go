package systems

import (
	"github.com/automoto/emucommon/core"
	"github.com/automoto/emucommon/pad"
	"github.com/automoto/emucommon/render"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateEmulator steps the core once per frame. Home or the reset
// button return to the menu built by toMenu; the power button calls power.
func NewUpdateEmulator(sceneChanger SceneChanger, c *core.Pattern, mu *render.Mutex, toMenu func() interface{}, power func()) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)

		switch input.Hardware.Get() {
		case pad.HardwarePower:
			input.Hardware.Clear()
			power()
			return
		case pad.HardwareReset:
			input.Hardware.Clear()
			sceneChanger.ChangeScene(toMenu())
			return
		}
		if input.Pad.PressedInput(false).Has(pad.InputHome) {
			sceneChanger.ChangeScene(toMenu())
			return
		}

		mu.Lock(OwnerEmulator)
		c.Step()
		mu.Unlock(OwnerEmulator)
	}
}
