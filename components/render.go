package components

import (
	"github.com/automoto/emucommon/render"
	"github.com/yohamta/donburi"
)

// RenderData holds the renderer stack and frame lock of the emulator
// screen
type RenderData struct {
	Stack *render.Stack
	Mutex *render.Mutex
}

var Render = donburi.NewComponentType[RenderData]()
