package scenes

import (
	"github.com/automoto/emucommon/core"
	"github.com/automoto/emucommon/frontend"
	"github.com/automoto/emucommon/render"
	"github.com/automoto/emucommon/settings"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions and end the program
type SceneChanger interface {
	ChangeScene(scene interface{})
	Exit()
}

// App is the state every scene works on.
type App struct {
	Host     *frontend.Host
	Core     *core.Pattern
	Settings *settings.Settings
	// Stack and Mutex are shared by every scene drawing the emulator
	// picture.
	Stack *render.Stack
	Mutex *render.Mutex
	// About is the text of the about box.
	About string
}

func (a *App) applyVideo() {
	ebiten.SetVsyncEnabled(a.Settings.Vsync == settings.VsyncEnabled)
}
