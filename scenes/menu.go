package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/emucommon/config"
	"github.com/automoto/emucommon/frontend"
	"github.com/automoto/emucommon/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the front-end menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	app          *App
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger, app *App) *MenuScene {
	return &MenuScene{sceneChanger: sc, app: app}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

// next maps a finished menu pass onto the scene serving it.
func (ms *MenuScene) next(req frontend.Request) interface{} {
	sc, app := ms.sceneChanger, ms.app
	switch req {
	case frontend.RequestResume:
		return NewEmulatorScene(sc, app)
	case frontend.RequestResize:
		return NewResizeScene(sc, app)
	case frontend.RequestAbout:
		return NewMessageScene(sc, "About", app.About, func() interface{} {
			return NewMenuScene(sc, app)
		})
	case frontend.RequestExit:
		sc.Exit()
	}
	return nil
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.app.applyVideo()

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.sceneChanger, ms.app.Host, ms.next))

	ms.ecs.AddRenderer(cfg.Default, systems.DrawMenu)

	ms.app.Host.Session().Open()
}
