package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/emucommon/config"
	"github.com/automoto/emucommon/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EmulatorScene runs the loaded game
type EmulatorScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	app          *App
	once         sync.Once
}

// NewEmulatorScene creates a scene running the core of app
func NewEmulatorScene(sc SceneChanger, app *App) *EmulatorScene {
	return &EmulatorScene{sceneChanger: sc, app: app}
}

func (es *EmulatorScene) Update() {
	es.once.Do(es.configure)
	es.ecs.Update()
}

func (es *EmulatorScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if es.ecs == nil {
		return
	}
	es.ecs.Draw(screen)
}

func (es *EmulatorScene) configure() {
	es.ecs = ecs.NewECS(donburi.NewWorld())
	es.app.applyVideo()
	systems.GetOrCreateRender(es.ecs, es.app.Stack, es.app.Mutex)

	toMenu := func() interface{} {
		return NewMenuScene(es.sceneChanger, es.app)
	}

	es.ecs.AddSystem(systems.UpdateInput)
	es.ecs.AddSystem(systems.NewUpdateEmulator(es.sceneChanger, es.app.Core, es.app.Mutex, toMenu, es.sceneChanger.Exit))

	es.ecs.AddRenderer(cfg.Default, systems.NewDrawEmulator(es.app.Core, es.app.Settings))
}
