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

// ResizeScene shows the emulator picture with the resize dialog over it
type ResizeScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	app          *App
	once         sync.Once
}

func NewResizeScene(sc SceneChanger, app *App) *ResizeScene {
	return &ResizeScene{sceneChanger: sc, app: app}
}

func (rs *ResizeScene) Update() {
	rs.once.Do(rs.configure)
	rs.ecs.Update()
}

func (rs *ResizeScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if rs.ecs == nil {
		return
	}
	rs.ecs.Draw(screen)
}

func (rs *ResizeScene) configure() {
	rs.ecs = ecs.NewECS(donburi.NewWorld())
	systems.GetOrCreateRender(rs.ecs, rs.app.Stack, rs.app.Mutex)

	toMenu := func() interface{} {
		return NewMenuScene(rs.sceneChanger, rs.app)
	}

	rs.ecs.AddSystem(systems.UpdateInput)
	rs.ecs.AddSystem(systems.NewUpdateResize(rs.sceneChanger, rs.app.Host, rs.app.Stack, toMenu))

	rs.ecs.AddRenderer(cfg.Default, systems.NewDrawEmulator(rs.app.Core, rs.app.Settings))
}
