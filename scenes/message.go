package scenes

import (
	"sync"

	cfg "github.com/automoto/emucommon/config"
	"github.com/automoto/emucommon/systems"
	"github.com/automoto/emucommon/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MessageScene blocks on a message until a button is pressed, using
// ebitenui
type MessageScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	messageUI    *ui.MessageUI
	title        string
	message      string
	next         func() interface{}
	once         sync.Once
}

// NewMessageScene creates a message scene. next builds the scene shown
// once the message is dismissed; a nil scene leaves the message up.
func NewMessageScene(sc SceneChanger, title, message string, next func() interface{}) *MessageScene {
	return &MessageScene{sceneChanger: sc, title: title, message: message, next: next}
}

// NewErrorScene shows a fatal error and exits once it is dismissed.
func NewErrorScene(sc SceneChanger, err error) *MessageScene {
	return NewMessageScene(sc, "Error", err.Error(), func() interface{} {
		sc.Exit()
		return nil
	})
}

func (ms *MessageScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.messageUI.Update()
}

func (ms *MessageScene) Draw(screen *ebiten.Image) {
	screen.Fill(cfg.Menu.BackgroundColor)

	if ms.ecs == nil {
		return
	}
	ms.messageUI.UI.Draw(screen)
}

func (ms *MessageScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.messageUI = ui.NewMessageUI(ms.title, ms.message)

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMessage(ms.sceneChanger, ms.messageUI, ms.next))
}
