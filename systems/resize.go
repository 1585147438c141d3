package systems

import (
	"log"

	"github.com/automoto/emucommon/components"
	cfg "github.com/automoto/emucommon/config"
	"github.com/automoto/emucommon/core"
	"github.com/automoto/emucommon/frontend"
	"github.com/automoto/emucommon/gfx"
	"github.com/automoto/emucommon/render"
	"github.com/automoto/emucommon/resize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// NewResizeInfo describes the resize dialog for the current settings.
func NewResizeInfo(host *frontend.Host) *resize.Info {
	s := host.Settings()
	defW, defH := core.Width*cfg.Screen.DefaultScale, core.Height*cfg.Screen.DefaultScale
	w, h := s.ScreenW, s.ScreenH
	if w <= 0 || h <= 0 {
		w, h = defW, defH
	}
	return &resize.Info{
		Sizes:    cfg.Screen.Sizes,
		DefaultX: float64(defW),
		DefaultY: float64(defH),
		CurrentX: float64(w),
		CurrentY: float64(h),
	}
}

// NewUpdateResize runs the resize dialog. The picture follows the dialog
// while it is open; accepting keeps the new size and saves the settings,
// cancelling restores the old one. done builds the scene shown afterwards.
func NewUpdateResize(sceneChanger SceneChanger, host *frontend.Host, stack *render.Stack, done func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		rd := getOrCreateResize(e, host, stack)
		if rd.Result != resize.Running {
			return
		}
		input := getOrCreateInput(e)
		s := host.Settings()

		sideways := !s.MoteVertical
		rd.Result = rd.State.Step(input.Pad.HeldInput(sideways), input.Pad.PressedInput(sideways))
		s.ScreenW, s.ScreenH = rd.State.Size()

		switch rd.Result {
		case resize.Running:
			return
		case resize.Accepted:
			s.ScreenW, s.ScreenH = int(rd.Info.CurrentX), int(rd.Info.CurrentY)
			host.MarkDirty()
			if err := host.SaveSettings(); err != nil {
				log.Printf("Warning: Could not save screen size: %v", err)
			}
		case resize.Cancelled:
			s.ScreenW, s.ScreenH = rd.SavedW, rd.SavedH
		}
		stack.Pop()
		sceneChanger.ChangeScene(done())
	}
}

// getOrCreateResize starts the dialog on first use and pushes its overlay.
func getOrCreateResize(e *ecs.ECS, host *frontend.Host, stack *render.Stack) *components.ResizeData {
	entry, ok := components.Resize.First(e.World)
	if ok {
		return components.Resize.Get(entry)
	}
	entry = e.World.Entry(e.World.Create(components.Resize))
	info := NewResizeInfo(host)
	s := host.Settings()
	components.Resize.SetValue(entry, components.ResizeData{
		Info:   info,
		State:  resize.Start(info),
		SavedW: s.ScreenW,
		SavedH: s.ScreenH,
	})
	rd := components.Resize.Get(entry)
	if err := stack.Push(render.Funcs{
		Draw:   func(screen *ebiten.Image) { DrawResizeOverlay(screen, rd.State) },
		Screen: true,
	}); err != nil {
		log.Printf("Warning: Could not show resize help: %v", err)
	}
	return rd
}

// DrawResizeOverlay draws the help box of the resize dialog.
func DrawResizeOverlay(screen *ebiten.Image, st *resize.State) {
	r := cfg.Resize
	gfx.DrawRectangle(screen, r.BoxX, r.BoxY, r.BoxW, r.BoxH, r.BoxColor, true)
	y := r.StartY
	for _, line := range st.Lines() {
		gfx.DrawText(screen, r.KeyX, y, r.FontSize, line.Key, r.TextColor, gfx.JustifyLeft|gfx.AlignTop)
		gfx.DrawText(screen, r.ValueX, y, r.FontSize, line.Value, r.TextColor, gfx.JustifyLeft|gfx.AlignTop)
		if line.Gap {
			y -= r.GapSpacing
		} else {
			y -= r.LineSpacing
		}
	}
}
