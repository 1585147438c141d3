package systems

import (
	"github.com/automoto/emucommon/assets"
	"github.com/automoto/emucommon/components"
	cfg "github.com/automoto/emucommon/config"
	"github.com/automoto/emucommon/core"
	"github.com/automoto/emucommon/render"
	"github.com/automoto/emucommon/settings"
	"github.com/automoto/emucommon/video"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Lock owners of the frame mutex.
const (
	OwnerEmulator render.Owner = "emulator"
	OwnerDisplay  render.Owner = "display"
)

// surfaceImage mirrors the core surface on the GPU.
var surfaceImage *ebiten.Image

// NewDrawEmulator returns the renderer of the emulator scene. The active
// renderer on the stack decides whether the core picture is drawn under
// it.
func NewDrawEmulator(c *core.Pattern, s *settings.Settings) func(e *ecs.ECS, screen *ebiten.Image) {
	return func(e *ecs.ECS, screen *ebiten.Image) {
		entry, ok := components.Render.First(e.World)
		if !ok {
			return
		}
		rd := components.Render.Get(entry)
		rd.Stack.Draw(screen, func(screen *ebiten.Image) {
			DrawSurface(screen, c.Surface, s, rd.Mutex)
		})
	}
}

// DrawSurface draws surf centred on screen at the size picked in the
// settings, through the deflicker shader when the trap filter is on.
func DrawSurface(screen *ebiten.Image, surf *video.Surface, s *settings.Settings, mu *render.Mutex) {
	screen.Fill(cfg.Video.BorderColor)

	sb := surf.Bounds()
	if surfaceImage == nil || surfaceImage.Bounds().Size() != sb.Size() {
		surfaceImage = ebiten.NewImage(sb.Dx(), sb.Dy())
	}
	mu.Lock(OwnerDisplay)
	surfaceImage.WritePixels(surf.Pix)
	mu.Unlock(OwnerDisplay)

	w, h := s.ScreenSize(sb.Dx()*cfg.Screen.DefaultScale, sb.Dy()*cfg.Screen.DefaultScale)
	if w <= 0 || h <= 0 {
		return
	}
	x := float64(screen.Bounds().Dx()-w) / 2
	y := float64(screen.Bounds().Dy()-h) / 2
	sx := float64(w) / float64(sb.Dx())
	sy := float64(h) / float64(sb.Dy())

	if s.TrapFilter && assets.DeflickerShader != nil {
		op := &ebiten.DrawRectShaderOptions{}
		op.GeoM.Scale(sx, sy)
		op.GeoM.Translate(x, y)
		op.Images[0] = surfaceImage
		op.Uniforms = map[string]any{"Strength": cfg.Video.DeflickerStrength}
		screen.DrawRectShader(sb.Dx(), sb.Dy(), assets.DeflickerShader, op)
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(sx, sy)
	op.GeoM.Translate(x, y)
	// double strike keeps the hard pixel edges of 240p output
	if !s.DoubleStrike {
		op.Filter = ebiten.FilterLinear
	}
	screen.DrawImage(surfaceImage, op)
}

// GetOrCreateRender returns the singleton Render component, creating it
// around stack and mu if needed.
func GetOrCreateRender(e *ecs.ECS, stack *render.Stack, mu *render.Mutex) *components.RenderData {
	entry, ok := components.Render.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Render))
		components.Render.SetValue(entry, components.RenderData{Stack: stack, Mutex: mu})
	}
	return components.Render.Get(entry)
}
