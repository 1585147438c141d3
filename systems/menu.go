package systems

import (
	"log"

	"github.com/automoto/emucommon/assets"
	"github.com/automoto/emucommon/components"
	cfg "github.com/automoto/emucommon/config"
	"github.com/automoto/emucommon/frontend"
	"github.com/automoto/emucommon/gfx"
	"github.com/automoto/emucommon/menu"
	"github.com/automoto/emucommon/pad"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Images shared by the renderers, created on first use.
var images *assets.Images

func getImages() *assets.Images {
	if images == nil {
		images = assets.NewImages(nil)
	}
	return images
}

// NewUpdateMenu creates the menu system. When the menu pass ends, next is
// asked for the scene serving the host's request; nil reopens the menu.
func NewUpdateMenu(sceneChanger SceneChanger, host *frontend.Host, next func(frontend.Request) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		md := GetOrCreateMenu(e, host)
		input := getOrCreateInput(e)
		s := host.Session()

		switch input.Hardware.Get() {
		case pad.HardwareReset:
			// already in the menu
			input.Hardware.Clear()
		case pad.HardwarePower:
			input.Hardware.Clear()
			host.Finish(frontend.RequestExit)
		}

		if !s.Quitting() {
			s.Tick()
			sideways := !host.Settings().MoteVertical
			dirs := md.Repeat.Step(input.Pad.HeldInput(sideways))
			host.Handle(frontend.Action(dirs, input.Pad.PressedInput(sideways)))
		}

		if s.Quitting() {
			s.Close()
			req := host.TakeRequest()
			if scene := next(req); scene != nil {
				sceneChanger.ChangeScene(scene)
				return
			}
			s.Open()
			md.Repeat.Reset()
		}

		updateBar(md, s)
	}
}

// updateBar starts a new slide when the selection moved and advances the
// running one.
func updateBar(md *components.MenuData, s *menu.Session) {
	row := selectedRow(s)
	if row < 0 {
		return
	}
	target := float32(rowY(row))
	if md.BarRow < 0 {
		md.BarY = target
	} else if row != md.BarRow {
		md.Bar = gween.New(md.BarY, target, cfg.Menu.BarSeconds, ease.OutQuad)
	}
	md.BarRow = row
	if md.Bar != nil {
		y, done := md.Bar.Update(1 / float32(ebiten.TPS()))
		md.BarY = y
		if done {
			md.Bar = nil
		}
	}
}

func selectedRow(s *menu.Session) int {
	for i, r := range s.Rows() {
		if r.Selected {
			return i
		}
	}
	return -1
}

// rowY is the console y of the centre of a row.
func rowY(row int) int {
	return cfg.Menu.MenuStartY - row*cfg.Menu.MenuItemHeight
}

// DrawMenu renders the menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	md, ok := components.Menu.First(e.World)
	if !ok {
		return
	}
	data := components.Menu.Get(md)
	host := data.Host
	s := host.Session()
	m := cfg.Menu
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(w), float32(h), m.BackgroundColor, false)

	gfx.DrawText(screen, 0, m.TitleY, m.TitleSize, s.Header(), m.TitleColor, gfx.JustifyCenter|gfx.AlignMiddle)
	if logo, err := getImages().Get(assets.Logo); err == nil {
		lb := logo.Bounds()
		gfx.DrawImage(screen, logo, w/2-lb.Dx()-16, m.TitleY+lb.Dy()/2, lb.Dx(), lb.Dy(), nil)
	}

	rows := s.Rows()
	if selectedRow(s) >= 0 {
		top := int(data.BarY) + m.MenuItemHeight/2
		gfx.DrawRectangle(screen, -m.BarWidth/2, top, m.BarWidth, m.MenuItemHeight, host.Settings().SelColor, true)
	}

	for i, row := range rows {
		n := row.Node
		if n.Type() == host.SpacerType() {
			continue
		}
		y := rowY(i)
		name, value := host.NodeName(n)
		c := m.TextColorNormal
		switch {
		case row.Selected:
			c = m.TextColorSelected
		case !host.IsNodeSelectable(n):
			c = m.TextColorDisabled
		}
		gfx.DrawText(screen, m.LabelX, y, m.ItemSize, name, c, gfx.JustifyLeft|gfx.AlignMiddle)
		if value != "" {
			gfx.DrawText(screen, m.ValueX, y, m.ItemSize, value, m.ValueColor, gfx.JustifyLeft|gfx.AlignMiddle)
		}
	}

	drawScrollArrows(screen, s, len(rows))

	gfx.DrawText(screen, 0, m.FooterY, m.FooterSize, s.Footer(), m.FooterColor, gfx.JustifyCenter|gfx.AlignMiddle)
}

// drawScrollArrows marks rows hidden above or below the visible ones.
func drawScrollArrows(screen *ebiten.Image, s *menu.Session, shown int) {
	arrow, err := getImages().Get(assets.Arrow)
	if err != nil {
		log.Printf("Warning: Could not load arrow: %v", err)
		return
	}
	visible := 0
	for _, n := range s.Current().Children() {
		if s.Host().IsNodeVisible(n) {
			visible++
		}
	}
	start := s.Cursor().Start
	ab := arrow.Bounds()
	aw, ah := ab.Dx(), ab.Dy()
	x := cfg.Menu.LabelX - aw - 8
	if start > 0 {
		y := rowY(0) + ah/2
		gfx.DrawImage(screen, arrow, x, y, aw, ah, nil)
	}
	if start+shown < visible {
		// rotated about the screen centre, so place the mirror image
		y := rowY(shown-1) - ah/2
		gfx.DrawImage(screen, arrow, -x-aw, ah-y, aw, ah, &gfx.ImageOptions{Degrees: 180, ScaleX: 1, ScaleY: 1, Alpha: 0xff})
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS, host *frontend.Host) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(entry, components.MenuData{
			Host:   host,
			BarRow: -1,
			Repeat: pad.Repeat{Delay: cfg.Menu.RepeatDelay, Rate: cfg.Menu.RepeatRate},
		})
	}
	return components.Menu.Get(entry)
}
