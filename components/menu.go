package components

import (
	"github.com/automoto/emucommon/frontend"
	"github.com/automoto/emucommon/pad"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MenuData stores the state of the menu screen
type MenuData struct {
	Host *frontend.Host
	// Bar slides the selection highlight between rows.
	Bar    *gween.Tween
	BarY   float32
	BarRow int // Row index the bar is heading to, -1 before the first frame
	Repeat pad.Repeat
}

// Menu is the component type for menu screen state
var Menu = donburi.NewComponentType[MenuData]()
