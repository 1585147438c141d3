package frontend

import (
	"github.com/automoto/emucommon/menu"
	"github.com/automoto/emucommon/pad"
)

// Action picks the menu action of one frame. dirs are the directions a
// pad.Repeat let through, pressed the buttons that went down. Directions
// win over buttons.
func Action(dirs, pressed pad.Input) menu.Action {
	switch {
	case dirs.Has(pad.InputUp):
		return menu.ActionUp
	case dirs.Has(pad.InputDown):
		return menu.ActionDown
	case dirs.Has(pad.InputLeft):
		return menu.ActionLeft
	case dirs.Has(pad.InputRight):
		return menu.ActionRight
	case pressed.Has(pad.InputEnter):
		return menu.ActionConfirm
	case pressed.Has(pad.InputEsc):
		return menu.ActionCancel
	case pressed.Has(pad.InputHome):
		return menu.ActionHome
	}
	return menu.ActionNone
}
