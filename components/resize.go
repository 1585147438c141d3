package components

import (
	"github.com/automoto/emucommon/resize"
	"github.com/yohamta/donburi"
)

// ResizeData stores a running resize dialog
type ResizeData struct {
	Info   *resize.Info
	State  *resize.State
	Result resize.Result
	// SavedW and SavedH restore the screen size on cancel.
	SavedW, SavedH int
}

var Resize = donburi.NewComponentType[ResizeData]()
