package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton tracking the blocking message
type MessageStateData struct {
	// PauseTimer is the number of frames input is still ignored.
	PauseTimer int
	// Released is set once no button is held, so the press that opened
	// the message does not close it.
	Released bool
	Done     bool
}

var MessageState = donburi.NewComponentType[MessageStateData]()
