package pad

import "sync/atomic"

// Hardware is a console button outside the controllers.
type Hardware int32

const (
	HardwareNone Hardware = iota
	// HardwareReset returns to the system menu.
	HardwareReset
	// HardwarePower powers the console off to standby.
	HardwarePower
)

func (h Hardware) String() string {
	switch h {
	case HardwareReset:
		return "reset"
	case HardwarePower:
		return "power"
	}
	return "none"
}

// HardwareLatch remembers the last hardware button. It is written from
// system callbacks and read by the menu and emulation loops.
type HardwareLatch struct {
	v atomic.Int32
}

func (l *HardwareLatch) Press(h Hardware) { l.v.Store(int32(h)) }
func (l *HardwareLatch) Get() Hardware    { return Hardware(l.v.Load()) }
func (l *HardwareLatch) Clear()           { l.v.Store(int32(HardwareNone)) }
