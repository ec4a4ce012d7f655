package player

import (
	"fmt"

	"go.uber.org/atomic"
)

const (
	DebugModeMovement = iota
	DebugModeInteraction
	DebugModeSync
	debugModeCount
)

// DebugModeList holds the names of the debug modes, indexed by mode.
var DebugModeList = []string{"movement", "interaction", "sync"}

// Debugger logs per-frame information of the player for the debug modes that are enabled.
type Debugger struct {
	p     *Player
	modes [debugModeCount]atomic.Bool
}

// DebugMode returns the mode named name.
func DebugMode(name string) (int, bool) {
	for mode, n := range DebugModeList {
		if n == name {
			return mode, true
		}
	}
	return 0, false
}

// Toggle flips the mode passed.
func (d *Debugger) Toggle(mode int) {
	if mode < 0 || mode >= debugModeCount {
		panic(fmt.Errorf("unknown debug mode %v", mode))
	}
	d.modes[mode].Toggle()
}

// Enabled ...
func (d *Debugger) Enabled(mode int) bool {
	return mode >= 0 && mode < debugModeCount && d.modes[mode].Load()
}

// Notify logs the message if the mode is enabled and the condition holds.
func (d *Debugger) Notify(mode int, cond bool, msg string, args ...interface{}) {
	if !cond || !d.Enabled(mode) {
		return
	}
	d.p.Log().Debugf("(%s) "+msg, append([]interface{}{DebugModeList[mode]}, args...)...)
}
