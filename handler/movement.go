package handler

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/player"
	"github.com/oomph-ac/pawn/player/movement"
	"github.com/oomph-ac/pawn/utils"
)

const HandlerIDMovement = "pawn:movement"

// MovementHandler turns the input of the player into a velocity command every frame.
type MovementHandler struct {
	Tuning movement.Tuning

	// LastCommand is the last velocity commanded to the body.
	LastCommand mgl64.Vec3
	// Issued is the amount of commands issued. Frames with locked controls issue none.
	Issued uint64
}

func NewMovementHandler(t movement.Tuning) *MovementHandler {
	return &MovementHandler{Tuning: t}
}

func (*MovementHandler) ID() string {
	return HandlerIDMovement
}

func (h *MovementHandler) OnTick(p *player.Player, f player.Frame) {
	in := movement.Input{
		Direction:   p.Controls().Direction.Direction(),
		Orientation: p.Camera().Pose().Rotation,
		Velocity:    p.Velocity(),
		Dt:          f.Delta,
		Locked:      p.Locked(),
		Paused:      p.Env().Paused(),
	}
	cmd, issue := movement.Integrate(in, h.Tuning)

	if p.Dbg.Enabled(player.DebugModeMovement) {
		data := orderedmap.NewOrderedMap[string, any]()
		data.Set("dir", in.Direction)
		data.Set("vel", in.Velocity)
		data.Set("dt", in.Dt)
		data.Set("locked", in.Locked)
		data.Set("paused", in.Paused)
		data.Set("cmd", cmd)
		data.Set("issued", issue)
		p.Dbg.Notify(player.DebugModeMovement, true, "%s", utils.OrderedMapToString(*data))
	}

	if !issue {
		return
	}
	p.SetVelocity(cmd)
	h.LastCommand = cmd
	h.Issued++
}
