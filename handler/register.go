package handler

import (
	"github.com/oomph-ac/pawn/network"
	"github.com/oomph-ac/pawn/player"
)

// RegisterHandlers registers all handlers to the player. They are registered in order of priority,
// so that handlers registered first are called first. Poses are sent over sim on channel, or on the
// default pose channel if channel is empty. A nil sim registers no sync handler.
func RegisterHandlers(p *player.Player, sim network.Simulation, channel string) {
	if !p.Controls().Scheme.TouchFirst() {
		p.RegisterHandler(NewInteractionHandler())
	}
	p.RegisterHandler(NewMovementHandler(p.Config().Movement))
	if sim != nil {
		p.RegisterHandler(NewSyncHandler(sim, channel))
	}
}
