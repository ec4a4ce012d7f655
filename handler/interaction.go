package handler

import (
	"github.com/oomph-ac/pawn/game"
	"github.com/oomph-ac/pawn/player"
)

const HandlerIDInteraction = "pawn:interaction"

// InteractionHandler points the interaction ray of a desktop player from the body along the view
// direction. Touch players interact through the ambient ray of the environment instead.
type InteractionHandler struct{}

func NewInteractionHandler() *InteractionHandler {
	return &InteractionHandler{}
}

func (*InteractionHandler) ID() string {
	return HandlerIDInteraction
}

func (h *InteractionHandler) OnTick(p *player.Player, _ player.Frame) {
	if p.Controls().Scheme.TouchFirst() {
		return
	}

	origin := p.Position()
	dir := p.Camera().Forward(game.Forward)
	p.Raycaster().Set(origin, dir)
	p.Dbg.Notify(player.DebugModeInteraction, true, "ray origin=%v direction=%v", origin, dir)
}
