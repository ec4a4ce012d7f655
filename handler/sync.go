package handler

import (
	"github.com/elliotchance/orderedmap/v2"
	"github.com/oomph-ac/pawn/event"
	"github.com/oomph-ac/pawn/network"
	"github.com/oomph-ac/pawn/player"
	"github.com/oomph-ac/pawn/utils"
)

const HandlerIDSync = "pawn:sync"

// SyncHandler sends the camera pose of the player to its peers, no more often than the transport
// frequency allows. Sends that fail are dropped; the next eligible frame sends a fresh pose.
type SyncHandler struct {
	sim     network.Simulation
	channel string
	limiter *RateLimiter

	Sent    uint64
	Dropped uint64
}

func NewSyncHandler(sim network.Simulation, channel string) *SyncHandler {
	if channel == "" {
		channel = event.IDPose
	}
	return &SyncHandler{
		sim:     sim,
		channel: channel,
		limiter: NewRateLimiter(sim.Frequency()),
	}
}

func (*SyncHandler) ID() string {
	return HandlerIDSync
}

func (h *SyncHandler) OnTick(p *player.Player, f player.Frame) {
	if !h.sim.Connected() || !h.limiter.Ready(f.Elapsed) {
		return
	}

	pose := p.Camera().Pose()
	ev := event.NewPoseEvent(pose.Position, pose.Rotation)
	payload, err := ev.Encode()
	if err == nil {
		err = h.sim.SendEvent(h.channel, payload)
	}
	if err != nil {
		h.Dropped++
		data := orderedmap.NewOrderedMap[string, any]()
		data.Set("channel", h.channel)
		data.Set("elapsed", f.Elapsed)
		data.Set("dropped", h.Dropped)
		p.Log().Debugf("dropped pose: %v %s", err, utils.OrderedMapToString(*data))
		return
	}
	h.Sent++
	p.Dbg.Notify(player.DebugModeSync, true, "sent pose on %s: %s", h.channel, payload)
}
