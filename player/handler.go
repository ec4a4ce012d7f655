package player

import "github.com/oomph-ac/pawn/assert"

// Handler is run once per frame by the player it is registered to.
type Handler interface {
	// ID returns a string that identifies the handler.
	ID() string
	// OnTick is called every frame, after the camera was updated.
	OnTick(p *Player, f Frame)
}

// RegisterHandler registers h to the player. Handlers are run in the order they were registered in.
// Registering two handlers with the same ID panics.
func (p *Player) RegisterHandler(h Handler) {
	p.handlerMu.Lock()
	defer p.handlerMu.Unlock()
	_, exists := p.handlers.Get(h.ID())
	assert.IsTrue(!exists, "handler %s already registered", h.ID())
	p.handlers.Set(h.ID(), h)
}

// Handler returns the handler registered under id.
func (p *Player) Handler(id string) (Handler, bool) {
	p.handlerMu.RLock()
	defer p.handlerMu.RUnlock()
	return p.handlers.Get(id)
}

// HandlerIDs returns the IDs of the registered handlers in the order they run.
func (p *Player) HandlerIDs() []string {
	p.handlerMu.RLock()
	defer p.handlerMu.RUnlock()
	return p.handlers.Keys()
}

func (p *Player) runHandlers(f Frame) {
	p.handlerMu.RLock()
	hs := make([]Handler, 0, p.handlers.Len())
	for el := p.handlers.Front(); el != nil; el = el.Next() {
		hs = append(hs, el.Value)
	}
	p.handlerMu.RUnlock()

	for _, h := range hs {
		h.OnTick(p, f)
	}
}
