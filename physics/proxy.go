package physics

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/assert"
	"github.com/sasha-s/go-deadlock"
)

// Proxy caches one stream of a Body so that it can be read synchronously from any phase of a tick.
// Samples from the engine overwrite the cached vector in place. Writes through Set reach the engine
// and the cache in the same exclusive step, so no reader observes them diverging.
type Proxy struct {
	body   Body
	stream Stream

	// wmu serialises Set. Engine callbacks only ever take mu, and may run inside Set.
	wmu        deadlock.Mutex
	mu         deadlock.RWMutex
	value      mgl64.Vec3
	sub        Subscription
	subscribed bool
	closed     bool
}

// NewProxy creates a Proxy for the stream passed and subscribes to it. Until the first sample
// arrives Get returns the zero vector.
func NewProxy(body Body, stream Stream) *Proxy {
	p := &Proxy{body: body, stream: stream}
	p.subscribe()
	return p
}

// subscribe registers the proxy with the body. The body may deliver a sample before Subscribe
// returns, so mu is not held across the call.
func (p *Proxy) subscribe() {
	p.mu.Lock()
	assert.IsTrue(!p.subscribed, "%s proxy is already subscribed", p.stream)
	p.subscribed = true
	p.mu.Unlock()

	sub := p.body.Subscribe(p.stream, p.store)

	p.mu.Lock()
	closed := p.closed
	if !closed {
		p.sub = sub
	}
	p.mu.Unlock()
	if closed && sub != nil {
		sub.Unsubscribe()
	}
}

// store is the subscription callback.
func (p *Proxy) store(v mgl64.Vec3) {
	p.mu.Lock()
	if !p.closed {
		p.value = v
	}
	p.mu.Unlock()
}

// Stream returns the stream the proxy caches.
func (p *Proxy) Stream() Stream {
	return p.stream
}

// Get returns the cached vector. It never calls into the engine.
func (p *Proxy) Get() mgl64.Vec3 {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.value
}

// Set writes v to the engine and to the cache.
func (p *Proxy) Set(v mgl64.Vec3) {
	p.wmu.Lock()
	defer p.wmu.Unlock()

	switch p.stream {
	case StreamPosition:
		p.body.SetPosition(v)
	case StreamVelocity:
		p.body.SetVelocity(v)
	}

	p.mu.Lock()
	p.value = v
	p.mu.Unlock()
}

// Close releases the subscription. The last known value stays readable.
func (p *Proxy) Close() {
	p.mu.Lock()
	sub := p.sub
	p.sub, p.closed = nil, true
	p.mu.Unlock()

	if sub != nil {
		sub.Unsubscribe()
	}
}
