package physics

import "github.com/go-gl/mathgl/mgl64"

// Stream identifies one of the vector streams a rigid body publishes.
type Stream uint8

const (
	StreamPosition Stream = iota
	StreamVelocity
)

// String ...
func (s Stream) String() string {
	switch s {
	case StreamPosition:
		return "position"
	case StreamVelocity:
		return "velocity"
	}
	return "unknown"
}

// Body is the boundary to the rigid-body engine for a single body. The engine integrates and
// resolves collisions on its own schedule and reports results through subscriptions, which may be
// called from any goroutine.
type Body interface {
	// Subscribe registers fn to receive every sample of the stream passed. The returned Subscription
	// stops the callbacks once released.
	Subscribe(stream Stream, fn func(mgl64.Vec3)) Subscription
	// SetPosition teleports the body.
	SetPosition(pos mgl64.Vec3)
	// SetVelocity commands the velocity of the body.
	SetVelocity(vel mgl64.Vec3)
}

// Subscription is a handle on an active stream subscription.
type Subscription interface {
	// Unsubscribe stops the callbacks. Calling it more than once has no effect.
	Unsubscribe()
}

// SubscriptionFunc adapts a function to the Subscription interface.
type SubscriptionFunc func()

// Unsubscribe ...
func (f SubscriptionFunc) Unsubscribe() {
	f()
}
