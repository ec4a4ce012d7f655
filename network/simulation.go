package network

// Simulation is the transport poses are sent over.
type Simulation interface {
	// Connected reports whether events can currently be sent.
	Connected() bool
	// Frequency returns the maximum amount of events per second the transport accepts.
	Frequency() float64
	// SendEvent sends payload on channel. It must not block.
	SendEvent(channel string, payload []byte) error
}

// Offline is a Simulation that is never connected.
type Offline struct{}

func (Offline) Connected() bool { return false }

func (Offline) Frequency() float64 { return 0 }

func (Offline) SendEvent(string, []byte) error { return nil }
