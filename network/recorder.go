package network

import (
	"github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"
)

// Recorder is an in-memory Simulation keeping every event sent. It is used by the demo when no server
// is configured and by tests.
type Recorder struct {
	frequency float64
	connected atomic.Bool

	mu   deadlock.Mutex
	sent []Envelope
	err  error
}

// NewRecorder returns a connected Recorder accepting frequency events per second.
func NewRecorder(frequency float64) *Recorder {
	r := &Recorder{frequency: frequency}
	r.connected.Store(true)
	return r
}

// SetConnected ...
func (r *Recorder) SetConnected(connected bool) {
	r.connected.Store(connected)
}

// FailWith makes SendEvent return err without recording anything. A nil error restores recording.
func (r *Recorder) FailWith(err error) {
	r.mu.Lock()
	r.err = err
	r.mu.Unlock()
}

func (r *Recorder) Connected() bool {
	return r.connected.Load()
}

func (r *Recorder) Frequency() float64 {
	return r.frequency
}

func (r *Recorder) SendEvent(channel string, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, Envelope{Channel: channel, Payload: append([]byte(nil), payload...)})
	return nil
}

// Sent returns the events sent so far.
func (r *Recorder) Sent() []Envelope {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Envelope(nil), r.sent...)
}
