package event

import (
	"bytes"

	"github.com/disgoorg/json"
	"github.com/oomph-ac/pawn/internal"
	"github.com/oomph-ac/pawn/oerror"
)

// Event is a message sent to peers over a named channel.
type Event interface {
	// ID returns the channel the event is sent on.
	ID() string
	// Encode returns the payload of the event.
	Encode() ([]byte, error)

	Time() int64
}

// NopEvent carries the creation time of an event. It is not part of the payload.
type NopEvent struct {
	EvTime int64 `json:"-"`
}

func (n NopEvent) Time() int64 {
	return n.EvTime
}

// encodeJSON encodes v without the trailing newline the encoder writes.
func encodeJSON(v any) ([]byte, error) {
	buf := internal.BufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer internal.BufferPool.Put(buf)

	if err := json.NewEncoder(buf).Encode(v); err != nil {
		return nil, err
	}
	return bytes.Clone(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// Decode decodes the payload of an event received on channel id.
func Decode(id string, payload []byte) (Event, error) {
	switch id {
	case IDPose:
		return DecodePose(payload)
	}
	return nil, oerror.New("unknown event channel %q", id)
}
