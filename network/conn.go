package network

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/disgoorg/json"
	"github.com/gorilla/websocket"
	"github.com/oomph-ac/pawn/event"
	"github.com/oomph-ac/pawn/oerror"
	"github.com/oomph-ac/pawn/worker"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

const (
	writeDeadline = 5 * time.Second
	queueSize     = 64
)

// Envelope wraps an event payload with the channel it was sent on.
type Envelope struct {
	Channel string          `json:"channel"`
	Payload json.RawMessage `json:"payload"`
}

// Conn is a Simulation over a websocket connection. Events are written by a single worker so that
// sending never blocks the caller.
type Conn struct {
	ws        *websocket.Conn
	log       *logrus.Logger
	frequency float64

	queue     *worker.Queue
	connected atomic.Bool
	done      chan struct{}

	closeOnce sync.Once
	closeErr  error

	onEvent func(event.Event)
}

// Dial connects to the websocket server at url. Events are sent no more often than frequency times a
// second. onEvent, if not nil, is called from the read goroutine with every event received.
func Dial(ctx context.Context, url string, frequency float64, log *logrus.Logger, onEvent func(event.Event)) (*Conn, error) {
	ws, _, err := websocket.DefaultDialer.DialContext(ctx, url, http.Header{})
	if err != nil {
		return nil, oerror.New("error dialing %s: %v", url, err)
	}
	return NewConn(ws, frequency, log, onEvent), nil
}

// NewConn wraps an established websocket connection.
func NewConn(ws *websocket.Conn, frequency float64, log *logrus.Logger, onEvent func(event.Event)) *Conn {
	c := &Conn{
		ws:        ws,
		log:       log,
		frequency: frequency,
		queue:     worker.NewQueue(queueSize, 1),
		done:      make(chan struct{}),
		onEvent:   onEvent,
	}
	c.connected.Store(true)
	go c.read()
	return c
}

func (c *Conn) Connected() bool {
	return c.connected.Load()
}

func (c *Conn) Frequency() float64 {
	return c.frequency
}

// SendEvent queues payload to be written on channel. It fails if the connection is closed, the
// payload is not valid JSON or too many events are already waiting.
func (c *Conn) SendEvent(channel string, payload []byte) error {
	if !c.connected.Load() {
		return oerror.New("not connected")
	}
	data, err := json.Marshal(Envelope{Channel: channel, Payload: payload})
	if err != nil {
		return oerror.New("error encoding %s event: %v", channel, err)
	}

	if !c.queue.Submit(func() { c.write(data) }) {
		return oerror.New("send queue full, dropped %s event", channel)
	}
	return nil
}

func (c *Conn) write(data []byte) {
	if !c.connected.Load() {
		return
	}
	_ = c.ws.SetWriteDeadline(time.Now().Add(writeDeadline))
	if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
		c.log.Debugf("error writing event: %v", err)
	}
}

func (c *Conn) read() {
	defer close(c.done)
	defer c.connected.Store(false)

	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if c.connected.Load() && !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Debugf("connection lost: %v", err)
			}
			return
		}

		var env Envelope
		if err := json.Unmarshal(data, &env); err != nil {
			c.log.Debugf("dropped malformed message: %v", err)
			continue
		}
		ev, err := event.Decode(env.Channel, env.Payload)
		if err != nil {
			c.log.Debugf("dropped %s message: %v", env.Channel, err)
			continue
		}
		if c.onEvent != nil {
			c.onEvent(ev)
		}
	}
}

// Close closes the connection. Events still queued are dropped. It is safe to call more than once.
func (c *Conn) Close() error {
	c.closeOnce.Do(func() {
		wasConnected := c.connected.Swap(false)
		c.queue.Close()
		if wasConnected {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
			_ = c.ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
			select {
			case <-c.done:
			case <-time.After(time.Second):
			}
		}
		c.closeErr = c.ws.Close()
	})
	return c.closeErr
}
