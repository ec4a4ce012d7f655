package session

import (
	"context"
	"io"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/oomph-ac/pawn/ability"
	"github.com/oomph-ac/pawn/environment"
	"github.com/oomph-ac/pawn/event"
	"github.com/oomph-ac/pawn/game"
	"github.com/oomph-ac/pawn/handler"
	"github.com/oomph-ac/pawn/input"
	"github.com/oomph-ac/pawn/network"
	"github.com/oomph-ac/pawn/oerror"
	"github.com/oomph-ac/pawn/physics"
	"github.com/oomph-ac/pawn/player"
	"github.com/oomph-ac/pawn/settings"
	"github.com/oomph-ac/pawn/utils"
	"github.com/sirupsen/logrus"
	"go.uber.org/atomic"
)

// Stepper is a body integrated by the session itself rather than by an external engine.
type Stepper interface {
	Step(dt float64)
}

// Options selects the collaborators of a session. Fields left nil are created from the settings.
type Options struct {
	// Body is the physics body of the player. A Capsule is created if nil.
	Body physics.Body
	// Simulation is the transport poses are sent over. If nil, the sync URL of the settings is
	// dialed, or the session runs offline when no URL is set.
	Simulation network.Simulation
	// Platform overrides the platform detected from the user agent of the settings.
	Platform *input.Platform
	// OnEvent receives the events sent by peers when the session dials the transport itself.
	OnEvent func(ev event.Event)
}

// Session owns everything living for one player: the environment, the body, the player and the
// transport it sends its pose over.
type Session struct {
	log      *logrus.Logger
	settings settings.Settings

	Env      *environment.Environment
	Body     physics.Body
	Controls *input.Controls
	Player   *player.Player
	Jump     *ability.Jump

	sim    network.Simulation
	closer io.Closer

	start  time.Time
	last   time.Duration
	frames *utils.CircularQueue[float64]
	closed atomic.Bool
}

// frameWindow is the amount of recent frame deltas kept for FrameStats.
const frameWindow = 256

// FrameStats summarises the deltas of the most recent frames, in seconds.
type FrameStats struct {
	Frames int
	Mean   float64
	Median float64
	StdDev float64
}

// New creates a session from the settings passed.
func New(ctx context.Context, s settings.Settings, log *logrus.Logger, opts Options) (*Session, error) {
	sess := &Session{
		log:      log,
		settings: s,
		Env:      environment.New(log),
		Body:     opts.Body,
		sim:      opts.Simulation,
		frames:   utils.NewCircularQueue[float64](frameWindow),
	}
	if sess.Body == nil {
		sess.Body = physics.NewCapsule(CapsuleConfig(s))
	}

	if sess.sim == nil {
		if s.Sync.URL == "" {
			sess.sim = network.Offline{}
		} else {
			conn, err := network.Dial(ctx, s.Sync.URL, s.Sync.Frequency, log, opts.OnEvent)
			if err != nil {
				return nil, oerror.New("unable to connect to simulation: %v", err)
			}
			sess.sim, sess.closer = conn, conn
			log.Infof("connected to %s (frequency=%vHz)", s.Sync.URL, s.Sync.Frequency)
		}
	}

	platform := input.DetectPlatform(s.Input.UserAgent)
	if opts.Platform != nil {
		platform = *opts.Platform
	}
	scheme := input.Resolve(platform, s.Input.DisableGyro)
	sess.Controls = input.NewControls(scheme, Sensitivity(s))

	sess.Player = player.New(sess.Env, sess.Body, sess.Controls, PlayerConfig(s), log)
	handler.RegisterHandlers(sess.Player, sess.sim, s.Sync.Channel)
	sess.Jump = ability.NewJump(sess.Env, s.Player.JumpImpulse)

	log.Infof("session %s started (scheme=%s)", sess.Env.ID(), scheme)
	return sess, nil
}

// Simulation returns the transport of the session.
func (s *Session) Simulation() network.Simulation {
	return s.sim
}

// Run ticks the session at the configured tick rate until ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	rate := s.settings.Session.TickRate
	if rate <= 0 {
		return oerror.New("invalid tick rate %d", rate)
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	s.start = time.Now()
	s.last = 0
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if s.closed.Load() {
				return oerror.New("session closed")
			}
			s.Tick(now.Sub(s.start))
		}
	}
}

// Tick runs one frame at elapsed time since the session started. A body owned by the session is
// stepped before the player so that the player reads its state as of this frame.
func (s *Session) Tick(elapsed time.Duration) {
	defer func() {
		if v := recover(); v != nil {
			s.log.Errorf("Tick() panic: %v", v)
			hub := sentry.CurrentHub().Clone()
			hub.ConfigureScope(func(scope *sentry.Scope) {
				scope.SetTag("env", s.Env.ID().String())
				scope.SetTag("scheme", s.Controls.Scheme.String())
			})

			hub.Recover(oerror.New("%v", v))
			hub.Flush(time.Second * 5)
			panic(v)
		}
	}()

	delta := (elapsed - s.last).Seconds()
	s.last = elapsed
	_ = s.frames.Append(delta)
	if stepper, ok := s.Body.(Stepper); ok {
		stepper.Step(delta)
	}
	s.Player.Tick(player.Frame{Delta: delta, Elapsed: elapsed})
}

// FrameStats returns statistics over the deltas of the most recent frames.
func (s *Session) FrameStats() FrameStats {
	deltas := s.frames.Slice()
	return FrameStats{
		Frames: len(deltas),
		Mean:   game.Mean(deltas),
		Median: game.Median(deltas),
		StdDev: game.StandardDeviation(deltas),
	}
}

// Close tears the session down in the reverse order it was built in.
func (s *Session) Close() error {
	if !s.closed.CompareAndSwap(false, true) {
		return nil
	}
	s.Player.Close()
	if s.closer != nil {
		if err := s.closer.Close(); err != nil {
			return oerror.New("error closing simulation: %v", err)
		}
	}
	stats := s.FrameStats()
	s.log.Infof("session %s closed (frames=%d mean=%.4fs stddev=%.4fs)", s.Env.ID(), stats.Frames, stats.Mean, stats.StdDev)
	return nil
}
