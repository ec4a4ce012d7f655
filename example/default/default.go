package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/getsentry/sentry-go"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/oomph-ac/pawn/game"
	"github.com/oomph-ac/pawn/input"
	"github.com/oomph-ac/pawn/physics"
	"github.com/oomph-ac/pawn/session"
	"github.com/oomph-ac/pawn/settings"
)

// Terminals report key presses but not releases, so a key counts as held until it has not been
// repeated for this long.
const keyHold = 150 * time.Millisecond

// lookStep is the pointer motion in pixels applied for every arrow key press.
const lookStep = 40

// The following program drives a player on a flat ground plane from the terminal. WASD moves, the
// arrow keys look around, space jumps and p pauses.
func main() {
	path := "pawn.toml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}
	if err := settings.SaveDefault(path); err == nil {
		fmt.Printf("created default settings at %s\n", path)
	}
	s, err := settings.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to load settings: %v\n", err)
		os.Exit(1)
	}
	if s.Log.File == "" {
		s.Log.File = "pawn.log"
	}

	log, logFile, err := session.NewLogger(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	if s.Sentry.DSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: s.Sentry.DSN, Environment: s.Sentry.Environment}); err != nil {
			log.Errorf("unable to initialize sentry: %v", err)
		}
		defer sentry.Flush(2 * time.Second)
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
		defer mgr.Stop()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sess, err := session.New(ctx, s, log, session.Options{Platform: &input.Platform{}})
	if err != nil {
		log.Errorf("unable to start session: %v", err)
		fmt.Fprintf(os.Stderr, "unable to start session: %v\n", err)
		os.Exit(1)
	}
	defer sess.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Errorf("unable to create screen: %v", err)
		return
	}
	if err := screen.Init(); err != nil {
		log.Errorf("unable to init screen: %v", err)
		return
	}
	defer screen.Fini()

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		if err := sess.Run(ctx); err != nil {
			log.Errorf("session stopped: %v", err)
		}
		cancel()
	}()
	drive(ctx, cancel, screen, sess)
	<-stopped
}

// drive feeds terminal input to the session and draws its state until ctx is done.
func drive(ctx context.Context, cancel context.CancelFunc, screen tcell.Screen, sess *session.Session) {
	controls := sess.Controls
	controls.Pointer.Lock()
	held := map[input.Key]time.Time{}

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(16 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch ev.Key() {
				case tcell.KeyEscape, tcell.KeyCtrlC:
					cancel()
					return
				case tcell.KeyLeft:
					controls.Pointer.Move(-lookStep, 0)
				case tcell.KeyRight:
					controls.Pointer.Move(lookStep, 0)
				case tcell.KeyUp:
					controls.Pointer.Move(0, -lookStep)
				case tcell.KeyDown:
					controls.Pointer.Move(0, lookStep)
				case tcell.KeyRune:
					switch r := ev.Rune(); r {
					case ' ':
						sess.Jump.Trigger()
					case 'p', 'P':
						if sess.Env.Paused() {
							sess.Env.Resume()
						} else {
							sess.Env.Pause()
						}
					default:
						if k, ok := input.KeyFromRune(r); ok {
							controls.Keyboard.Press(k)
							held[k] = time.Now()
						}
					}
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			for k, at := range held {
				if now.Sub(at) > keyHold {
					controls.Keyboard.Release(k)
					delete(held, k)
				}
			}
			draw(screen, sess)
		}
	}
}

func draw(screen tcell.Screen, sess *session.Session) {
	screen.Clear()
	p := sess.Player
	pose := p.Camera().Pose()
	yaw, pitch := game.AnglesFromQuat(pose.Rotation)

	lines := []string{
		fmt.Sprintf("env       %s", sess.Env.ID()),
		fmt.Sprintf("scheme    %s", sess.Controls.Scheme),
		fmt.Sprintf("position  %.2f %.2f %.2f", pose.Position.X(), pose.Position.Y(), pose.Position.Z()),
		fmt.Sprintf("velocity  %.2f %.2f %.2f", p.Velocity().X(), p.Velocity().Y(), p.Velocity().Z()),
		fmt.Sprintf("look      yaw=%.2f pitch=%.2f", yaw, pitch),
		fmt.Sprintf("paused    %v", sess.Env.Paused()),
		fmt.Sprintf("synced    %v", sess.Simulation().Connected()),
		fmt.Sprintf("ticks     %d", p.Ticks()),
	}
	if body, ok := sess.Body.(*physics.Capsule); ok {
		lines = append(lines, fmt.Sprintf("on ground %v", body.OnGround()))
	}
	lines = append(lines, "", "WASD move, arrows look, space jump, p pause, esc quit")

	style := tcell.StyleDefault.Foreground(tcell.ColorGreen)
	for y, line := range lines {
		for x, r := range line {
			screen.SetContent(x, y, r, nil, style)
		}
	}
	screen.Show()
}
