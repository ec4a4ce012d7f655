package session

import (
	"io"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/input"
	"github.com/oomph-ac/pawn/physics"
	"github.com/oomph-ac/pawn/player"
	"github.com/oomph-ac/pawn/player/movement"
	"github.com/oomph-ac/pawn/settings"
	"github.com/sirupsen/logrus"
)

// NewLogger creates the logger described by the settings. Output goes to the log file if one is set,
// and to stderr otherwise.
func NewLogger(s settings.Settings) (*logrus.Logger, io.Closer, error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	level, err := logrus.ParseLevel(s.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger.SetLevel(level)

	if s.Log.File == "" {
		logger.SetOutput(os.Stderr)
		return logger, nopCloser{}, nil
	}
	f, err := os.OpenFile(s.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}
	logger.SetOutput(f)
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func vec3(v []float64) mgl64.Vec3 {
	if len(v) != 3 {
		return mgl64.Vec3{}
	}
	return mgl64.Vec3{v[0], v[1], v[2]}
}

// PlayerConfig returns the player configuration described by the settings.
func PlayerConfig(s settings.Settings) player.Config {
	return player.Config{
		Position:         vec3(s.Player.Position),
		Yaw:              s.Player.Yaw,
		LookDistance:     s.Player.LookDistance,
		EyeOffset:        vec3(s.Player.EyeOffset),
		InteractionRange: s.Player.InteractionRange,
		Movement: movement.Tuning{
			Speed:        s.Movement.Speed,
			StrafeFactor: s.Movement.StrafeFactor,
			TickScale:    s.Movement.TickScale,
		},
		Debug: s.Log.Debug,
	}
}

// Sensitivity returns the look sensitivities described by the settings.
func Sensitivity(s settings.Settings) input.Sensitivity {
	return input.Sensitivity{
		Pointer: s.Input.PointerSensitivity,
		Touch:   s.Input.TouchSensitivity,
	}
}

// CapsuleConfig returns the configuration of the in-process body.
func CapsuleConfig(s settings.Settings) physics.CapsuleConfig {
	cfg := physics.DefaultCapsuleConfig(vec3(s.Player.Position))
	cfg.Gravity = s.Session.Gravity
	return cfg
}
