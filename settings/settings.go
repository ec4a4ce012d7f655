package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/oomph-ac/pawn/game"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// Settings contains everything that can be configured for a session.
type Settings struct {
	Movement struct {
		// Speed is the walking speed in m/s.
		Speed        float64 `toml:"speed" yaml:"speed"`
		StrafeFactor float64 `toml:"strafe_factor" yaml:"strafe_factor"`
		// TickScale compensates for the internal step of the physics engine.
		TickScale float64 `toml:"tick_scale" yaml:"tick_scale"`
	} `toml:"movement" yaml:"movement"`
	Player struct {
		Position         []float64 `toml:"position" yaml:"position"`
		Yaw              float64   `toml:"yaw" yaml:"yaw"`
		EyeOffset        []float64 `toml:"eye_offset" yaml:"eye_offset"`
		LookDistance     float64   `toml:"look_distance" yaml:"look_distance"`
		InteractionRange float64   `toml:"interaction_range" yaml:"interaction_range"`
		JumpImpulse      float64   `toml:"jump_impulse" yaml:"jump_impulse"`
	} `toml:"player" yaml:"player"`
	Input struct {
		PointerSensitivity float64 `toml:"pointer_sensitivity" yaml:"pointer_sensitivity"`
		TouchSensitivity   float64 `toml:"touch_sensitivity" yaml:"touch_sensitivity"`
		// UserAgent decides between the desktop and mobile control schemes.
		UserAgent   string `toml:"user_agent" yaml:"user_agent"`
		DisableGyro bool   `toml:"disable_gyro" yaml:"disable_gyro"`
	} `toml:"input" yaml:"input"`
	Sync struct {
		// URL is the websocket server poses are sent to. Nothing is sent if it is empty.
		URL       string  `toml:"url" yaml:"url"`
		Frequency float64 `toml:"frequency" yaml:"frequency"`
		Channel   string  `toml:"channel" yaml:"channel"`
	} `toml:"sync" yaml:"sync"`
	Session struct {
		TickRate int     `toml:"tick_rate" yaml:"tick_rate"`
		Gravity  float64 `toml:"gravity" yaml:"gravity"`
	} `toml:"session" yaml:"session"`
	Log struct {
		Level string   `toml:"level" yaml:"level"`
		File  string   `toml:"file" yaml:"file"`
		Debug []string `toml:"debug" yaml:"debug"`
	} `toml:"log" yaml:"log"`
	Sentry struct {
		DSN         string `toml:"dsn" yaml:"dsn"`
		Environment string `toml:"environment" yaml:"environment"`
	} `toml:"sentry" yaml:"sentry"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Movement.Speed = game.DefaultSpeed
	s.Movement.StrafeFactor = game.DefaultStrafeFactor
	s.Movement.TickScale = game.DefaultTickScale

	s.Player.Position = []float64{0, 1, 0}
	s.Player.EyeOffset = []float64{0, 0, 0}
	s.Player.LookDistance = game.DefaultLookDistance
	s.Player.InteractionRange = game.DefaultInteractionRange
	s.Player.JumpImpulse = game.DefaultJumpImpulse

	s.Input.PointerSensitivity = game.DefaultPointerSpeed
	s.Input.TouchSensitivity = game.DefaultTouchSpeed

	s.Sync.Frequency = game.DefaultSyncFrequency
	s.Sync.Channel = game.DefaultSyncChannel

	s.Session.TickRate = game.DefaultTickRate
	s.Session.Gravity = game.DefaultGravity

	s.Log.Level = "info"
	s.Log.Debug = []string{}
	return s
}

// SaveDefault will create and save the default settings file as TOML. If the file already exists, it
// will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %v", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %v", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not
// exist. Files ending in .yaml or .yml are read as YAML, anything else as TOML. Values left out or
// set to zero fall back to their defaults.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	var s Settings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &s)
	default:
		err = toml.Unmarshal(data, &s)
	}
	if err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	s.fillDefaults()
	return s, nil
}

func (s *Settings) fillDefaults() {
	def := DefaultSettings()
	orFloat := func(v *float64, d float64) {
		if *v == 0 {
			*v = d
		}
	}
	orFloat(&s.Movement.Speed, def.Movement.Speed)
	orFloat(&s.Movement.StrafeFactor, def.Movement.StrafeFactor)
	orFloat(&s.Movement.TickScale, def.Movement.TickScale)
	orFloat(&s.Player.LookDistance, def.Player.LookDistance)
	orFloat(&s.Player.InteractionRange, def.Player.InteractionRange)
	orFloat(&s.Player.JumpImpulse, def.Player.JumpImpulse)
	orFloat(&s.Input.PointerSensitivity, def.Input.PointerSensitivity)
	orFloat(&s.Input.TouchSensitivity, def.Input.TouchSensitivity)
	orFloat(&s.Session.Gravity, def.Session.Gravity)

	if len(s.Player.Position) != 3 {
		s.Player.Position = def.Player.Position
	}
	if len(s.Player.EyeOffset) != 3 {
		s.Player.EyeOffset = def.Player.EyeOffset
	}
	if s.Sync.Channel == "" {
		s.Sync.Channel = def.Sync.Channel
	}
	if s.Session.TickRate <= 0 {
		s.Session.TickRate = def.Session.TickRate
	}
	if s.Log.Level == "" {
		s.Log.Level = def.Log.Level
	}
}
