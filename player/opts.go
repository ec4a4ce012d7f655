package player

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/game"
	"github.com/oomph-ac/pawn/player/movement"
)

// Config holds the parameters a player is created with.
type Config struct {
	// Position is where the body starts. Yaw is the starting heading, measured from the X axis towards
	// the Z axis.
	Position mgl64.Vec3
	Yaw      float64
	// LookDistance is how far ahead of the body the starting look target is placed.
	LookDistance float64
	// EyeOffset is added to the body position to get the camera position.
	EyeOffset mgl64.Vec3
	// InteractionRange is the reach of the pointer ray on desktop.
	InteractionRange float64

	Movement movement.Tuning
	// Debug lists the debug modes enabled from the start.
	Debug []string
}

// DefaultConfig ...
func DefaultConfig() Config {
	return Config{
		LookDistance:     game.DefaultLookDistance,
		InteractionRange: game.DefaultInteractionRange,
		Movement:         movement.DefaultTuning(),
	}
}
