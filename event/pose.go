package event

import (
	"time"

	"github.com/disgoorg/json"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/pawn/game"
	"github.com/oomph-ac/pawn/oerror"
)

// IDPose is the channel viewer poses are sent on.
const IDPose = "player"

// Vec3 ...
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Rotation is a set of Euler angles in radians and the order they apply in.
type Rotation struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Order string  `json:"order"`
}

// PoseEvent holds the position and rotation of a viewer.
type PoseEvent struct {
	NopEvent

	Position Vec3     `json:"position"`
	Rotation Rotation `json:"rotation"`
}

// NewPoseEvent creates a pose event from a position and viewer orientation. The rotation is sent
// in the camera frame peers render with, which looks down -Z, as XYZ Euler angles.
func NewPoseEvent(pos mgl64.Vec3, rot mgl64.Quat) *PoseEvent {
	e := game.EulerFromQuat(game.ViewerToCamera(rot), game.EulerXYZ)
	return &PoseEvent{
		NopEvent: NopEvent{EvTime: time.Now().UnixNano()},
		Position: Vec3{X: pos.X(), Y: pos.Y(), Z: pos.Z()},
		Rotation: Rotation{X: e.X, Y: e.Y, Z: e.Z, Order: string(e.Order)},
	}
}

func (*PoseEvent) ID() string {
	return IDPose
}

func (e *PoseEvent) Encode() ([]byte, error) {
	return encodeJSON(e)
}

// Pose converts the event back to a position and viewer orientation.
func (e *PoseEvent) Pose() (mgl64.Vec3, mgl64.Quat) {
	pos := mgl64.Vec3{e.Position.X, e.Position.Y, e.Position.Z}
	rot := game.QuatFromEuler(game.Euler{
		X:     e.Rotation.X,
		Y:     e.Rotation.Y,
		Z:     e.Rotation.Z,
		Order: game.EulerOrder(e.Rotation.Order),
	})
	return pos, game.CameraToViewer(rot)
}

// DecodePose decodes a pose payload.
func DecodePose(payload []byte) (*PoseEvent, error) {
	e := &PoseEvent{}
	if err := json.Unmarshal(payload, e); err != nil {
		return nil, oerror.New("error decoding pose event: %v", err)
	}
	switch game.EulerOrder(e.Rotation.Order) {
	case game.EulerXYZ, game.EulerYXZ:
	case "":
		e.Rotation.Order = string(game.EulerXYZ)
	default:
		return nil, oerror.New("unsupported rotation order %q", e.Rotation.Order)
	}
	return e, nil
}
