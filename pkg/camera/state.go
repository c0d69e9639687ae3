package camera

import (
	"fmt"
	"io"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pelletier/go-toml/v2"
)

// State is a value snapshot of everything needed to rebuild a Camera.
// Basis vectors are not part of it; they are derived on restore.
type State struct {
	Position      mgl32.Vec3 `toml:"position"`
	WorldUp       mgl32.Vec3 `toml:"world_up"`
	Yaw           float32    `toml:"yaw"`
	Pitch         float32    `toml:"pitch"`
	Zoom          float32    `toml:"zoom"`
	MovementSpeed float32    `toml:"movement_speed"`
	Sensitivity   float32    `toml:"sensitivity"`
}

// DefaultState returns the state of a camera built by NewCamera at position.
func DefaultState(position mgl32.Vec3) State {
	return State{
		Position:      position,
		WorldUp:       mgl32.Vec3{0, 1, 0},
		Yaw:           DefaultYaw,
		Pitch:         DefaultPitch,
		Zoom:          DefaultZoom,
		MovementSpeed: DefaultMoveSpeed,
		Sensitivity:   DefaultSensitivity,
	}
}

// State returns a snapshot of the camera.
func (c *Camera) State() State {
	return State{
		Position:      c.position,
		WorldUp:       c.worldUp,
		Yaw:           c.yaw,
		Pitch:         c.pitch,
		Zoom:          c.zoom,
		MovementSpeed: c.moveSpeed,
		Sensitivity:   c.sensitivity,
	}
}

// Restore replaces the camera state with s and recomputes the basis vectors.
// A zero world-up falls back to +Y and the zoom is clamped.
func (c *Camera) Restore(s State) {
	c.position = s.Position
	c.worldUp = s.WorldUp
	if c.worldUp.Len() == 0 {
		c.worldUp = mgl32.Vec3{0, 1, 0}
	}
	c.yaw = s.Yaw
	c.pitch = s.Pitch
	c.zoom = clampZoom(s.Zoom)
	c.moveSpeed = s.MovementSpeed
	c.sensitivity = s.Sensitivity

	c.updateCameraVectors()
	c.updateProjectionMatrix()
}

// FromState builds a new camera from a snapshot.
func FromState(s State) *Camera {
	c := NewCamera(s.Position)
	c.Restore(s)
	return c
}

// EncodeState writes s as TOML.
func EncodeState(w io.Writer, s State) error {
	if err := toml.NewEncoder(w).Encode(s); err != nil {
		return fmt.Errorf("failed to encode camera state: %w", err)
	}
	return nil
}

// DecodeState reads a TOML camera state. Unknown keys are rejected.
func DecodeState(r io.Reader) (State, error) {
	var s State
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return State{}, fmt.Errorf("failed to decode camera state: %w", err)
	}
	return s, nil
}
