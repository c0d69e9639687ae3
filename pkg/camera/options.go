package camera

import "github.com/go-gl/mathgl/mgl32"

// Option configures a Camera at construction time.
type Option func(*Camera)

// WithWorldUp sets the world-up reference vector. It is normalized on use.
func WithWorldUp(up mgl32.Vec3) Option {
	return func(c *Camera) {
		c.worldUp = up
	}
}

// WithOrientation sets the initial yaw and pitch in degrees.
// The pitch is taken as given; clamping only applies to mouse look.
func WithOrientation(yaw, pitch float32) Option {
	return func(c *Camera) {
		c.yaw = yaw
		c.pitch = pitch
	}
}

// WithMovementSpeed sets the movement speed in units per second.
func WithMovementSpeed(speed float32) Option {
	return func(c *Camera) {
		c.moveSpeed = speed
	}
}

// WithSensitivity sets the mouse sensitivity in degrees per input unit.
func WithSensitivity(sensitivity float32) Option {
	return func(c *Camera) {
		c.sensitivity = sensitivity
	}
}

// WithZoom sets the initial vertical field of view in degrees, clamped to [MinZoom, MaxZoom].
func WithZoom(zoom float32) Option {
	return func(c *Camera) {
		c.zoom = clampZoom(zoom)
	}
}
