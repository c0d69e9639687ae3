package camera

// Camera defaults
const (
	DefaultMoveSpeed   = 2.5
	DefaultSensitivity = 0.1

	// Default orientation
	DefaultYaw   = -90.0 // Facing -Z direction
	DefaultPitch = 0.0

	// Field of view (zoom)
	DefaultZoom = 45.0
	MinZoom     = 1.0
	MaxZoom     = 45.0

	// Constraints
	MaxPitch = 89.0
	MinPitch = -89.0

	// Projection
	DefaultWidth  = 800
	DefaultHeight = 600
	NearPlane     = 0.1
	FarPlane      = 100.0
)
