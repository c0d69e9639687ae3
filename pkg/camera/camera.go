// Package camera implements the first-person Euler-angle camera used by the frame loop.
package camera

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera implements a first-person free-look camera
type Camera struct {
	// Position and orientation
	position mgl32.Vec3
	worldUp  mgl32.Vec3
	front    mgl32.Vec3
	up       mgl32.Vec3
	right    mgl32.Vec3

	// Euler angles, in degrees
	yaw   float32
	pitch float32

	// Camera options
	zoom        float32
	moveSpeed   float32
	sensitivity float32

	// Projection
	projection mgl32.Mat4
	width      int
	height     int
}

// NewCamera creates a camera at position looking down -Z with +Y as world up,
// unless overridden by opts.
func NewCamera(position mgl32.Vec3, opts ...Option) *Camera {
	camera := &Camera{
		position:    position,
		worldUp:     mgl32.Vec3{0, 1, 0},
		front:       mgl32.Vec3{0, 0, -1},
		yaw:         DefaultYaw,
		pitch:       DefaultPitch,
		zoom:        DefaultZoom,
		moveSpeed:   DefaultMoveSpeed,
		sensitivity: DefaultSensitivity,
		width:       DefaultWidth,
		height:      DefaultHeight,
	}

	for _, opt := range opts {
		opt(camera)
	}

	camera.updateCameraVectors()
	camera.updateProjectionMatrix()

	return camera
}

// updateCameraVectors recalculates the basis from the Euler angles.
// right is derived from worldUp and up from right, so up stays orthogonal to front.
func (c *Camera) updateCameraVectors() {
	yaw := mgl32.DegToRad(c.yaw)
	pitch := mgl32.DegToRad(c.pitch)

	front := mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}
	c.front = front.Normalize()

	c.right = c.front.Cross(c.worldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func (c *Camera) updateProjectionMatrix() {
	height := c.height
	if height <= 0 {
		height = 1
	}
	aspect := float32(c.width) / float32(height)
	c.projection = mgl32.Perspective(mgl32.DegToRad(c.zoom), aspect, NearPlane, FarPlane)
}

// UpdateProjectionMatrix updates the projection matrix with new viewport dimensions
func (c *Camera) UpdateProjectionMatrix(width, height int) {
	c.width = width
	c.height = height
	c.updateProjectionMatrix()
}

// ViewMatrix returns the look-at transform for the current position and orientation.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.position, c.position.Add(c.front), c.up)
}

// ProjectionMatrix returns the perspective projection for the current zoom and viewport.
func (c *Camera) ProjectionMatrix() mgl32.Mat4 {
	return c.projection
}

// Zoom returns the vertical field of view in degrees.
func (c *Camera) Zoom() float32 {
	return c.zoom
}

// Position returns the current camera position
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition sets the camera position
func (c *Camera) SetPosition(pos mgl32.Vec3) {
	c.position = pos
}

// Orientation returns the current yaw and pitch in degrees.
func (c *Camera) Orientation() (yaw, pitch float32) {
	return c.yaw, c.pitch
}

// MovementSpeed returns the movement speed in units per second.
func (c *Camera) MovementSpeed() float32 {
	return c.moveSpeed
}

// Sensitivity returns the mouse sensitivity in degrees per input unit.
func (c *Camera) Sensitivity() float32 {
	return c.sensitivity
}

// Front returns the camera's front direction vector
func (c *Camera) Front() mgl32.Vec3 {
	return c.front
}

// Right returns the camera's right direction vector
func (c *Camera) Right() mgl32.Vec3 {
	return c.right
}

// Up returns the camera's up direction vector
func (c *Camera) Up() mgl32.Vec3 {
	return c.up
}

// WorldUp returns the fixed world-up reference vector.
func (c *Camera) WorldUp() mgl32.Vec3 {
	return c.worldUp
}

// SetRotation sets the camera rotation angles, clamping pitch.
func (c *Camera) SetRotation(yaw, pitch float32) {
	c.yaw = yaw
	c.pitch = clampPitch(pitch)
	c.updateCameraVectors()
}

// LookAt turns the camera towards target. It does nothing when target equals the position.
func (c *Camera) LookAt(target mgl32.Vec3) {
	direction := target.Sub(c.position)
	if direction.Len() == 0 {
		return
	}
	direction = direction.Normalize()

	c.yaw = mgl32.RadToDeg(math32.Atan2(direction.Z(), direction.X()))
	c.pitch = clampPitch(mgl32.RadToDeg(math32.Asin(direction.Y())))

	c.updateCameraVectors()
}

// ProcessMouseMovement applies a mouse offset to yaw and pitch.
// Offsets are scaled by the sensitivity; with constrainPitch the pitch
// saturates at [MinPitch, MaxPitch] so the view never flips over the poles.
func (c *Camera) ProcessMouseMovement(xoffset, yoffset float32, constrainPitch bool) {
	xoffset *= c.sensitivity
	yoffset *= c.sensitivity

	c.yaw += xoffset
	c.pitch += yoffset

	if constrainPitch {
		c.pitch = clampPitch(c.pitch)
	}

	c.updateCameraVectors()
}

// ProcessMouseScroll narrows or widens the field of view, saturating at [MinZoom, MaxZoom].
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.zoom = clampZoom(c.zoom - yoffset)
	c.updateProjectionMatrix()
}

func clampPitch(pitch float32) float32 {
	return mgl32.Clamp(pitch, MinPitch, MaxPitch)
}

func clampZoom(zoom float32) float32 {
	return mgl32.Clamp(zoom, MinZoom, MaxZoom)
}
