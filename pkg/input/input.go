// Package input maps per-frame keyboard, mouse and scroll state onto the camera.
package input

import (
	"github.com/futura-engine/futura/pkg/camera"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// GroundHeight is the fixed vertical position keyboard movement snaps to.
const GroundHeight = 0.0

// Direction is a keyboard movement direction.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// KeyReader is the window state the dispatcher polls each frame.
type KeyReader interface {
	GetKeyState(key glfw.Key) glfw.Action
	SetShouldClose(value bool)
}

// ProcessKeyboard moves the camera along its front or right vector by
// MovementSpeed * deltaTime, then pins the vertical component to GroundHeight
// so the camera walks on a plane instead of flying.
func ProcessKeyboard(cam *camera.Camera, direction Direction, deltaTime float32) {
	velocity := cam.MovementSpeed() * deltaTime
	position := cam.Position()

	switch direction {
	case Forward:
		position = position.Add(cam.Front().Mul(velocity))
	case Backward:
		position = position.Sub(cam.Front().Mul(velocity))
	case Left:
		position = position.Sub(cam.Right().Mul(velocity))
	case Right:
		position = position.Add(cam.Right().Mul(velocity))
	}

	position[1] = GroundHeight
	cam.SetPosition(position)
}

// Scroll forwards a vertical scroll offset to the camera zoom.
func Scroll(cam *camera.Camera, yoffset float64) {
	cam.ProcessMouseScroll(float32(yoffset))
}

// MouseTracker turns absolute cursor positions into look offsets.
// The first sample after construction or Reset only records a baseline.
type MouseTracker struct {
	lastX      float32
	lastY      float32
	firstMouse bool
}

// NewMouseTracker returns a tracker waiting for its first sample.
func NewMouseTracker() *MouseTracker {
	return &MouseTracker{firstMouse: true}
}

// Move handles a cursor position. Screen Y grows downwards, so the Y offset is
// inverted before it reaches the camera.
func (m *MouseTracker) Move(cam *camera.Camera, xpos, ypos float64) {
	x := float32(xpos)
	y := float32(ypos)

	if m.firstMouse {
		m.lastX = x
		m.lastY = y
		m.firstMouse = false
		return
	}

	xoffset := x - m.lastX
	yoffset := m.lastY - y

	m.lastX = x
	m.lastY = y

	cam.ProcessMouseMovement(xoffset, yoffset, true)
}

// Reset makes the next sample a baseline again, e.g. after mouse capture is re-enabled.
func (m *MouseTracker) Reset() {
	m.firstMouse = true
}

// Dispatcher owns the key bindings and mouse state for one camera.
type Dispatcher struct {
	bindings Bindings
	mouse    *MouseTracker
}

// NewDispatcher creates a dispatcher with the given bindings.
func NewDispatcher(bindings Bindings) *Dispatcher {
	return &Dispatcher{
		bindings: bindings,
		mouse:    NewMouseTracker(),
	}
}

// Bindings returns the active key bindings.
func (d *Dispatcher) Bindings() Bindings {
	return d.bindings
}

// Mouse returns the dispatcher's mouse tracker.
func (d *Dispatcher) Mouse() *MouseTracker {
	return d.mouse
}

// Process polls the window once per frame. The quit key requests a close and
// each held movement key moves the camera once. Held keys add up, so diagonal
// movement is not normalized.
func (d *Dispatcher) Process(window KeyReader, cam *camera.Camera, deltaTime float32) {
	if window.GetKeyState(d.bindings.Quit) == Press {
		window.SetShouldClose(true)
	}

	if window.GetKeyState(d.bindings.Forward) == Press {
		ProcessKeyboard(cam, Forward, deltaTime)
	}
	if window.GetKeyState(d.bindings.Backward) == Press {
		ProcessKeyboard(cam, Backward, deltaTime)
	}
	if window.GetKeyState(d.bindings.Left) == Press {
		ProcessKeyboard(cam, Left, deltaTime)
	}
	if window.GetKeyState(d.bindings.Right) == Press {
		ProcessKeyboard(cam, Right, deltaTime)
	}
}

// CursorMoved forwards a cursor position to the mouse tracker.
func (d *Dispatcher) CursorMoved(cam *camera.Camera, xpos, ypos float64) {
	d.mouse.Move(cam, xpos, ypos)
}

// Scrolled forwards a scroll offset to the camera.
func (d *Dispatcher) Scrolled(cam *camera.Camera, yoffset float64) {
	Scroll(cam, yoffset)
}
