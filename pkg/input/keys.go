package input

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Key constants for keyboard input
const (
	KeyW      = glfw.KeyW
	KeyA      = glfw.KeyA
	KeyS      = glfw.KeyS
	KeyD      = glfw.KeyD
	KeyC      = glfw.KeyC
	KeyEscape = glfw.KeyEscape
)

// Action constants for key states
const (
	Press   = glfw.Press
	Release = glfw.Release
	Repeat  = glfw.Repeat
)

// Bindings maps camera actions to keys.
type Bindings struct {
	Forward       glfw.Key
	Backward      glfw.Key
	Left          glfw.Key
	Right         glfw.Key
	Quit          glfw.Key
	ToggleCapture glfw.Key
}

// DefaultBindings returns WASD movement, Escape to quit and C to toggle mouse capture.
func DefaultBindings() Bindings {
	return Bindings{
		Forward:       KeyW,
		Backward:      KeyS,
		Left:          KeyA,
		Right:         KeyD,
		Quit:          KeyEscape,
		ToggleCapture: KeyC,
	}
}
