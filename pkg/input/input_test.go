package input

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/futura-engine/futura/pkg/camera"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

type fakeWindow struct {
	pressed     map[glfw.Key]bool
	shouldClose bool
}

func newFakeWindow(keys ...glfw.Key) *fakeWindow {
	w := &fakeWindow{pressed: make(map[glfw.Key]bool)}
	for _, k := range keys {
		w.pressed[k] = true
	}
	return w
}

func (w *fakeWindow) GetKeyState(key glfw.Key) glfw.Action {
	if w.pressed[key] {
		return Press
	}
	return Release
}

func (w *fakeWindow) SetShouldClose(value bool) {
	w.shouldClose = value
}

func assertVecInDelta(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "component %d of %v vs %v", i, want, got)
	}
}

func TestProcessKeyboardForward(t *testing.T) {
	cam := camera.NewCamera(mgl32.Vec3{0, 0, 3})

	ProcessKeyboard(cam, Forward, 1.0)

	assertVecInDelta(t, mgl32.Vec3{0, 0, 0.5}, cam.Position())
}

func TestProcessKeyboardDirections(t *testing.T) {
	tests := []struct {
		direction Direction
		want      mgl32.Vec3
	}{
		{Forward, mgl32.Vec3{0, 0, -1.25}},
		{Backward, mgl32.Vec3{0, 0, 1.25}},
		{Left, mgl32.Vec3{-1.25, 0, 0}},
		{Right, mgl32.Vec3{1.25, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.direction.String(), func(t *testing.T) {
			cam := camera.NewCamera(mgl32.Vec3{})
			ProcessKeyboard(cam, tt.direction, 0.5)
			assertVecInDelta(t, tt.want, cam.Position())
		})
	}
}

func TestProcessKeyboardPinsToGround(t *testing.T) {
	cam := camera.NewCamera(mgl32.Vec3{1, 7, 1}, camera.WithOrientation(-90, 60))

	for _, d := range []Direction{Forward, Backward, Left, Right} {
		ProcessKeyboard(cam, d, 0.3)
		assert.Equal(t, float32(GroundHeight), cam.Position().Y(), "after %s", d)
	}

	// Looking up and walking forward only advances on the plane.
	cam.SetPosition(mgl32.Vec3{0, 0, 0})
	ProcessKeyboard(cam, Forward, 1.0)
	pos := cam.Position()
	assert.Equal(t, float32(0), pos.Y())
	assert.InDelta(t, -2.5*math32.Cos(mgl32.DegToRad(60)), pos.Z(), tol)
}

func TestProcessKeyboardZeroDelta(t *testing.T) {
	cam := camera.NewCamera(mgl32.Vec3{2, 0, 2})

	ProcessKeyboard(cam, Forward, 0)

	assert.Equal(t, mgl32.Vec3{2, 0, 2}, cam.Position())
}

func TestMouseTrackerFirstSample(t *testing.T) {
	cam := camera.NewCamera(mgl32.Vec3{})
	m := NewMouseTracker()

	m.Move(cam, 400, 300)
	yaw, pitch := cam.Orientation()
	assert.Equal(t, float32(camera.DefaultYaw), yaw)
	assert.Equal(t, float32(camera.DefaultPitch), pitch)

	m.Move(cam, 420, 290)
	yaw, pitch = cam.Orientation()
	assert.InDelta(t, camera.DefaultYaw+20*camera.DefaultSensitivity, yaw, tol)
	assert.InDelta(t, 10*camera.DefaultSensitivity, pitch, tol, "moving the cursor up raises the pitch")
}

func TestMouseTrackerReset(t *testing.T) {
	cam := camera.NewCamera(mgl32.Vec3{})
	m := NewMouseTracker()
	m.Move(cam, 0, 0)
	m.Move(cam, 10, 0)

	before, _ := cam.Orientation()

	// Re-capturing the cursor far away must not produce a jump.
	m.Reset()
	m.Move(cam, 5000, -5000)
	after, pitch := cam.Orientation()
	assert.Equal(t, before, after)
	assert.Equal(t, float32(0), pitch)

	m.Move(cam, 5001, -5000)
	after, _ = cam.Orientation()
	assert.InDelta(t, before+camera.DefaultSensitivity, after, tol)
}

func TestMouseTrackerClampsPitch(t *testing.T) {
	cam := camera.NewCamera(mgl32.Vec3{})
	m := NewMouseTracker()
	m.Move(cam, 0, 0)
	m.Move(cam, 0, -100000)

	_, pitch := cam.Orientation()
	assert.Equal(t, float32(camera.MaxPitch), pitch)
}

func TestScroll(t *testing.T) {
	cam := camera.NewCamera(mgl32.Vec3{})

	Scroll(cam, 10)
	assert.Equal(t, float32(35), cam.Zoom())

	Scroll(cam, 50)
	assert.Equal(t, float32(camera.MinZoom), cam.Zoom())
}

func TestDispatcherQuit(t *testing.T) {
	d := NewDispatcher(DefaultBindings())
	w := newFakeWindow(KeyEscape)

	d.Process(w, camera.NewCamera(mgl32.Vec3{}), 0.016)

	assert.True(t, w.shouldClose)
}

func TestDispatcherNoKeys(t *testing.T) {
	d := NewDispatcher(DefaultBindings())
	w := newFakeWindow()
	cam := camera.NewCamera(mgl32.Vec3{0, 0, 3})

	d.Process(w, cam, 1)

	assert.False(t, w.shouldClose)
	assert.Equal(t, mgl32.Vec3{0, 0, 3}, cam.Position())
}

func TestDispatcherOpposingKeysCancel(t *testing.T) {
	d := NewDispatcher(DefaultBindings())
	cam := camera.NewCamera(mgl32.Vec3{})

	d.Process(newFakeWindow(KeyW, KeyS, KeyA, KeyD), cam, 1)

	assertVecInDelta(t, mgl32.Vec3{}, cam.Position())
}

// Diagonal movement composes two full-speed steps and is sqrt(2) faster than
// moving along a single axis. This is kept as-is.
func TestDispatcherDiagonalIsFaster(t *testing.T) {
	d := NewDispatcher(DefaultBindings())

	straight := camera.NewCamera(mgl32.Vec3{})
	d.Process(newFakeWindow(KeyW), straight, 1)

	diagonal := camera.NewCamera(mgl32.Vec3{})
	d.Process(newFakeWindow(KeyW, KeyD), diagonal, 1)

	assert.InDelta(t, 2.5, straight.Position().Len(), tol)
	assert.InDelta(t, 2.5*math32.Sqrt2, diagonal.Position().Len(), tol)
	assertVecInDelta(t, mgl32.Vec3{2.5, 0, -2.5}, diagonal.Position())
}

func TestDispatcherCustomBindings(t *testing.T) {
	b := DefaultBindings()
	b.Forward = glfw.KeyUp
	d := NewDispatcher(b)
	cam := camera.NewCamera(mgl32.Vec3{})

	d.Process(newFakeWindow(KeyW), cam, 1)
	assert.Equal(t, mgl32.Vec3{}, cam.Position())

	d.Process(newFakeWindow(glfw.KeyUp), cam, 1)
	assertVecInDelta(t, mgl32.Vec3{0, 0, -2.5}, cam.Position())
}

func TestDispatcherForwardsMouseAndScroll(t *testing.T) {
	d := NewDispatcher(DefaultBindings())
	cam := camera.NewCamera(mgl32.Vec3{})

	d.CursorMoved(cam, 100, 100)
	d.CursorMoved(cam, 110, 100)
	yaw, _ := cam.Orientation()
	assert.InDelta(t, -89, yaw, tol)

	d.Scrolled(cam, 5)
	assert.Equal(t, float32(40), cam.Zoom())

	d.Mouse().Reset()
	d.CursorMoved(cam, 0, 0)
	again, _ := cam.Orientation()
	assert.Equal(t, yaw, again)
}
