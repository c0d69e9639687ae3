// Package clock measures frame timing so movement can be scaled by elapsed time.
package clock

// Source returns a monotonically increasing time in seconds, such as glfw.GetTime.
type Source func() float64

// FrameClock tracks the time elapsed between frames.
type FrameClock struct {
	source    Source
	start     float64
	lastFrame float64
	delta     float32
	frames    uint64
}

// New creates a frame clock. The first Tick measures from this call.
func New(source Source) *FrameClock {
	now := source()
	return &FrameClock{
		source:    source,
		start:     now,
		lastFrame: now,
	}
}

// Tick advances the clock by one frame and returns the delta time in seconds.
// A source that goes backwards yields a zero delta rather than a negative one.
func (c *FrameClock) Tick() float32 {
	now := c.source()
	delta := now - c.lastFrame
	if delta < 0 {
		delta = 0
	}
	c.delta = float32(delta)
	c.lastFrame = now
	c.frames++
	return c.delta
}

// Delta returns the delta time computed by the last Tick.
func (c *FrameClock) Delta() float32 {
	return c.delta
}

// Elapsed returns the seconds between construction and the last Tick.
func (c *FrameClock) Elapsed() float64 {
	return c.lastFrame - c.start
}

// Frames returns the number of ticks so far.
func (c *FrameClock) Frames() uint64 {
	return c.frames
}
