package clock

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeSource returns the given times in order, repeating the last one.
func fakeSource(times ...float64) Source {
	i := 0
	return func() float64 {
		t := times[i]
		if i < len(times)-1 {
			i++
		}
		return t
	}
}

func TestTick(t *testing.T) {
	c := New(fakeSource(1.0, 1.5, 1.75, 2.75))

	assert.InDelta(t, 0.5, c.Tick(), 1e-6)
	assert.InDelta(t, 0.25, c.Tick(), 1e-6)
	assert.InDelta(t, 1.0, c.Tick(), 1e-6)
	assert.InDelta(t, 1.0, c.Delta(), 1e-6)
	assert.InDelta(t, 1.75, c.Elapsed(), 1e-9)
	assert.Equal(t, uint64(3), c.Frames())
}

func TestTickNeverNegative(t *testing.T) {
	c := New(fakeSource(5, 4))

	assert.Equal(t, float32(0), c.Tick())
}

func TestTickRepeatedTime(t *testing.T) {
	c := New(fakeSource(2))

	assert.Equal(t, float32(0), c.Tick())
	assert.Equal(t, float32(0), c.Tick())
}

func TestStatsRecord(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	s := NewStats(logger, time.Second)

	for i := 0; i < 59; i++ {
		assert.False(t, s.Record(1.0/60))
	}
	assert.Empty(t, buf.String())

	assert.True(t, s.Record(1.0/60+0.001))
	assert.Contains(t, buf.String(), "frame stats")
	assert.Contains(t, buf.String(), "frames=60")

	assert.False(t, s.Record(0.1), "window restarts after reporting")
}

func TestStatsDefaultInterval(t *testing.T) {
	s := NewStats(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), 0)

	assert.Equal(t, 1.0, s.interval)
}
