package clock

import (
	"log/slog"
	"time"
)

// Stats counts frames and periodically logs the frame rate.
type Stats struct {
	logger     *slog.Logger
	interval   float64
	frameCount int
	windowTime float64
}

// NewStats creates a reporter that logs once per interval of accumulated frame time.
// A non-positive interval defaults to one second.
func NewStats(logger *slog.Logger, interval time.Duration) *Stats {
	if interval <= 0 {
		interval = time.Second
	}
	return &Stats{
		logger:   logger,
		interval: interval.Seconds(),
	}
}

// Record adds one frame of length delta seconds.
// It returns true when the frame closed a reporting window and stats were logged.
func (s *Stats) Record(delta float32) bool {
	s.frameCount++
	s.windowTime += float64(delta)

	if s.windowTime < s.interval {
		return false
	}

	fps := float64(s.frameCount) / s.windowTime
	frameMS := s.windowTime / float64(s.frameCount) * 1000

	s.logger.Debug("frame stats",
		slog.Float64("fps", fps),
		slog.Float64("frame_ms", frameMS),
		slog.Int("frames", s.frameCount),
	)

	s.frameCount = 0
	s.windowTime = 0
	return true
}
