package openglhelper

import (
	"errors"
	"io"
)

// Resources releases GPU objects in reverse order of acquisition.
// Register each object right after creating it and defer Close, so every
// return path releases what was acquired so far.
type Resources struct {
	closers []io.Closer
}

// Add registers c for release.
func (r *Resources) Add(c io.Closer) {
	r.closers = append(r.closers, c)
}

// Track registers v with r and returns it, for use inline with a constructor.
func Track[T io.Closer](r *Resources, v T) T {
	r.Add(v)
	return v
}

// Len returns the number of registered objects.
func (r *Resources) Len() int {
	return len(r.closers)
}

// Close releases everything registered, last first. Each object is closed once;
// later calls only release objects added since.
func (r *Resources) Close() error {
	var errs []error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	r.closers = nil
	return errors.Join(errs...)
}

// Swappable holds a GPU object that is replaced at runtime, such as a reloaded
// shader. Register it with Resources once; it always releases the current value.
type Swappable[T io.Closer] struct {
	current T
}

// NewSwappable wraps v.
func NewSwappable[T io.Closer](v T) *Swappable[T] {
	return &Swappable[T]{current: v}
}

// Get returns the current value.
func (s *Swappable[T]) Get() T {
	return s.current
}

// Swap makes v current and closes the previous value.
func (s *Swappable[T]) Swap(v T) error {
	old := s.current
	s.current = v
	return old.Close()
}

// Close releases the current value.
func (s *Swappable[T]) Close() error {
	return s.current.Close()
}
