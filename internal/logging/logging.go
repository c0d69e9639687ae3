// Package logging provides the named, level-colored loggers used across the application.
//
// Lines look like
//
//	[15:04:05] FUTURA: window created width=800 height=600
//
// and are colored by level when the output is a terminal.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// Logger names.
const (
	CoreName   = "FUTURA"
	ClientName = "APP"
)

// Options configures a Handler.
type Options struct {
	// Level is the minimum enabled level. Nil means slog.LevelInfo.
	Level slog.Leveler
	// Color enables ANSI colors when the writer supports them.
	Color bool
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Handler is a slog.Handler writing one colored line per record.
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	out    *termenv.Output
	name   string
	level  slog.Leveler
	now    func() time.Time
	attrs  []slog.Attr
	groups []string
}

var _ slog.Handler = (*Handler)(nil)

// NewHandler creates a handler writing records for the logger called name to w.
func NewHandler(w io.Writer, name string, opts Options) *Handler {
	var out *termenv.Output
	if opts.Color {
		out = termenv.NewOutput(w)
	} else {
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}

	level := opts.Level
	if level == nil {
		level = slog.LevelInfo
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Handler{
		mu:    &sync.Mutex{},
		w:     w,
		out:   out,
		name:  name,
		level: level,
		now:   now,
	}
}

// New returns a logger called name writing to w.
func New(w io.Writer, name string, opts Options) *slog.Logger {
	return slog.New(NewHandler(w, name, opts))
}

// Loggers returns the core engine logger and the client application logger.
func Loggers(w io.Writer, opts Options) (core, client *slog.Logger) {
	return New(w, CoreName, opts), New(w, ClientName, opts)
}

// ParseLevel converts a configuration level name to a slog level.
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle implements slog.Handler.
func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	t := r.Time
	if t.IsZero() {
		t = h.now()
	}

	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(t.Format(time.TimeOnly))
	sb.WriteString("] ")
	sb.WriteString(h.name)
	sb.WriteString(": ")
	sb.WriteString(r.Message)

	prefix := h.groupPrefix()
	for _, a := range h.attrs {
		writeAttr(&sb, "", a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&sb, prefix, a)
		return true
	})

	line := h.out.String(sb.String()).Foreground(h.levelColor(r.Level)).String()

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.w, line+"\n")
	return err
}

// WithAttrs implements slog.Handler.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	nh := *h
	nh.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	nh.attrs = append(nh.attrs, h.attrs...)
	prefix := h.groupPrefix()
	for _, a := range attrs {
		a.Key = prefix + a.Key
		nh.attrs = append(nh.attrs, a)
	}
	return &nh
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	nh := *h
	nh.groups = append(append([]string(nil), h.groups...), name)
	return &nh
}

func (h *Handler) groupPrefix() string {
	if len(h.groups) == 0 {
		return ""
	}
	return strings.Join(h.groups, ".") + "."
}

func (h *Handler) levelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return h.out.Color("1") // red
	case level >= slog.LevelWarn:
		return h.out.Color("3") // yellow
	case level >= slog.LevelInfo:
		return h.out.Color("2") // green
	default:
		return h.out.Color("6") // cyan
	}
}

func writeAttr(sb *strings.Builder, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range group {
			writeAttr(sb, prefix, ga)
		}
		return
	}

	sb.WriteString(" ")
	sb.WriteString(prefix)
	sb.WriteString(a.Key)
	sb.WriteString("=")
	v := a.Value.String()
	if strings.ContainsAny(v, " \t\"=") {
		v = fmt.Sprintf("%q", v)
	}
	sb.WriteString(v)
}
