package openglhelper

import (
	"context"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.6-core/gl"
)

// Driver message ids that are noise: buffer usage hints, redundant state
// changes, shader recompiles and generic performance notes.
var ignoredDebugIDs = map[uint32]bool{
	131169: true,
	131185: true,
	131218: true,
	131204: true,
}

func shouldReportDebug(id, gltype uint32) bool {
	return !ignoredDebugIDs[id] && gltype != gl.DEBUG_TYPE_PERFORMANCE
}

func debugSourceName(source uint32) string {
	switch source {
	case gl.DEBUG_SOURCE_API:
		return "api"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "window system"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "shader compiler"
	case gl.DEBUG_SOURCE_THIRD_PARTY:
		return "third party"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "application"
	default:
		return "other"
	}
}

func debugTypeName(gltype uint32) string {
	switch gltype {
	case gl.DEBUG_TYPE_ERROR:
		return "error"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "deprecated behavior"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "undefined behavior"
	case gl.DEBUG_TYPE_PORTABILITY:
		return "portability"
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "performance"
	case gl.DEBUG_TYPE_MARKER:
		return "marker"
	case gl.DEBUG_TYPE_PUSH_GROUP:
		return "push group"
	case gl.DEBUG_TYPE_POP_GROUP:
		return "pop group"
	default:
		return "other"
	}
}

// debugLevel maps a GL severity onto a log level.
func debugLevel(severity uint32) slog.Level {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		return slog.LevelError
	case gl.DEBUG_SEVERITY_MEDIUM:
		return slog.LevelWarn
	case gl.DEBUG_SEVERITY_LOW:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

func logDebugMessage(logger *slog.Logger, source, gltype, id, severity uint32, message string) {
	if !shouldReportDebug(id, gltype) {
		return
	}
	logger.Log(context.Background(), debugLevel(severity), message,
		slog.Uint64("id", uint64(id)),
		slog.String("source", debugSourceName(source)),
		slog.String("type", debugTypeName(gltype)),
	)
}

// EnableDebugOutput routes GL debug messages to logger. It needs a current
// context, ideally created with WindowOptions.DebugContext.
func EnableDebugOutput(logger *slog.Logger) {
	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(func(source, gltype, id, severity uint32, _ int32, message string, _ unsafe.Pointer) {
		logDebugMessage(logger, source, gltype, id, severity, message)
	}, nil)
	gl.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, 0, nil, true)
}
