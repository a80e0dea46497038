package logging

import (
	"io"
	"log/slog"
	"os"
)

// LevelTrace sits below slog.LevelDebug. The engine uses it for per-tick
// control-flow detail that would drown out Debug output.
const LevelTrace = slog.Level(-8)

// New creates a configured application logger.
// It writes to Stderr (to separate from Stdout flow output).
// It standardizes common keys (e.g., "error" -> "err") and renders the
// custom trace level as "TRACE" instead of "DEBUG-4".
func New(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// ParseLevel maps a CLI level string to a slog.Level. Unknown values
// default to Info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
