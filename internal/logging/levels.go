package logging

import (
	"log/slog"
)

// Custom levels on top of the slog defaults.
const (
	// LevelTrace is more detailed than Debug. It is used for AI prompts and
	// raw responses.
	LevelTrace = slog.Level(-8)

	// LevelSuccess sits between Info and Warn and marks completed conversions.
	LevelSuccess = slog.Level(2)
)

// LevelFromVerbosity maps a -v count to a level.
// 0 is Info, 1 is Debug, 2 and above is Trace. Negative values map to Info.
func LevelFromVerbosity(v int) slog.Level {
	switch {
	case v <= 0:
		return slog.LevelInfo
	case v == 1:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// LevelName returns the display name for level, including the custom
// TRACE and SUCCESS levels.
func LevelName(level slog.Level) string {
	switch level {
	case LevelTrace:
		return "TRACE"
	case LevelSuccess:
		return "SUCCESS"
	}
	return level.String()
}

// ReplaceLevelAttr is a slog.HandlerOptions.ReplaceAttr function that renders
// custom level names in the built-in handlers.
func ReplaceLevelAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		if level, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(LevelName(level))
		}
	}
	return a
}
