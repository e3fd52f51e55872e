package draw

import (
	"log/slog"
	"os"
)

// drawLogLevel controls the level of the package logger.
// Default is LevelInfo; SetVerbose(true) lowers it to LevelDebug.
var drawLogLevel = new(slog.LevelVar)

// drawLogger is the default logger for registry and renderer events.
var drawLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: drawLogLevel}))

// SetVerbose enables or disables debug logging for the draw package.
// Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		drawLogLevel.Set(slog.LevelDebug)
	} else {
		drawLogLevel.Set(slog.LevelInfo)
	}
}
