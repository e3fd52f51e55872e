package overlay

import (
	"log/slog"
	"os"
)

// overlayLogLevel controls the level of the package logger.
var overlayLogLevel = new(slog.LevelVar)

// overlayLogger is the default panel logger; WithLogger replaces it per panel.
var overlayLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: overlayLogLevel}))

// SetVerbose enables or disables debug logging for the panel.
func SetVerbose(v bool) {
	if v {
		overlayLogLevel.Set(slog.LevelDebug)
	} else {
		overlayLogLevel.Set(slog.LevelInfo)
	}
}
