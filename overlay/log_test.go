package overlay

import (
	"context"
	"log/slog"
	"testing"

	"github.com/WaxieDLL/OpenGLPlayground/draw"
)

func TestDefaultLoggerFollowsVerbose(t *testing.T) {
	p := New(draw.NewRegistry())
	if p.logger != overlayLogger {
		t.Fatal("panel does not default to the package logger")
	}

	SetVerbose(true)
	defer SetVerbose(false)
	if !p.logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug disabled after SetVerbose(true)")
	}

	SetVerbose(false)
	if p.logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug enabled after SetVerbose(false)")
	}
}

func TestWithLoggerNilKeepsDefault(t *testing.T) {
	p := New(draw.NewRegistry(), WithLogger(nil))
	if p.logger != overlayLogger {
		t.Error("WithLogger(nil) replaced the package logger")
	}
}
