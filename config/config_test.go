package config_test

import (
	"strings"
	"testing"

	"github.com/WaxieDLL/OpenGLPlayground/config"
)

func env(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Parse("playground", nil, nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg != config.Default() {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if !cfg.EmbeddedShaders() {
		t.Error("defaults should use embedded shaders")
	}
	if cfg.Width != 1280 || cfg.Height != 720 || cfg.Title != "OpenGL Playground" {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}

func TestFlagsOverrideEnv(t *testing.T) {
	lookup := env(map[string]string{
		"PLAYGROUND_WIDTH":  "640",
		"PLAYGROUND_HEIGHT": "480",
		"PLAYGROUND_VSYNC":  "true",
		"PLAYGROUND_CLEAR":  "0.1, 0.2, 0.3, 1",
	})
	cfg, err := config.Parse("playground", []string{"-width", "800", "-v"}, lookup)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 800 {
		t.Errorf("Width = %d, want flag value 800", cfg.Width)
	}
	if cfg.Height != 480 {
		t.Errorf("Height = %d, want env value 480", cfg.Height)
	}
	if !cfg.VSync || !cfg.Verbose {
		t.Errorf("VSync=%v Verbose=%v, want true/true", cfg.VSync, cfg.Verbose)
	}
	if cfg.ClearColor != [4]float32{0.1, 0.2, 0.3, 1} {
		t.Errorf("ClearColor = %v", cfg.ClearColor)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		env     map[string]string
		wantErr string
	}{
		{"zero width", []string{"-width", "0"}, nil, "must be positive"},
		{"negative height env", nil, map[string]string{"PLAYGROUND_HEIGHT": "-1"}, "must be positive"},
		{"bad env int", nil, map[string]string{"PLAYGROUND_WIDTH": "wide"}, "PLAYGROUND_WIDTH"},
		{"one shader path", []string{"-vertex-shader", "a.glsl"}, nil, "set together"},
		{"bad clear", []string{"-clear", "1,2"}, nil, "4 comma separated"},
		{"clear out of range", []string{"-clear", "0,0,0,2"}, nil, "out of [0,1]"},
		{"old GL flag", []string{"-gl", "3.2"}, nil, "below the 3.3 core profile"},
		{"old GL env", nil, map[string]string{"PLAYGROUND_GL": "2.1"}, "below the 3.3 core profile"},
		{"bad GL version", []string{"-gl", "four"}, nil, "want major.minor"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse("playground", tt.args, env(tt.env))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestGLVersion(t *testing.T) {
	cfg, err := config.Parse("playground", nil, env(map[string]string{"PLAYGROUND_GL": "3.3"}))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.GLMajor != 3 || cfg.GLMinor != 3 {
		t.Errorf("env GL = %d.%d, want 3.3", cfg.GLMajor, cfg.GLMinor)
	}

	cfg, err = config.Parse("playground", []string{"-gl", "4.6"}, env(map[string]string{"PLAYGROUND_GL": "3.3"}))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.GLMajor != 4 || cfg.GLMinor != 6 {
		t.Errorf("flag GL = %d.%d, want 4.6 over env", cfg.GLMajor, cfg.GLMinor)
	}
}

func TestValidateGLVersion(t *testing.T) {
	cfg := config.Default()
	cfg.GLMajor, cfg.GLMinor = 3, 2
	if err := cfg.Validate(); err == nil {
		t.Error("GL 3.2 accepted")
	}
	cfg.GLMinor = 3
	if err := cfg.Validate(); err != nil {
		t.Errorf("GL 3.3 rejected: %v", err)
	}
}
