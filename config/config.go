// Package config holds the playground's startup settings.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// EnvPrefix prefixes every environment override, e.g. PLAYGROUND_WIDTH.
const EnvPrefix = "PLAYGROUND_"

// Config is the window, context and shader setup.
type Config struct {
	Width, Height int
	Title         string
	VSync         bool

	GLMajor, GLMinor int

	// ClearColor is RGBA in [0,1].
	ClearColor [4]float32

	// Shader source paths. Both empty selects the embedded shaders.
	VertexShader   string
	FragmentShader string

	Verbose bool
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Width:      1280,
		Height:     720,
		Title:      "OpenGL Playground",
		GLMajor:    4,
		GLMinor:    1,
		ClearColor: [4]float32{0, 0, 0, 1},
	}
}

// Parse builds a Config from defaults, then environment overrides, then
// command line flags, so a flag wins over its environment variable. lookup
// is usually os.LookupEnv.
func Parse(name string, args []string, lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(lookup); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "window width in pixels")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "window height in pixels")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	fs.BoolVar(&cfg.VSync, "vsync", cfg.VSync, "wait for vertical sync")
	fs.StringVar(&cfg.VertexShader, "vertex-shader", cfg.VertexShader, "vertex shader path (default embedded)")
	fs.StringVar(&cfg.FragmentShader, "fragment-shader", cfg.FragmentShader, "fragment shader path (default embedded)")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "enable debug logging")
	fs.Func("gl", "OpenGL core profile version as major.minor (default 4.1)", func(s string) error {
		return cfg.setGLVersion(s)
	})
	fs.Func("clear", "clear color as r,g,b,a in [0,1]", func(s string) error {
		c, err := parseColor(s)
		if err != nil {
			return err
		}
		cfg.ClearColor = c
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// FromOS parses os.Args and the process environment.
func FromOS() (Config, error) {
	return Parse(os.Args[0], os.Args[1:], os.LookupEnv)
}

// Validate reports settings the window cannot be created with.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if (c.VertexShader == "") != (c.FragmentShader == "") {
		errs = append(errs, errors.New("vertex and fragment shader paths must be set together"))
	}
	if c.GLMajor < 3 || (c.GLMajor == 3 && c.GLMinor < 3) {
		errs = append(errs, fmt.Errorf("OpenGL %d.%d is below the 3.3 core profile", c.GLMajor, c.GLMinor))
	}
	return errors.Join(errs...)
}

// EmbeddedShaders reports whether the built-in shader sources are used.
func (c Config) EmbeddedShaders() bool {
	return c.VertexShader == "" && c.FragmentShader == ""
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		return nil
	}
	get := func(key string) (string, bool) {
		return lookup(EnvPrefix + key)
	}

	if v, ok := get("WIDTH"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sWIDTH: %w", EnvPrefix, err)
		}
		c.Width = n
	}
	if v, ok := get("HEIGHT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sHEIGHT: %w", EnvPrefix, err)
		}
		c.Height = n
	}
	if v, ok := get("TITLE"); ok {
		c.Title = v
	}
	if v, ok := get("VSYNC"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sVSYNC: %w", EnvPrefix, err)
		}
		c.VSync = b
	}
	if v, ok := get("VERBOSE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sVERBOSE: %w", EnvPrefix, err)
		}
		c.Verbose = b
	}
	if v, ok := get("VERTEX_SHADER"); ok {
		c.VertexShader = v
	}
	if v, ok := get("FRAGMENT_SHADER"); ok {
		c.FragmentShader = v
	}
	if v, ok := get("GL"); ok {
		if err := c.setGLVersion(v); err != nil {
			return fmt.Errorf("%sGL: %w", EnvPrefix, err)
		}
	}
	if v, ok := get("CLEAR"); ok {
		col, err := parseColor(v)
		if err != nil {
			return fmt.Errorf("%sCLEAR: %w", EnvPrefix, err)
		}
		c.ClearColor = col
	}
	return nil
}

func (c *Config) setGLVersion(s string) error {
	major, minor, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return fmt.Errorf("GL version %q: want major.minor", s)
	}
	maj, err := strconv.Atoi(major)
	if err != nil {
		return fmt.Errorf("GL version %q: %w", s, err)
	}
	mnr, err := strconv.Atoi(minor)
	if err != nil {
		return fmt.Errorf("GL version %q: %w", s, err)
	}
	c.GLMajor, c.GLMinor = maj, mnr
	return nil
}

func parseColor(s string) ([4]float32, error) {
	var c [4]float32
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return c, fmt.Errorf("color %q: want 4 comma separated values", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return c, fmt.Errorf("color %q: %w", s, err)
		}
		if f < 0 || f > 1 {
			return c, fmt.Errorf("color %q: component %d out of [0,1]", s, i)
		}
		c[i] = float32(f)
	}
	return c, nil
}
