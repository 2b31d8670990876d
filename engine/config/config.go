// Package config loads the sandbox configuration from YAML or TOML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/hubastard/groveinput/engine/core"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Backends accepted in window.backend.
const (
	BackendGLFW = "glfw"
	BackendSDL  = "sdl"
)

type File struct {
	Window   WindowConfig       `yaml:"window" toml:"window"`
	Logging  LoggingConfig      `yaml:"logging" toml:"logging"`
	Input    InputConfig        `yaml:"input" toml:"input"`
	Bindings map[string]Binding `yaml:"bindings" toml:"bindings"`
}

type WindowConfig struct {
	Title         string     `yaml:"title" toml:"title"`
	Width         int        `yaml:"width" toml:"width"`
	Height        int        `yaml:"height" toml:"height"`
	VSync         bool       `yaml:"vsync" toml:"vsync"`
	Backend       string     `yaml:"backend" toml:"backend"`
	CaptureCursor bool       `yaml:"capture_cursor" toml:"capture_cursor"`
	ClearColor    [4]float32 `yaml:"clear_color" toml:"clear_color"`
}

type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
}

type InputConfig struct {
	// Radians of rotation per pixel of mouse motion.
	MouseSensitivity float64 `yaml:"mouse_sensitivity" toml:"mouse_sensitivity"`
	InvertY          bool    `yaml:"invert_y" toml:"invert_y"`
}

// Binding names a key and the minimum seconds between two triggers when
// the key is held. A zero cooldown fires on every query while held.
type Binding struct {
	Key      string  `yaml:"key" toml:"key"`
	Cooldown float64 `yaml:"cooldown" toml:"cooldown"`
}

// Resolve returns the engine key for b.
func (b Binding) Resolve() (core.Key, error) { return core.ParseKey(b.Key) }

// Default returns the configuration used when no file is given. Loaded
// files are decoded on top of it.
func Default() *File {
	return &File{
		Window: WindowConfig{
			Title:      "grove input sandbox",
			Width:      1600,
			Height:     1200,
			VSync:      true,
			Backend:    BackendGLFW,
			ClearColor: [4]float32{0.3, 0.6, 0.3, 1},
		},
		Logging: LoggingConfig{Level: "info"},
		Input:   InputConfig{MouseSensitivity: 0.005},
		Bindings: map[string]Binding{
			"cycle_tint":     {Key: "space", Cooldown: 0.25},
			"red_up":         {Key: "r", Cooldown: 0.05},
			"green_up":       {Key: "g", Cooldown: 0.05},
			"blue_up":        {Key: "b", Cooldown: 0.05},
			"grow":           {Key: "e", Cooldown: 0.1},
			"shrink":         {Key: "q", Cooldown: 0.1},
			"toggle_capture": {Key: "c", Cooldown: 0.3},
			"toggle_stats":   {Key: "f1", Cooldown: 0.3},
			"quit":           {Key: "escape", Cooldown: 0.5},
		},
	}
}

// Load reads path, picking the decoder from its extension.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %q: %w", path, err)
	}
	cfg, err := Parse(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("load config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes data as YAML (".yaml", ".yml") or TOML (".toml") over the
// defaults and validates the result. Bindings in data replace the default
// binding of the same name; the rest are kept.
func Parse(data []byte, ext string) (*File, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported extension %q", ErrInvalid, ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every problem found, joined.
func (f *File) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if f.Window.Width <= 0 || f.Window.Height <= 0 {
		bad("window size %dx%d", f.Window.Width, f.Window.Height)
	}
	switch f.Window.Backend {
	case BackendGLFW, BackendSDL:
	default:
		bad("window.backend %q (want %q or %q)", f.Window.Backend, BackendGLFW, BackendSDL)
	}
	for i, c := range f.Window.ClearColor {
		if c < 0 || c > 1 {
			bad("window.clear_color[%d] = %v out of [0,1]", i, c)
		}
	}
	switch f.Logging.Level {
	case "debug", "info", "warn", "error", "fatal", "disable":
	default:
		bad("logging.level %q", f.Logging.Level)
	}
	if f.Input.MouseSensitivity < 0 {
		bad("input.mouse_sensitivity %v is negative", f.Input.MouseSensitivity)
	}
	for _, name := range f.BindingNames() {
		b := f.Bindings[name]
		if _, err := b.Resolve(); err != nil {
			bad("binding %q: %v", name, err)
		}
		if b.Cooldown < 0 {
			bad("binding %q: negative cooldown %v", name, b.Cooldown)
		}
	}
	return errors.Join(errs...)
}

// BindingNames returns the binding names in a stable order.
func (f *File) BindingNames() []string {
	names := make([]string, 0, len(f.Bindings))
	for name := range f.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// EngineConfig maps the window section onto core.Config.
func (f *File) EngineConfig() core.Config {
	return core.Config{
		Title:         f.Window.Title,
		Width:         f.Window.Width,
		Height:        f.Window.Height,
		VSync:         f.Window.VSync,
		CaptureCursor: f.Window.CaptureCursor,
		ClearColor:    f.Window.ClearColor,
	}
}
