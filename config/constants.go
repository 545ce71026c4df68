// Package config holds the engine's constant table. The table is embedded
// into the binary and decoded once; nothing is read from the environment.
package config

import (
	_ "embed"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

//go:embed laios.toml
var embedded string

// Window describes the single window the engine opens.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Application is the identity reported to the Vulkan driver.
// Versions are major, minor, patch triples.
type Application struct {
	Name          string    `toml:"name"`
	EngineName    string    `toml:"engine_name"`
	Version       [3]uint32 `toml:"version"`
	EngineVersion [3]uint32 `toml:"engine_version"`
	APIVersion    [3]uint32 `toml:"api_version"`
}

type Validation struct {
	Enabled bool     `toml:"enabled"`
	Layers  []string `toml:"layers"`
}

type Device struct {
	Extensions []string `toml:"extensions"`
}

// Constants is the full constant surface of the engine.
type Constants struct {
	Window      Window      `toml:"window"`
	Application Application `toml:"application"`
	Validation  Validation  `toml:"validation"`
	Device      Device      `toml:"device"`

	// MaxFramesInFlight and PaintFPSCounter are reserved for the renderer.
	MaxFramesInFlight int    `toml:"max_frames_in_flight"`
	PaintFPSCounter   bool   `toml:"paint_fps_counter"`
	LogLevel          string `toml:"log_level"`
}

var (
	loadOnce sync.Once
	loaded   Constants
	loadErr  error
)

// Load decodes the embedded table. The result is cached; every call returns
// a fresh copy so callers may modify it freely.
func Load() (Constants, error) {
	loadOnce.Do(func() {
		loaded, loadErr = Parse(embedded)
	})
	if loadErr != nil {
		return Constants{}, loadErr
	}
	return loaded.clone(), nil
}

// Default is Load for callers that cannot handle an error. It panics if the
// embedded table is malformed.
func Default() Constants {
	c, err := Load()
	if err != nil {
		panic(err)
	}
	return c
}

// Parse decodes and validates a constant table.
func Parse(data string) (Constants, error) {
	var c Constants
	md, err := toml.Decode(data, &c)
	if err != nil {
		return Constants{}, errors.Wrap(err, "failed to decode constant table")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Constants{}, errors.Errorf("unknown keys in constant table: %s", strings.Join(keys, ", "))
	}
	if err := c.Validate(); err != nil {
		return Constants{}, err
	}
	return c, nil
}

// Validate checks the invariants the rest of the engine relies on.
func (c Constants) Validate() error {
	if c.Window.Title == "" {
		return errors.New("window title must not be empty")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return errors.Errorf("window dimensions must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Validation.Enabled && len(c.Validation.Layers) == 0 {
		return errors.New("validation is enabled but no layers are listed")
	}
	if c.MaxFramesInFlight <= 0 {
		return errors.Errorf("max_frames_in_flight must be positive, got %d", c.MaxFramesInFlight)
	}
	return nil
}

func (c Constants) clone() Constants {
	c.Validation.Layers = append([]string(nil), c.Validation.Layers...)
	c.Device.Extensions = append([]string(nil), c.Device.Extensions...)
	return c
}
