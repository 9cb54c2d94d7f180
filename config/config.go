// Package config provides configuration loading and access for the scene.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all scene configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Camera    CameraConfig    `yaml:"camera"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
	Objects   []ObjectConfig  `yaml:"objects"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// Vec3 is a YAML-friendly 3-vector.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// R3 converts to a gonum vector.
func (v Vec3) R3() r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// FromR3 converts a gonum vector.
func FromR3(v r3.Vec) Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// CameraConfig holds the 3D viewer camera.
type CameraConfig struct {
	Position Vec3    `yaml:"position"`
	Target   Vec3    `yaml:"target"`
	Fovy     float64 `yaml:"fovy"`
}

// PhysicsConfig holds fixed-timestep parameters.
type PhysicsConfig struct {
	DT               float64 `yaml:"dt"`                  // Fixed timestep in seconds
	MaxStepsPerFrame int     `yaml:"max_steps_per_frame"` // Catch-up cap per rendered frame
}

// SpawnConfig holds the box used to place objects without an explicit position.
type SpawnConfig struct {
	Min Vec3 `yaml:"min"`
	Max Vec3 `yaml:"max"`
}

// TelemetryConfig holds trace output parameters.
type TelemetryConfig struct {
	TraceEvery int `yaml:"trace_every"` // Ticks between trace rows (0 = off)
	LogEvery   int `yaml:"log_every"`   // Ticks between state log lines (0 = off)
}

// ObjectConfig describes one scene object.
type ObjectConfig struct {
	Name      string           `yaml:"name"`
	Parent    string           `yaml:"parent,omitempty"`
	Position  *Vec3            `yaml:"position,omitempty"` // relative to parent; nil = random inside spawn box
	Rotation  *Vec3            `yaml:"rotation,omitempty"` // Euler degrees, applied X then Y then Z
	Layer     int              `yaml:"layer"`
	Disabled  bool             `yaml:"disabled,omitempty"`
	Levitater *LevitaterConfig `yaml:"levitater,omitempty"`
	Spinner   *SpinnerConfig   `yaml:"spinner,omitempty"`
}

// LevitaterConfig holds oscillator settings.
type LevitaterConfig struct {
	Range     float64 `yaml:"range"`     // Distance between lowest and highest point
	Frequency float64 `yaml:"frequency"` // Seconds per full cycle
	Axis      Vec3    `yaml:"axis"`
	DebugDraw bool    `yaml:"debug_draw"`
}

// SpinnerConfig holds rotator settings.
type SpinnerConfig struct {
	Frequency float64 `yaml:"frequency"` // Seconds per full turn
	Axis      Vec3    `yaml:"axis"`
	DebugDraw bool    `yaml:"debug_draw"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ObjectIndex map[string]int // name -> index into Objects
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in file; a user objects list replaces the default one.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.computeDerived()

	return cfg, nil
}

// validate rejects configurations the scene cannot build.
func (c *Config) validate() error {
	if c.Physics.DT <= 0 {
		return fmt.Errorf("physics.dt must be positive, got %g", c.Physics.DT)
	}
	seen := make(map[string]bool, len(c.Objects))
	for i, obj := range c.Objects {
		if obj.Name == "" {
			return fmt.Errorf("objects[%d]: name is required", i)
		}
		if seen[obj.Name] {
			return fmt.Errorf("objects[%d]: duplicate name %q", i, obj.Name)
		}
		seen[obj.Name] = true
	}
	for i, obj := range c.Objects {
		if obj.Parent != "" && !seen[obj.Parent] {
			return fmt.Errorf("objects[%d]: unknown parent %q", i, obj.Parent)
		}
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	if c.Physics.MaxStepsPerFrame <= 0 {
		c.Physics.MaxStepsPerFrame = 5
	}

	c.Derived.ObjectIndex = make(map[string]int, len(c.Objects))
	for i, obj := range c.Objects {
		c.Derived.ObjectIndex[obj.Name] = i
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
