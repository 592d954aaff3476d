// Package config loads session settings from TOML with command line overrides
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/maze-walk/asset"
	"github.com/lixenwraith/maze-walk/input"
	"github.com/lixenwraith/maze-walk/maze"
	"github.com/lixenwraith/maze-walk/navigation"
	"github.com/lixenwraith/maze-walk/parameter"
)

// ErrInvalidConfig marks a setting outside its accepted range
var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	Level        string `toml:"level"`
	Mesh         string `toml:"mesh"`
	GrassDensity int    `toml:"grass_density"`
	Seed         int64  `toml:"seed"`
	Debug        bool   `toml:"debug"`

	Navigation NavigationConfig  `toml:"navigation"`
	Audio      AudioConfig       `toml:"audio"`
	Generate   GenerateConfig    `toml:"generate"`
	Keys       map[string]string `toml:"keys"`
}

type NavigationConfig struct {
	TickMillis      int     `toml:"tick_ms"`
	TurnStepDegrees float32 `toml:"turn_step_degrees"`
	MoveSpeed       float32 `toml:"move_speed"`
	ProbeRadius     float32 `toml:"probe_radius"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type GenerateConfig struct {
	Enabled  bool    `toml:"enabled"`
	Width    int     `toml:"width"`
	Height   int     `toml:"height"`
	Braiding float64 `toml:"braiding"`
}

// Default returns the built-in configuration
func Default() *Config {
	cfg := &Config{}
	if _, err := toml.Decode(asset.DefaultConfig, cfg); err != nil {
		// Built-in text is covered by tests
		panic(fmt.Sprintf("default config: %v", err))
	}
	return cfg
}

// Decode layers TOML text over the defaults. Unknown keys are rejected so
// typos do not silently fall back to defaults.
func Decode(data string) (*Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load layers the TOML file at path over the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%w: unknown keys: %s", ErrInvalidConfig, strings.Join(keys, ", "))
}

// Validate range-checks numeric settings
func (c *Config) Validate() error {
	switch {
	case c.GrassDensity < 0 || c.GrassDensity > parameter.GrassDensityMax:
		return fmt.Errorf("%w: grass_density %d outside [0,%d]", ErrInvalidConfig, c.GrassDensity, parameter.GrassDensityMax)
	case c.Navigation.TickMillis <= 0:
		return fmt.Errorf("%w: navigation.tick_ms must be positive", ErrInvalidConfig)
	case c.Navigation.MoveSpeed <= 0:
		return fmt.Errorf("%w: navigation.move_speed must be positive", ErrInvalidConfig)
	case c.Navigation.TurnStepDegrees <= 0:
		return fmt.Errorf("%w: navigation.turn_step_degrees must be positive", ErrInvalidConfig)
	// A probe reaching past a whole cell would skip walls
	case c.Navigation.ProbeRadius <= 0 || c.Navigation.ProbeRadius >= parameter.CellSize/2:
		return fmt.Errorf("%w: navigation.probe_radius %v outside (0,%v)", ErrInvalidConfig, c.Navigation.ProbeRadius, parameter.CellSize/2)
	case c.Generate.Width < 3 || c.Generate.Height < 3:
		return fmt.Errorf("%w: generate size %dx%d below 3x3", ErrInvalidConfig, c.Generate.Width, c.Generate.Height)
	case c.Generate.Braiding < 0 || c.Generate.Braiding > 1:
		return fmt.Errorf("%w: generate.braiding %v outside [0,1]", ErrInvalidConfig, c.Generate.Braiding)
	}
	if _, err := c.Keymap(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// Keymap returns the default keymap with the [keys] table applied
func (c *Config) Keymap() (input.Keymap, error) {
	override, err := input.ParseKeyBindings(c.Keys)
	if err != nil {
		return nil, err
	}
	return input.MergeKeymap(input.DefaultKeymap(), override), nil
}

// NavigationSettings converts the [navigation] table
func (c *Config) NavigationSettings() navigation.Settings {
	return navigation.Settings{
		TickInterval:    time.Duration(c.Navigation.TickMillis) * time.Millisecond,
		TurnStepDegrees: c.Navigation.TurnStepDegrees,
		MoveSpeed:       c.Navigation.MoveSpeed,
		ProbeRadius:     c.Navigation.ProbeRadius,
	}
}

// GeneratorConfig converts the [generate] table
func (c *Config) GeneratorConfig() maze.GeneratorConfig {
	return maze.GeneratorConfig{
		Width:    c.Generate.Width,
		Height:   c.Generate.Height,
		Braiding: c.Generate.Braiding,
		Seed:     c.Seed,
	}
}

// LoadGrid returns the session maze: generated when [generate] is enabled,
// else the level file, else the built-in level
func (c *Config) LoadGrid() (*maze.Grid, error) {
	switch {
	case c.Generate.Enabled:
		return maze.Generate(c.GeneratorConfig()).Grid, nil
	case c.Level != "":
		return maze.LoadLevelFile(c.Level)
	default:
		return maze.ParseLevel(strings.NewReader(asset.DefaultLevel))
	}
}

// LoadWallMesh returns the wall block mesh: the mesh file if set, else the built-in cube
func (c *Config) LoadWallMesh() (*asset.Mesh, error) {
	if c.Mesh != "" {
		return asset.LoadMeshFile(c.Mesh)
	}
	return asset.ParseMesh(strings.NewReader(asset.DefaultWallMesh))
}

// Parse reads command line flags into a Config: the -config file (or the
// defaults) with any explicitly set flag applied on top
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	var (
		path     = fs.String("config", "", "TOML configuration file")
		level    = fs.String("level", "", "level description file")
		mesh     = fs.String("mesh", "", "wall mesh file (OBJ)")
		seed     = fs.Int64("seed", 0, "random seed, 0 seeds from the clock")
		grass    = fs.Int("grass", parameter.GrassDensity, "grass density per cell side")
		debug    = fs.Bool("debug", false, "enable debug logging")
		generate = fs.Bool("generate", false, "play a generated maze instead of a level file")
		muted    = fs.Bool("mute", false, "start with audio off")
	)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := Default()
	if *path != "" {
		loaded, err := Load(*path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			cfg.Level = *level
		case "mesh":
			cfg.Mesh = *mesh
		case "seed":
			cfg.Seed = *seed
		case "grass":
			cfg.GrassDensity = *grass
		case "debug":
			cfg.Debug = *debug
		case "generate":
			cfg.Generate.Enabled = *generate
		case "mute":
			cfg.Audio.Enabled = !*muted
		}
	})
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
