// Package config loads the TOML settings file layered over built-in defaults
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-voxel/input"
	"github.com/lixenwraith/vi-voxel/parameter"
)

// Config is the full settings tree
type Config struct {
	Timing  TimingConfig  `toml:"timing"`
	World   WorldConfig   `toml:"world"`
	View    ViewConfig    `toml:"view"`
	Logging LoggingConfig `toml:"logging"`

	// Keys maps single characters (or aliases like "space") to action names
	Keys map[string]string `toml:"keys"`
	// SpecialKeys maps named keys ("enter", "up", "ctrl-c") to action names
	SpecialKeys map[string]string `toml:"special_keys"`
}

type TimingConfig struct {
	TickRateHz       float64 `toml:"tick_rate_hz"`
	MaxTicksPerFrame int     `toml:"max_ticks_per_frame"`
	FrameRateCap     int     `toml:"frame_rate_cap"`
	KeyHoldTicks     int     `toml:"key_hold_ticks"`
}

type WorldConfig struct {
	Width    int    `toml:"width"`
	Height   int    `toml:"height"`
	Depth    int    `toml:"depth"`
	Seed     int64  `toml:"seed"` // 0 picks a random seed
	SavePath string `toml:"save_path"`
	Zombies  int    `toml:"zombies"`
	// Materials optionally replaces the built-in material catalog with a YAML file
	Materials string `toml:"materials"`
}

type ViewConfig struct {
	InvertY bool `toml:"invert_y"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`  // empty disables file logging unless debug is set
	Format string `toml:"format"` // "json" or "console"
	Dir    string `toml:"dir"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Timing: TimingConfig{
			TickRateHz:       parameter.TickRateHz,
			MaxTicksPerFrame: parameter.MaxTicksPerFrame,
			FrameRateCap:     parameter.FrameRateCap,
			KeyHoldTicks:     parameter.KeyHoldTicks,
		},
		World: WorldConfig{
			Width:    parameter.WorldWidth,
			Height:   parameter.WorldHeight,
			Depth:    parameter.WorldDepth,
			SavePath: parameter.DefaultSavePath,
			Zombies:  parameter.ZombieCount,
		},
		Logging: LoggingConfig{
			Format: "console",
			Dir:    "logs",
		},
	}
}

// Load reads path over the defaults
// A missing file is not an error; the returned warnings list unknown keys and corrected values
func Load(path string) (*Config, []string, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read config %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	var warnings []string
	for _, k := range md.Undecoded() {
		warnings = append(warnings, fmt.Sprintf("unknown key %q", k.String()))
	}
	warnings = append(warnings, cfg.Validate()...)
	return cfg, warnings, nil
}

// Validate replaces out-of-range values with defaults and reports each replacement
func (c *Config) Validate() []string {
	def := Default()
	var warnings []string
	fix := func(name string, bad bool, reset func()) {
		if bad {
			reset()
			warnings = append(warnings, name+" out of range, using default")
		}
	}

	fix("timing.tick_rate_hz", c.Timing.TickRateHz <= 0, func() { c.Timing.TickRateHz = def.Timing.TickRateHz })
	fix("timing.max_ticks_per_frame", c.Timing.MaxTicksPerFrame <= 0, func() { c.Timing.MaxTicksPerFrame = def.Timing.MaxTicksPerFrame })
	fix("timing.frame_rate_cap", c.Timing.FrameRateCap <= 0, func() { c.Timing.FrameRateCap = def.Timing.FrameRateCap })
	fix("timing.key_hold_ticks", c.Timing.KeyHoldTicks <= 0, func() { c.Timing.KeyHoldTicks = def.Timing.KeyHoldTicks })

	fix("world.width", c.World.Width <= 0, func() { c.World.Width = def.World.Width })
	fix("world.height", c.World.Height <= 0, func() { c.World.Height = def.World.Height })
	fix("world.depth", c.World.Depth <= 0, func() { c.World.Depth = def.World.Depth })
	fix("world.zombies", c.World.Zombies < 0, func() { c.World.Zombies = def.World.Zombies })
	fix("world.save_path", strings.TrimSpace(c.World.SavePath) == "", func() { c.World.SavePath = def.World.SavePath })

	fix("logging.format", !slices.Contains([]string{"json", "console"}, c.Logging.Format), func() { c.Logging.Format = def.Logging.Format })
	fix("logging.dir", c.Logging.Dir == "", func() { c.Logging.Dir = def.Logging.Dir })

	return warnings
}

// KeyTable builds the key bindings: defaults with the configured overrides merged on top
func (c *Config) KeyTable() (*input.KeyTable, error) {
	base := input.DefaultKeyTable()
	if len(c.Keys) == 0 && len(c.SpecialKeys) == 0 {
		return base, nil
	}
	override, err := input.ParseKeyBindings(c.Keys, c.SpecialKeys)
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}
	return input.MergeKeyTable(base, override), nil
}
