package game

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
	"github.com/plus3/cubefall/grid"
)

// Config holds the tunables of a session. Fields tagged `toml` can be read
// from a config file with LoadConfig.
type Config struct {
	// Field dimensions in cells.
	Width  int `toml:"width" yaml:"width"`
	Depth  int `toml:"depth" yaml:"depth"`
	Height int `toml:"height" yaml:"height"`

	// Seconds between gravity steps, normally and while soft drop is held.
	FallInterval     float64 `toml:"fall-interval" yaml:"fall-interval"`
	SoftDropInterval float64 `toml:"soft-drop-interval" yaml:"soft-drop-interval"`

	// Seed for the random piece source. Zero picks a time-derived seed.
	Seed uint64 `toml:"seed" yaml:"seed"`

	// EndOnBlockedSpawn ends the session when a new piece spawns overlapping
	// the stack. When false the overlap is left alone until the piece locks.
	EndOnBlockedSpawn bool `toml:"end-on-blocked-spawn" yaml:"end-on-blocked-spawn"`
}

// DefaultConfig returns the standard 6x6x20 field with a one second fall.
func DefaultConfig() Config {
	return Config{
		Width:            grid.DefaultBounds.Width,
		Depth:            grid.DefaultBounds.Depth,
		Height:           grid.DefaultBounds.Height,
		FallInterval:     1.0,
		SoftDropInterval: 0.05,
	}
}

// Bounds returns the field dimensions.
func (c Config) Bounds() grid.Bounds {
	return grid.Bounds{Width: c.Width, Depth: c.Depth, Height: c.Height}
}

// Validate checks that a piece can spawn inside the walls and that the
// intervals are usable.
func (c Config) Validate() error {
	// The I piece spans x in [-1, 2] at spawn.
	if c.Width < 6 {
		return fmt.Errorf("%w: width %d is below 6", ErrInvalidConfig, c.Width)
	}
	if c.Depth < 2 {
		return fmt.Errorf("%w: depth %d is below 2", ErrInvalidConfig, c.Depth)
	}
	if c.Height < 4 {
		return fmt.Errorf("%w: height %d is below 4", ErrInvalidConfig, c.Height)
	}
	if !positive(c.FallInterval) {
		return fmt.Errorf("%w: fall-interval must be positive, got %v", ErrInvalidConfig, c.FallInterval)
	}
	if !positive(c.SoftDropInterval) {
		return fmt.Errorf("%w: soft-drop-interval must be positive, got %v", ErrInvalidConfig, c.SoftDropInterval)
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// LoadConfig reads a TOML file over DefaultConfig. Keys that match no field
// are rejected with an UnknownKeysError.
func LoadConfig(path string) (Config, error) {
	return LoadConfigFrom(path, DefaultConfig())
}

// LoadConfigFrom is LoadConfig with base supplying the keys the file omits.
func LoadConfigFrom(path string, base Config) (Config, error) {
	c := base
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		var unknown UnknownKeysError
		for _, key := range undecoded {
			unknown = append(unknown, key.String())
		}
		return Config{}, unknown
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}
