// Package cli holds the flag and logger wiring shared by the cubefall commands.
package cli

import (
	"flag"
	"fmt"

	"github.com/plus3/cubefall/game"
	"go.uber.org/zap"
)

// ConfigFlags binds the game configuration to command-line flags. Values
// come from the base configuration, then the -config file, then any flag set
// explicitly on the command line.
type ConfigFlags struct {
	fs   *flag.FlagSet
	path string
	base game.Config
	vals game.Config
}

// RegisterConfigFlags adds the configuration flags to fs.
func RegisterConfigFlags(fs *flag.FlagSet) *ConfigFlags {
	return RegisterConfigFlagsFrom(fs, game.DefaultConfig())
}

// RegisterConfigFlagsFrom is RegisterConfigFlags with def in place of
// DefaultConfig as the base a command starts from when no -config is given.
func RegisterConfigFlagsFrom(fs *flag.FlagSet, def game.Config) *ConfigFlags {
	cf := &ConfigFlags{fs: fs, base: def}

	fs.StringVar(&cf.path, "config", "", "TOML config file")
	fs.IntVar(&cf.vals.Width, "width", def.Width, "Field width in cells")
	fs.IntVar(&cf.vals.Depth, "depth", def.Depth, "Field depth in cells")
	fs.IntVar(&cf.vals.Height, "height", def.Height, "Field height in cells")
	fs.Float64Var(&cf.vals.FallInterval, "fall-interval", def.FallInterval, "Seconds between gravity steps")
	fs.Float64Var(&cf.vals.SoftDropInterval, "soft-drop-interval", def.SoftDropInterval, "Seconds between gravity steps while soft drop is held")
	fs.Uint64Var(&cf.vals.Seed, "seed", def.Seed, "Piece sequence seed (0 picks one from the clock)")
	fs.BoolVar(&cf.vals.EndOnBlockedSpawn, "end-on-blocked-spawn", def.EndOnBlockedSpawn, "End the game when a new piece spawns overlapping the stack")
	return cf
}

// Config resolves the final configuration. Call it after fs.Parse.
func (cf *ConfigFlags) Config() (game.Config, error) {
	cfg := cf.base
	if cf.path != "" {
		loaded, err := game.LoadConfigFrom(cf.path, cf.base)
		if err != nil {
			return game.Config{}, err
		}
		cfg = loaded
	}

	cf.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = cf.vals.Width
		case "depth":
			cfg.Depth = cf.vals.Depth
		case "height":
			cfg.Height = cf.vals.Height
		case "fall-interval":
			cfg.FallInterval = cf.vals.FallInterval
		case "soft-drop-interval":
			cfg.SoftDropInterval = cf.vals.SoftDropInterval
		case "seed":
			cfg.Seed = cf.vals.Seed
		case "end-on-blocked-spawn":
			cfg.EndOnBlockedSpawn = cf.vals.EndOnBlockedSpawn
		}
	})

	if err := cfg.Validate(); err != nil {
		return game.Config{}, fmt.Errorf("flags: %w", err)
	}
	return cfg, nil
}

// NewLogger returns a development logger when debug is set, otherwise a
// production one.
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
