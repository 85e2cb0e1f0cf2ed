package app

import (
	"flag"

	"matrix-bg/internal/matrix"
)

// Config represents the command-line parameters for the window host.
type Config struct {
	Width      int
	Height     int
	TPS        int
	Seed       int64
	ConfigFile string
	Overlay    bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Width: 1024, Height: 640, TPS: 60, Seed: matrix.DefaultConfig().Seed}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "initial window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height in pixels")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the background")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "optional TOML file with background tunables")
	fs.BoolVar(&c.Overlay, "overlay", c.Overlay, "show the debug overlay on start")
}

// Matrix resolves the background configuration: file values first, then the
// seed flag when it was set explicitly.
func (c *Config) Matrix(fs *flag.FlagSet) (matrix.Config, error) {
	cfg, err := matrix.LoadConfigFile(c.ConfigFile)
	if err != nil {
		return cfg, err
	}
	explicit := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			explicit = true
		}
	})
	if explicit || c.ConfigFile == "" {
		cfg.Seed = c.Seed
	}
	return cfg, nil
}
