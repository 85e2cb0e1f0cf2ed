package matrix

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
)

// Config holds the tunables of a matrix background.
type Config struct {
	Seed int64

	// MaxGroups bounds the number of ripple groups kept alive at once.
	MaxGroups int
	// DragInterval is the minimum time between spawns while dragging.
	DragInterval time.Duration
	// FlickerRate is the fraction of cells re-shaded every frame.
	FlickerRate float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:         42,
		MaxGroups:    5,
		DragInterval: 100 * time.Millisecond,
		FlickerRate:  0.01,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable or out-of-range values keep their defaults.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns c with the values of cfg layered on top. Unparseable or
// out-of-range values are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["max_groups"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxGroups = parsed
		}
	}
	if v, ok := cfg["drag_interval"]; ok {
		if parsed, err := time.ParseDuration(v); err == nil && parsed >= 0 {
			c.DragInterval = parsed
		}
	}
	if v, ok := cfg["flicker_rate"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.FlickerRate = parsed
		}
	}
	return c
}

// LoadConfigFile decodes a TOML file over DefaultConfig. An empty path or a
// missing file yields the defaults.
func LoadConfigFile(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}
	var raw struct {
		Seed         *int64   `toml:"seed"`
		MaxGroups    *int     `toml:"max_groups"`
		DragInterval *string  `toml:"drag_interval"`
		FlickerRate  *float64 `toml:"flicker_rate"`
	}
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return c, fmt.Errorf("matrix: decode config %s: %w", path, err)
	}
	if raw.Seed != nil {
		c.Seed = *raw.Seed
	}
	if raw.MaxGroups != nil {
		if *raw.MaxGroups <= 0 {
			return c, fmt.Errorf("matrix: config %s: max_groups must be positive, got %d", path, *raw.MaxGroups)
		}
		c.MaxGroups = *raw.MaxGroups
	}
	if raw.DragInterval != nil {
		d, err := time.ParseDuration(*raw.DragInterval)
		if err != nil {
			return c, fmt.Errorf("matrix: config %s: drag_interval: %w", path, err)
		}
		if d < 0 {
			return c, fmt.Errorf("matrix: config %s: drag_interval must not be negative, got %s", path, d)
		}
		c.DragInterval = d
	}
	if raw.FlickerRate != nil {
		if *raw.FlickerRate < 0 || *raw.FlickerRate > 1 {
			return c, fmt.Errorf("matrix: config %s: flicker_rate must be in [0,1], got %v", path, *raw.FlickerRate)
		}
		c.FlickerRate = *raw.FlickerRate
	}
	return c, nil
}

func (c Config) normalized() Config {
	d := DefaultConfig()
	if c.MaxGroups <= 0 {
		c.MaxGroups = d.MaxGroups
	}
	if c.DragInterval < 0 {
		c.DragInterval = d.DragInterval
	}
	if c.FlickerRate < 0 || c.FlickerRate > 1 {
		c.FlickerRate = d.FlickerRate
	}
	return c
}
