// Package config loads termcore settings from a TOML file with
// environment variable overrides. Missing files are not errors; every
// field has a working default so detection can always run unconfigured.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/termcore/render"
)

// Config holds user-tunable engine settings
type Config struct {
	// Color forces a color depth: "truecolor", "256", "16", "mono",
	// or "" for detection
	Color string `toml:"color"`

	// Mode forces a render mode: "enhanced", "standard", "compatible",
	// "minimal", or "" for derivation
	Mode string `toml:"mode"`

	// QueryTimeoutMS bounds each interactive capability query
	QueryTimeoutMS int `toml:"query_timeout_ms"`

	// DisableQueries skips the interactive detection stage
	DisableQueries bool `toml:"disable_queries"`

	// CacheEntries bounds the adaptive renderer artifact cache
	CacheEntries int `toml:"cache_entries"`
}

// Default returns the baseline configuration
func Default() Config {
	return Config{
		QueryTimeoutMS: 100,
		CacheEntries:   64,
	}
}

// Load reads path (missing file is fine), then applies environment
// overrides on top
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Defaults stand
	case err != nil:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// DefaultPath returns the conventional config location,
// $XDG_CONFIG_HOME/termcore/termcore.toml
func DefaultPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "termcore", "termcore.toml")
}

// applyEnv folds environment overrides in; they outrank the file
func (c *Config) applyEnv() {
	if v := os.Getenv("TERMCORE_COLOR"); v != "" {
		c.Color = v
	}
	if v := os.Getenv("TERMCORE_MODE"); v != "" {
		c.Mode = v
	}
	if v := os.Getenv("TERMCORE_QUERY_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.QueryTimeoutMS = n
		}
	}
	if os.Getenv("TERMCORE_NO_QUERIES") != "" {
		c.DisableQueries = true
	}
	if os.Getenv("NO_COLOR") != "" {
		c.Color = "mono"
	}
}

func (c *Config) validate() error {
	switch c.Color {
	case "", "truecolor", "256", "16", "mono":
	default:
		return fmt.Errorf("config: unknown color %q", c.Color)
	}
	if c.Mode != "" {
		if _, ok := render.ParseMode(c.Mode); !ok {
			return fmt.Errorf("config: unknown mode %q", c.Mode)
		}
	}
	if c.QueryTimeoutMS < 0 {
		return fmt.Errorf("config: negative query timeout %d", c.QueryTimeoutMS)
	}
	if c.CacheEntries <= 0 {
		c.CacheEntries = Default().CacheEntries
	}
	return nil
}

// QueryTimeout returns the query deadline as a duration
func (c Config) QueryTimeout() time.Duration {
	return time.Duration(c.QueryTimeoutMS) * time.Millisecond
}

// ColorMode maps the forced color setting; ok is false when detection
// should decide
func (c Config) ColorMode() (render.ColorMode, bool) {
	switch c.Color {
	case "truecolor":
		return render.ColorModeTrueColor, true
	case "256":
		return render.ColorMode256, true
	case "16":
		return render.ColorMode16, true
	case "mono":
		return render.ColorModeMono, true
	}
	return render.ColorModeMono, false
}

// RenderMode maps the forced mode setting; ok is false when derivation
// should decide
func (c Config) RenderMode() (render.Mode, bool) {
	if c.Mode == "" {
		return render.ModeMinimal, false
	}
	m, ok := render.ParseMode(c.Mode)
	return m, ok
}
