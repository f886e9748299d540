// Package config loads the presenter configuration. Timing values that
// would otherwise be magic constants coupled to the transition rendering
// (settle delay, wheel debounce window) live here so they can be tuned
// per machine.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Config controls navigation timing, input thresholds and ambient paths.
type Config struct {
	// SettleDelayMS is how long a transition holds the animation lock.
	SettleDelayMS int `koanf:"settle_delay_ms" yaml:"settle_delay_ms"`
	// WheelDebounceMS is the window that collapses a scroll gesture into
	// a single navigation step.
	WheelDebounceMS int `koanf:"wheel_debounce_ms" yaml:"wheel_debounce_ms"`
	// FrameIntervalMS is the deferred-frame delay before an entering
	// slide snaps to its resting position.
	FrameIntervalMS int `koanf:"frame_interval_ms" yaml:"frame_interval_ms"`
	// SwipeThreshold is the horizontal drag distance, in cells, beyond
	// which a press/release pair counts as a swipe.
	SwipeThreshold int `koanf:"swipe_threshold" yaml:"swipe_threshold"`

	Theme         string `koanf:"theme" yaml:"theme"`
	PositionsPath string `koanf:"positions_path" yaml:"positions_path"`
	LogFile       string `koanf:"log_file" yaml:"log_file"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		SettleDelayMS:   400,
		WheelDebounceMS: 800,
		FrameIntervalMS: 16,
		SwipeThreshold:  8,
		Theme:           "tokyo-night",
	}
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SLIDEDECK_*). A missing file is not an
// error; defaults apply.
func Load(path string) (Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return cfg, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("SLIDEDECK_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "SLIDEDECK_"))
	}), nil); err != nil {
		return cfg, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c Config) Validate() error {
	if c.SettleDelayMS <= 0 {
		return fmt.Errorf("settle_delay_ms must be positive, got %d", c.SettleDelayMS)
	}
	if c.WheelDebounceMS <= 0 {
		return fmt.Errorf("wheel_debounce_ms must be positive, got %d", c.WheelDebounceMS)
	}
	if c.FrameIntervalMS <= 0 {
		return fmt.Errorf("frame_interval_ms must be positive, got %d", c.FrameIntervalMS)
	}
	if c.SwipeThreshold <= 0 {
		return fmt.Errorf("swipe_threshold must be positive, got %d", c.SwipeThreshold)
	}
	return nil
}

// SettleDelay returns the animation lock duration.
func (c Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMS) * time.Millisecond
}

// WheelDebounce returns the wheel collapse window.
func (c Config) WheelDebounce() time.Duration {
	return time.Duration(c.WheelDebounceMS) * time.Millisecond
}

// FrameInterval returns the deferred-frame delay.
func (c Config) FrameInterval() time.Duration {
	return time.Duration(c.FrameIntervalMS) * time.Millisecond
}

// DefaultPath returns the conventional location of the config file, or an
// empty string when the user config directory cannot be resolved.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "slidedeck", "config.yaml")
}

// DefaultPositionsPath returns the conventional location of the positions
// database.
func DefaultPositionsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolving config directory: %w", err)
	}
	return filepath.Join(dir, "slidedeck", "positions.db"), nil
}
