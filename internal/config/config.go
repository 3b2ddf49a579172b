// Package config loads the popframe configuration file: the auto-update
// debounce delay and default frame parameter overrides.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/1broseidon/popframe/frame"
)

// Config is the effective configuration ready for use by a controller.
type Config struct {
	// UpdateDelay is the quiet period of the debounced auto-update
	// policy.
	UpdateDelay time.Duration

	// FrameOverrides are applied on top of the frame parameter
	// defaults for every managed frame, in file order.
	FrameOverrides []frame.Override
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{UpdateDelay: frame.DefaultUpdateDelay}
}

// rawConfig mirrors the YAML file. The frame section stays a node so
// override order is preserved.
type rawConfig struct {
	UpdateDelay *float64  `yaml:"update_delay"`
	Frame       yaml.Node `yaml:"frame"`
}

// DefaultConfigPath returns the standard config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "popframe", "config.yaml"), nil
}

// Load reads the configuration from the standard location. A missing
// file yields the defaults.
func Load() (*Config, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from path. A missing file yields
// the defaults.
func LoadFromPath(path string) (*Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open config %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document. Unknown keys
// are configuration errors, not silently dropped.
func Parse(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw rawConfig
	if err := dec.Decode(&raw); err != nil {
		if err == io.EOF {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()

	if raw.UpdateDelay != nil {
		if *raw.UpdateDelay <= 0 {
			return nil, fmt.Errorf("update_delay must be positive, got %v", *raw.UpdateDelay)
		}
		cfg.UpdateDelay = time.Duration(*raw.UpdateDelay * float64(time.Second))
	}

	overrides, err := frameOverrides(&raw.Frame)
	if err != nil {
		return nil, err
	}
	cfg.FrameOverrides = overrides

	// Surface unknown parameter names and mistyped values at load time
	// rather than on the first MakeOrReuse call.
	if _, err := frame.MergeParams(frame.DefaultParams(), overrides); err != nil {
		return nil, err
	}

	return cfg, nil
}

// frameOverrides converts the frame mapping into an ordered override
// list, preserving file order so later keys win.
func frameOverrides(node *yaml.Node) ([]frame.Override, error) {
	if node.IsZero() {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("frame section must be a mapping")
	}

	var overrides []frame.Override
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var value any
		if err := node.Content[i+1].Decode(&value); err != nil {
			return nil, fmt.Errorf("frame parameter %q: %w", key, err)
		}
		overrides = append(overrides, frame.Override{Key: key, Value: value})
	}
	return overrides, nil
}
