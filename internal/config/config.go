// Package config loads the optional YAML application configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultWindowWidth  = 1200
	DefaultWindowHeight = 800
)

type Config struct {
	LogLevel   string       `yaml:"log_level"`
	Integrator string       `yaml:"integrator"`
	DataDir    string       `yaml:"data_dir"`
	Window     WindowConfig `yaml:"window"`
}

type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

func Default() *Config {
	return &Config{
		LogLevel:   "info",
		Integrator: "rk4",
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
		},
	}
}

// Load reads the config at path over the defaults. An empty path or a
// missing file is not an error; the defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Window.Width <= 0 {
		cfg.Window.Width = DefaultWindowWidth
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = DefaultWindowHeight
	}
	return cfg, nil
}

// Save writes the config as YAML.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
