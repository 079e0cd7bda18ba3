package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/AmirChGit/three-body-problem/internal/sim"
)

const (
	DefaultWidth  = 800.0
	DefaultHeight = 600.0
	DefaultFPS    = 60
	DefaultTheme  = "classic"
)

// Config is the full configuration surface: viewport, frame rate, and
// the simulation tuning knobs. Zero seed means time-seeded.
type Config struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// FPS is the driver tick rate. The camera ease constant is tuned
	// for 60; changing FPS changes the camera settling time.
	FPS    int        `yaml:"fps"`
	Seed   int64      `yaml:"seed"`
	Theme  string     `yaml:"theme"`
	Tuning sim.Tuning `yaml:"tuning"`
}

func Default() *Config {
	return &Config{
		Width:  DefaultWidth,
		Height: DefaultHeight,
		FPS:    DefaultFPS,
		Theme:  DefaultTheme,
		Tuning: sim.DefaultTuning(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
