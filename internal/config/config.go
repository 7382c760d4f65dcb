package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file location relative to the working directory.
const DefaultPath = "config/game.yaml"

// Config is the game configuration. Player and Lantern are overrides: zero fields keep
// the game's built-in tuning.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Logging LoggingConfig `yaml:"logging"`
	Debug   DebugConfig   `yaml:"debug"`
	Player  PlayerConfig  `yaml:"player"`
	Lantern LanternConfig `yaml:"lantern"`
	World   WorldConfig   `yaml:"world"`
}

type WindowConfig struct {
	Width      int32   `yaml:"width"`
	Height     int32   `yaml:"height"`
	Title      string  `yaml:"title"`
	Fullscreen bool    `yaml:"fullscreen"`
	TargetFPS  int32   `yaml:"target_fps"`
	FixedStep  float32 `yaml:"fixed_step"` // seconds per update; 0 uses the measured frame time
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// DebugConfig holds overlay toggles. They can be flipped from the console and saved.
type DebugConfig struct {
	ShowFPS       bool `yaml:"show_fps"`
	ShowGrid      bool `yaml:"show_grid"`
	ShowColliders bool `yaml:"show_colliders"`
}

type PlayerConfig struct {
	Speed        float32 `yaml:"speed,omitempty"`
	Radius       float32 `yaml:"radius,omitempty"`
	RotationGain float32 `yaml:"rotation_gain,omitempty"`
}

type LanternConfig struct {
	Height    float32 `yaml:"height,omitempty"`
	Range     float32 `yaml:"range,omitempty"`
	Intensity float32 `yaml:"intensity,omitempty"`
	Angle     float32 `yaml:"angle,omitempty"`
	Penumbra  float32 `yaml:"penumbra,omitempty"`
	Decay     float32 `yaml:"decay,omitempty"`
	Distance  float32 `yaml:"distance,omitempty"`
	Glow      float32 `yaml:"glow,omitempty"`
	GlowRange float32 `yaml:"glow_range,omitempty"`
}

type WorldConfig struct {
	Layout string `yaml:"layout,omitempty"` // YAML layout file; empty uses the built-in yard
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "lanternwalk",
			TargetFPS: 60,
			FixedStep: 0.016,
		},
		Logging: LoggingConfig{Level: "info", File: "logs/game.txt"},
	}
}

// Load reads path over Default(). A missing file is not an error. A malformed file
// returns Default() together with the decode error so the caller can warn and go on.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
