// Package config loads game settings from an optional YAML file
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/zhuyin-fighter/constants"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Config holds all user-tunable settings
type Config struct {
	TickRate int     `yaml:"tick_rate"`
	AudioDir string  `yaml:"audio_dir"`
	Volume   float64 `yaml:"volume"`
	Muted    bool    `yaml:"muted"`
	Debug    bool    `yaml:"debug"`
	Arena    Arena   `yaml:"arena"`
	Quiz     Quiz    `yaml:"quiz"`

	// Keys overrides default bindings, action name to key names
	Keys map[string][]string `yaml:"keys,omitempty"`
}

// Arena is the logical play field size
type Arena struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Quiz holds listening quiz defaults
type Quiz struct {
	RoundsToWin int  `yaml:"rounds_to_win"`
	Difficulty  int  `yaml:"difficulty"`
	Timer       bool `yaml:"timer"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		TickRate: constants.DefaultTickRate,
		AudioDir: "assets/audio",
		Volume:   0.8,
		Arena: Arena{
			Width:  constants.ArenaWidth,
			Height: constants.ArenaHeight,
		},
		Quiz: Quiz{
			RoundsToWin: constants.QuizRoundsToWin,
			Difficulty:  1,
			Timer:       true,
		},
	}
}

// Load reads path over the defaults; keys absent from the file keep their default
// A missing file is reported with an error wrapping os.ErrNotExist
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg as YAML
func Save(path string, cfg Config) error {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Validate checks ranges
func (c Config) Validate() error {
	switch {
	case c.TickRate < 10 || c.TickRate > 240:
		return fmt.Errorf("%w: tick_rate %d outside [10, 240]", ErrInvalid, c.TickRate)
	case c.Volume < 0 || c.Volume > 1:
		return fmt.Errorf("%w: volume %g outside [0, 1]", ErrInvalid, c.Volume)
	case c.Arena.Width < 200 || c.Arena.Height < 200:
		return fmt.Errorf("%w: arena %gx%g smaller than 200x200", ErrInvalid, c.Arena.Width, c.Arena.Height)
	case c.Quiz.RoundsToWin < 1:
		return fmt.Errorf("%w: quiz.rounds_to_win must be positive", ErrInvalid)
	case c.Quiz.Difficulty < 1 || c.Quiz.Difficulty > 3:
		return fmt.Errorf("%w: quiz.difficulty %d outside [1, 3]", ErrInvalid, c.Quiz.Difficulty)
	}
	return nil
}
