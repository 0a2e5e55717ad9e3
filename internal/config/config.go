package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/framepick/framepick/internal/trimmer"
	"github.com/framepick/framepick/internal/validate"
)

// DefaultPath is the user config file location.
const DefaultPath = "~/.config/framepick/config.yaml"

// Config is the user-tunable configuration. Durations are expressed in
// seconds in the YAML file.
type Config struct {
	HandleWidth      float64 `yaml:"handle_width"           validate:"gt=0"`
	MinDurationSec   float64 `yaml:"min_duration_seconds"   validate:"gte=0"`
	SeekAnimationSec float64 `yaml:"seek_animation_seconds" validate:"gte=0"`
	DragStep         float64 `yaml:"drag_step"              validate:"gt=0"`
	SessionFile      string  `yaml:"session_file"           validate:"required"`
}

// Default returns the stock configuration.
func Default() Config {
	return Config{
		HandleWidth:      15,
		MinDurationSec:   3,
		SeekAnimationSec: 0.5,
		DragStep:         10,
		SessionFile:      "~/.config/framepick/sessions.json",
	}
}

// Load reads the config file at path, overlaying it on the defaults. A
// missing file yields the defaults; a malformed or invalid file is an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	expanded, err := expandTilde(path)
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(expanded)
	if os.IsNotExist(err) {
		logrus.Debugf("no config file at %s; using defaults", expanded)
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", expanded, err)
	}
	return cfg, nil
}

// Trimmer converts the user config into the interaction core's knobs.
func (c Config) Trimmer() trimmer.Config {
	return trimmer.Config{
		HandleWidth:   c.HandleWidth,
		MinDuration:   secondsToDuration(c.MinDurationSec),
		SeekAnimation: secondsToDuration(c.SeekAnimationSec),
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

// expandTilde expands the tilde in a path to the user's home directory.
func expandTilde(path string) (string, error) {
	if len(path) == 0 || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[1:]), nil
}
