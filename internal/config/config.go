// Package config resolves runtime settings from defaults, an optional YAML
// file and PHYSIO_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/physio/internal/domain"
	"gopkg.in/yaml.v3"
)

// Sound selects how a finished countdown is announced.
type Sound string

const (
	SoundBell Sound = "bell"
	SoundTone Sound = "tone"
	SoundBoth Sound = "both"
	SoundOff  Sound = "off"
)

// OnSelect values for TimerConfig.
const (
	OnSelectStart = "start"
	OnSelectSet   = "set"
)

type Config struct {
	DBPath   string      `yaml:"db_path"`
	PlanPath string      `yaml:"plan_path"`
	Log      LogConfig   `yaml:"log"`
	Timer    TimerConfig `yaml:"timer"`
}

type LogConfig struct {
	File       string `yaml:"file"`
	Level      string `yaml:"level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	Compress   bool   `yaml:"compress"`
}

type TimerConfig struct {
	DefaultSeconds int    `yaml:"default_seconds"`
	Sound          Sound  `yaml:"sound"`
	OnSelect       string `yaml:"on_select"`
}

// Dir returns the application's data directory. PHYSIO_HOME overrides the
// default ~/.physio.
func Dir() (string, error) {
	if v := os.Getenv("PHYSIO_HOME"); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".physio"), nil
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig(dir string) Config {
	return Config{
		DBPath: filepath.Join(dir, "physio.db"),
		Log: LogConfig{
			File:       filepath.Join(dir, "physio.log"),
			Level:      "info",
			MaxSizeMB:  5,
			MaxBackups: 3,
			Compress:   true,
		},
		Timer: TimerConfig{
			DefaultSeconds: domain.DefaultTimerDuration,
			Sound:          SoundBoth,
			OnSelect:       OnSelectStart,
		},
	}
}

// Load builds the configuration. An empty path means <Dir>/config.yaml,
// which may be absent; an explicit path must exist.
func Load(path string) (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig(dir)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(dir, "config.yaml")
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PHYSIO_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("PHYSIO_PLAN"); v != "" {
		cfg.PlanPath = v
	}
	if v := os.Getenv("PHYSIO_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("PHYSIO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("PHYSIO_TIMER_DEFAULT"); v != "" {
		// Kept as-is when unparsable so Validate reports it.
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Timer.DefaultSeconds = n
		} else {
			cfg.Timer.DefaultSeconds = -1
		}
	}
	if v := os.Getenv("PHYSIO_SOUND"); v != "" {
		cfg.Timer.Sound = Sound(strings.ToLower(v))
	}
}

func (c *Config) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path is required")
	}
	if !domain.IsTimerDuration(c.Timer.DefaultSeconds) {
		return fmt.Errorf("timer.default_seconds must be one of %v, got %d", domain.TimerDurations, c.Timer.DefaultSeconds)
	}
	switch c.Timer.Sound {
	case SoundBell, SoundTone, SoundBoth, SoundOff:
	default:
		return fmt.Errorf("timer.sound: invalid value %q (expected bell, tone, both or off)", c.Timer.Sound)
	}
	switch c.Timer.OnSelect {
	case OnSelectStart, OnSelectSet:
	default:
		return fmt.Errorf("timer.on_select: invalid value %q (expected start or set)", c.Timer.OnSelect)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: invalid value %q (expected debug, info, warn or error)", c.Log.Level)
	}
	if c.Log.MaxSizeMB < 0 || c.Log.MaxBackups < 0 {
		return fmt.Errorf("log.max_size_mb and log.max_backups must not be negative")
	}
	return nil
}
