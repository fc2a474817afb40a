// Package config loads AstroNexus runtime settings from viper.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides (ASTRONEXUS_SEED, ...).
const EnvPrefix = "ASTRONEXUS"

// ErrInvalidConfig is returned by Validate and Load when a value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

// MentorConfig holds the simulated mentor typing delay range.
type MentorConfig struct {
	MinDelay time.Duration `mapstructure:"min_delay"`
	MaxDelay time.Duration `mapstructure:"max_delay"`
}

// MissionConfig holds mission simulation settings.
type MissionConfig struct {
	SimulateDelay time.Duration `mapstructure:"simulate_delay"`
}

// GalleryConfig holds gallery settings.
type GalleryConfig struct {
	LoadDelay time.Duration `mapstructure:"load_delay"`
}

// Config holds all runtime configuration for an astronexus session.
// Values are populated from .astronexus.yaml, ASTRONEXUS_* env vars, and CLI flags.
type Config struct {
	DefaultSection string        `mapstructure:"default_section"`
	NoSplash       bool          `mapstructure:"no_splash"`
	Seed           int64         `mapstructure:"seed"`
	Mentor         MentorConfig  `mapstructure:"mentor"`
	Mission        MissionConfig `mapstructure:"mission"`
	Gallery        GalleryConfig `mapstructure:"gallery"`
	TelemetryPath  string        `mapstructure:"telemetry_path"`
	MetricsPath    string        `mapstructure:"metrics_path"`
	LogFile        string        `mapstructure:"log_file"`
	LogLevel       string        `mapstructure:"log_level"`
	Verbose        bool          `mapstructure:"verbose"`
}

// BindEnv wires ASTRONEXUS_* environment variables into viper, mapping
// nested keys such as mentor.min_delay to ASTRONEXUS_MENTOR_MIN_DELAY.
func BindEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("default_section", "home")
	viper.SetDefault("no_splash", false)
	viper.SetDefault("seed", 0)
	viper.SetDefault("mentor.min_delay", time.Second)
	viper.SetDefault("mentor.max_delay", 3*time.Second)
	viper.SetDefault("mission.simulate_delay", 2*time.Second)
	viper.SetDefault("gallery.load_delay", time.Second)
	viper.SetDefault("telemetry_path", "")
	viper.SetDefault("metrics_path", "")
	viper.SetDefault("log_file", "")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects negative delays and an inverted mentor delay range.
func (c Config) Validate() error {
	delays := []struct {
		key string
		d   time.Duration
	}{
		{"mentor.min_delay", c.Mentor.MinDelay},
		{"mentor.max_delay", c.Mentor.MaxDelay},
		{"mission.simulate_delay", c.Mission.SimulateDelay},
		{"gallery.load_delay", c.Gallery.LoadDelay},
	}
	for _, d := range delays {
		if d.d < 0 {
			return fmt.Errorf("%w: %s is negative (%s)", ErrInvalidConfig, d.key, d.d)
		}
	}
	if c.Mentor.MinDelay > c.Mentor.MaxDelay {
		return fmt.Errorf("%w: mentor.min_delay %s exceeds mentor.max_delay %s",
			ErrInvalidConfig, c.Mentor.MinDelay, c.Mentor.MaxDelay)
	}
	return nil
}

// Watch reloads the configuration whenever the config file changes and
// passes each successfully validated result to fn. Reloads that fail to
// decode or validate are reported through onErr and otherwise ignored.
// Watch is a no-op when no config file is in use.
func Watch(fn func(Config), onErr func(error)) {
	if viper.ConfigFileUsed() == "" {
		return
	}
	viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := Load()
		if err != nil {
			if onErr != nil {
				onErr(fmt.Errorf("reloading %s: %w", e.Name, err))
			}
			return
		}
		fn(cfg)
	})
	viper.WatchConfig()
}
