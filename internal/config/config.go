// Package config provides YAML-based configuration loading for motion.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// Config is the full motion configuration.
type Config struct {
	Animation AnimationConfig        `yaml:"animation"`
	Logging   LoggingConfig          `yaml:"logging"`
	Storage   StorageConfig          `yaml:"storage"`
	Server    ServerConfig           `yaml:"server"`
	Scenes    map[string]SceneConfig `yaml:"scenes"`
}

// AnimationConfig controls transition timing.
type AnimationConfig struct {
	DurationMS int `yaml:"duration_ms"`
	TickRate   int `yaml:"tick_rate"` // frames per second
}

// LoggingConfig controls the charmbracelet logger.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	Timestamps bool   `yaml:"timestamps"`
}

// StorageConfig locates the run journal.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ServerConfig controls `motion serve`.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
	MetricsAddress     string `yaml:"metrics_address"`
}

// SceneConfig overrides a scene's trigger values.
type SceneConfig struct {
	Targets []float64 `yaml:"targets"`
}

// Duration returns the transition duration.
func (c Config) Duration() time.Duration {
	return time.Duration(c.Animation.DurationMS) * time.Millisecond
}

// TickInterval returns the time between frames.
func (c Config) TickInterval() time.Duration {
	if c.Animation.TickRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.Animation.TickRate)
}

// IdleTimeout returns the SSH idle timeout.
func (c Config) IdleTimeout() time.Duration {
	return time.Duration(c.Server.IdleTimeoutMinutes) * time.Minute
}

// Targets returns the configured trigger values for a scene, or nil.
func (c Config) Targets(sceneID string) []float64 {
	return c.Scenes[sceneID].Targets
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.Animation.DurationMS <= 0 {
		return fmt.Errorf("%w: animation.duration_ms must be positive, got %d", ErrInvalid, c.Animation.DurationMS)
	}
	if c.Animation.TickRate <= 0 {
		return fmt.Errorf("%w: animation.tick_rate must be positive, got %d", ErrInvalid, c.Animation.TickRate)
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		return fmt.Errorf("%w: server.idle_timeout_minutes must not be negative", ErrInvalid)
	}
	return nil
}
