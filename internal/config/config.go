// Package config loads and validates the showwall YAML configuration.
package config

import (
	"fmt"
	"time"
)

// FallbackScreen sizes the synthetic screen used when no display can be
// detected.
type FallbackScreen struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Config is the effective showwall configuration.
type Config struct {
	// SettleDelayMs is the wait after spawning a browser before any
	// positioning attempt. There is no cross-platform "window created"
	// signal, so this is a blind synchronization gap.
	SettleDelayMs int `yaml:"settle_delay_ms"`

	// InterLaunchDelayMs separates consecutive launches so the window
	// manager's active-window bookkeeping can settle between spawns.
	InterLaunchDelayMs int `yaml:"inter_launch_delay_ms"`

	// StepDelayMs separates individual window-manipulation commands.
	StepDelayMs int `yaml:"step_delay_ms"`

	// CommandTimeoutMs bounds each external window-manipulation command.
	CommandTimeoutMs int `yaml:"command_timeout_ms"`

	// Fullscreen re-applies fullscreen state after positioning.
	Fullscreen *bool `yaml:"fullscreen"`

	// Browsers maps a browser kind (chrome, chromium, firefox) to a
	// command that overrides the built-in lookup table.
	Browsers map[string]string `yaml:"browsers,omitempty"`

	FallbackScreen FallbackScreen `yaml:"fallback_screen"`

	// LogLevel is one of: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// ValidationError reports an invalid configuration value by YAML path.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

// DefaultConfig returns the built-in configuration. The delay defaults
// match the behavior window managers were observed to tolerate: 2s for
// a browser window to materialize, 0.5s between launches, 0.3s between
// manipulation steps, 2s per external command.
func DefaultConfig() *Config {
	return &Config{
		SettleDelayMs:      2000,
		InterLaunchDelayMs: 500,
		StepDelayMs:        300,
		CommandTimeoutMs:   2000,
		Browsers:           map[string]string{},
		FallbackScreen:     FallbackScreen{Width: 1920, Height: 1080},
		LogLevel:           "info",
	}
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.SettleDelayMs < 0 {
		return &ValidationError{Path: "settle_delay_ms", Err: fmt.Errorf("must be >= 0")}
	}
	if c.InterLaunchDelayMs < 0 {
		return &ValidationError{Path: "inter_launch_delay_ms", Err: fmt.Errorf("must be >= 0")}
	}
	if c.StepDelayMs < 0 {
		return &ValidationError{Path: "step_delay_ms", Err: fmt.Errorf("must be >= 0")}
	}
	if c.CommandTimeoutMs <= 0 {
		return &ValidationError{Path: "command_timeout_ms", Err: fmt.Errorf("must be > 0")}
	}
	if c.FallbackScreen.Width <= 0 || c.FallbackScreen.Height <= 0 {
		return &ValidationError{Path: "fallback_screen", Err: fmt.Errorf("width and height must be > 0")}
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warn, error")}
	}
	for kind, cmd := range c.Browsers {
		if kind == "" {
			return &ValidationError{Path: "browsers", Err: fmt.Errorf("browsers contains an empty kind name")}
		}
		if cmd == "" {
			return &ValidationError{Path: "browsers." + kind, Err: fmt.Errorf("command must not be empty")}
		}
	}
	return nil
}

// SettleDelay returns the post-spawn settle delay.
func (c *Config) SettleDelay() time.Duration {
	return time.Duration(c.SettleDelayMs) * time.Millisecond
}

// InterLaunchDelay returns the delay between consecutive launches.
func (c *Config) InterLaunchDelay() time.Duration {
	return time.Duration(c.InterLaunchDelayMs) * time.Millisecond
}

// StepDelay returns the delay between manipulation steps.
func (c *Config) StepDelay() time.Duration {
	return time.Duration(c.StepDelayMs) * time.Millisecond
}

// CommandTimeout returns the per-command timeout for external tools.
func (c *Config) CommandTimeout() time.Duration {
	return time.Duration(c.CommandTimeoutMs) * time.Millisecond
}

// FullscreenEnabled reports whether placed windows should be
// fullscreened after positioning. Defaults to true.
func (c *Config) FullscreenEnabled() bool {
	if c.Fullscreen == nil {
		return true
	}
	return *c.Fullscreen
}
