// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package serve

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/bureau-foundation/console"
)

// Config is the console server configuration.
type Config struct {
	// Listen configures the network endpoint.
	Listen ListenConfig `yaml:"listen"`

	// Session configures every connection's console session.
	Session SessionConfig `yaml:"session"`

	// Log configures structured logging.
	Log LogConfig `yaml:"log"`
}

// ListenConfig configures the network endpoint.
type ListenConfig struct {
	// Network is the listener network: "tcp" or "unix".
	Network string `yaml:"network"`

	// Address is the TCP host:port or the Unix socket path.
	Address string `yaml:"address"`

	// IdleTimeout closes connections that send no input for this long,
	// as a duration string ("10m", "1h"). Empty or "0" disables the
	// timeout.
	IdleTimeout string `yaml:"idle_timeout"`
}

// SessionConfig configures every connection's console session.
type SessionConfig struct {
	// Banner is written to each connection before the first prompt.
	Banner string `yaml:"banner"`

	// PathPrompt shows the menu navigation path in the prompt
	// ("root/sub> ") instead of the plain "> ".
	PathPrompt bool `yaml:"path_prompt"`

	// LineCapacity is the input buffer size in bytes. Lines that
	// outgrow it are discarded whole.
	LineCapacity int `yaml:"line_capacity"`

	// MaxDepth is the menu stack limit, counting the root.
	MaxDepth int `yaml:"max_depth"`

	// Echo writes input bytes back to the connection as they arrive.
	// Character-mode clients (telnet with remote echo, the attach
	// command) need it; line-mode clients that render their own typing
	// should turn it off.
	Echo bool `yaml:"echo"`
}

// LogConfig configures structured logging.
type LogConfig struct {
	// Level is the minimum severity: debug, info, warn, or error.
	Level string `yaml:"level"`
}

// Default returns the default configuration. These defaults make a
// usable local server without any config file: a loopback TCP listener
// with echo for character-mode clients.
func Default() *Config {
	return &Config{
		Listen: ListenConfig{
			Network:     "tcp",
			Address:     "127.0.0.1:7623",
			IdleTimeout: "10m",
		},
		Session: SessionConfig{
			PathPrompt:   true,
			LineCapacity: console.DefaultLineCapacity,
			MaxDepth:     console.DefaultMaxDepth,
			Echo:         true,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load loads configuration from the path in the CONSOLE_CONFIG
// environment variable. There are no fallbacks or discovery: if the
// variable is not set, Load fails.
func Load() (*Config, error) {
	configPath := os.Getenv("CONSOLE_CONFIG")
	if configPath == "" {
		return nil, fmt.Errorf("CONSOLE_CONFIG environment variable not set; " +
			"set it to the path of your console.yaml config file, or use --config flag")
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path, merged over
// the defaults. The only expansion performed is ${VAR} and
// ${VAR:-default} in the listen address, so socket paths can reference
// ${HOME} or ${XDG_RUNTIME_DIR} portably.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	cfg.Listen.Address = expandVars(cfg.Listen.Address, map[string]string{
		"HOME": os.Getenv("HOME"),
	})
	return cfg, nil
}

// expandVars expands ${VAR} and ${VAR:-default} patterns.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	var errs []error

	if c.Listen.Network != "tcp" && c.Listen.Network != "unix" {
		errs = append(errs, fmt.Errorf("listen.network must be tcp or unix, got %q", c.Listen.Network))
	}
	if c.Listen.Address == "" {
		errs = append(errs, fmt.Errorf("listen.address is required"))
	}
	if _, err := c.ParseIdleTimeout(); err != nil {
		errs = append(errs, err)
	}
	if c.Session.LineCapacity < 1 {
		errs = append(errs, fmt.Errorf("session.line_capacity must be at least 1"))
	}
	if c.Session.MaxDepth < 1 {
		errs = append(errs, fmt.Errorf("session.max_depth must be at least 1"))
	}
	if _, err := c.ParseLogLevel(); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// ParseIdleTimeout parses listen.idle_timeout. Empty means no timeout.
func (c *Config) ParseIdleTimeout() (time.Duration, error) {
	if c.Listen.IdleTimeout == "" || c.Listen.IdleTimeout == "0" {
		return 0, nil
	}
	timeout, err := time.ParseDuration(c.Listen.IdleTimeout)
	if err != nil {
		return 0, fmt.Errorf("listen.idle_timeout: %w", err)
	}
	if timeout < 0 {
		return 0, fmt.Errorf("listen.idle_timeout must not be negative, got %s", timeout)
	}
	return timeout, nil
}

// ParseLogLevel parses log.level to its slog severity.
// Accepts: debug, info, warn, error.
func (c *Config) ParseLogLevel() (slog.Level, error) {
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q: expected debug, info, warn, or error", c.Log.Level)
	}
}
