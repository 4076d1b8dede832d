package config

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/YuliaD2609/DesktopPotato/logging"
)

// setters maps user-facing keys to typed field updates
var setters = map[string]func(cfg *Config, value string) error{
	"agent-count": func(cfg *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: agent-count must be a non-negative integer, got %q", ErrInvalid, v)
		}
		cfg.Simulation.AgentCount = n
		return nil
	},
	"agent-size": func(cfg *Config, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: agent-size must be a positive integer, got %q", ErrInvalid, v)
		}
		cfg.Simulation.AgentSize = n
		return nil
	},
	"launch-on-boot": func(cfg *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: launch-on-boot must be true or false, got %q", ErrInvalid, v)
		}
		cfg.LaunchOnBoot = b
		return nil
	},
	"sound": func(cfg *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%w: sound must be true or false, got %q", ErrInvalid, v)
		}
		cfg.Sound = b
		return nil
	},
	"log-level": func(cfg *Config, v string) error {
		v = strings.ToLower(strings.TrimSpace(v))
		if !logging.ValidLevel(v) {
			return fmt.Errorf("%w: log-level must be one of %v, got %q", ErrInvalid, validLogLevels, v)
		}
		cfg.Logging.Level = v
		return nil
	},
	"bridge-addr": func(cfg *Config, v string) error {
		next := *cfg
		next.Bridge.Addr = v
		for _, is := range Issues(&next) {
			if is.Path == "bridge.addr" {
				return fmt.Errorf("%w: %s", ErrInvalid, is)
			}
		}
		cfg.Bridge.Addr = v
		return nil
	},
}

// Set updates one setting by key, leaving cfg untouched on error
func Set(cfg *Config, key, value string) error {
	fn, ok := setters[key]
	if !ok {
		return &ConfigError{Message: fmt.Sprintf("unknown key %q (known: %s)", key, strings.Join(Keys(), ", "))}
	}
	return fn(cfg, value)
}

// Keys returns the settable keys in sorted order
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
