package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads the config file, applies environment overrides, and returns
// a merged Config. Missing files produce defaults only; values of the wrong
// type keep their defaults and are reported in Warnings
func Load(path string) (Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			return cfg, nil
		}
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		var typeErr *yaml.TypeError
		if !errors.As(err, &typeErr) {
			return Defaults(), &ConfigError{Message: "failed to parse config: " + err.Error()}
		}
		cfg.Warnings = append(cfg.Warnings, typeErr.Errors...)
	}

	applyDefaults(&cfg)
	applyEnvOverrides(&cfg)
	return cfg, nil
}

// Save writes cfg as YAML, creating the parent directory
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyDefaults replaces out-of-range values with defaults
func applyDefaults(cfg *Config) {
	if cfg.Simulation.AgentCount < 0 {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("simulation.agentCount %d out of range, using %d", cfg.Simulation.AgentCount, DefaultAgentCount))
		cfg.Simulation.AgentCount = DefaultAgentCount
	}
	if cfg.Simulation.AgentSize <= 0 {
		cfg.Warnings = append(cfg.Warnings, fmt.Sprintf("simulation.agentSize %d out of range, using %d", cfg.Simulation.AgentSize, DefaultAgentSize))
		cfg.Simulation.AgentSize = DefaultAgentSize
	}
	if cfg.Simulation.TickRate <= 0 {
		cfg.Simulation.TickRate = DefaultTickRate
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = DefaultLogLevel
	}
	if cfg.Bridge.Addr == "" {
		cfg.Bridge.Addr = DefaultBridgeAddr
	}
}

// applyEnvOverrides reads DESKTOP_POTATO_* environment variables and overrides config values
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("DESKTOP_POTATO_AGENT_COUNT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Simulation.AgentCount = n
		}
	}
	if v := os.Getenv("DESKTOP_POTATO_AGENT_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Simulation.AgentSize = n
		}
	}
	if v := os.Getenv("DESKTOP_POTATO_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
}
