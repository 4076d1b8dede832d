package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid config")

// ConfigError represents a configuration error
type ConfigError struct {
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s", e.Message)
}

// Config is the persisted settings document
type Config struct {
	Simulation   SimulationConfig `yaml:"simulation"`
	LaunchOnBoot bool             `yaml:"launchOnBoot"`
	Sound        bool             `yaml:"sound"`
	Logging      LoggingConfig    `yaml:"logging"`
	Bridge       BridgeConfig     `yaml:"bridge"`

	// Warnings lists values that could not be decoded and fell back to defaults
	Warnings []string `yaml:"-"`
}

// SimulationConfig is the population and clock setup
type SimulationConfig struct {
	AgentCount int    `yaml:"agentCount"`
	AgentSize  int    `yaml:"agentSize"`
	TickRate   int    `yaml:"tickRate"`
	Seed       uint64 `yaml:"seed"` // 0 = time based
}

// LoggingConfig selects level and optional log file
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// BridgeConfig is the websocket overlay listener
type BridgeConfig struct {
	Addr string `yaml:"addr"`
}

const (
	DefaultAgentCount = 4
	DefaultAgentSize  = 100
	DefaultTickRate   = 60
	DefaultLogLevel   = "info"
	DefaultBridgeAddr = "127.0.0.1:18790"
)

// Defaults returns a Config with sensible defaults applied
func Defaults() Config {
	return Config{
		Simulation: SimulationConfig{
			AgentCount: DefaultAgentCount,
			AgentSize:  DefaultAgentSize,
			TickRate:   DefaultTickRate,
		},
		LaunchOnBoot: true,
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
		Bridge: BridgeConfig{
			Addr: DefaultBridgeAddr,
		},
	}
}
