package config

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/YuliaD2609/DesktopPotato/logging"
)

// ValidationIssue describes a problem with a config value
type ValidationIssue struct {
	Path    string
	Message string
}

func (v ValidationIssue) String() string {
	return fmt.Sprintf("%s: %s", v.Path, v.Message)
}

var validLogLevels = logging.LevelNames

// Validate checks a Config, returning an error wrapping ErrInvalid listing every issue
func Validate(cfg *Config) error {
	issues := Issues(cfg)
	if len(issues) == 0 {
		return nil
	}
	parts := make([]string, len(issues))
	for i, is := range issues {
		parts[i] = is.String()
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(parts, "; "))
}

// Issues checks a Config for issues. Returns nil if valid
func Issues(cfg *Config) []ValidationIssue {
	var issues []ValidationIssue

	if cfg.Simulation.AgentCount < 0 {
		issues = append(issues, ValidationIssue{
			Path:    "simulation.agentCount",
			Message: fmt.Sprintf("must be >= 0, got %d", cfg.Simulation.AgentCount),
		})
	}
	if cfg.Simulation.AgentSize <= 0 {
		issues = append(issues, ValidationIssue{
			Path:    "simulation.agentSize",
			Message: fmt.Sprintf("must be > 0, got %d", cfg.Simulation.AgentSize),
		})
	}
	if cfg.Simulation.TickRate <= 0 || cfg.Simulation.TickRate > 1000 {
		issues = append(issues, ValidationIssue{
			Path:    "simulation.tickRate",
			Message: fmt.Sprintf("must be 1-1000, got %d", cfg.Simulation.TickRate),
		})
	}

	if cfg.Logging.Level != "" && !logging.ValidLevel(cfg.Logging.Level) {
		issues = append(issues, ValidationIssue{
			Path:    "logging.level",
			Message: fmt.Sprintf("must be one of %v, got %q", validLogLevels, cfg.Logging.Level),
		})
	}

	if _, port, err := net.SplitHostPort(cfg.Bridge.Addr); err != nil {
		issues = append(issues, ValidationIssue{
			Path:    "bridge.addr",
			Message: err.Error(),
		})
	} else if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		issues = append(issues, ValidationIssue{
			Path:    "bridge.addr",
			Message: fmt.Sprintf("port must be 0-65535, got %q", port),
		})
	}

	return issues
}
