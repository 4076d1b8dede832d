package network

import "time"

// DefaultAddr binds the bridge to loopback only
const DefaultAddr = "127.0.0.1:18790"

// Config holds bridge configuration
type Config struct {
	// Address to bind
	Address string

	// Path serving the websocket upgrade
	Path string

	// Timing
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Buffer sizes
	ReadBufferSize  int
	WriteBufferSize int
	SendQueueSize   int

	// AllowedOrigins lists accepted Origin headers, empty accepts any
	AllowedOrigins []string
}

// DefaultConfig returns loopback defaults
func DefaultConfig() *Config {
	return &Config{
		Address:         DefaultAddr,
		Path:            "/ws",
		ReadTimeout:     60 * time.Second,
		WriteTimeout:    5 * time.Second,
		ReadBufferSize:  4 * 1024,
		WriteBufferSize: 64 * 1024,
		SendQueueSize:   64,
	}
}
