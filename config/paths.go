package config

import (
	"os"
	"path/filepath"
)

const defaultBaseDir = ".desktop-potato"

// Paths holds resolved filesystem paths for settings and logs
type Paths struct {
	Base   string // ~/.desktop-potato
	Config string // ~/.desktop-potato/config.yaml
	Logs   string // ~/.desktop-potato/logs
}

// ResolvePaths computes all standard paths from the home directory
// If DESKTOP_POTATO_HOME is set, it overrides the default base directory
func ResolvePaths() (Paths, error) {
	base := os.Getenv("DESKTOP_POTATO_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Paths{}, err
		}
		base = filepath.Join(home, defaultBaseDir)
	}

	return Paths{
		Base:   base,
		Config: filepath.Join(base, "config.yaml"),
		Logs:   filepath.Join(base, "logs"),
	}, nil
}

// EnsureDirs creates all standard directories if they don't exist
func (p Paths) EnsureDirs() error {
	for _, d := range []string{p.Base, p.Logs} {
		if err := os.MkdirAll(d, 0o700); err != nil {
			return err
		}
	}
	return nil
}
