package cli

import (
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/YuliaD2609/DesktopPotato/config"
	"github.com/YuliaD2609/DesktopPotato/core"
	"github.com/YuliaD2609/DesktopPotato/logging"
)

var (
	cfgFile  string
	logLevel string

	// loaded at init time
	paths config.Paths
	log   *logging.Logger
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "desktop-potato",
		Short: "Desktop pet that follows the pointer",
		Long:  "Desktop Potato animates a pointer-following pet and a small crowd of companions that wander, chat and flee.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			paths, err = config.ResolvePaths()
			if err != nil {
				return err
			}
			if cfgFile != "" {
				paths.Config = cfgFile
			}
			level := logLevel
			if level == "" {
				level = config.DefaultLogLevel
			}
			log = logging.New(nil, level)
			installCrashHandler(log)
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.desktop-potato/config.yaml)")
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, silent)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func installCrashHandler(l *logging.Logger) {
	core.SetCrashHandler(func(r any, stack []byte) {
		l.Error().Interface("panic", r).Bytes("stack", stack).Msg("recovered panic")
	})
}

// loadConfig reads the settings file, logging values that fell back to defaults
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(paths.Config)
	if err != nil {
		return cfg, err
	}
	for _, w := range cfg.Warnings {
		log.Warn().Str("path", paths.Config).Msg(w)
	}
	return cfg, nil
}

// fileLogger reopens the logger on a file when the screen owns the terminal
// The level flag wins over the configured level
func fileLogger(cfg config.Config) (*logging.Logger, io.Closer, error) {
	path := cfg.Logging.File
	if path == "" {
		path = filepath.Join(paths.Logs, "desktop-potato.log")
	}
	f, err := logging.OpenFile(path)
	if err != nil {
		return nil, nil, err
	}
	return logging.New(f, effectiveLevel(cfg)), f, nil
}

func effectiveLevel(cfg config.Config) string {
	if logLevel != "" {
		return logLevel
	}
	return cfg.Logging.Level
}
