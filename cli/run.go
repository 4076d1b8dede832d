package cli

import (
	"context"
	"fmt"
	"os/signal"
	"sync"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/YuliaD2609/DesktopPotato/config"
	"github.com/YuliaD2609/DesktopPotato/terminal"
)

// overrides are command-line settings applied on top of the file
type overrides struct {
	agents int
	size   int
	sound  bool
	seed   uint64
}

func (o overrides) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("agents") {
		cfg.Simulation.AgentCount = o.agents
	}
	if cmd.Flags().Changed("size") {
		cfg.Simulation.AgentSize = o.size
	}
	if cmd.Flags().Changed("sound") {
		cfg.Sound = o.sound
	}
	if cmd.Flags().Changed("seed") {
		cfg.Simulation.Seed = o.seed
	}
}

func addOverrideFlags(cmd *cobra.Command, o *overrides) {
	cmd.Flags().IntVar(&o.agents, "agents", config.DefaultAgentCount, "number of companions")
	cmd.Flags().IntVar(&o.size, "size", config.DefaultAgentSize, "companion size in pixels")
	cmd.Flags().BoolVar(&o.sound, "sound", false, "play a tone when the pet jumps")
	cmd.Flags().Uint64Var(&o.seed, "seed", 0, "random seed (0 = time based)")
}

func newRunCmd() *cobra.Command {
	var o overrides

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the pet in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			o.apply(cmd, &cfg)
			if err := config.Validate(&cfg); err != nil {
				return err
			}

			// The screen owns stdout, log to a file instead
			flog, closer, err := fileLogger(cfg)
			if err != nil {
				return err
			}
			defer closer.Close()
			installCrashHandler(flog)

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("opening terminal: %w", err)
			}
			display := terminal.NewDisplay(screen, terminal.DefaultConfig(), flog.Sub("terminal"))

			a := newApp(cfg, paths.Config, appPorts{
				cursor:    display,
				workArea:  display,
				presenter: display,
			}, flog)
			defer a.logEvents()()

			quit := make(chan struct{})
			var quitOnce sync.Once
			display.OnCommand(func(c terminal.Command) {
				if c == terminal.CommandQuit {
					quitOnce.Do(func() { close(quit) })
					return
				}
				if err := a.apply(c); err != nil {
					flog.Warn().Err(err).Str("command", c.String()).Msg("command rejected")
				}
			})
			display.SetStatus(statusLine(a.sim.Status(), terminal.Help))

			if err := display.Start(); err != nil {
				return fmt.Errorf("starting terminal: %w", err)
			}
			defer display.Stop()

			a.open()
			defer a.close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			select {
			case <-ctx.Done():
			case <-quit:
			case <-display.Done():
			}
			flog.Info().Msg("shutting down")
			return nil
		},
	}

	addOverrideFlags(cmd, &o)
	return cmd
}

// apply maps a key command onto the app
func (a *app) apply(c terminal.Command) error {
	switch c {
	case terminal.CommandToggle:
		a.toggle()
	case terminal.CommandMore:
		return a.adjustCount(1)
	case terminal.CommandFewer:
		return a.adjustCount(-1)
	case terminal.CommandGrow:
		return a.adjustSize(sizeStep)
	case terminal.CommandShrink:
		return a.adjustSize(-sizeStep)
	}
	return nil
}
