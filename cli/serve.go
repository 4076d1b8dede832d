package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/YuliaD2609/DesktopPotato/config"
	"github.com/YuliaD2609/DesktopPotato/network"
)

func newServeCmd() *cobra.Command {
	var (
		o    overrides
		addr string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pet to a browser overlay over a websocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			o.apply(cmd, &cfg)
			if addr != "" {
				cfg.Bridge.Addr = addr
			}
			if err := config.Validate(&cfg); err != nil {
				return err
			}

			srvLog := log
			if cfg.Logging.File != "" {
				flog, closer, err := fileLogger(cfg)
				if err != nil {
					return err
				}
				defer closer.Close()
				srvLog = flog
				installCrashHandler(srvLog)
			}

			bcfg := network.DefaultConfig()
			bcfg.Address = cfg.Bridge.Addr
			bridge := network.NewBridge(bcfg, srvLog.Sub("bridge"))

			a := newApp(cfg, paths.Config, appPorts{
				cursor:    bridge,
				workArea:  bridge,
				presenter: bridge,
			}, srvLog)
			defer a.logEvents()()
			bridge.OnControl(func(c network.Control) {
				if err := a.control(c); err != nil {
					srvLog.Warn().Err(err).Str("client", c.Client).Str("action", string(c.Action)).Msg("control rejected")
				}
			})

			if err := bridge.Start(); err != nil {
				return fmt.Errorf("starting bridge: %w", err)
			}
			defer bridge.Stop()

			a.open()
			defer a.close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			<-ctx.Done()

			srvLog.Info().Msg("shutting down")
			return nil
		},
	}

	addOverrideFlags(cmd, &o)
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, "+config.DefaultBridgeAddr+")")
	return cmd
}

// control maps a bridge control frame onto the app
func (a *app) control(c network.Control) error {
	switch c.Action {
	case network.ActionStart:
		a.sim.Start()
	case network.ActionStop:
		a.sim.Stop()
	case network.ActionToggle:
		a.toggle()
	case network.ActionCount:
		return a.setCount(c.Value)
	case network.ActionSize:
		return a.setSize(c.Value)
	}
	return nil
}
