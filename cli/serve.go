package cli

import (
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/lazharichir/dealer/config"
	"github.com/lazharichir/dealer/dealer"
	"github.com/lazharichir/dealer/logger"
	"github.com/lazharichir/dealer/server"
)

func newServeCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		debug      bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dealer over HTTP and WebSocket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if cmd.Flags().Changed("debug") {
				cfg.Debug = debug
			}

			gin.SetMode(cfg.Mode)

			cleanup, err := logger.Setup(logger.Config{File: cfg.LogFile, Debug: cfg.Debug})
			if err != nil {
				return err
			}
			defer func() { _ = cleanup() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			log := logger.L()
			svc := dealer.NewService(dealer.WithLogger(log))
			return server.NewServer(cfg, svc, log).Start(ctx)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	cmd.Flags().StringVar(&addr, "addr", config.DefaultAddr, "listen address")
	cmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	return cmd
}
