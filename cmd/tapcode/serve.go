package main

import (
	"os/signal"
	"strings"
	"syscall"

	"github.com/danmuck/tapcode/internal/config"
	"github.com/danmuck/tapcode/internal/server"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the encode/decode API over HTTP",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, active, err := resolve(cmd)
		if err != nil {
			return err
		}
		addr := cfg.Server.Addr
		if cmd.Flags().Changed("addr") {
			addr = strings.TrimSpace(serveAddr)
		}

		gin.SetMode(gin.ReleaseMode)
		srv := server.New(server.Config{
			Addr:        addr,
			CorsOrigins: cfg.Server.CorsOrigins,
			AdminToken:  cfg.Server.AdminToken,
		}, active, config.Store(cfg))

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides server.addr)")
	rootCmd.AddCommand(serveCmd)
}
