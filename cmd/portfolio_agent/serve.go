package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/portfolio-builder/internal/config"
	"github.com/jonathan/portfolio-builder/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio builder HTTP API server",
	RunE:  runServe,
}

var (
	servePort   int
	serveOrigin string
)

func init() {
	cfg := config.FromEnv()
	serveCmd.Flags().IntVarP(&servePort, "port", "p", cfg.Port, "Port to listen on")
	serveCmd.Flags().StringVar(&serveOrigin, "origin", cfg.Origin, "Origin used in generated share URLs")

	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(server.Config{Port: servePort, Origin: serveOrigin})
	return srv.Start(ctx)
}
