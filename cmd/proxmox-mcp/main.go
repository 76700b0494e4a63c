package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Jcblmao/proxmoxMCP/internal/config"
	"github.com/Jcblmao/proxmoxMCP/internal/logging"
	"github.com/Jcblmao/proxmoxMCP/internal/mcp"
	"github.com/Jcblmao/proxmoxMCP/pkg/proxmox"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// Version information (set at build time with -ldflags)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const shutdownTimeout = 10 * time.Second

var rootCmd = &cobra.Command{
	Use:     "proxmox-mcp",
	Short:   "MCP server for Proxmox VE",
	Long:    `proxmox-mcp exposes Proxmox Virtual Environment (PVE) management tools over the Model Context Protocol`,
	Version: Version,
	Run: func(cmd *cobra.Command, args []string) {
		runServer()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("proxmox-mcp %s\n", Version)
		if BuildTime != "unknown" {
			fmt.Printf("Built: %s\n", BuildTime)
		}
		if GitCommit != "unknown" {
			fmt.Printf("Commit: %s\n", GitCommit)
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer() {
	// Baseline logger for early startup messages
	logging.Init(logging.Config{
		Format:    "auto",
		Level:     "info",
		Component: "proxmox-mcp",
	})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Re-initialize logging with configuration-driven settings
	logging.Init(logging.Config{
		Format:    cfg.LogFormat,
		Level:     cfg.LogLevel,
		Component: "proxmox-mcp",
	})

	client, err := proxmox.NewClient(proxmox.Config{
		Host:        cfg.Host,
		TokenID:     cfg.TokenID,
		TokenSecret: cfg.TokenSecret,
		VerifySSL:   cfg.VerifySSL,
		Timeout:     cfg.Timeout,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Proxmox client")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startMetricsServer(ctx, cfg.MetricsListen)

	executor := mcp.NewExecutor(client)
	server := mcp.NewServer(cfg.Listen, executor)

	log.Info().Str("host", cfg.Host).Msg("Proxmox endpoint configured")

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("MCP server stopped unexpectedly")
		}
	}

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := server.Stop(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Failed to shut down MCP server cleanly")
	}
}
