// Command mcp serves the match analysis tools over MCP stdio.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/matchlens/internal/adapters/mcp"
	app "github.com/okian/matchlens/internal/app"
	"github.com/okian/matchlens/internal/config"
	"github.com/okian/matchlens/pkg/logger"
)

// version is reported to MCP clients; overridden at link time.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// stdout carries the protocol.
	if err := logger.Init(logger.WithWriter(os.Stderr), logger.WithJSON(cfg.LogJSON)); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		_ = logger.SetLevelString("info")
	}
	l := logger.Get()

	svc, err := app.FromConfig(cfg, l.Named("service"))
	if err != nil {
		return fmt.Errorf("failed to build service: %w", err)
	}

	l.Info(ctx, "serving MCP tools on stdio",
		logger.String("provider", cfg.Provider),
		logger.Bool("generation", svc.GenerationEnabled()),
	)
	return mcp.Run(ctx, mcp.NewServer(svc, l, version))
}
