package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zulezhe/env-manager/internal/app"
	"github.com/zulezhe/env-manager/internal/cli"
	"github.com/zulezhe/env-manager/internal/config"
	"github.com/zulezhe/env-manager/internal/logger"
)

var buildVersion = "N/A" // set by ldflags

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse config: %v\n", err)
		return 1
	}
	// stdout carries command output only
	lg := logger.NewWithOptions(cfg.LogLevel, logger.Format(cfg.LogFormat), os.Stderr)

	// The local operator is trusted with both scopes, so no guard is installed.
	application, err := app.New(ctx, cfg, lg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize engine: %v\n", err)
		return 1
	}
	defer application.Close()

	if err := cli.NewRootCommand(application.Engine, buildVersion).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
