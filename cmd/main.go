package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"google.golang.org/grpc/reflection"

	grpcctx "github.com/zulezhe/env-manager/internal/api/grpc/context"
	"github.com/zulezhe/env-manager/internal/api/grpc/router"
	grpcServer "github.com/zulezhe/env-manager/internal/api/grpc/server"
	"github.com/zulezhe/env-manager/internal/app"
	"github.com/zulezhe/env-manager/internal/config"
	"github.com/zulezhe/env-manager/internal/logger"
	"github.com/zulezhe/env-manager/internal/model"
	"github.com/zulezhe/env-manager/internal/server"
	"github.com/zulezhe/env-manager/internal/service"
	"github.com/zulezhe/env-manager/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.NewWithOptions(cfg.LogLevel, logger.Format(cfg.LogFormat), os.Stdout)

	ctxMgr := grpcctx.NewManager()
	application, err := app.New(ctx, cfg, logger, app.WithGuard(ctxMgr))
	if err != nil {
		logger.Fatal("failed to initialize engine", "error", err)
	}
	defer application.Close()

	if cfg.AdminPassphrase == "" {
		logger.Warn("ADMIN_PASSPHRASE is not set, system scope writes are disabled")
	}
	tokenService := service.NewTokenService(token.NewJWT(cfg.JWT.Secret), cfg.AdminPassphrase, logger)

	var wg sync.WaitGroup
	if application.Listener != nil {
		wg.Add(1)
		go func(l model.ChangeListener) {
			defer wg.Done()
			watchChanges(ctx, l, logger)
		}(application.Listener)
	}

	grpcServer := registerGRPCServer(logger, application.Engine, tokenService, ctxMgr, fmt.Sprintf(":%s", cfg.GRPC.Port))
	sl := server.NewSecurityLayer(cfg.GRPC)

	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "backend", cfg.Backend.Driver)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(grpcServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := grpcServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", grpcServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}

func registerGRPCServer(
	logger *logger.Logger,
	engine *service.Engine,
	tokenService *service.TokenService,
	ctxMgr model.ContextManager,
	addr string,
) *grpcServer.GRPCServer {
	r := router.New(engine, tokenService, tokenService, ctxMgr, logger)
	s := r.Register()

	reflection.Register(s)

	return grpcServer.NewGRPCServer(s, addr)
}

// watchChanges logs environment change broadcasts until ctx is cancelled.
func watchChanges(ctx context.Context, listener model.ChangeListener, logger *logger.Logger) {
	err := listener.Listen(ctx, func(event model.ChangeEvent) {
		logger.Info("environment changed", "source", event.Source, "payload", event.Payload)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("change listener stopped", "error", err)
	}
}
