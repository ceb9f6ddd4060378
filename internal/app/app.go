// Package app assembles the engine from configuration. The server and the
// envctl CLI share it.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/zulezhe/env-manager/internal/config"
	"github.com/zulezhe/env-manager/internal/logger"
	"github.com/zulezhe/env-manager/internal/model"
	"github.com/zulezhe/env-manager/internal/repository/memory"
	"github.com/zulezhe/env-manager/internal/repository/postgres"
	"github.com/zulezhe/env-manager/internal/service"
	"github.com/zulezhe/env-manager/internal/storage/local"
	storage "github.com/zulezhe/env-manager/internal/storage/minio"
)

// App holds the assembled engine and the resources it owns.
type App struct {
	Engine *service.Engine
	// Listener delivers change notifications; nil when the backend cannot
	// publish them.
	Listener model.ChangeListener

	closers []func() error
}

// Option customizes assembly.
type Option func(*options)

type options struct {
	contextManager model.ContextManager
	environ        []string
}

// WithGuard rejects system scope writes unless contextManager reports an
// elevated privilege for the request.
func WithGuard(contextManager model.ContextManager) Option {
	return func(o *options) {
		o.contextManager = contextManager
	}
}

// WithEnviron seeds the user scope of the memory backend. Defaults to os.Environ().
func WithEnviron(environ []string) Option {
	return func(o *options) {
		o.environ = environ
	}
}

// New builds the backend selected by cfg and the engine on top of it.
func New(ctx context.Context, cfg *config.Config, lg *logger.Logger, opts ...Option) (*App, error) {
	o := options{environ: os.Environ()}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{}
	backend, err := a.openBackend(ctx, cfg, lg, o.environ)
	if err != nil {
		return nil, err
	}

	var guarded model.ScopedBackend = backend
	if o.contextManager != nil {
		guarded = service.NewGuardedBackend(backend, o.contextManager)
	}

	var serializerOpts []service.SerializerOption
	if cfg.Storage.Enabled {
		archive, err := openArchive(ctx, cfg.Storage)
		if err != nil {
			_ = a.Close()
			return nil, err
		}
		serializerOpts = append(serializerOpts, service.WithArchive(archive))
		lg.Info("snapshot archive enabled", "endpoint", cfg.Storage.Endpoint, "bucket", cfg.Storage.Bucket)
	}

	store := service.NewStore(guarded, lg, service.WithNotifyOnCreate(cfg.NotifyOnCreate))
	resolver := service.NewResolver(guarded)
	validator := service.NewValidator(store, resolver, local.NewProber(), lg)
	serializer := service.NewSerializer(store, local.NewFileStore(cfg.ExportDir), lg, serializerOpts...)

	a.Engine = service.NewEngine(store, validator, service.NewSearcher(store), serializer)
	return a, nil
}

func (a *App) openBackend(ctx context.Context, cfg *config.Config, lg *logger.Logger, environ []string) (model.ScopedBackend, error) {
	switch cfg.Backend.Driver {
	case config.DriverMemory:
		backend := memory.New(memory.WithEnviron(model.ScopeUser, environ))
		a.Listener = backend
		return backend, nil
	case config.DriverPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize postgres backend: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		if cfg.Database.ListenChanges {
			a.Listener = postgres.NewListener(db, cfg.Database.NotifyChannel, lg)
		}
		return postgres.NewBackend(db, cfg.Database.NotifyChannel), nil
	default:
		return nil, fmt.Errorf("unsupported backend driver %q", cfg.Backend.Driver)
	}
}

func openArchive(ctx context.Context, cfg config.Storage) (*storage.Client, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}
	archive, err := storage.NewClient(ctx, client, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize snapshot archive: %w", err)
	}
	return archive, nil
}

// Close releases backend resources.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}
