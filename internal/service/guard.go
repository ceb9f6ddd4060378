package service

import (
	"context"
	"fmt"

	"github.com/zulezhe/env-manager/internal/model"
)

var _ model.ScopedBackend = (*GuardedBackend)(nil)

// GuardedBackend refuses system scope writes from callers without
// elevated privilege. Reads pass through.
type GuardedBackend struct {
	next           model.ScopedBackend
	contextManager model.ContextManager
}

// NewGuardedBackend wraps next.
func NewGuardedBackend(next model.ScopedBackend, contextManager model.ContextManager) *GuardedBackend {
	return &GuardedBackend{next: next, contextManager: contextManager}
}

func (g *GuardedBackend) List(ctx context.Context, scope model.Scope) ([]model.Entry, error) {
	return g.next.List(ctx, scope)
}

func (g *GuardedBackend) Get(ctx context.Context, scope model.Scope, name string) (string, error) {
	return g.next.Get(ctx, scope, name)
}

func (g *GuardedBackend) Set(ctx context.Context, scope model.Scope, name, value string) error {
	if err := g.authorize(ctx, scope); err != nil {
		return err
	}
	return g.next.Set(ctx, scope, name, value)
}

func (g *GuardedBackend) Delete(ctx context.Context, scope model.Scope, name string) error {
	if err := g.authorize(ctx, scope); err != nil {
		return err
	}
	return g.next.Delete(ctx, scope, name)
}

func (g *GuardedBackend) NotifyChanged(ctx context.Context) error {
	return g.next.NotifyChanged(ctx)
}

func (g *GuardedBackend) authorize(ctx context.Context, scope model.Scope) error {
	if scope != model.ScopeSystem {
		return nil
	}
	privilege, ok := g.contextManager.GetPrivilegeFromContext(ctx)
	if !ok || !privilege.Elevated {
		return fmt.Errorf("%w: %s scope write", model.ErrPermissionDenied, scope)
	}
	return nil
}
