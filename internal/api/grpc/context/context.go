package context

import (
	"context"

	"github.com/zulezhe/env-manager/internal/model"
)

type privilegeKey struct{}

var _ model.ContextManager = (*Manager)(nil)

// Manager carries the caller privilege through request contexts.
// The privilege lives in a private context value so that clients cannot
// forge it through request metadata.
type Manager struct{}

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetPrivilegeToContext returns a child context carrying privilege.
func (m *Manager) SetPrivilegeToContext(ctx context.Context, privilege model.Privilege) context.Context {
	return context.WithValue(ctx, privilegeKey{}, privilege)
}

// GetPrivilegeFromContext returns the privilege set by the authentication
// middleware and whether one was set at all.
func (m *Manager) GetPrivilegeFromContext(ctx context.Context) (model.Privilege, bool) {
	privilege, ok := ctx.Value(privilegeKey{}).(model.Privilege)
	return privilege, ok
}
