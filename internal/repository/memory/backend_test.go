package memory

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zulezhe/env-manager/internal/model"
)

func TestBackend_SetGetCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	b := New()

	require.NoError(t, b.Set(ctx, model.ScopeUser, "JavaHome", "/opt/jdk"))
	require.NoError(t, b.Set(ctx, model.ScopeUser, "JAVAHOME", "/opt/jdk21"))

	value, err := b.Get(ctx, model.ScopeUser, "javahome")
	require.NoError(t, err)
	assert.Equal(t, "/opt/jdk21", value)

	entries, err := b.List(ctx, model.ScopeUser)
	require.NoError(t, err)
	assert.Equal(t, []model.Entry{{Name: "JavaHome", Value: "/opt/jdk21"}}, entries)
}

func TestBackend_ScopesAreIndependent(t *testing.T) {
	ctx := context.Background()
	b := New(
		WithEntries(model.ScopeUser, map[string]string{"PATH": "user"}),
		WithEntries(model.ScopeSystem, map[string]string{"PATH": "system"}),
	)

	user, err := b.Get(ctx, model.ScopeUser, "PATH")
	require.NoError(t, err)
	system, err := b.Get(ctx, model.ScopeSystem, "PATH")
	require.NoError(t, err)

	assert.Equal(t, "user", user)
	assert.Equal(t, "system", system)
}

func TestBackend_NotFound(t *testing.T) {
	ctx := context.Background()
	b := New()

	_, err := b.Get(ctx, model.ScopeSystem, "MISSING")
	assert.ErrorIs(t, err, model.ErrNotFound)

	err = b.Delete(ctx, model.ScopeSystem, "MISSING")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestBackend_ReadOnlyScope(t *testing.T) {
	ctx := context.Background()
	b := New(
		WithEntries(model.ScopeSystem, map[string]string{"FOO": "bar"}),
		WithReadOnly(model.ScopeSystem),
	)

	err := b.Set(ctx, model.ScopeSystem, "FOO", "baz")
	assert.ErrorIs(t, err, model.ErrPermissionDenied)

	err = b.Delete(ctx, model.ScopeSystem, "FOO")
	assert.ErrorIs(t, err, model.ErrPermissionDenied)

	value, err := b.Get(ctx, model.ScopeSystem, "FOO")
	require.NoError(t, err)
	assert.Equal(t, "bar", value)

	assert.NoError(t, b.Set(ctx, model.ScopeUser, "FOO", "baz"))
}

func TestBackend_InvalidScope(t *testing.T) {
	_, err := New().List(context.Background(), model.Scope(7))
	assert.ErrorIs(t, err, model.ErrInvalidScope)
}

func TestBackend_WithEnviron(t *testing.T) {
	ctx := context.Background()
	b := New(WithEnviron(model.ScopeUser, []string{"HOME=/home/dev", "EMPTY=", "broken", "=nameless", "EQ=a=b"}))

	entries, err := b.List(ctx, model.ScopeUser)
	require.NoError(t, err)
	assert.Equal(t, []model.Entry{
		{Name: "EMPTY", Value: ""},
		{Name: "EQ", Value: "a=b"},
		{Name: "HOME", Value: "/home/dev"},
	}, entries)
}

func TestBackend_ListenReceivesNotifications(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b := New()
	var received atomic.Int32
	done := make(chan error, 1)
	go func() {
		done <- b.Listen(ctx, func(event model.ChangeEvent) {
			assert.Equal(t, changeSource, event.Source)
			received.Add(1)
		})
	}()

	require.Eventually(t, func() bool {
		_ = b.NotifyChanged(ctx)
		return received.Load() > 0
	}, time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("listener did not stop")
	}
	assert.Positive(t, b.Notifications())
}
