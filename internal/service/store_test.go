package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/zulezhe/env-manager/internal/mocks"
	"github.com/zulezhe/env-manager/internal/model"
	"github.com/zulezhe/env-manager/internal/repository/memory"
	"github.com/zulezhe/env-manager/internal/testutil"
)

var fixedNow = time.Date(2024, 3, 1, 12, 30, 45, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestStore(backend model.ScopedBackend, opts ...StoreOption) *Store {
	opts = append([]StoreOption{WithClock(fixedClock)}, opts...)
	return NewStore(backend, testutil.MakeNoopLogger(), opts...)
}

func TestStore_List(t *testing.T) {
	ctx := context.Background()
	backend := memory.New(
		memory.WithEntries(model.ScopeUser, map[string]string{"GOPATH": "/home/dev/go"}),
		memory.WithEntries(model.ScopeSystem, map[string]string{"PATH": `C:\Windows`, "JAVA_HOME": `C:\jdk`}),
	)
	store := newTestStore(backend)

	vars, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, vars, 3)

	byID := make(map[string]model.EnvironmentVariable, len(vars))
	for _, v := range vars {
		byID[v.ID] = v
		assert.Equal(t, fixedNow.Unix(), v.CreatedAt)
		assert.Equal(t, fixedNow.Unix(), v.UpdatedAt)
		assert.True(t, v.IsValid)
		assert.Nil(t, v.Remark)
	}

	assert.Equal(t, model.EnvironmentVariable{
		ID:        "user_GOPATH",
		Name:      "GOPATH",
		Value:     "/home/dev/go",
		Scope:     model.ScopeUser,
		CreatedAt: fixedNow.Unix(),
		UpdatedAt: fixedNow.Unix(),
		IsValid:   true,
	}, byID["user_GOPATH"])
	assert.Equal(t, model.ScopeSystem, byID["system_PATH"].Scope)
	assert.Equal(t, `C:\jdk`, byID["system_JAVA_HOME"].Value)
}

func TestStore_List_PermissionDenied(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewScopedBackend(t)
	backend.On("List", ctx, model.ScopeUser).Return([]model.Entry{}, nil).Once()
	backend.On("List", ctx, model.ScopeSystem).Return(nil, model.ErrPermissionDenied).Once()

	_, err := newTestStore(backend).List(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrBackendAccess)
	assert.ErrorIs(t, err, model.ErrPermissionDenied)
}

func TestStore_Create(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	store := newTestStore(backend)

	created, err := store.Create(ctx, model.ScopeSystem, "JAVA_HOME", `C:\jdk`)
	require.NoError(t, err)
	assert.Equal(t, "system_JAVA_HOME", created.ID)
	assert.Equal(t, model.ScopeSystem, created.Scope)
	assert.Equal(t, fixedNow.Unix(), created.CreatedAt)

	value, err := backend.Get(ctx, model.ScopeSystem, "JAVA_HOME")
	require.NoError(t, err)
	assert.Equal(t, `C:\jdk`, value)
	assert.Zero(t, backend.Notifications())
}

func TestStore_Create_NotifyOnCreate(t *testing.T) {
	ctx := context.Background()
	backend := memory.New()
	store := newTestStore(backend, WithNotifyOnCreate(true))

	_, err := store.Create(ctx, model.ScopeUser, "EDITOR", "vim")
	require.NoError(t, err)
	assert.Equal(t, 1, backend.Notifications())
}

func TestStore_Create_Errors(t *testing.T) {
	tests := []struct {
		name       string
		scope      model.Scope
		varName    string
		backendErr error
		wantErrs   []error
	}{
		{
			name:       "permission denied is backend access",
			scope:      model.ScopeSystem,
			varName:    "FOO",
			backendErr: model.ErrPermissionDenied,
			wantErrs:   []error{model.ErrBackendAccess, model.ErrPermissionDenied},
		},
		{
			name:       "other failure is write error",
			scope:      model.ScopeUser,
			varName:    "FOO",
			backendErr: errors.New("disk full"),
			wantErrs:   []error{model.ErrWrite},
		},
		{
			name:     "invalid scope",
			scope:    model.Scope(9),
			varName:  "FOO",
			wantErrs: []error{model.ErrInvalidScope},
		},
		{
			name:     "empty name",
			scope:    model.ScopeUser,
			varName:  "",
			wantErrs: []error{model.ErrInvalidID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			backend := mocks.NewScopedBackend(t)
			if tt.backendErr != nil {
				backend.On("Set", ctx, tt.scope, tt.varName, "bar").Return(tt.backendErr).Once()
			}

			_, err := newTestStore(backend).Create(ctx, tt.scope, tt.varName, "bar")
			require.Error(t, err)
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestStore_Update(t *testing.T) {
	ctx := context.Background()
	backend := memory.New(memory.WithEntries(model.ScopeUser, map[string]string{"MY_APP_DIR": "/old"}))
	store := newTestStore(backend)

	updated, err := store.Update(ctx, "user_MY_APP_DIR", "/new")
	require.NoError(t, err)
	assert.Equal(t, "MY_APP_DIR", updated.Name)
	assert.Equal(t, "/new", updated.Value)
	assert.Equal(t, model.ScopeUser, updated.Scope)

	value, err := backend.Get(ctx, model.ScopeUser, "MY_APP_DIR")
	require.NoError(t, err)
	assert.Equal(t, "/new", value)
	assert.Equal(t, 1, backend.Notifications())
}

func TestStore_Update_InvalidID(t *testing.T) {
	backend := mocks.NewScopedBackend(t)

	_, err := newTestStore(backend).Update(context.Background(), "nounderscore", "x")
	assert.ErrorIs(t, err, model.ErrInvalidID)
}

func TestStore_Update_NotifyFailure(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewScopedBackend(t)
	backend.On("Set", ctx, model.ScopeSystem, "FOO", "bar").Return(nil).Once()
	backend.On("NotifyChanged", ctx).Return(errors.New("broadcast timed out")).Once()

	_, err := newTestStore(backend).Update(ctx, "system_FOO", "bar")
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrWrite)
	assert.Contains(t, err.Error(), "change notification failed")
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	backend := memory.New(memory.WithEntries(model.ScopeSystem, map[string]string{"MAVEN_HOME": "/opt/maven"}))
	store := newTestStore(backend)

	require.NoError(t, store.Delete(ctx, "system_MAVEN_HOME"))

	_, err := backend.Get(ctx, model.ScopeSystem, "MAVEN_HOME")
	assert.ErrorIs(t, err, model.ErrNotFound)
	assert.Equal(t, 1, backend.Notifications())
}

func TestStore_Delete_Protected(t *testing.T) {
	names := []string{"PATH", "path", "PathExt", "TEMP", "TMP", "windir", "SystemRoot", "ProgramFiles", "PROGRAMFILES(X86)"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			// No expectations: the backend must not be touched.
			backend := mocks.NewScopedBackend(t)

			err := newTestStore(backend).Delete(context.Background(), "system_"+name)
			assert.ErrorIs(t, err, model.ErrProtectedVariable)
		})
	}
}

func TestStore_Delete_UserPathAllowed(t *testing.T) {
	ctx := context.Background()
	backend := memory.New(memory.WithEntries(model.ScopeUser, map[string]string{"PATH": "/home/dev/bin"}))

	require.NoError(t, newTestStore(backend).Delete(ctx, "user_PATH"))
}

func TestStore_Delete_Errors(t *testing.T) {
	tests := []struct {
		name       string
		backendErr error
		wantErrs   []error
	}{
		{name: "not found", backendErr: model.ErrNotFound, wantErrs: []error{model.ErrNotFound}},
		{name: "permission denied", backendErr: model.ErrPermissionDenied, wantErrs: []error{model.ErrBackendAccess, model.ErrPermissionDenied}},
		{name: "other", backendErr: errors.New("io"), wantErrs: []error{model.ErrWrite}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			backend := mocks.NewScopedBackend(t)
			backend.On("Delete", ctx, model.ScopeSystem, "FOO").Return(tt.backendErr).Once()

			err := newTestStore(backend).Delete(ctx, "system_FOO")
			for _, want := range tt.wantErrs {
				assert.ErrorIs(t, err, want)
			}
		})
	}
}

func TestStore_Get(t *testing.T) {
	ctx := context.Background()
	backend := memory.New(memory.WithEntries(model.ScopeUser, map[string]string{"A_B_C": "x"}))
	store := newTestStore(backend)

	value, err := store.Get(ctx, "user_A_B_C")
	require.NoError(t, err)
	assert.Equal(t, "x", value)

	_, err = store.Get(ctx, "system_A_B_C")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = store.Get(ctx, "machine_A")
	assert.ErrorIs(t, err, model.ErrInvalidID)
}

func TestStore_ConcurrentWritesSameKeySerialize(t *testing.T) {
	ctx := context.Background()
	backend := mocks.NewScopedBackend(t)

	var (
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	backend.On("Set", mock.Anything, model.ScopeUser, mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			mu.Lock()
			active++
			if active > maxSeen {
				maxSeen = active
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			active--
			mu.Unlock()
		}).
		Return(nil)
	backend.On("NotifyChanged", mock.Anything).Return(nil)

	store := newTestStore(backend)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name := "counter"
			if i%2 == 0 {
				name = "COUNTER"
			}
			_, err := store.Update(ctx, "user_"+name, "v")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, maxSeen)
}

func TestIsProtected(t *testing.T) {
	assert.True(t, IsProtected(model.ScopeSystem, "Path"))
	assert.False(t, IsProtected(model.ScopeUser, "PATH"))
	assert.False(t, IsProtected(model.ScopeSystem, "JAVA_HOME"))
}
