package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/zulezhe/env-manager/internal/logger"
	"github.com/zulezhe/env-manager/internal/model"
)

// protectedSystemNames can never be deleted from the system scope.
var protectedSystemNames = map[string]struct{}{
	"PATH":              {},
	"PATHEXT":           {},
	"TEMP":              {},
	"TMP":               {},
	"WINDIR":            {},
	"SYSTEMROOT":        {},
	"PROGRAMFILES":      {},
	"PROGRAMFILES(X86)": {},
}

// IsProtected reports whether deleting name from scope is forbidden.
func IsProtected(scope model.Scope, name string) bool {
	if scope != model.ScopeSystem {
		return false
	}
	_, ok := protectedSystemNames[strings.ToUpper(name)]
	return ok
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithClock replaces the wall clock used to stamp listings.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		s.now = now
	}
}

// WithNotifyOnCreate makes Create broadcast a change notification like Update does.
func WithNotifyOnCreate(enabled bool) StoreOption {
	return func(s *Store) {
		s.notifyOnCreate = enabled
	}
}

// Store is the CRUD facade over a scoped backend.
type Store struct {
	backend        model.ScopedBackend
	logger         *logger.Logger
	now            func() time.Time
	notifyOnCreate bool
	locks          *keyedMutex
}

// NewStore creates a Store over backend.
func NewStore(backend model.ScopedBackend, logger *logger.Logger, opts ...StoreOption) *Store {
	s := &Store{
		backend: backend,
		logger:  logger,
		now:     time.Now,
		locks:   newKeyedMutex(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List reads the user scope and then the system scope.
func (s *Store) List(ctx context.Context) ([]model.EnvironmentVariable, error) {
	now := s.now().Unix()

	var vars []model.EnvironmentVariable
	for _, scope := range model.Scopes {
		entries, err := s.backend.List(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s scope: %w", scope, accessError(err))
		}
		for _, e := range entries {
			vars = append(vars, s.toVariable(scope, e.Name, e.Value, now))
		}
	}

	return vars, nil
}

// Create upserts name in scope.
func (s *Store) Create(ctx context.Context, scope model.Scope, name, value string) (model.EnvironmentVariable, error) {
	if !scope.Valid() {
		return model.EnvironmentVariable{}, fmt.Errorf("%w: %s", model.ErrInvalidScope, scope)
	}
	if name == "" {
		return model.EnvironmentVariable{}, fmt.Errorf("%w: empty name", model.ErrInvalidID)
	}

	key := model.VariableKey{Scope: scope, Name: name}
	if err := s.set(ctx, key, value, s.notifyOnCreate); err != nil {
		return model.EnvironmentVariable{}, err
	}

	s.logger.Debug("variable created", "id", key.ID())
	return s.toVariable(scope, name, value, s.now().Unix()), nil
}

// Update replaces the value behind id and broadcasts the change.
func (s *Store) Update(ctx context.Context, id, value string) (model.EnvironmentVariable, error) {
	key, err := model.ParseID(id)
	if err != nil {
		return model.EnvironmentVariable{}, err
	}

	if err := s.set(ctx, key, value, true); err != nil {
		return model.EnvironmentVariable{}, err
	}

	s.logger.Debug("variable updated", "id", id)
	return s.toVariable(key.Scope, key.Name, value, s.now().Unix()), nil
}

// Delete removes the variable behind id and broadcasts the change.
// Protected system names are refused before the backend is touched.
func (s *Store) Delete(ctx context.Context, id string) error {
	key, err := model.ParseID(id)
	if err != nil {
		return err
	}
	if IsProtected(key.Scope, key.Name) {
		return fmt.Errorf("%w: %s", model.ErrProtectedVariable, key.Name)
	}

	unlock := s.locks.Lock(lockKey(key))
	defer unlock()

	if err := s.backend.Delete(ctx, key.Scope, key.Name); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return fmt.Errorf("failed to delete %s: %w", id, err)
		}
		return fmt.Errorf("failed to delete %s: %w", id, writeError(err))
	}

	if err := s.backend.NotifyChanged(ctx); err != nil {
		return fmt.Errorf("%w: %s deleted, change notification failed: %w", model.ErrWrite, id, err)
	}

	s.logger.Debug("variable deleted", "id", id)
	return nil
}

// Get returns the raw stored value behind id.
func (s *Store) Get(ctx context.Context, id string) (string, error) {
	key, err := model.ParseID(id)
	if err != nil {
		return "", err
	}

	value, err := s.backend.Get(ctx, key.Scope, key.Name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", fmt.Errorf("failed to get %s: %w", id, err)
		}
		return "", fmt.Errorf("failed to get %s: %w", id, accessError(err))
	}

	return value, nil
}

func (s *Store) set(ctx context.Context, key model.VariableKey, value string, notify bool) error {
	unlock := s.locks.Lock(lockKey(key))
	defer unlock()

	if err := s.backend.Set(ctx, key.Scope, key.Name, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key.ID(), writeError(err))
	}

	if !notify {
		return nil
	}
	if err := s.backend.NotifyChanged(ctx); err != nil {
		return fmt.Errorf("%w: %s stored, change notification failed: %w", model.ErrWrite, key.ID(), err)
	}
	return nil
}

func (s *Store) toVariable(scope model.Scope, name, value string, now int64) model.EnvironmentVariable {
	key := model.VariableKey{Scope: scope, Name: name}
	return model.EnvironmentVariable{
		ID:        key.ID(),
		Name:      name,
		Value:     value,
		Scope:     scope,
		CreatedAt: now,
		UpdatedAt: now,
		IsValid:   true,
	}
}

// accessError tags permission failures as backend access errors.
func accessError(err error) error {
	if errors.Is(err, model.ErrPermissionDenied) {
		return fmt.Errorf("%w: %w", model.ErrBackendAccess, err)
	}
	return err
}

// writeError classifies a failed set or delete.
func writeError(err error) error {
	if errors.Is(err, model.ErrPermissionDenied) {
		return fmt.Errorf("%w: %w", model.ErrBackendAccess, err)
	}
	return fmt.Errorf("%w: %w", model.ErrWrite, err)
}

func lockKey(key model.VariableKey) string {
	return key.Scope.String() + "_" + strings.ToUpper(key.Name)
}

// keyedMutex serializes writers per key and drops idle entries.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*refMutex
}

type refMutex struct {
	sync.Mutex
	refs int
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*refMutex)}
}

// Lock acquires the mutex for key and returns its release func.
func (k *keyedMutex) Lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &refMutex{}
		k.locks[key] = m
	}
	m.refs++
	k.mu.Unlock()

	m.Lock()
	return func() {
		m.Unlock()
		k.mu.Lock()
		m.refs--
		if m.refs == 0 {
			delete(k.locks, key)
		}
		k.mu.Unlock()
	}
}
