// Package memory provides a process-local scoped backend.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/zulezhe/env-manager/internal/model"
)

var (
	_ model.ScopedBackend  = (*Backend)(nil)
	_ model.ChangeListener = (*Backend)(nil)
)

// changeSource names events produced by this backend.
const changeSource = "memory"

// Option configures a Backend.
type Option func(*Backend)

// WithEntries seeds scope with the given name/value pairs.
func WithEntries(scope model.Scope, entries map[string]string) Option {
	return func(b *Backend) {
		for name, value := range entries {
			b.scopes[scope][strings.ToUpper(name)] = model.Entry{Name: name, Value: value}
		}
	}
}

// WithEnviron seeds scope from KEY=VALUE pairs such as os.Environ().
// Malformed pairs are ignored.
func WithEnviron(scope model.Scope, environ []string) Option {
	return func(b *Backend) {
		for _, kv := range environ {
			name, value, ok := strings.Cut(kv, "=")
			if !ok || name == "" {
				continue
			}
			b.scopes[scope][strings.ToUpper(name)] = model.Entry{Name: name, Value: value}
		}
	}
}

// WithReadOnly makes every write to scope fail with ErrPermissionDenied.
func WithReadOnly(scope model.Scope) Option {
	return func(b *Backend) {
		b.readOnly[scope] = true
	}
}

// Backend keeps both scopes in memory. Names are case-insensitive and
// keep the casing they were first stored with.
type Backend struct {
	mu          sync.RWMutex
	scopes      map[model.Scope]map[string]model.Entry
	readOnly    map[model.Scope]bool
	subscribers map[int]chan model.ChangeEvent
	nextID      int
	notified    int
}

// New creates an empty Backend.
func New(opts ...Option) *Backend {
	b := &Backend{
		scopes:      make(map[model.Scope]map[string]model.Entry, len(model.Scopes)),
		readOnly:    make(map[model.Scope]bool),
		subscribers: make(map[int]chan model.ChangeEvent),
	}
	for _, scope := range model.Scopes {
		b.scopes[scope] = make(map[string]model.Entry)
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// List returns the entries of scope sorted by name.
func (b *Backend) List(_ context.Context, scope model.Scope) ([]model.Entry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entries, err := b.scope(scope)
	if err != nil {
		return nil, err
	}

	list := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		list = append(list, e)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return list, nil
}

func (b *Backend) Get(_ context.Context, scope model.Scope, name string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	entries, err := b.scope(scope)
	if err != nil {
		return "", err
	}

	e, ok := entries[strings.ToUpper(name)]
	if !ok {
		return "", model.ErrNotFound
	}
	return e.Value, nil
}

func (b *Backend) Set(_ context.Context, scope model.Scope, name, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries, err := b.writable(scope)
	if err != nil {
		return err
	}

	key := strings.ToUpper(name)
	if existing, ok := entries[key]; ok {
		name = existing.Name
	}
	entries[key] = model.Entry{Name: name, Value: value}
	return nil
}

func (b *Backend) Delete(_ context.Context, scope model.Scope, name string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	entries, err := b.writable(scope)
	if err != nil {
		return err
	}

	key := strings.ToUpper(name)
	if _, ok := entries[key]; !ok {
		return model.ErrNotFound
	}
	delete(entries, key)
	return nil
}

// NotifyChanged delivers a change event to every current listener.
// Listeners that are not keeping up miss the event.
func (b *Backend) NotifyChanged(_ context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.notified++
	event := model.ChangeEvent{Source: changeSource, Payload: "Environment"}
	for _, ch := range b.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
	return nil
}

// Notifications reports how many times NotifyChanged was called.
func (b *Backend) Notifications() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.notified
}

// Listen calls handle for every change notification until ctx is done.
func (b *Backend) Listen(ctx context.Context, handle func(model.ChangeEvent)) error {
	ch := make(chan model.ChangeEvent, 16)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subscribers[id] = ch
	b.mu.Unlock()

	defer func() {
		b.mu.Lock()
		delete(b.subscribers, id)
		b.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-ch:
			handle(event)
		}
	}
}

func (b *Backend) scope(scope model.Scope) (map[string]model.Entry, error) {
	entries, ok := b.scopes[scope]
	if !ok {
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidScope, scope)
	}
	return entries, nil
}

func (b *Backend) writable(scope model.Scope) (map[string]model.Entry, error) {
	entries, err := b.scope(scope)
	if err != nil {
		return nil, err
	}
	if b.readOnly[scope] {
		return nil, fmt.Errorf("%w: %s scope is read-only", model.ErrPermissionDenied, scope)
	}
	return entries, nil
}
