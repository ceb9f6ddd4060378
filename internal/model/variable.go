package model

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// Scope identifies which environment store a variable lives in.
type Scope int

const (
	// ScopeUser is the per-user environment.
	ScopeUser Scope = iota + 1
	// ScopeSystem is the machine-wide environment.
	ScopeSystem
)

// Scopes lists every scope in listing order: user entries first, system second.
var Scopes = []Scope{ScopeUser, ScopeSystem}

const (
	scopeTagUser   = "user"
	scopeTagSystem = "system"
)

// String returns the scope tag used in ids and snapshots.
func (s Scope) String() string {
	switch s {
	case ScopeUser:
		return scopeTagUser
	case ScopeSystem:
		return scopeTagSystem
	default:
		return fmt.Sprintf("scope(%d)", int(s))
	}
}

// Valid reports whether s is one of the two known scopes.
func (s Scope) Valid() bool {
	return s == ScopeUser || s == ScopeSystem
}

// ParseScope converts a scope tag into a Scope.
func ParseScope(tag string) (Scope, error) {
	switch tag {
	case scopeTagUser:
		return ScopeUser, nil
	case scopeTagSystem:
		return ScopeSystem, nil
	default:
		return 0, fmt.Errorf("%w: unknown scope %q", ErrInvalidScope, tag)
	}
}

// MarshalJSON renders the scope as its tag.
func (s Scope) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidScope, int(s))
	}
	return json.Marshal(s.String())
}

// UnmarshalJSON parses a scope tag.
func (s *Scope) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScope, err)
	}
	parsed, err := ParseScope(tag)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// VariableKey is the structured identity of a variable.
// The delimited id form only exists at the API edge.
type VariableKey struct {
	Scope Scope
	Name  string
}

// ID renders the key as "<scope-tag>_<name>".
func (k VariableKey) ID() string {
	return k.Scope.String() + "_" + k.Name
}

// ParseID decodes an id. The scope tag ends at the first underscore;
// everything after it, further underscores included, is the name.
func ParseID(id string) (VariableKey, error) {
	tag, name, ok := strings.Cut(id, "_")
	if !ok {
		return VariableKey{}, fmt.Errorf("%w: %q has no scope separator", ErrInvalidID, id)
	}
	scope, err := ParseScope(tag)
	if err != nil {
		return VariableKey{}, fmt.Errorf("%w: %q: %w", ErrInvalidID, id, err)
	}
	if name == "" {
		return VariableKey{}, fmt.Errorf("%w: %q has an empty name", ErrInvalidID, id)
	}
	return VariableKey{Scope: scope, Name: name}, nil
}

// EnvironmentVariable is one listed variable. Timestamps and IsValid are
// computed for each listing; the backend stores only name and value.
type EnvironmentVariable struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Value     string  `json:"value"`
	Scope     Scope   `json:"type"`
	Remark    *string `json:"remark,omitempty"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`
	IsValid   bool    `json:"isValid"`
}

// Key returns the structured identity of the variable.
func (v EnvironmentVariable) Key() VariableKey {
	return VariableKey{Scope: v.Scope, Name: v.Name}
}

// Entry is a raw name/value pair as stored by a backend.
type Entry struct {
	Name  string
	Value string
}

// ScopedBackend is the per-scope key/value store the engine runs on.
// Implementations return ErrNotFound for missing names and
// ErrPermissionDenied when the scope cannot be accessed.
type ScopedBackend interface {
	List(ctx context.Context, scope Scope) ([]Entry, error)
	Get(ctx context.Context, scope Scope, name string) (string, error)
	Set(ctx context.Context, scope Scope, name, value string) error
	Delete(ctx context.Context, scope Scope, name string) error
	// NotifyChanged broadcasts that the environment changed so that
	// processes started afterwards observe the new values.
	NotifyChanged(ctx context.Context) error
}
