package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/zulezhe/env-manager/internal/model"
)

// maxExpandPasses bounds reference expansion so that cycles terminate.
const maxExpandPasses = 5

var referencePattern = regexp.MustCompile(`%([^%]+)%`)

// Resolver expands %NAME% references against the current environment.
type Resolver struct {
	backend model.ScopedBackend
}

// NewResolver creates a Resolver reading from backend.
func NewResolver(backend model.ScopedBackend) *Resolver {
	return &Resolver{backend: backend}
}

// BuildMap merges both scopes into an upper-cased name lookup.
// System values overwrite user values with the same name.
func (r *Resolver) BuildMap(ctx context.Context) (map[string]string, error) {
	values := make(map[string]string)
	for _, scope := range model.Scopes {
		entries, err := r.backend.List(ctx, scope)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s scope: %w", scope, accessError(err))
		}
		for _, e := range entries {
			values[strings.ToUpper(e.Name)] = e.Value
		}
	}
	return values, nil
}

// Expand replaces every %NAME% found in values. Unknown names stay
// literal. Expansion repeats until a pass changes nothing or the pass
// limit is reached.
func Expand(text string, values map[string]string) string {
	for range maxExpandPasses {
		resolved := false
		text = referencePattern.ReplaceAllStringFunc(text, func(token string) string {
			name := strings.ToUpper(token[1 : len(token)-1])
			if value, ok := values[name]; ok {
				resolved = true
				return value
			}
			return token
		})
		if !resolved {
			break
		}
	}
	return text
}

// Expand is a convenience that builds the map and expands text.
func (r *Resolver) Expand(ctx context.Context, text string) (string, error) {
	values, err := r.BuildMap(ctx)
	if err != nil {
		return "", err
	}
	return Expand(text, values), nil
}
