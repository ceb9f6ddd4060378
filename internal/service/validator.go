package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/zulezhe/env-manager/internal/logger"
	"github.com/zulezhe/env-manager/internal/model"
)

const (
	pathVariable       = "PATH"
	pathListSeparator  = ";"
	minValidPathsRatio = 0.5
)

var pathLikeSuffixes = []string{"_HOME", "_DIR", "_PATH"}

// Validator decides whether a variable points at something that exists.
type Validator struct {
	store    *Store
	resolver *Resolver
	prober   model.FileProber
	logger   *logger.Logger
}

// NewValidator creates a Validator.
func NewValidator(store *Store, resolver *Resolver, prober model.FileProber, logger *logger.Logger) *Validator {
	return &Validator{
		store:    store,
		resolver: resolver,
		prober:   prober,
		logger:   logger,
	}
}

// Validate checks the variable behind id. It fails only when the
// variable cannot be read; probe failures make it invalid.
func (v *Validator) Validate(ctx context.Context, id string) (bool, error) {
	key, err := model.ParseID(id)
	if err != nil {
		return false, err
	}

	value, err := v.store.Get(ctx, id)
	if err != nil {
		return false, err
	}

	values, err := v.resolver.BuildMap(ctx)
	if err != nil {
		return false, err
	}

	return v.check(key.Name, value, values), nil
}

// Annotate sets IsValid on every variable of a listing using one
// reference map for the whole batch.
func (v *Validator) Annotate(ctx context.Context, vars []model.EnvironmentVariable) ([]model.EnvironmentVariable, error) {
	values, err := v.resolver.BuildMap(ctx)
	if err != nil {
		return nil, err
	}

	annotated := make([]model.EnvironmentVariable, len(vars))
	for i, variable := range vars {
		variable.IsValid = v.check(variable.Name, variable.Value, values)
		annotated[i] = variable
	}
	return annotated, nil
}

// FindInvalid lists every variable that fails validation.
func (v *Validator) FindInvalid(ctx context.Context) ([]model.EnvironmentVariable, error) {
	vars, err := v.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list variables: %w", err)
	}

	annotated, err := v.Annotate(ctx, vars)
	if err != nil {
		return nil, err
	}

	invalid := make([]model.EnvironmentVariable, 0)
	for _, variable := range annotated {
		if !variable.IsValid {
			invalid = append(invalid, variable)
		}
	}
	return invalid, nil
}

func (v *Validator) check(name, value string, values map[string]string) bool {
	switch {
	case name == pathVariable:
		return v.checkPathList(value, values)
	case isPathLike(name, value):
		return v.checkPath(Expand(value, values))
	default:
		return true
	}
}

func (v *Validator) checkPathList(value string, values map[string]string) bool {
	var total, valid int
	for _, segment := range strings.Split(value, pathListSeparator) {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			continue
		}
		total++
		if v.isDir(Expand(segment, values)) {
			valid++
		}
	}

	if total == 0 {
		return true
	}
	return float64(valid)/float64(total) >= minValidPathsRatio
}

func (v *Validator) checkPath(path string) bool {
	if !v.prober.Exists(path) {
		return false
	}
	if _, err := v.prober.Stat(path); err != nil {
		v.logger.Debug("path metadata unreadable", "path", path, "error", err)
		return false
	}
	return true
}

func (v *Validator) isDir(path string) bool {
	if !v.prober.Exists(path) {
		return false
	}
	info, err := v.prober.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func isPathLike(name, value string) bool {
	for _, suffix := range pathLikeSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return strings.ContainsAny(value, `\/`)
}
