package service

import (
	"context"

	"github.com/zulezhe/env-manager/internal/model"
)

// Engine is the operation surface shared by the API and the CLI.
// Listings it returns carry computed validity.
type Engine struct {
	store      *Store
	validator  *Validator
	searcher   *Searcher
	serializer *Serializer
}

func NewEngine(store *Store, validator *Validator, searcher *Searcher, serializer *Serializer) *Engine {
	return &Engine{
		store:      store,
		validator:  validator,
		searcher:   searcher,
		serializer: serializer,
	}
}

func (e *Engine) List(ctx context.Context) ([]model.EnvironmentVariable, error) {
	vars, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}
	return e.validator.Annotate(ctx, vars)
}

func (e *Engine) Get(ctx context.Context, id string) (string, error) {
	return e.store.Get(ctx, id)
}

func (e *Engine) Create(ctx context.Context, scope model.Scope, name, value string) (model.EnvironmentVariable, error) {
	return e.store.Create(ctx, scope, name, value)
}

func (e *Engine) Update(ctx context.Context, id, value string) (model.EnvironmentVariable, error) {
	return e.store.Update(ctx, id, value)
}

func (e *Engine) Delete(ctx context.Context, id string) error {
	return e.store.Delete(ctx, id)
}

func (e *Engine) Validate(ctx context.Context, id string) (bool, error) {
	return e.validator.Validate(ctx, id)
}

func (e *Engine) Search(ctx context.Context, query model.SearchQuery) ([]model.EnvironmentVariable, error) {
	vars, err := e.searcher.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return e.validator.Annotate(ctx, vars)
}

func (e *Engine) ListInvalid(ctx context.Context) ([]model.EnvironmentVariable, error) {
	return e.validator.FindInvalid(ctx)
}

func (e *Engine) Export(ctx context.Context) (string, error) {
	return e.serializer.Export(ctx)
}

func (e *Engine) Import(ctx context.Context, path string) ([]model.EnvironmentVariable, error) {
	return e.serializer.Import(ctx, path)
}

func (e *Engine) ImportArchived(ctx context.Context, key string) ([]model.EnvironmentVariable, error) {
	return e.serializer.ImportArchived(ctx, key)
}

func (e *Engine) ListArchived(ctx context.Context) ([]string, error) {
	return e.serializer.ListArchived(ctx)
}

// Expand resolves %NAME% references in text against the current environment.
func (e *Engine) Expand(ctx context.Context, text string) (string, error) {
	return e.validator.resolver.Expand(ctx, text)
}
