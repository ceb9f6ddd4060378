package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/cel-go/cel"

	"github.com/zulezhe/env-manager/internal/model"
)

const (
	maxExpressionLength = 4096
	expressionCostLimit = 100000
)

// expressionEnv declares name, value, scope and remark as strings.
// "type" is reserved by the CEL standard library and cannot be a variable.
var expressionEnv = sync.OnceValues(func() (*cel.Env, error) {
	return cel.NewEnv(
		cel.Variable("name", cel.StringType),
		cel.Variable("value", cel.StringType),
		cel.Variable("scope", cel.StringType),
		cel.Variable("remark", cel.StringType),
	)
})

// Filter returns the variables of vars matching query, keeping order.
// Every supplied criterion must match. DateRange is not evaluated.
func Filter(vars []model.EnvironmentVariable, query model.SearchQuery) ([]model.EnvironmentVariable, error) {
	var program cel.Program
	if query.Expression != nil && strings.TrimSpace(*query.Expression) != "" {
		var err error
		program, err = compileExpression(*query.Expression)
		if err != nil {
			return nil, err
		}
	}

	matched := make([]model.EnvironmentVariable, 0, len(vars))
	for _, v := range vars {
		if keywordGate(v, query) && remarkGate(v, query) && typeGate(v, query) && expressionGate(v, program) {
			matched = append(matched, v)
		}
	}
	return matched, nil
}

// keywordGate passes when name or value contains any supplied keyword.
func keywordGate(v model.EnvironmentVariable, query model.SearchQuery) bool {
	var keywords []string
	if query.NameKeyword != nil {
		keywords = append(keywords, *query.NameKeyword)
	}
	if query.ValueKeyword != nil {
		keywords = append(keywords, *query.ValueKeyword)
	}
	if len(keywords) == 0 {
		return true
	}

	name := strings.ToLower(v.Name)
	value := strings.ToLower(v.Value)
	for _, keyword := range keywords {
		keyword = strings.ToLower(keyword)
		if strings.Contains(name, keyword) || strings.Contains(value, keyword) {
			return true
		}
	}
	return false
}

func remarkGate(v model.EnvironmentVariable, query model.SearchQuery) bool {
	if query.RemarkKeyword == nil {
		return true
	}
	if v.Remark == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*v.Remark), strings.ToLower(*query.RemarkKeyword))
}

func typeGate(v model.EnvironmentVariable, query model.SearchQuery) bool {
	if query.Types == nil {
		return true
	}
	return slices.Contains(query.Types, v.Scope)
}

func expressionGate(v model.EnvironmentVariable, program cel.Program) bool {
	if program == nil {
		return true
	}

	remark := ""
	if v.Remark != nil {
		remark = *v.Remark
	}
	out, _, err := program.Eval(map[string]any{
		"name":   v.Name,
		"value":  v.Value,
		"scope":  v.Scope.String(),
		"remark": remark,
	})
	if err != nil {
		return false
	}
	matched, ok := out.Value().(bool)
	return ok && matched
}

func compileExpression(expr string) (cel.Program, error) {
	if len(expr) > maxExpressionLength {
		return nil, fmt.Errorf("%w: expression length %d exceeds %d", model.ErrInvalidQuery, len(expr), maxExpressionLength)
	}

	env, err := expressionEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create expression environment: %w", err)
	}

	ast, issues := env.Compile(expr)
	if issues.Err() != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidQuery, issues.Err())
	}
	if !ast.OutputType().IsExactType(cel.BoolType) {
		return nil, fmt.Errorf("%w: expression must evaluate to bool, got %s", model.ErrInvalidQuery, ast.OutputType())
	}

	program, err := env.Program(ast, cel.CostLimit(expressionCostLimit))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrInvalidQuery, err)
	}
	return program, nil
}

// Searcher filters the current listing.
type Searcher struct {
	store *Store
}

// NewSearcher creates a Searcher over store.
func NewSearcher(store *Store) *Searcher {
	return &Searcher{store: store}
}

// Search lists every variable and applies query.
func (s *Searcher) Search(ctx context.Context, query model.SearchQuery) ([]model.EnvironmentVariable, error) {
	vars, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list variables: %w", err)
	}
	return Filter(vars, query)
}
