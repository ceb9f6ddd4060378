package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zulezhe/env-manager/internal/model"
	"github.com/zulezhe/env-manager/internal/repository/memory"
)

func ptr(s string) *string { return &s }

func searchFixture() []model.EnvironmentVariable {
	return []model.EnvironmentVariable{
		{ID: "system_JAVA_HOME", Name: "JAVA_HOME", Value: `C:\jdk`, Scope: model.ScopeSystem, Remark: ptr("Oracle JDK 21")},
		{ID: "user_CLASSPATH", Name: "CLASSPATH", Value: `C:\libs\java`, Scope: model.ScopeUser},
		{ID: "user_EDITOR", Name: "EDITOR", Value: "vim", Scope: model.ScopeUser, Remark: ptr("terminal editor")},
		{ID: "system_PATH", Name: "PATH", Value: `C:\Windows;C:\jdk\bin`, Scope: model.ScopeSystem},
	}
}

func ids(vars []model.EnvironmentVariable) []string {
	out := make([]string, 0, len(vars))
	for _, v := range vars {
		out = append(out, v.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name  string
		query model.SearchQuery
		want  []string
	}{
		{
			name:  "empty query matches everything",
			query: model.SearchQuery{},
			want:  []string{"system_JAVA_HOME", "user_CLASSPATH", "user_EDITOR", "system_PATH"},
		},
		{
			name:  "name keyword matches name or value",
			query: model.SearchQuery{NameKeyword: ptr("JAVA")},
			want:  []string{"system_JAVA_HOME", "user_CLASSPATH"},
		},
		{
			name:  "value keyword matches name too",
			query: model.SearchQuery{ValueKeyword: ptr("editor")},
			want:  []string{"user_EDITOR"},
		},
		{
			name:  "either keyword may match",
			query: model.SearchQuery{NameKeyword: ptr("vim"), ValueKeyword: ptr("windows")},
			want:  []string{"user_EDITOR", "system_PATH"},
		},
		{
			name:  "remark keyword requires a remark",
			query: model.SearchQuery{RemarkKeyword: ptr("jdk")},
			want:  []string{"system_JAVA_HOME"},
		},
		{
			name:  "type filter",
			query: model.SearchQuery{Types: []model.Scope{model.ScopeUser}},
			want:  []string{"user_CLASSPATH", "user_EDITOR"},
		},
		{
			name:  "empty type filter matches nothing",
			query: model.SearchQuery{Types: []model.Scope{}},
			want:  []string{},
		},
		{
			name:  "gates are combined",
			query: model.SearchQuery{NameKeyword: ptr("jdk"), Types: []model.Scope{model.ScopeSystem}, RemarkKeyword: ptr("oracle")},
			want:  []string{"system_JAVA_HOME"},
		},
		{
			name:  "date range is not enforced",
			query: model.SearchQuery{DateRange: &model.DateRange{Start: 1, End: 2}},
			want:  []string{"system_JAVA_HOME", "user_CLASSPATH", "user_EDITOR", "system_PATH"},
		},
		{
			name:  "expression",
			query: model.SearchQuery{Expression: ptr(`scope == "system" && value.contains("jdk")`)},
			want:  []string{"system_JAVA_HOME", "system_PATH"},
		},
		{
			name:  "expression sees empty remark when absent",
			query: model.SearchQuery{Expression: ptr(`remark == ""`)},
			want:  []string{"user_CLASSPATH", "system_PATH"},
		},
		{
			name:  "blank expression is ignored",
			query: model.SearchQuery{Expression: ptr("  ")},
			want:  []string{"system_JAVA_HOME", "user_CLASSPATH", "user_EDITOR", "system_PATH"},
		},
		{
			name:  "expression over name only",
			query: model.SearchQuery{Expression: ptr(`name == "JAVA_HOME"`)},
			want:  []string{"system_JAVA_HOME"},
		},
		{
			name:  "expression over scope",
			query: model.SearchQuery{Expression: ptr(`scope == "user"`)},
			want:  []string{"user_CLASSPATH", "user_EDITOR"},
		},
		{
			name:  "expression combined with keyword",
			query: model.SearchQuery{NameKeyword: ptr("java"), Expression: ptr(`name.startsWith("CLASS")`)},
			want:  []string{"user_CLASSPATH"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Filter(searchFixture(), tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_InvalidExpression(t *testing.T) {
	tests := []string{
		`name ==`,
		`unknown == "x"`,
		`name`,
		`size(value)`,
		`type == "user"`,
	}

	for _, expr := range tests {
		t.Run(expr, func(t *testing.T) {
			_, err := Filter(searchFixture(), model.SearchQuery{Expression: ptr(expr)})
			assert.ErrorIs(t, err, model.ErrInvalidQuery)
		})
	}
}

func TestFilter_RuntimeErrorFailsOnlyThatVariable(t *testing.T) {
	vars := []model.EnvironmentVariable{
		{ID: "user_A", Name: "A", Value: "10", Scope: model.ScopeUser},
		{ID: "user_B", Name: "B", Value: "ten", Scope: model.ScopeUser},
	}

	got, err := Filter(vars, model.SearchQuery{Expression: ptr(`int(value) > 5`)})
	require.NoError(t, err)
	assert.Equal(t, []string{"user_A"}, ids(got))
}

func TestSearcher_Search(t *testing.T) {
	backend := memory.New(
		memory.WithEntries(model.ScopeUser, map[string]string{"JAVA_OPTS": "-Xmx1g"}),
		memory.WithEntries(model.ScopeSystem, map[string]string{"JAVA_HOME": `C:\jdk`, "TEMP": `C:\Temp`}),
	)
	searcher := NewSearcher(newTestStore(backend))

	got, err := searcher.Search(context.Background(), model.SearchQuery{NameKeyword: ptr("java")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"user_JAVA_OPTS", "system_JAVA_HOME"}, ids(got))
}
