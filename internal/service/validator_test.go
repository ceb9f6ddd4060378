package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zulezhe/env-manager/internal/mocks"
	"github.com/zulezhe/env-manager/internal/model"
	"github.com/zulezhe/env-manager/internal/repository/memory"
	"github.com/zulezhe/env-manager/internal/storage/local"
	"github.com/zulezhe/env-manager/internal/testutil"
)

func newTestValidator(backend model.ScopedBackend, prober model.FileProber) *Validator {
	return NewValidator(newTestStore(backend), NewResolver(backend), prober, testutil.MakeNoopLogger())
}

func TestValidator_PathMajorityRule(t *testing.T) {
	dirInfo, err := os.Stat(t.TempDir())
	require.NoError(t, err)

	tests := []struct {
		name  string
		value string
		setup func(*mocks.FileProber)
		want  bool
	}{
		{
			name:  "half of the segments exist",
			value: `C:\Valid;C:\Missing`,
			setup: func(p *mocks.FileProber) {
				p.On("Exists", `C:\Valid`).Return(true).Once()
				p.On("Stat", `C:\Valid`).Return(dirInfo, nil).Once()
				p.On("Exists", `C:\Missing`).Return(false).Once()
			},
			want: true,
		},
		{
			name:  "minority of segments exist",
			value: `C:\Valid;C:\Missing;C:\Gone`,
			setup: func(p *mocks.FileProber) {
				p.On("Exists", `C:\Valid`).Return(true).Once()
				p.On("Stat", `C:\Valid`).Return(dirInfo, nil).Once()
				p.On("Exists", `C:\Missing`).Return(false).Once()
				p.On("Exists", `C:\Gone`).Return(false).Once()
			},
			want: false,
		},
		{
			name:  "only blank segments",
			value: " ; ;",
			setup: func(*mocks.FileProber) {},
			want:  true,
		},
		{
			name:  "empty value",
			value: "",
			setup: func(*mocks.FileProber) {},
			want:  true,
		},
		{
			name:  "segments are trimmed and expanded",
			value: ` %JAVA_HOME%\bin ;`,
			setup: func(p *mocks.FileProber) {
				p.On("Exists", `C:\jdk\bin`).Return(true).Once()
				p.On("Stat", `C:\jdk\bin`).Return(dirInfo, nil).Once()
			},
			want: true,
		},
		{
			name:  "unreadable metadata counts as missing",
			value: `C:\Locked`,
			setup: func(p *mocks.FileProber) {
				p.On("Exists", `C:\Locked`).Return(true).Once()
				p.On("Stat", `C:\Locked`).Return(nil, errors.New("access denied")).Once()
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := memory.New(
				memory.WithEntries(model.ScopeSystem, map[string]string{"PATH": tt.value}),
				memory.WithEntries(model.ScopeUser, map[string]string{"JAVA_HOME": `C:\jdk`}),
			)
			prober := mocks.NewFileProber(t)
			tt.setup(prober)

			valid, err := newTestValidator(backend, prober).Validate(context.Background(), "system_PATH")
			require.NoError(t, err)
			assert.Equal(t, tt.want, valid)
		})
	}
}

func TestValidator_PathSegmentMustBeDirectory(t *testing.T) {
	root := testutil.MakeDirs(t, "bin")
	file := filepath.Join(root, "tool.exe")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	backend := memory.New(memory.WithEntries(model.ScopeUser, map[string]string{
		"PATH": file + ";" + filepath.Join(root, "missing"),
	}))

	valid, err := newTestValidator(backend, local.NewProber()).Validate(context.Background(), "user_PATH")
	require.NoError(t, err)
	assert.False(t, valid)
}

func TestValidator_PathLikeRule(t *testing.T) {
	root := testutil.MakeDirs(t, "jdk", "maven")
	file := filepath.Join(root, "settings.xml")
	require.NoError(t, os.WriteFile(file, []byte("<settings/>"), 0o644))

	tests := []struct {
		name    string
		varName string
		value   string
		want    bool
	}{
		{name: "home suffix exists", varName: "JAVA_HOME", value: filepath.Join(root, "jdk"), want: true},
		{name: "home suffix missing", varName: "JAVA_HOME", value: filepath.Join(root, "nope"), want: false},
		{name: "dir suffix", varName: "CACHE_DIR", value: filepath.Join(root, "gone"), want: false},
		{name: "path suffix is a file", varName: "SETTINGS_PATH", value: file, want: true},
		{name: "separator in value", varName: "M2", value: filepath.Join(root, "maven"), want: true},
		{name: "reference expanded", varName: "MVN_HOME", value: "%ROOT%/maven", want: true},
		{name: "suffix without separator is probed", varName: "APP_HOME", value: "relative-missing", want: false},
		{name: "suffix is case-sensitive", varName: "app_home", value: "relative-missing", want: true},
		{name: "plain value", varName: "EDITOR", value: "vim", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := memory.New(memory.WithEntries(model.ScopeUser, map[string]string{
				tt.varName: tt.value,
				"ROOT":     root,
			}))

			valid, err := newTestValidator(backend, local.NewProber()).Validate(context.Background(), "user_"+tt.varName)
			require.NoError(t, err)
			assert.Equal(t, tt.want, valid)
		})
	}
}

func TestValidator_PlainValueNeverProbed(t *testing.T) {
	backend := memory.New(memory.WithEntries(model.ScopeUser, map[string]string{"NUMBER_OF_PROCESSORS": "8"}))
	// No expectations: any probe call fails the test.
	prober := mocks.NewFileProber(t)

	valid, err := newTestValidator(backend, prober).Validate(context.Background(), "user_NUMBER_OF_PROCESSORS")
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestValidator_PathRuleIsCaseSensitive(t *testing.T) {
	backend := memory.New(memory.WithEntries(model.ScopeUser, map[string]string{"Path": "a;b"}))
	prober := mocks.NewFileProber(t)

	valid, err := newTestValidator(backend, prober).Validate(context.Background(), "user_Path")
	require.NoError(t, err)
	assert.True(t, valid)
}

func TestValidator_Errors(t *testing.T) {
	backend := memory.New()
	v := newTestValidator(backend, mocks.NewFileProber(t))

	_, err := v.Validate(context.Background(), "user_MISSING")
	assert.ErrorIs(t, err, model.ErrNotFound)

	_, err = v.Validate(context.Background(), "MISSING")
	assert.ErrorIs(t, err, model.ErrInvalidID)
}

func TestValidator_AnnotateAndFindInvalid(t *testing.T) {
	ctx := context.Background()
	root := testutil.MakeDirs(t, "jdk")
	backend := memory.New(
		memory.WithEntries(model.ScopeUser, map[string]string{
			"JAVA_HOME":  filepath.Join(root, "jdk"),
			"MAVEN_HOME": filepath.Join(root, "maven"),
			"EDITOR":     "vim",
		}),
	)
	v := newTestValidator(backend, local.NewProber())

	vars, err := v.store.List(ctx)
	require.NoError(t, err)

	annotated, err := v.Annotate(ctx, vars)
	require.NoError(t, err)
	validity := make(map[string]bool)
	for _, variable := range annotated {
		validity[variable.Name] = variable.IsValid
	}
	assert.Equal(t, map[string]bool{"JAVA_HOME": true, "MAVEN_HOME": false, "EDITOR": true}, validity)

	invalid, err := v.FindInvalid(ctx)
	require.NoError(t, err)
	require.Len(t, invalid, 1)
	assert.Equal(t, "user_MAVEN_HOME", invalid[0].ID)
	assert.False(t, invalid[0].IsValid)
}
