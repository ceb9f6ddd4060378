// Package cli implements the envctl command tree.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/zulezhe/env-manager/internal/model"
)

// Engine is the operation surface the commands drive.
type Engine interface {
	List(ctx context.Context) ([]model.EnvironmentVariable, error)
	ListInvalid(ctx context.Context) ([]model.EnvironmentVariable, error)
	Get(ctx context.Context, id string) (string, error)
	Create(ctx context.Context, scope model.Scope, name, value string) (model.EnvironmentVariable, error)
	Update(ctx context.Context, id, value string) (model.EnvironmentVariable, error)
	Delete(ctx context.Context, id string) error
	Validate(ctx context.Context, id string) (bool, error)
	Search(ctx context.Context, query model.SearchQuery) ([]model.EnvironmentVariable, error)
	Export(ctx context.Context) (string, error)
	Import(ctx context.Context, path string) ([]model.EnvironmentVariable, error)
	ListArchived(ctx context.Context) ([]string, error)
	ImportArchived(ctx context.Context, key string) ([]model.EnvironmentVariable, error)
	Expand(ctx context.Context, text string) (string, error)
}

// NewRootCommand creates the envctl root command bound to engine.
func NewRootCommand(engine Engine, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "envctl",
		Short: "Inspect and edit user and system environment variables",
		Long: `envctl lists, validates, searches and edits environment variables
of the user and system scopes. Variables are addressed by id, the scope tag
joined to the name with an underscore: user_EDITOR, system_JAVA_HOME.

Every command prints JSON on stdout.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newListCommand(engine),
		newGetCommand(engine),
		newSetCommand(engine),
		newUpdateCommand(engine),
		newDeleteCommand(engine),
		newValidateCommand(engine),
		newSearchCommand(engine),
		newExportCommand(engine),
		newImportCommand(engine),
		newArchivedCommand(engine),
		newExpandCommand(engine),
	)

	return root
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func nonNil(vars []model.EnvironmentVariable) []model.EnvironmentVariable {
	if vars == nil {
		return []model.EnvironmentVariable{}
	}
	return vars
}
