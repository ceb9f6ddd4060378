package cli

import (
	"github.com/spf13/cobra"

	"github.com/zulezhe/env-manager/internal/model"
)

func newSearchCommand(engine Engine) *cobra.Command {
	var (
		name, value, remark, expr string
		types                     []string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter variables by keyword, scope or expression",
		Long: `Filter variables. A variable matches when every given filter matches.

--name and --value are alternatives: a variable matches when either keyword
occurs in its name or its value, ignoring case. --expr takes a CEL predicate
over name, value, scope and remark.`,
		Example: `  envctl search --name java --type system
  envctl search --expr 'scope == "user" && value.startsWith("/opt")'`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			var query model.SearchQuery
			if flags.Changed("name") {
				query.NameKeyword = &name
			}
			if flags.Changed("value") {
				query.ValueKeyword = &value
			}
			if flags.Changed("remark") {
				query.RemarkKeyword = &remark
			}
			if flags.Changed("expr") {
				query.Expression = &expr
			}
			if flags.Changed("type") {
				query.Types = make([]model.Scope, 0, len(types))
				for _, tag := range types {
					scope, err := model.ParseScope(tag)
					if err != nil {
						return err
					}
					query.Types = append(query.Types, scope)
				}
			}

			vars, err := engine.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), nonNil(vars))
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&name, "name", "", "keyword matched against name or value")
	flags.StringVar(&value, "value", "", "keyword matched against name or value")
	flags.StringVar(&remark, "remark", "", "keyword matched against the remark")
	flags.StringSliceVar(&types, "type", nil, "scope to include, user or system (repeatable)")
	flags.StringVar(&expr, "expr", "", "CEL predicate over name, value, type and remark")

	return cmd
}
