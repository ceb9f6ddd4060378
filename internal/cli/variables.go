package cli

import (
	"github.com/spf13/cobra"

	"github.com/zulezhe/env-manager/internal/model"
)

func newListCommand(engine Engine) *cobra.Command {
	var invalid bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List variables of both scopes with their validity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list := engine.List
			if invalid {
				list = engine.ListInvalid
			}
			vars, err := list(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), nonNil(vars))
		},
	}
	cmd.Flags().BoolVar(&invalid, "invalid", false, "only variables that fail validation")

	return cmd
}

func newGetCommand(engine Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Print the stored value of a variable",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := engine.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{"id": args[0], "value": value})
		},
	}
}

func newSetCommand(engine Engine) *cobra.Command {
	return &cobra.Command{
		Use:     "set SCOPE NAME VALUE",
		Short:   "Create or overwrite a variable in the user or system scope",
		Example: `  envctl set user JAVA_HOME 'C:\Program Files\Java\jdk-21'`,
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := model.ParseScope(args[0])
			if err != nil {
				return err
			}
			variable, err := engine.Create(cmd.Context(), scope, args[1], args[2])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), variable)
		},
	}
}

func newUpdateCommand(engine Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "update ID VALUE",
		Short: "Overwrite the value of a variable",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			variable, err := engine.Update(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), variable)
		},
	}
}

func newDeleteCommand(engine Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a variable",
		Long:  "Delete a variable. Protected system variables such as PATH cannot be deleted.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := engine.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{"deleted": args[0]})
		},
	}
}

func newValidateCommand(engine Engine) *cobra.Command {
	return &cobra.Command{
		Use:   "validate ID",
		Short: "Check whether the paths a variable refers to exist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			valid, err := engine.Validate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{"id": args[0], "isValid": valid})
		},
	}
}

func newExpandCommand(engine Engine) *cobra.Command {
	return &cobra.Command{
		Use:     "expand TEXT",
		Short:   "Resolve %NAME% references against the current environment",
		Example: `  envctl expand '%JAVA_HOME%\bin'`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := engine.Expand(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{"text": text})
		},
	}
}
