package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"model-mapper/internal/mapping"
)

func newCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a mapping file",
		Long: `Check validates a mapping file and lints every mapping in it.

Findings are printed as error, warning or info. The command fails when
there is at least one error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := a.loadFile()
			if err != nil {
				return err
			}

			res := mapping.Validate(f, a.reg)

			out := cmd.OutOrStdout()
			if res.Len() == 0 {
				_, _ = fmt.Fprintln(out, "No issues found")
				return nil
			}

			if err := res.Write(out); err != nil {
				return err
			}

			if res.HasErrors() {
				return fmt.Errorf("%s: %d error(s)", a.cfg.Spec, len(res.Errors))
			}

			return nil
		},
	}

	cmd.Flags().String("spec", "", "Mapping file")

	return cmd
}
