package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hightemp/dialcc/internal/output"
)

func (a *app) newISOCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "iso <code>",
		Short: "Show the dialing codes of an ISO-3166 country code",
		Example: `  dialcc iso SE
  dialcc iso us --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := args[0]
			c, ok := a.engine.LookupByISOCode(code)
			if !ok {
				return exitWithCode(ExitNotFound, "%s: unknown ISO code", code)
			}

			result := output.NewResult(code, c, "")
			if a.cfg.JSONOutput {
				jsonStr, err := result.FormatJSON()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), jsonStr)
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.FormatText())
			return nil
		},
	}
}
