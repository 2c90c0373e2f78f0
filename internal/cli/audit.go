package cli

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hightemp/dialcc/internal/audit"
)

func (a *app) newAuditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "audit",
		Short: "Check the catalog against libphonenumber and CLDR metadata",
		Long: `Checks the embedded catalog for duplicate ISO codes, dialing codes
claimed by more than one country and non-digit codes (errors), and for
disagreements with libphonenumber calling codes and CLDR regions (warnings).

Exits non-zero when any error is found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := a.catalog()
			findings := audit.Check(catalog)

			if a.cfg.JSONOutput {
				if findings == nil {
					findings = []audit.Finding{}
				}
				data, err := json.MarshalIndent(findings, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			} else {
				for _, f := range findings {
					fmt.Fprintln(cmd.OutOrStdout(), f.String())
				}
			}

			a.log.WithFields(logrus.Fields{
				"countries": len(catalog),
				"findings":  len(findings),
			}).Info("audit complete")

			if audit.HasErrors(findings) {
				return exitWithCode(ExitFailure, "catalog has errors")
			}
			return nil
		},
	}
}
