package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hightemp/dialcc/internal/batch"
)

func (a *app) runLookup(cmd *cobra.Command, args []string) error {
	processor := batch.NewProcessor(a.engine, a.cfg.Raw, a.cfg.Concurrency, a.log)

	if len(args) == 1 {
		return a.lookupSingle(cmd, processor, args[0])
	}

	// stdin is a terminal, show help
	if f, ok := cmd.InOrStdin().(*os.File); ok {
		if stat, err := f.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			return cmd.Help()
		}
	}

	if a.cfg.Concurrency > 1 {
		return processor.ProcessInputConcurrent(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.JSONOutput)
	}
	return processor.ProcessInput(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.JSONOutput)
}

func (a *app) lookupSingle(cmd *cobra.Command, processor *batch.Processor, number string) error {
	result := processor.Lookup(number)
	if result.Error != "" {
		if result.Error == batch.ErrNotInternational {
			return exitWithCode(ExitInvalidInput, "%s: %s", number, result.Error)
		}
		return exitWithCode(ExitNotFound, "%s: %s", number, result.Error)
	}

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
}
