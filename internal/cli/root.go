// Package cli implements the command-line interface.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hightemp/dialcc/internal/config"
	"github.com/hightemp/dialcc/internal/countries"
	"github.com/hightemp/dialcc/internal/dialcode"
	"github.com/hightemp/dialcc/internal/logging"
)

var (
	// Version information (set at build time)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// ExitCode constants
const (
	ExitSuccess      = 0
	ExitFailure      = 1
	ExitInvalidInput = 2
	ExitNotFound     = 4
)

// exitError carries a process exit code out of a command.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func exitWithCode(code int, format string, args ...any) error {
	return &exitError{code: code, msg: fmt.Sprintf(format, args...)}
}

// app is the state shared by all commands of one invocation.
type app struct {
	cfg     *config.Config
	log     *logrus.Logger
	engine  *dialcode.Engine
	catalog func() []countries.Country
}

// NewRootCmd builds the command tree over the embedded catalog.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&app{catalog: countries.All})
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dialcc [number]",
		Short: "Dialing code to country - resolve countries from international phone numbers",
		Long: `dialcc resolves the country of an international phone number by the
longest registered dialing-code prefix, and looks up dialing codes by
ISO-3166 country code.

For single number lookup:
  dialcc +46701234567

For batch processing (read from stdin):
  cat numbers.txt | dialcc

Numbers must carry a leading '+'. Use --raw to match bare digit strings.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
			a.engine = dialcode.Default()
			a.log.WithField("max_code_len", a.engine.MaxDialingCodeLength()).Debug("engine ready")
			return nil
		},
		RunE: a.runLookup,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool(config.KeyJSON, false, "output in JSON format")
	rootCmd.PersistentFlags().String(config.KeyLogLevel, config.DefaultLogLevel, "log level: debug, info, warn, error, off (default $LOG_LEVEL, then info)")

	// Lookup-specific flags
	rootCmd.Flags().Bool(config.KeyRaw, false, "match bare digit strings without requiring a leading '+'")
	rootCmd.Flags().Int(config.KeyConcurrency, config.DefaultConcurrency, "parallel lookups in batch mode")

	// Add subcommands
	rootCmd.AddCommand(a.newISOCmd())
	rootCmd.AddCommand(a.newListCmd())
	rootCmd.AddCommand(a.newAuditCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command and exits with the mapped exit code.
func Execute() {
	os.Exit(run(NewRootCmd()))
}

func run(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitFailure
}
