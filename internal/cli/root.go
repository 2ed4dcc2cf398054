// Package cli implements the radix command line tool.
package cli

import (
	"io"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"github.com/zeebo/errs"

	"github.com/govalues/radix/internal/config"
)

// Version is the version of the radix tool.
const Version = "0.1.0"

// ErrUsage is returned for invalid command line arguments.
var ErrUsage = errs.Class("usage")

// app is the state shared by all commands of one invocation.
type app struct {
	config *config.Config
	logger *log.Logger
}

// newApp returns an app whose logger writes to stderr with the prefixed
// formatter until a command replaces its output.
func newApp() *app {
	logger := log.New()
	logger.SetFormatter(&prefixed.TextFormatter{})
	return &app{logger: logger}
}

// newRootCmd returns the root command of a with all subcommands attached.
func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "radix",
		Short: "Exact arithmetic in positional numeral systems",
		Long: `radix performs exact arbitrary-precision arithmetic on signed numbers
written in base 8, 10, 16 or 36. Division and base conversion truncate to
a configurable number of digits after the radix point.

Settings are read, in increasing priority, from built-in defaults, the
configuration file given by --config, RADIX_* environment variables and
command line flags.`,
		Version: Version,

		// SilenceUsage is an option to silence usage when an error occurs.
		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "configuration file path")
	flags.StringP("system", "s", "10", "numeral system: 8, 10, 16 or 36")
	flags.Int("scale", 0, "digits after the radix point kept by division")
	flags.StringP("output", "o", config.OutputText, "output format: text, json or yaml")
	flags.Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newCalcCmd(a),
		newRoundCmd(a),
		newConvertCmd(a),
		newComplementCmd(a),
		newEvalCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// init loads the configuration and sets up logging.
func (a *app) init(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()
	path, err := flags.GetString("config")
	if err != nil {
		return err
	}
	cfg, err := config.Load(path, flags)
	if err != nil {
		return err
	}
	a.config = cfg

	a.logger.SetOutput(cmd.ErrOrStderr())
	if cfg.Debug {
		a.logger.SetLevel(log.DebugLevel)
	}
	a.logger.WithFields(log.Fields{
		"system": cfg.System,
		"scale":  cfg.Scale,
		"output": cfg.Output,
	}).Debug("configuration loaded")
	return nil
}

// execute runs the command line args and writes results to out and
// diagnostics to errOut.
func execute(args []string, in io.Reader, out, errOut io.Writer) error {
	rootCmd := newRootCmd(newApp())
	rootCmd.SetArgs(args)
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	return rootCmd.Execute()
}

// Execute runs the root command with the process arguments.
// This is called by main.main().
func Execute() {
	a := newApp()
	if err := newRootCmd(a).Execute(); err != nil {
		a.logger.WithError(err).Fatal("cannot execute command")
	}
}
