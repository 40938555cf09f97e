package cli

import (
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/reddish/config"
	"github.com/kbukum/reddish/logger"
)

const programName = "reddish"

// Command groups, also used as logger component names.
var groups = []string{"string", "array", "collection", "object", "crypto", "random", "date"}

// app is the state shared by every command in one invocation.
type app struct {
	out io.Writer
	cfg *config.CLIConfig

	configFile string
	output     string
	dateFormat string
	debug      bool

	started time.Time
}

// Execute runs the reddish command and exits non-zero on failure.
func Execute() {
	// LOG_* variables govern logging until the config file is loaded.
	logger.SetGlobalLogger(logger.NewFromEnv(programName))
	if err := execute(NewRootCmd(os.Stdout, os.Stderr)); err != nil {
		os.Exit(1)
	}
}

// execute runs root and logs which command failed.
func execute(root *cobra.Command) error {
	cmd, err := root.ExecuteC()
	if err != nil {
		logger.Debug("command failed", logger.ErrorFields(cmd.CommandPath(), err))
	}
	return err
}

// NewRootCmd builds the command tree writing results to out and errors to
// errOut.
func NewRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{out: out}

	cmd := &cobra.Command{
		Use:               programName,
		Short:             "reddish: string, slice, map, hash, random and date helpers",
		SilenceUsage:       true,
		PersistentPreRunE:  a.setup,
		PersistentPostRunE: a.finish,
	}
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default: search cmd/reddish, config/, . and the user config dir)")
	pf.StringVarP(&a.output, "output", "o", "", "result format: text or json")
	pf.StringVar(&a.dateFormat, "date-format", "", "strftime pattern for date results")
	pf.BoolVar(&a.debug, "debug", false, "enable debug logging on stderr")

	cmd.AddCommand(
		stringCmd(a),
		arrayCmd(a),
		collectionCmd(a),
		objectCmd(a),
		cryptoCmd(a),
		randomCmd(a),
		dateCmd(a),
		versionCmd(a),
	)
	return cmd
}

// setup loads configuration, applies flag overrides and starts logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	a.started = time.Now()

	var opts []config.LoaderOption
	if a.configFile != "" {
		opts = append(opts, config.WithConfigFile(a.configFile))
	}

	cfg, err := config.LoadCLIConfig(programName, opts...)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("date-format") {
		cfg.DateFormat = a.dateFormat
	}
	if a.debug {
		cfg.Debug = true
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger.Init(cfg.Logging)
	logger.Reset()
	logger.RegisterDefaults(groups...)
	logger.Get("config").Debug("configuration loaded", logger.Fields(
		logger.FieldOutput, cfg.Output,
		"environment", cfg.Environment,
	))
	return nil
}

// finish logs how long the command took.
func (a *app) finish(cmd *cobra.Command, _ []string) error {
	logger.Debug("command finished", logger.DurationFields(cmd.CommandPath(), time.Since(a.started)))
	return nil
}
