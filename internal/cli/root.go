// Package cli implements the ullman command tree.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/ullman/internal/config"
	"github.com/katalvlaran/ullman/internal/logging"
)

// Exit codes returned by Execute.
const (
	ExitOK      = 0
	ExitNoMatch = 1
	ExitError   = 2
)

// ErrNoMatch is returned by the match command when at least one target does
// not contain the pattern and no target failed.
var ErrNoMatch = errors.New("cli: pattern not found in every target")

// Version is set at link time with -ldflags "-X .../internal/cli.Version=...".
var Version = "dev"

// app carries state shared by the commands of one process.
type app struct {
	stdout, stderr io.Writer

	cfgPath   string
	logLevel  string
	logFormat string

	cfg config.Config
	log *slog.Logger
}

// NewRootCommand builds the command tree writing to stdout and stderr.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr, cfg: config.Default(), log: logging.Discard()}

	root := &cobra.Command{
		Use:           "ullman",
		Short:         "Subgraph isomorphism with Ullman's algorithm",
		Long:          "ullman decides whether a pattern graph embeds into target graphs and\ngenerates test graphs of common topologies.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "YAML configuration file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "log format: text, json or auto")

	root.AddCommand(newMatchCommand(a), newGenCommand(a), newVersionCommand(a))

	return root
}

// setup loads the configuration, applies global flag overrides and installs
// the logger in the command context.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if cmd.Flags().Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = logging.New(cfg.Log.Level, cfg.Log.Format, a.stderr)
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.WithLogger(ctx, a.log))

	return nil
}

// Execute runs the command tree with args and returns the process exit code.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	if err != nil && !errors.Is(err, ErrNoMatch) {
		fmt.Fprintf(stderr, "ullman: %v\n", err)
	}

	return ExitCode(err)
}

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrNoMatch):
		return ExitNoMatch
	default:
		return ExitError
	}
}

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(a.stdout, "ullman %s\n", Version)
			return err
		},
	}
}
