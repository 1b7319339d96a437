// Package cli implements the cargo-ls-crates command line.
//
// The command is meant to be run by cargo as "cargo ls-crates", which
// executes "cargo-ls-crates ls-crates [args...]". Arguments are parsed by
// [flags.Parse], not by cobra, so that unknown tokens are ignored instead
// of rejected.
//
// # Outcomes
//
//   - help requested: usage on stdout, exit 0, no crate source queried
//   - crates listed: one line per crate on stdout, exit 0
//   - source failed: one "error: ..." line on stderr, exit 1
//
// # Logging
//
// Debug traces go to stderr through charmbracelet/log when
// CARGO_LS_CRATES_LOG=debug. The default level is warn.
//
// [flags.Parse]: github.com/matzehuels/cargo-ls-crates/pkg/flags.Parse
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/cargo-ls-crates/pkg/buildinfo"
	"github.com/matzehuels/cargo-ls-crates/pkg/crates"
	"github.com/matzehuels/cargo-ls-crates/pkg/crates/installed"
	"github.com/matzehuels/cargo-ls-crates/pkg/crates/metadata"
	apperrors "github.com/matzehuels/cargo-ls-crates/pkg/errors"
	"github.com/matzehuels/cargo-ls-crates/pkg/flags"
)

// appName is the binary name cargo looks up for the ls-crates subcommand.
const appName = "cargo-ls-crates"

// Exit codes returned by Run.
const (
	ExitOK        = 0
	ExitFailure   = 1
	ExitInterrupt = 130 // shell convention for SIGINT
)

// CLI holds shared state for the command.
type CLI struct {
	Logger *log.Logger
	Config Config

	// NewSource picks the crate source for a run. Nil selects cargo
	// metadata, or the install-root scanner when -i is given.
	NewSource func(flags.DisplayConfig) crates.Source
	// Installed locates install roots for -p. Nil uses the environment.
	Installed *installed.Source
}

// New creates a CLI logging to w at the configured level.
func New(w io.Writer, cfg Config) *CLI {
	return &CLI{
		Logger: newLogger(w, cfg.LogLevel),
		Config: cfg,
	}
}

// RootCommand creates the root cobra command.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:                appName + " [OPTIONS]",
		Short:              "List the crates a Rust project depends on",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(cmd.Context(), cmd.OutOrStdout(), flags.Parse(args))
		},
	}
	return root
}

// Run executes the command line with args (excluding the program name)
// and returns the process exit code. Failures are reported as a single
// line on stderr.
func (c *CLI) Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return ExitInterrupt
		}
		fmt.Fprintf(stderr, "error: %s\n", apperrors.UserMessage(err))
		return ExitFailure
	}
	return ExitOK
}

func (c *CLI) run(ctx context.Context, w io.Writer, cfg flags.DisplayConfig) error {
	logger := loggerFromContext(ctx)
	logger.Debug("parsed arguments", "config", fmt.Sprintf("%+v", cfg), "build", buildinfo.String())

	switch {
	case cfg.ShowHelp:
		renderHelp(w, c.Config.Color)
		return nil
	case cfg.ShowPaths:
		return c.printRoots(w)
	}

	l := crates.NewLister(c.source(cfg), cfg)
	if c.Config.Color {
		l.Styles = crates.ColorStyles()
	}

	prog := newProgress(logger)
	n, err := l.List(ctx, w, c.Config.Dir)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("listed %d crates", n))
	return nil
}

func (c *CLI) source(cfg flags.DisplayConfig) crates.Source {
	if c.NewSource != nil {
		return c.NewSource(cfg)
	}
	if cfg.Installed {
		return c.installedSource()
	}
	return metadata.New(c.Config.Cargo, c.Logger)
}

func (c *CLI) installedSource() *installed.Source {
	if c.Installed != nil {
		return c.Installed
	}
	return installed.New(c.Logger)
}

// printRoots writes each existing cargo install root on its own line.
func (c *CLI) printRoots(w io.Writer) error {
	roots := c.installedSource().Roots()
	if len(roots) == 0 {
		return apperrors.New(apperrors.ErrCodeNoInstallRoot, "failed to locate cargo install root")
	}
	for _, r := range roots {
		fmt.Fprintln(w, r)
	}
	return nil
}
