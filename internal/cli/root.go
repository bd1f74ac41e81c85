// Package cli wires the command surface: a one-shot query runner and an
// interactive shell, both resolving connection profiles from the same
// config file and reporting failures through stage-specific exit codes.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/qlens/qlens/internal/config"
	"github.com/qlens/qlens/internal/render"
	"github.com/qlens/qlens/internal/resultset"
	"github.com/qlens/qlens/internal/sqlclient"
)

// version is stamped by the release build.
var version = "dev"

const defaultTimeout = 5 * time.Second

type options struct {
	config  string
	timeout time.Duration
	verbose bool
}

// NewRootCommand builds the qlens command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "qlens <profile> <query>",
		Short: "Run one SQL query against a named connection profile",
		Example: `  qlens staging "SELECT id, email FROM users WHERE active = 1"
  qlens --config ./profiles.yaml local "SHOW TABLES"
  qlens shell local`,
		Args:          cobra.ExactArgs(2),
		Version:       version,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			setupLogging(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runQuery(cmd.Context(), cmd.OutOrStdout(), opts, args[0], args[1])
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.config, "config", "", `profile file (default ".qlens.yaml" in $HOME or ".")`)
	pf.DurationVar(&opts.timeout, "timeout", defaultTimeout, "connect timeout")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging on stderr")

	cmd.AddCommand(newShellCommand(opts))
	return cmd
}

func runQuery(ctx context.Context, out io.Writer, opts *options, profileName, query string) error {
	cfg, err := config.Load(opts.config)
	if err != nil {
		return fail(ExitConfig, err)
	}

	prof, err := cfg.Profile(profileName)
	if err != nil {
		return fail(ExitProfile, err)
	}

	client, err := sqlclient.DialContext(ctx, prof, opts.timeout)
	if err != nil {
		return fail(ExitConnect, err)
	}
	defer func() { _ = client.Close() }()

	report, err := execute(ctx, client, query)
	if err != nil {
		return err
	}

	// single write: nothing reaches stdout unless rendering succeeded
	if _, err := io.WriteString(out, report); err != nil {
		return fail(ExitInternal, fmt.Errorf("write report: %w", err))
	}
	return nil
}

// execute runs one statement through materialization and rendering.
// Shared by the one-shot path and the shell.
func execute(ctx context.Context, client *sqlclient.Client, query string) (string, error) {
	rows, err := client.QueryContext(ctx, query)
	if err != nil {
		return "", fail(ExitQuery, err)
	}
	defer func() { _ = rows.Close() }()

	buf, err := resultset.Materialize(rows.Columns(), rows)
	if err != nil {
		return "", fail(ExitFetch, err)
	}

	return render.Report(buf), nil
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
