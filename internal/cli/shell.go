package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/qlens/qlens/internal/config"
	"github.com/qlens/qlens/internal/sqlclient"
)

const (
	shellPrompt = "qlens> "
	contPrompt  = "...> "

	historyMax = 2000
)

func newShellCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shell <profile>",
		Short: "Open an interactive session on a connection profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runShell(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), opts, args[0])
		},
	}
}

func runShell(ctx context.Context, out, errOut io.Writer, opts *options, profileName string) error {
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

	h := NewHistory(defaultHistoryPath())
	_ = h.Load(historyMax)

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          shellPrompt,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fail(ExitInternal, fmt.Errorf("readline: %w", err))
	}
	defer func() { _ = rl.Close() }()

	// preload history so arrow-up works immediately
	for _, line := range h.lines {
		_ = rl.SaveHistory(line)
	}

	var buf strings.Builder

	fmt.Fprintf(out, "connected to %s (%s)\n", client.Addr(), prof.Database)
	fmt.Fprintln(out, `type \help for help`)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			// Ctrl+C drops the statement being typed
			if buf.Len() > 0 {
				buf.Reset()
				rl.SetPrompt(shellPrompt)
				continue
			}
			fmt.Fprintln(out, "^C")
			continue
		}
		if err != nil {
			// EOF
			fmt.Fprintln(out)
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if buf.Len() == 0 && isMetaCommand(line) {
			if runMetaCommand(out, h, line) {
				return nil
			}
			continue
		}

		if buf.Len() > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(line)

		if !statementComplete(buf.String()) {
			rl.SetPrompt(contPrompt)
			continue
		}

		stmt := strings.TrimSpace(buf.String())
		buf.Reset()
		rl.SetPrompt(shellPrompt)

		_ = h.Append(stmt)
		_ = rl.SaveHistory(compactOneLine(stmt))

		report, err := execute(ctx, client, strings.TrimSuffix(stmt, ";"))
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			continue
		}
		fmt.Fprint(out, report)
	}
}

func runMetaCommand(out io.Writer, h *History, line string) (quit bool) {
	switch line {
	case `\q`, "quit", "exit":
		return true
	case `\help`:
		fmt.Fprintln(out, `meta commands:
  \q | quit | exit       quit
  \history               print history
  \help                  show help

sql:
  end statements with ';'
  multiline input is supported (the shell waits for ';')`)
	case `\history`:
		h.Print(out, 50)
	default:
		fmt.Fprintf(out, "unknown command: %s\n", line)
	}
	return false
}

// statementComplete reports a terminating ';' outside single quotes.
func statementComplete(buf string) bool {
	inQuote := false
	escaped := false

	for _, r := range buf {
		if escaped {
			escaped = false
			continue
		}
		if r == '\\' {
			escaped = true
			continue
		}
		if r == '\'' {
			inQuote = !inQuote
			continue
		}
		if r == ';' && !inQuote {
			return true
		}
	}
	return false
}

func isMetaCommand(line string) bool {
	return strings.HasPrefix(line, `\`) || line == "quit" || line == "exit"
}
