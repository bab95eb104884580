package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	cobradoc "github.com/spf13/cobra/doc"
)

// Version is overridden at build time with -ldflags "-X main.Version=...".
var Version = "dev"

const rootLongDesc = `
readme-command-help keeps the command reference in README.md in sync with the CLI.

For the top-level command and each of the run, sse and completions subcommands it runs
` + "`cargo run -- [subcommand] --help`" + `, and replaces the content between the matching
markers with the captured help text in a fenced code block:

  <!-- START_SECTION:run-command-help -->
  <!-- END_SECTION:run-command-help -->

Sections without both markers are left alone. README.md is rewritten in place.
Arguments and unknown flags are ignored.
`

func newRootCmd(stdout io.Writer) *cobra.Command {
	return newCommand(&cliApp{stdout: stdout, opts: defaultOptions()})
}

func newCommand(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "readme-command-help",
		Short:         "Regenerate the CLI help sections of README.md",
		Long:          strings.TrimSpace(rootLongDesc),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.DisableAutoGenTag = true
	cmd.Version = Version
	cmd.SetOut(app.stdout)
	cmd.SetErr(io.Discard)
	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.FParseErrWhitelist.UnknownFlags = true

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		return app.execute(ctx)
	}

	cmd.AddCommand(newDocsCmd(cmd, app.opts))
	return cmd
}

// newDocsCmd documents the root command together with the README sections
// it manages. It never touches the README itself.
func newDocsCmd(root *cobra.Command, opts options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen-docs [file]",
		Short: "Print a Markdown reference of the managed README sections",
		Long: strings.TrimSpace(`
Write the command reference followed by a table of every README section this tool
regenerates: its markers and the command whose help fills it. Output goes to stdout
unless a file is given.

Example:

  readme-command-help gen-docs docs/readme-sections.md
`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		var buf bytes.Buffer
		anchor := func(name string) string {
			return "#" + strings.TrimSuffix(name, ".md")
		}
		if err := cobradoc.GenMarkdownCustom(root, &buf, anchor); err != nil {
			return fmt.Errorf("render command reference: %w", err)
		}
		buf.WriteString("\n")
		buf.WriteString(sectionReference(opts))
		if len(args) == 0 || args[0] == "-" {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		return writeDocument(args[0], buf.String())
	}
	return cmd
}
