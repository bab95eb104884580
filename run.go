package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
)

const defaultReadmePath = "README.md"

// defaultInvocation starts the development build of the companion CLI.
var defaultInvocation = []string{"cargo", "run", "--"}

// defaultSubcommands lists the sections regenerated on each run, in order.
// The empty entry is the top-level command.
var defaultSubcommands = []string{"", "run", "sse", "completions"}

type options struct {
	readmePath  string
	invocation  []string
	subcommands []string
}

func defaultOptions() options {
	return options{
		readmePath:  defaultReadmePath,
		invocation:  append([]string{}, defaultInvocation...),
		subcommands: append([]string{}, defaultSubcommands...),
	}
}

type cliApp struct {
	stdout io.Writer
	opts   options
	help   helpProvider
}

func run(argv []string, stdout io.Writer) error {
	cmd := newRootCmd(stdout)
	cmd.SetArgs(argv)
	return cmd.Execute()
}

func (app *cliApp) execute(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	help := app.help
	if help == nil {
		help = commandHelp{invocation: app.opts.invocation}
	}
	return regenerate(ctx, app.opts, help)
}

// regenerate refreshes every help section of the README at opts.readmePath
// and writes the result back over the same file.
func regenerate(ctx context.Context, opts options, help helpProvider) error {
	content, err := readDocument(opts.readmePath)
	if err != nil {
		return err
	}
	for _, sub := range opts.subcommands {
		snapshot, err := help.Help(ctx, sub)
		if err != nil {
			return fmt.Errorf("help for %s: %w", sectionKey(sub), err)
		}
		content = spliceSection(sectionKey(sub), content, snapshot)
	}
	return writeDocument(opts.readmePath, finalizeDocument(content))
}

// sectionReference renders a Markdown table of the sections regenerated with
// opts, in processing order.
func sectionReference(opts options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "### Managed sections of %s\n\n", opts.readmePath)
	b.WriteString("| Section | Markers | Help command |\n")
	b.WriteString("|---------|---------|--------------|\n")
	for _, sub := range opts.subcommands {
		key := sectionKey(sub)
		start, end := sectionMarkers(key)
		helpCmd := "(not configured)"
		if len(opts.invocation) > 0 {
			helpCmd = commandLine(opts.invocation[0], helpArgs(opts.invocation[1:], sub))
		}
		fmt.Fprintf(&b, "| %s | `%s` `%s` | `%s` |\n", key, start, end, helpCmd)
	}
	return b.String()
}

// finalizeDocument drops surrounding whitespace and ends the document with
// exactly one newline.
func finalizeDocument(content string) string {
	return strings.TrimSpace(content) + "\n"
}

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func writeDocument(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
