package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"unicode"
	"unicode/utf8"
)

// helpProvider returns the help text of the companion CLI. An empty
// subcommand asks for the top-level help.
type helpProvider interface {
	Help(ctx context.Context, subcommand string) (string, error)
}

// commandHelp runs invocation followed by the subcommand and --help, and
// keeps only what the process wrote to stdout. The exit status and stderr
// are ignored; only a process that cannot be started is an error.
type commandHelp struct {
	invocation []string
}

func (c commandHelp) Help(ctx context.Context, subcommand string) (string, error) {
	if len(c.invocation) == 0 {
		return "", errors.New("no help command configured")
	}
	args := helpArgs(c.invocation[1:], subcommand)

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, c.invocation[0], args...)
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return "", fmt.Errorf("run %s: %w", commandLine(c.invocation[0], args), err)
		}
	}
	if !utf8.Valid(stdout.Bytes()) {
		return "", fmt.Errorf("run %s: output is not valid UTF-8", commandLine(c.invocation[0], args))
	}
	return normalizeHelp(stdout.String()), nil
}

func helpArgs(prefix []string, subcommand string) []string {
	args := append([]string{}, prefix...)
	if subcommand != "" {
		args = append(args, subcommand)
	}
	return append(args, "--help")
}

func commandLine(name string, args []string) string {
	return strings.Join(append([]string{name}, args...), " ")
}

// normalizeHelp strips trailing whitespace from every line of raw and joins
// the lines back with "\n". A final line break does not produce an empty
// last line.
func normalizeHelp(raw string) string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")
	raw = strings.TrimSuffix(raw, "\n")
	if raw == "" {
		return ""
	}
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return strings.Join(lines, "\n")
}
