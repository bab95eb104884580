// # readme-command-help
//
// `readme-command-help` keeps the command reference in `README.md` in sync
// with the CLI it documents. It runs the development build of the CLI with
// `--help`, once for the top-level command and once for each of the `run`,
// `sse` and `completions` subcommands, and splices the output into marked
// sections of the README.
//
// ## Usage
//
// Run it from the repository root, next to `README.md`:
//
//	go run github.com/agentflare-ai/readme-command-help
//
// The command takes no arguments; any it is given are ignored. Every run
// rewrites `README.md` in place.
//
// ## Sections
//
// A section is a pair of marker lines:
//
//	<!-- START_SECTION:run-command-help -->
//	<!-- END_SECTION:run-command-help -->
//
// The key is the subcommand name followed by `-command-help`, or
// `base-command-help` for the top-level command. Everything between the
// markers is replaced with a fenced code block holding the output of
// `cargo run -- run --help`, with trailing whitespace removed from each
// line. The markers themselves and every line outside them are left as is.
//
// A section is only rewritten when both markers are present, start before
// end. A README without markers for a key is not changed for that key.
//
// ## Errors
//
// Failing to start the CLI, CLI output that is not UTF-8, and a missing or
// unwritable `README.md` abort the run with a non-zero exit status. The
// CLI's own exit status and stderr are ignored.
//
// ## Section Reference
//
// `gen-docs` prints the command reference and a table of the managed
// sections with their markers and help commands, or writes it to a file:
//
//	readme-command-help gen-docs docs/readme-sections.md
package main
