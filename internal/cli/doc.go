// Package cli implements the precis command-line interface.
//
// Commands: generate (assemble a prompt artifact), review (generate and
// submit to an AI backend), config (init/set/show), serve (MCP stdio
// server), version. Handlers set a package-level exit code instead of
// calling os.Exit, so deferred cleanup always runs.
package cli
