// Package cmd runs external commands for cliprompt.
//
// Commands run under a context so that a spinner timeout can kill them.
// Stderr is captured and becomes the error message on failure, which keeps
// the spinner line intact while the command runs.
//
// # Usage
//
//	err := cmd.RunContext(ctx, "", "make", "build")
//	out, err := cmd.OutputContext(ctx, "/tmp", "ls")
//	out, err := cmd.ShellContext(ctx, "", "npm ci && npm test")
package cmd
