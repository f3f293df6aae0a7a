// Package action executes recovery commands.
package action

import (
	"context"
	"os/exec"
	"time"
)

// Runner executes a recovery command and reports whether it succeeded.
// What the command does is opaque to the monitor; only the exit status
// matters.
type Runner interface {
	Run(ctx context.Context, command string) bool
}

// ShellRunner runs commands through the host shell, synchronously, with a
// per-invocation timeout so a hung command cannot block a site's check
// cycle forever.
type ShellRunner struct {
	timeout time.Duration
}

// NewShellRunner creates a runner whose invocations are bounded by timeout
func NewShellRunner(timeout time.Duration) *ShellRunner {
	return &ShellRunner{timeout: timeout}
}

// Run executes command with "sh -c" and returns true on exit status zero.
// Output is discarded.
func (r *ShellRunner) Run(ctx context.Context, command string) bool {
	if command == "" {
		return false
	}

	runCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "sh", "-c", command)
	return cmd.Run() == nil
}
