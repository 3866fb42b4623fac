// Package scaffold invokes the external tools that produce the base
// project: create-expo-app for the skeleton and npm for dependency
// installation. Both are blocking, run-to-completion steps with no retry;
// their failure is fatal to the whole run.
package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
)

// Sentinel errors for external tool invocations.
var (
	// ErrScaffoldFailed indicates create-expo-app exited non-zero.
	ErrScaffoldFailed = errors.New("scaffold: create-expo-app failed")

	// ErrInstallFailed indicates the dependency install exited non-zero.
	ErrInstallFailed = errors.New("scaffold: dependency installation failed")
)

// Runner executes an external command in a working directory, blocking
// until it exits. Production uses ExecRunner; tests inject fakes so the
// planner and materializer can be exercised without real tools.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) error
}

// ExecRunner runs commands via os/exec. Output streams to the configured
// writers so the user sees the tools' own progress output.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
	logger *slog.Logger
}

// NewExecRunner creates an ExecRunner. Nil writers discard output.
func NewExecRunner(stdout, stderr io.Writer, logger *slog.Logger) *ExecRunner {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &ExecRunner{Stdout: stdout, Stderr: stderr, logger: logger}
}

// Run executes the command and blocks until completion.
func (r *ExecRunner) Run(ctx context.Context, dir, name string, args ...string) error {
	r.logger.Info("running external tool", "cmd", name, "args", args, "dir", dir)

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
