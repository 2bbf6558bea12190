package launcher

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
)

// Command describes the child process. Env is passed as-is; the launcher
// never edits its own environment.
type Command struct {
	Path string
	Args []string
	Dir  string
	Env  []string
}

// Runner starts a command, waits for it and returns its exit code.
type Runner interface {
	Run(ctx context.Context, cmd Command) (int, error)
}

// ExecRunner runs the child with the launcher's console streams attached.
// Cancelling ctx sends the child an interrupt and keeps waiting for it to
// exit; the child is never killed.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (r *ExecRunner) Run(ctx context.Context, c Command) (int, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Env = c.Env
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	cmd.Cancel = func() error {
		return cmd.Process.Signal(os.Interrupt)
	}

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	// After an interrupt Run reports the context error even when the child
	// exits cleanly, so trust the process state once the child has run.
	if cmd.ProcessState != nil {
		return cmd.ProcessState.ExitCode(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, err
}
