// Package launcher checks the bundled tools, starts the main program with
// the tool directory on its search path and holds the console open until
// the user acknowledges the output.
package launcher

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/reuski/reframe/internal/bootstrap"
)

type Options struct {
	Console  *Console
	Runner   Runner
	Prompter Prompter
	Logger   *slog.Logger
	// Env is the base environment handed to the child. Defaults to
	// os.Environ().
	Env []string
	// BeforePause runs once the child is done, right before the prompt.
	BeforePause func()
}

type Launcher struct {
	cfg      *bootstrap.Config
	console  *Console
	runner   Runner
	prompter Prompter
	logger   *slog.Logger
	env      []string

	beforePause func()
	states      []State
}

// Result summarizes one run.
type Result struct {
	Missing   *bootstrap.MissingPrerequisiteError
	Launched  bool
	ExitCode  int
	LaunchErr error
}

func New(cfg *bootstrap.Config, opts Options) *Launcher {
	l := &Launcher{
		cfg:      cfg,
		console:  opts.Console,
		runner:   opts.Runner,
		prompter: opts.Prompter,
		logger:   opts.Logger,
		env:      opts.Env,

		beforePause: opts.BeforePause,
	}
	if l.console == nil {
		l.console = NewConsole(os.Stdout)
	}
	if l.runner == nil {
		l.runner = &ExecRunner{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	}
	if l.prompter == nil {
		l.prompter = NewTerminalPrompter(os.Stdin, os.Stdout)
	}
	if l.logger == nil {
		l.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if l.env == nil {
		l.env = os.Environ()
	}
	return l
}

// State returns the most recent state, or Validating before Run.
func (l *Launcher) State() State {
	if len(l.states) == 0 {
		return Validating
	}
	return l.states[len(l.states)-1]
}

// States returns every state the launcher has passed through, in order.
func (l *Launcher) States() []State {
	return append([]State(nil), l.states...)
}

func (l *Launcher) Run(ctx context.Context) Result {
	l.console.Banner(l.cfg.Title)

	res := l.validateAndLaunch(ctx)

	l.transition(WaitingForAcknowledgment)
	if l.beforePause != nil {
		l.beforePause()
	}
	if l.cfg.Pause {
		if err := l.prompter.WaitForAcknowledgment(); err != nil {
			l.logger.Warn("Failed to read acknowledgment", "error", err)
		}
	}
	l.transition(Done)

	return res
}

func (l *Launcher) validateAndLaunch(ctx context.Context) Result {
	l.transition(Validating)

	err := bootstrap.CheckPrerequisites(l.cfg, func(name, path string) {
		l.console.Found(name)
		l.probe(ctx, name, path)
	})

	var missing *bootstrap.MissingPrerequisiteError
	if errors.As(err, &missing) {
		l.transition(Failed)
		l.logger.Warn("Required tool missing", "name", missing.Name, "dir", missing.Dir)
		l.console.MissingBinary(missing.Name, missing.Dir, missing.DirExists)
		return Result{Missing: missing}
	}

	l.transition(Running)

	cmd := Command{
		Path: l.cfg.Program.Command,
		Args: l.cfg.Program.Args,
		Dir:  l.cfg.Program.Dir,
		Env:  bootstrap.ExtendSearchPath(l.env, l.cfg.ToolDir),
	}
	l.console.Starting(cmd.Path, cmd.Args)
	l.logger.Info("Starting program", "command", cmd.Path, "args", cmd.Args, "dir", cmd.Dir, "tool_dir", l.cfg.ToolDir)

	code, err := l.runner.Run(ctx, cmd)
	if err != nil {
		l.logger.Error("Program failed to start", "command", cmd.Path, "error", err)
	} else {
		l.logger.Info("Program exited", "exit_code", code)
	}
	l.console.Exited(code, err)

	return Result{Launched: true, ExitCode: code, LaunchErr: err}
}

func (l *Launcher) probe(ctx context.Context, name, path string) {
	if !l.logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	version, err := bootstrap.ProbeVersion(ctx, path)
	if err != nil {
		l.logger.Debug("Version probe failed", "name", name, "error", err)
		return
	}
	l.logger.Debug("Tool version", "name", name, "version", version)
}

func (l *Launcher) transition(s State) {
	if len(l.states) > 0 {
		l.logger.Debug("State change", "from", l.State(), "to", s)
	}
	l.states = append(l.states, s)
}
