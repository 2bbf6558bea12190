// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"github.com/reuski/reframe/internal/bootstrap"
	"github.com/reuski/reframe/internal/launcher"
)

func main() {
	os.Exit(run(bootstrap.ResolveBaseDir(), os.Stdin, os.Stdout, os.Environ()))
}

// run returns the process exit code: 0 once the user has acknowledged the
// output, 1 when launcher.hcl cannot be loaded.
func run(baseDir string, stdin io.Reader, stdout io.Writer, env []string) int {
	logger := launcher.NewLogger(lookupEnv(env, "REFRAME_LOG_LEVEL"), lookupEnv(env, "REFRAME_LOG_FORMAT"), os.Stderr).
		With("run", uuid.NewString())

	// The child gets the console's own SIGINT; the launcher only has to
	// survive it to reach the pause.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	console := launcher.NewConsole(stdout)
	prompter := launcher.NewTerminalPrompter(stdin, stdout)
	logger.Debug("Resolved base directory", "dir", baseDir)

	cfg, err := bootstrap.LoadConfig(baseDir)
	if err != nil {
		logger.Error("Failed to load config", "error", err)
		console.Error(err)
		stop()
		if err := prompter.WaitForAcknowledgment(); err != nil {
			logger.Warn("Failed to read acknowledgment", "error", err)
		}
		return 1
	}

	l := launcher.New(cfg, launcher.Options{
		Console:     console,
		Runner:      &launcher.ExecRunner{Stdin: stdin, Stdout: stdout, Stderr: os.Stderr},
		Prompter:    prompter,
		Logger:      logger,
		Env:         env,
		BeforePause: stop,
	})
	res := l.Run(ctx)

	if res.Missing != nil {
		logger.Info("Bye", "state", l.State(), "missing", res.Missing.Name)
	} else {
		logger.Info("Bye", "state", l.State(), "exit_code", res.ExitCode)
	}
	return 0
}

func lookupEnv(env []string, key string) string {
	for _, kv := range env {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			return v
		}
	}
	return ""
}
