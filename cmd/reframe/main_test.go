package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reuski/reframe/internal/bootstrap"
)

// TestHelperProcess stands in for the main application when run
// re-executes the test binary. It exits with REFRAME_HELPER_EXIT.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("REFRAME_WANT_HELPER_PROCESS") != "1" {
		return
	}
	code, _ := strconv.Atoi(os.Getenv("REFRAME_HELPER_EXIT"))
	os.Exit(code)
}

func writeHelperProgram(t *testing.T, baseDir string) {
	t.Helper()
	content := fmt.Sprintf("program {\n  command = %q\n  args    = [\"-test.run=^TestHelperProcess$\"]\n}\n", os.Args[0])
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, bootstrap.ConfigFileName), []byte(content), 0644))
}

func writeTools(t *testing.T, baseDir string) {
	t.Helper()
	binDir := filepath.Join(baseDir, "bin")
	require.NoError(t, os.MkdirAll(binDir, 0755))
	for _, name := range []string{"ffmpeg", "ffprobe"} {
		require.NoError(t, os.WriteFile(filepath.Join(binDir, bootstrap.ExecutableName(name)), []byte("stub"), 0755))
	}
}

func TestRun_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, baseDir string)
		wantCode int
		wantText string
	}{
		{
			name: "tools_present",
			setup: func(t *testing.T, baseDir string) {
				writeTools(t, baseDir)
				writeHelperProgram(t, baseDir)
			},
			wantCode: 0,
			wantText: "Program exited with code 5",
		},
		{
			name:     "missing_binary",
			setup:    func(t *testing.T, baseDir string) {},
			wantCode: 0,
			wantText: bootstrap.ExecutableName("ffmpeg") + " not found",
		},
		{
			name: "broken_config",
			setup: func(t *testing.T, baseDir string) {
				writeTools(t, baseDir)
				require.NoError(t, os.WriteFile(filepath.Join(baseDir, bootstrap.ConfigFileName), []byte("tool_dir = "), 0644))
			},
			wantCode: 1,
			wantText: bootstrap.ConfigFileName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			baseDir := t.TempDir()
			tt.setup(t, baseDir)

			env := append(os.Environ(), "REFRAME_WANT_HELPER_PROCESS=1", "REFRAME_HELPER_EXIT=5")
			var out bytes.Buffer

			code := run(baseDir, strings.NewReader(""), &out, env)

			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, 1, strings.Count(out.String(), "Press any key to continue"), "the console must pause exactly once")
			assert.Contains(t, out.String(), tt.wantText)
		})
	}
}

type closedConsole struct{}

func (closedConsole) Read([]byte) (int, error) {
	return 0, errors.New("console closed")
}

func TestRun_BrokenConfigWithClosedConsole(t *testing.T) {
	baseDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, bootstrap.ConfigFileName), []byte("pause = maybe"), 0644))
	var out bytes.Buffer

	code := run(baseDir, closedConsole{}, &out, os.Environ())

	assert.Equal(t, 1, code)
	assert.Contains(t, out.String(), "Press any key to continue")
}

func TestLookupEnv(t *testing.T) {
	env := []string{"REFRAME_LOG_LEVEL=debug", "PATH=/usr/bin", "EMPTY="}

	assert.Equal(t, "debug", lookupEnv(env, "REFRAME_LOG_LEVEL"))
	assert.Equal(t, "", lookupEnv(env, "EMPTY"))
	assert.Equal(t, "", lookupEnv(env, "REFRAME_LOG_FORMAT"))
}
