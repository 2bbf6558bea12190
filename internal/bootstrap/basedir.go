package bootstrap

import (
	"os"
	"path/filepath"
)

// ResolveBaseDir returns the directory holding the running executable,
// with symlinks resolved. It falls back to the working directory.
func ResolveBaseDir() string {
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		return filepath.Dir(exe)
	}
	if wd, err := os.Getwd(); err == nil {
		return wd
	}
	return "."
}
