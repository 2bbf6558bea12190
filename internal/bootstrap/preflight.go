// SPDX-License-Identifier: AGPL-3.0-or-later

package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
)

// MissingPrerequisiteError reports a required binary absent from the tool
// directory.
type MissingPrerequisiteError struct {
	Name      string
	Dir       string
	DirExists bool
}

func (e *MissingPrerequisiteError) Error() string {
	return fmt.Sprintf("required tool '%s' not found in %s", e.Name, e.Dir)
}

// CheckRequiredBinary reports whether rel, resolved against baseDir, is an
// existing non-directory file.
func CheckRequiredBinary(baseDir, rel string) bool {
	path := rel
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, rel)
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// CheckPrerequisites walks the required binaries in order and stops at the
// first one that is missing. onFound is called for each binary that passes.
func CheckPrerequisites(cfg *Config, onFound func(name, path string)) error {
	for _, name := range cfg.Required {
		if !CheckRequiredBinary(cfg.BaseDir, filepath.Join(cfg.ToolDir, name)) {
			return &MissingPrerequisiteError{
				Name:      name,
				Dir:       cfg.ToolDir,
				DirExists: dirExists(cfg.ToolDir),
			}
		}
		if onFound != nil {
			onFound(name, cfg.BinaryPath(name))
		}
	}
	return nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
