package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

const ConfigFileName = "launcher.hcl"

const DefaultTitle = "Video Reframe Tool"

type Config struct {
	Title    string
	BaseDir  string
	ToolDir  string
	Required []string
	Program  Program
	Pause    bool
}

// Program is the downstream application started once validation passes.
type Program struct {
	Command string
	Args    []string
	Dir     string
}

type hclConfigFile struct {
	Title    *string     `hcl:"title"`
	ToolDir  *string     `hcl:"tool_dir"`
	Required []string    `hcl:"required,optional"`
	Pause    *bool       `hcl:"pause"`
	Program  *hclProgram `hcl:"program,block"`
}

type hclProgram struct {
	Command string   `hcl:"command"`
	Args    []string `hcl:"args,optional"`
	Dir     *string  `hcl:"dir"`
}

// DefaultConfig returns the built-in layout: bin/ffmpeg and bin/ffprobe
// beside the launcher, and the application started through the platform's
// python interpreter.
func DefaultConfig(baseDir string) *Config {
	platform := GetPlatformInfo()
	return &Config{
		Title:    DefaultTitle,
		BaseDir:  baseDir,
		ToolDir:  filepath.Join(baseDir, "bin"),
		Required: []string{platform.ExecutableName("ffmpeg"), platform.ExecutableName("ffprobe")},
		Program: Program{
			Command: platform.Interpreter,
			Args:    []string{"main.py"},
			Dir:     baseDir,
		},
		Pause: true,
	}
}

// LoadConfig reads launcher.hcl from baseDir. A missing file yields the
// defaults.
func LoadConfig(baseDir string) (*Config, error) {
	path := filepath.Join(baseDir, ConfigFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(baseDir), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var parsed hclConfigFile
	diags = gohcl.DecodeBody(file.Body, evalContext(baseDir), &parsed)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	cfg := DefaultConfig(baseDir)
	if err := cfg.apply(&parsed); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return cfg, nil
}

func evalContext(baseDir string) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"base_dir": cty.StringVal(baseDir),
			"os":       cty.StringVal(GetPlatformInfo().GOOS),
		},
	}
}

func (c *Config) apply(f *hclConfigFile) error {
	if f.Title != nil {
		c.Title = *f.Title
	}
	if f.ToolDir != nil {
		c.ToolDir = c.resolve(*f.ToolDir)
	}
	if f.Required != nil {
		if len(f.Required) == 0 {
			return errors.New("required must list at least one binary")
		}
		c.Required = make([]string, 0, len(f.Required))
		for _, name := range f.Required {
			if name == "" {
				return errors.New("required contains an empty name")
			}
			c.Required = append(c.Required, ExecutableName(name))
		}
	}
	if f.Pause != nil {
		c.Pause = *f.Pause
	}
	if f.Program != nil {
		if f.Program.Command == "" {
			return errors.New("program command cannot be empty")
		}
		c.Program = Program{
			Command: f.Program.Command,
			Args:    f.Program.Args,
			Dir:     c.BaseDir,
		}
		if f.Program.Dir != nil {
			c.Program.Dir = c.resolve(*f.Program.Dir)
		}
	}
	return nil
}

func (c *Config) resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.BaseDir, p)
}

func (c *Config) BinaryPath(name string) string {
	return filepath.Join(c.ToolDir, name)
}
