package bootstrap

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ProbeVersion runs "<path> -version" and returns the first line of its
// output, which for ffmpeg and ffprobe carries the build version.
func ProbeVersion(ctx context.Context, path string) (string, error) {
	cmd := exec.CommandContext(ctx, path, "-version")
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("%s -version failed: %w", path, err)
	}

	line, _, _ := strings.Cut(out.String(), "\n")
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("%s -version printed nothing", path)
	}
	return line, nil
}
