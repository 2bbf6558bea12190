// SPDX-License-Identifier: AGPL-3.0-or-later

package launcher

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
)

// Console writes the human-readable status lines. The glyphs and colors
// are cosmetic; nothing parses this output.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Banner(title string) {
	color.Fprintf(c.w, "<cyan>=== %s ===</>\n", title)
	fmt.Fprintln(c.w, "Checking bundled tools...")
}

func (c *Console) Found(name string) {
	color.Fprintf(c.w, "<green>✓</> %s found\n", name)
}

// MissingBinary reports a required binary that is not where it should be.
// It never exits; the caller decides what happens next.
func (c *Console) MissingBinary(name, dir string, dirExists bool) {
	if dirExists {
		color.Fprintf(c.w, "<yellow>⚠</> %s not found in %s\n", name, dir)
	} else {
		color.Fprintf(c.w, "<yellow>⚠</> %s not found: directory %s does not exist\n", name, dir)
	}
	fmt.Fprintf(c.w, "  Place %s in %s and start the launcher again.\n", name, dir)
}

func (c *Console) Starting(command string, args []string) {
	line := strings.TrimSpace(command + " " + strings.Join(args, " "))
	color.Fprintf(c.w, "<green>✓</> Tools ready, starting %s\n", line)
}

func (c *Console) Exited(code int, err error) {
	switch {
	case err != nil:
		color.Fprintf(c.w, "<yellow>⚠</> Could not start the program: %v\n", err)
	case code != 0:
		color.Fprintf(c.w, "<yellow>⚠</> Program exited with code %d\n", code)
	}
}

func (c *Console) Error(err error) {
	color.Fprintf(c.w, "<red>✗</> %v\n", err)
}
