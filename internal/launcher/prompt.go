package launcher

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Prompter blocks until the user acknowledges the output on screen.
type Prompter interface {
	WaitForAcknowledgment() error
}

// TerminalPrompter waits for a single key when in is an interactive
// terminal and for a line (or EOF) otherwise.
type TerminalPrompter struct {
	in  io.Reader
	out io.Writer
}

func NewTerminalPrompter(in io.Reader, out io.Writer) *TerminalPrompter {
	return &TerminalPrompter{in: in, out: out}
}

func (p *TerminalPrompter) WaitForAcknowledgment() error {
	fmt.Fprint(p.out, "Press any key to continue . . . ")
	defer fmt.Fprintln(p.out)

	if f, ok := p.in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if err := readKey(f); err == nil {
			return nil
		}
	}
	return readLine(p.in)
}

func readKey(f *os.File) error {
	fd := int(f.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return err
	}
	defer term.Restore(fd, old)

	var b [1]byte
	_, err = f.Read(b[:])
	return err
}

func readLine(r io.Reader) error {
	_, err := bufio.NewReader(r).ReadString('\n')
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
