package terminal

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Console is a terminal session: keyboard input plus an output stream.
// When the input is a terminal it is switched to raw mode until Close.
type Console struct {
	Keys  *KeyReader
	Out   io.Writer
	fd    int
	state *term.State
}

// OpenConsole prepares in and out for interactive play.
func OpenConsole(in *os.File, out io.Writer) (*Console, error) {
	c := &Console{
		Keys: NewKeyReader(in),
		Out:  out,
		fd:   int(in.Fd()),
	}

	if !term.IsTerminal(c.fd) {
		return c, nil
	}

	state, err := term.MakeRaw(c.fd)
	if err != nil {
		return nil, fmt.Errorf("enter raw mode: %w", err)
	}
	c.state = state
	c.Out = c.Wrap(out)
	return c, nil
}

// Wrap adapts w for writing while the console is open. Raw mode disables
// output post-processing, so "\n" no longer returns the carriage and has to
// be written as "\r\n".
func (c *Console) Wrap(w io.Writer) io.Writer {
	if c.state == nil {
		return w
	}
	return NewNewlineWriter(w)
}

// Raw reports whether the console switched the terminal to raw mode.
func (c *Console) Raw() bool {
	return c.state != nil
}

// Close restores the terminal mode saved by OpenConsole.
func (c *Console) Close() error {
	if c.state == nil {
		return nil
	}
	state := c.state
	c.state = nil
	if err := term.Restore(c.fd, state); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	return nil
}

// NewlineWriter translates "\n" into "\r\n".
type NewlineWriter struct {
	w io.Writer
}

// NewNewlineWriter returns a NewlineWriter writing to w.
func NewNewlineWriter(w io.Writer) *NewlineWriter {
	return &NewlineWriter{w: w}
}

// Write implements io.Writer. The returned count refers to p, not to the
// translated bytes.
func (n *NewlineWriter) Write(p []byte) (int, error) {
	if _, err := n.w.Write(bytes.ReplaceAll(p, []byte("\n"), []byte("\r\n"))); err != nil {
		return 0, err
	}
	return len(p), nil
}
