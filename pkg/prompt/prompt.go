// Package prompt provides the single interactive input channel used by
// checks that need a human answer.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ErrClosed is returned by Ask once the prompt has been closed.
var ErrClosed = errors.New("prompt is closed")

// Asker asks a question and returns the answer line.
type Asker interface {
	Ask(question string) (string, error)
	Close() error
}

// Prompt reads line-based answers from an input stream. It is meant to be
// created once per run and closed right after its only use.
type Prompt struct {
	in     *bufio.Reader
	out    io.Writer
	closed bool
}

// New returns a Prompt reading from in and writing questions to out.
// The underlying reader is never closed; Close only ends this prompt's use of it.
func New(in io.Reader, out io.Writer) *Prompt {
	return &Prompt{in: bufio.NewReader(in), out: out}
}

// Ask writes question and blocks until a line is read. A final line without
// a newline is returned as is; EOF with nothing read yields an empty answer.
func (p *Prompt) Ask(question string) (string, error) {
	if p.closed {
		return "", ErrClosed
	}
	if _, err := fmt.Fprint(p.out, question); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Close ends the prompt. It is safe to call more than once.
func (p *Prompt) Close() error {
	p.closed = true
	return nil
}

// Closed reports whether Close has been called.
func (p *Prompt) Closed() bool {
	return p.closed
}

// Affirmative reports whether answer counts as a yes: any answer containing
// the letter y, in either case.
func Affirmative(answer string) bool {
	return strings.Contains(strings.ToLower(answer), "y")
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
