// Package prompt reads operator command lines for zrpcd vtysh, designed for
// testability with mock implementations.
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

// LineReader reads one command line at a time.
type LineReader interface {
	// ReadLine returns the next line without its terminator. It returns
	// io.EOF when input is exhausted or the operator ends the session.
	ReadLine() (string, error)
	// Close restores any terminal state changed by the reader.
	Close() error
}

// New returns a TerminalLineReader when in is a terminal and a
// StreamLineReader otherwise.
func New(in *os.File, promptText string) (LineReader, error) {
	if term.IsTerminal(int(in.Fd())) {
		r, err := NewTerminalLineReader(in, promptText)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return NewStreamLineReader(in), nil
}

// StreamLineReader reads lines from a pipe or file without a prompt.
type StreamLineReader struct {
	scanner *bufio.Scanner
}

// NewStreamLineReader creates a StreamLineReader over r.
func NewStreamLineReader(r io.Reader) *StreamLineReader {
	return &StreamLineReader{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line from the stream.
func (s *StreamLineReader) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return strings.TrimRight(s.scanner.Text(), "\r"), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return "", io.EOF
}

// Close does nothing.
func (s *StreamLineReader) Close() error {
	return nil
}

// TerminalLineReader implements LineReader with golang.org/x/term line
// editing and history. The terminal is in raw mode until Close.
type TerminalLineReader struct {
	fd       int
	oldState *term.State
	terminal *term.Terminal
}

type stdio struct {
	io.Reader
	io.Writer
}

// NewTerminalLineReader puts in into raw mode and returns a reader that
// shows promptText before every line.
func NewTerminalLineReader(in *os.File, promptText string) (*TerminalLineReader, error) {
	fd := int(in.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to set raw mode: %w", err)
	}
	return &TerminalLineReader{
		fd:       fd,
		oldState: oldState,
		terminal: term.NewTerminal(stdio{Reader: in, Writer: in}, promptText),
	}, nil
}

// ReadLine reads a line with echo and editing. Ctrl-D on an empty line
// returns io.EOF.
func (r *TerminalLineReader) ReadLine() (string, error) {
	line, err := r.terminal.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", io.EOF
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return line, nil
}

// Output returns a writer that is safe to use while the terminal is raw.
func (r *TerminalLineReader) Output() io.Writer {
	return r.terminal
}

// Close restores the terminal.
func (r *TerminalLineReader) Close() error {
	return term.Restore(r.fd, r.oldState)
}

// MockLineReader implements LineReader for testing, returning pre-configured
// lines and then io.EOF.
type MockLineReader struct {
	// Lines is the queue of lines to return.
	Lines []string
	// Closed records whether Close was called.
	Closed bool

	index int
}

// NewMockLineReader creates a MockLineReader with the given lines.
func NewMockLineReader(lines ...string) *MockLineReader {
	return &MockLineReader{Lines: lines}
}

// ReadLine returns the next queued line.
func (m *MockLineReader) ReadLine() (string, error) {
	if m.index >= len(m.Lines) {
		return "", io.EOF
	}
	line := m.Lines[m.index]
	m.index++
	return line, nil
}

// Close marks the reader closed.
func (m *MockLineReader) Close() error {
	m.Closed = true
	return nil
}
