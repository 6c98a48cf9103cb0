package prompt

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func readAll(t *testing.T, r LineReader) []string {
	t.Helper()
	var lines []string
	for {
		line, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			return lines
		}
		if err != nil {
			t.Fatalf("ReadLine() error = %v", err)
		}
		lines = append(lines, line)
	}
}

func TestStreamLineReader(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single line", input: "show logging\n", want: []string{"show logging"}},
		{name: "no trailing newline", input: "debug zrpc", want: []string{"debug zrpc"}},
		{name: "crlf", input: "debug zrpc\r\nno debug zrpc cache\r\n", want: []string{"debug zrpc", "no debug zrpc cache"}},
		{name: "blank lines kept", input: "a\n\nb\n", want: []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewStreamLineReader(strings.NewReader(tt.input))
			if got := readAll(t, r); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("lines = %q, want %q", got, tt.want)
			}
			if err := r.Close(); err != nil {
				t.Errorf("Close() error = %v", err)
			}
		})
	}
}

func TestNew_NonTerminal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input")
	if err := os.WriteFile(path, []byte("show debugging zrpc\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	r, err := New(f, "zrpcd# ")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if _, ok := r.(*StreamLineReader); !ok {
		t.Fatalf("New() = %T, want *StreamLineReader for a regular file", r)
	}
	if got := readAll(t, r); !reflect.DeepEqual(got, []string{"show debugging zrpc"}) {
		t.Errorf("lines = %q", got)
	}
}

func TestMockLineReader(t *testing.T) {
	m := NewMockLineReader("debug zrpc", "show debugging zrpc")

	if got := readAll(t, m); !reflect.DeepEqual(got, []string{"debug zrpc", "show debugging zrpc"}) {
		t.Errorf("lines = %q", got)
	}
	if _, err := m.ReadLine(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadLine() after exhaustion error = %v, want io.EOF", err)
	}
	_ = m.Close()
	if !m.Closed {
		t.Error("Close() did not mark the reader closed")
	}
}
