// Package term writes user-facing output for the zrpcd CLI and vtysh. It is
// separate from the daemon's diagnostic log in internal/clog.
//
// Print, Printf and Println go to stdout and are dropped under --silent.
// Warn and Error go to stderr behind a colored prefix and are always shown.
package term

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

var (
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed)
	okColor   = color.New(color.FgGreen)
)

// console is the pair of streams the package writes to.
type console struct {
	mu     sync.Mutex
	out    io.Writer
	errOut io.Writer
	silent bool
}

var std = &console{out: os.Stdout, errOut: os.Stderr}

func (c *console) stdout() io.Writer {
	if c.silent {
		return io.Discard
	}
	return c.out
}

func (c *console) writeOut(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = io.WriteString(c.stdout(), s)
}

func (c *console) writeErr(prefix *color.Color, label, msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.errOut, "%s %s\n", prefix.Sprint(label), msg)
}

// SetSilent turns --silent on or off.
func SetSilent(on bool) {
	std.mu.Lock()
	std.silent = on
	std.mu.Unlock()
}

// SetOutput redirects stdout and stderr. A nil writer selects the process
// stream.
func SetOutput(out, errOut io.Writer) {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	std.mu.Lock()
	std.out, std.errOut = out, errOut
	std.mu.Unlock()
}

// Reset restores the process streams and clears silent mode.
func Reset() {
	SetOutput(nil, nil)
	SetSilent(false)
}

func Print(a ...any) {
	std.writeOut(fmt.Sprint(a...))
}

func Printf(format string, a ...any) {
	std.writeOut(fmt.Sprintf(format, a...))
}

func Println(a ...any) {
	std.writeOut(fmt.Sprintln(a...))
}

// Warn prints "Warning: <msg>" to stderr.
func Warn(format string, a ...any) {
	std.writeErr(warnColor, "Warning:", fmt.Sprintf(format, a...))
}

// Error prints "Error: <msg>" to stderr.
func Error(format string, a ...any) {
	std.writeErr(errColor, "Error:", fmt.Sprintf(format, a...))
}

// Stdout returns the stdout writer, or io.Discard under --silent.
func Stdout() io.Writer {
	std.mu.Lock()
	defer std.mu.Unlock()
	return std.stdout()
}

// SetColor forces colored output on or off regardless of the terminal.
func SetColor(on bool) {
	color.NoColor = !on
	for _, c := range []*color.Color{warnColor, errColor, okColor} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
}

// Status returns a vty status name colored green, yellow or red.
func Status(name string) string {
	switch name {
	case "success":
		return okColor.Sprint(name)
	case "warning":
		return warnColor.Sprint(name)
	default:
		return errColor.Sprint(name)
	}
}
