// Package vty implements the operator command surface of zrpcd: the
// "show debugging zrpc", "debug zrpc ..." and "log ..." commands, and the
// unix socket that carries them from zrpcd vtysh to the daemon.
//
// Each typed line is dispatched through a cobra command tree, so
// "show debugging zrpc stats" is the stats subcommand of zrpc, of
// debugging, of show.
package vty

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xdg/zrpcd/internal/clog"
	"github.com/xdg/zrpcd/internal/zrpc"
)

// Status is the outcome class of one command.
type Status int

const (
	// StatusSuccess is a command that completed.
	StatusSuccess Status = iota
	// StatusWarning is returned by the commands that enable a debug
	// category. The command took effect.
	StatusWarning
	// StatusError is a command that was rejected or failed.
	StatusError
)

// String returns the lower-case status name used on the wire.
func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusWarning:
		return "warning"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseStatus is the inverse of Status.String. Unknown names map to
// StatusError.
func ParseStatus(s string) Status {
	switch s {
	case "success":
		return StatusSuccess
	case "warning":
		return StatusWarning
	default:
		return StatusError
	}
}

// ErrIncomplete is returned for a command prefix such as "show debugging".
var ErrIncomplete = errors.New("command incomplete")

// ErrNoConfigFile is returned by "write" when no running-config path is set.
var ErrNoConfigFile = errors.New("no running configuration file")

// Result is the outcome of one command line.
type Result struct {
	Status Status
	Output []string
	Err    error
}

// Shell executes vty command lines against a Logger.
type Shell struct {
	logger     *clog.Logger
	context    zrpc.ContextProvider
	errno      *zrpc.ErrnoTable
	saveConfig func(lines []string) error
}

// Option configures a Shell.
type Option func(*Shell)

// WithContext sets how the vpnservice context is found for the stats
// command.
func WithContext(p zrpc.ContextProvider) Option {
	return func(s *Shell) {
		s.context = p
	}
}

// WithErrnoTable sets the histogram shown by "show debugging zrpc errno".
func WithErrnoTable(t *zrpc.ErrnoTable) Option {
	return func(s *Shell) {
		s.errno = t
	}
}

// WithConfigWriter sets where "write" persists the running configuration.
func WithConfigWriter(save func(lines []string) error) Option {
	return func(s *Shell) {
		s.saveConfig = save
	}
}

// NewShell returns a Shell operating on logger.
func NewShell(logger *clog.Logger, opts ...Option) *Shell {
	s := &Shell{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute runs one command line. Blank lines and lines starting with "!"
// or "#" succeed without effect.
func (s *Shell) Execute(line string) Result {
	args := strings.Fields(line)
	if len(args) == 0 || strings.HasPrefix(args[0], "!") || strings.HasPrefix(args[0], "#") {
		return Result{Status: StatusSuccess}
	}

	var out bytes.Buffer
	status := StatusSuccess
	root := s.newRootCommand(&status)
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)

	err := root.Execute()
	res := Result{Status: status, Output: splitLines(out.String()), Err: err}
	if err != nil {
		res.Status = StatusError
	}
	return res
}

// RunningConfig returns the command lines that reproduce the current
// logging toggles, file target and debug categories.
func (s *Shell) RunningConfig() []string {
	set := s.logger.Settings()

	var lines []string
	if set.File != "" {
		lines = append(lines, fmt.Sprintf("log file %s %s", set.File, set.Level))
	}
	lines = append(lines,
		toggleLine(set.Stdout, "log stdout"),
		toggleLine(set.Syslog, "log syslog"),
		toggleLine(set.RecordPriority, "log record-priority"),
	)
	return append(lines, set.Debug.Serialize()...)
}

// LoadRunningConfig clears the debug categories and replays lines. The
// saved lines describe the complete debug state, so categories that are
// not listed end up disabled. Every line is attempted; failures are joined.
func (s *Shell) LoadRunningConfig(lines []string) error {
	s.logger.ResetDebug()

	var errs []error
	for i, line := range lines {
		res := s.Execute(line)
		if res.Status == StatusError {
			errs = append(errs, fmt.Errorf("line %d %q: %w", i+1, line, res.Err))
		}
	}
	return errors.Join(errs...)
}

func toggleLine(on bool, cmd string) string {
	if on {
		return cmd
	}
	return "no " + cmd
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
