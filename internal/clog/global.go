package clog

import (
	"io"
	"log"
	"strings"
	"sync/atomic"
)

// std holds the process-wide logger used by package-level functions. Until
// Configure or ReplaceGlobal is called it writes to stderr only.
var std atomic.Pointer[Logger]

func init() {
	std.Store(newDefault())
}

func newDefault() *Logger {
	cfg := DefaultConfig()
	cfg.Syslog = false
	return New(cfg)
}

// Configure opens a logger for cfg and installs it as the process-wide
// logger. The previous logger is closed. A syslog connection failure is
// returned but the new logger is installed regardless.
func Configure(cfg Config, opts ...Option) error {
	l, err := Open(cfg, opts...)
	old := ReplaceGlobal(l)
	_ = old.Close()
	return err
}

// Default returns the process-wide logger.
func Default() *Logger {
	return std.Load()
}

// Debug logs a message at Debug severity using the global logger.
func Debug(format string, args ...any) {
	std.Load().Debug(format, args...)
}

// Info logs a message at Informational severity using the global logger.
func Info(format string, args ...any) {
	std.Load().Info(format, args...)
}

// Notice logs a message at Notice severity using the global logger.
func Notice(format string, args ...any) {
	std.Load().Notice(format, args...)
}

// Warn logs a message at Warning severity using the global logger.
func Warn(format string, args ...any) {
	std.Load().Warn(format, args...)
}

// Error logs a message at Error severity using the global logger.
func Error(format string, args ...any) {
	std.Load().Error(format, args...)
}

// DebugEnabled reports whether a debug category is on in the global logger.
// Callers guard expensive diagnostics with it:
//
//	if clog.DebugEnabled(clog.DebugNetwork) {
//		clog.Debug("sent %d bytes to %s", n, peer)
//	}
func DebugEnabled(c Category) bool {
	return std.Load().DebugEnabled(c)
}

// Close releases the global logger's file target and syslog connection.
// This should be called during shutdown.
func Close() error {
	return std.Load().Close()
}

// Reset installs a fresh default logger. Primarily useful for testing.
func Reset() {
	std.Store(newDefault())
}

// Discard configures the global logger to discard all output.
// This is useful for silencing logs in tests.
func Discard() {
	l := std.Load()
	l.SetConsole(io.Discard)
	l.SetSyslog(false)
	l.Flush()
}

// TestLogger returns a logger that writes console lines to w at Debug
// severity with syslog and file sinks off.
func TestLogger(w io.Writer) *Logger {
	cfg := DefaultConfig()
	cfg.Syslog = false
	return New(cfg, WithConsole(w))
}

// ReplaceGlobal replaces the global logger and returns the previous one.
// Useful for testing. Caller should restore the original logger after test.
func ReplaceGlobal(l *Logger) *Logger {
	return std.Swap(l)
}

// RedirectStdLog sends the standard library's log package to the global
// logger at Informational severity, without log's own timestamp prefix.
func RedirectStdLog() {
	log.SetFlags(0)
	log.SetOutput(Writer(SeverityInformational))
}

// Writer returns an io.Writer that logs each write to the global logger at
// sev. This is useful for integrating with libraries that expect an
// io.Writer.
func Writer(sev Severity) io.Writer {
	return &levelWriter{sev: sev}
}

type levelWriter struct {
	sev Severity
}

func (w *levelWriter) Write(p []byte) (n int, err error) {
	msg := strings.TrimSuffix(string(p), "\n")
	std.Load().Logf(w.sev, "%s", msg)
	return len(p), nil
}
