package clog

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// timestampFormat is locale independent, one-second resolution.
const timestampFormat = "2006/01/02 15:04:05"

// DefaultTag is the component tag written between the severity label and
// the message.
const DefaultTag = "ZRPC"

// Config is the complete logging configuration. It is a plain value: the
// Logger copies it at construction and afterwards owns its own state.
type Config struct {
	// Level is the threshold; messages less severe than Level are dropped.
	Level Severity
	// Stdout enables the console sink (written to stderr).
	Stdout bool
	// Syslog enables the system logger sink.
	Syslog bool
	// RecordPriority embeds the severity label in console and file lines.
	RecordPriority bool
	// Facility is combined with the severity of each syslog record.
	Facility Facility
	// File is the file sink path. Empty disables the file sink.
	File string
	// Debug is the initial debug category bitmask.
	Debug DebugFlags
	// Tag is the component tag; empty means DefaultTag.
	Tag string
}

// DefaultConfig returns the startup configuration: every message down to
// Debug, console and syslog on, labels recorded, daemon facility, no file,
// general and notification debugging enabled.
func DefaultConfig() Config {
	return Config{
		Level:          SeverityDebug,
		Stdout:         true,
		Syslog:         true,
		RecordPriority: true,
		Facility:       FacilityDaemon,
		Debug:          DefaultDebugFlags(),
		Tag:            DefaultTag,
	}
}

// Logger is the logging facility: it filters by threshold, stamps each
// message and hands it to the sink router. It also owns the debug bitmask
// and the file sink path.
type Logger struct {
	mu             sync.Mutex
	level          Severity
	recordPriority bool
	facility       Facility
	tag            string
	debug          DebugFlags
	router         sinkRouter
	openSyslog     func() (SyslogWriter, error)
	now            func() time.Time
}

// Option configures a Logger.
type Option func(*Logger)

// WithConsole replaces the console writer (stderr by default).
func WithConsole(w io.Writer) Option {
	return func(l *Logger) {
		l.router.console = w
	}
}

// WithSyslogWriter installs an already-open syslog writer.
func WithSyslogWriter(w SyslogWriter) Option {
	return func(l *Logger) {
		l.router.syslog = w
	}
}

// WithSyslogOpener sets how the syslog writer is opened when the syslog
// sink is enabled and no writer exists yet.
func WithSyslogOpener(open func() (SyslogWriter, error)) Option {
	return func(l *Logger) {
		l.openSyslog = open
	}
}

// WithFileOpener replaces how the file sink is opened for each message.
func WithFileOpener(open FileOpener) Option {
	return func(l *Logger) {
		l.router.openFile = open
	}
}

// WithClock replaces time.Now for timestamps.
func WithClock(now func() time.Time) Option {
	return func(l *Logger) {
		l.now = now
	}
}

// New creates a Logger from cfg. It does not contact the system logger;
// use Open for that, or WithSyslogWriter.
func New(cfg Config, opts ...Option) *Logger {
	tag := cfg.Tag
	if tag == "" {
		tag = DefaultTag
	}
	l := &Logger{
		level:          cfg.Level,
		recordPriority: cfg.RecordPriority,
		facility:       cfg.Facility,
		tag:            tag,
		debug:          cfg.Debug,
		router: sinkRouter{
			console:   os.Stderr,
			stdout:    cfg.Stdout,
			useSyslog: cfg.Syslog,
			filePath:  strings.Clone(cfg.File),
		},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Open creates a Logger and, when cfg.Syslog is set, connects to the
// system logger with ident "zrpcd". The Logger is usable even if the
// system logger is unreachable; that error is returned alongside it.
func Open(cfg Config, opts ...Option) (*Logger, error) {
	facility := cfg.Facility
	opener := func() (SyslogWriter, error) {
		return OpenSyslog("zrpcd", facility)
	}
	l := New(cfg, append([]Option{WithSyslogOpener(opener)}, opts...)...)
	if !cfg.Syslog || l.router.syslog != nil {
		return l, nil
	}
	w, err := opener()
	l.router.syslog = w
	return l, err
}

// Debug emits format at Debug severity.
func (l *Logger) Debug(format string, args ...any) {
	l.Logf(SeverityDebug, format, args...)
}

// Info emits format at Informational severity.
func (l *Logger) Info(format string, args ...any) {
	l.Logf(SeverityInformational, format, args...)
}

// Notice emits format at Notice severity.
func (l *Logger) Notice(format string, args ...any) {
	l.Logf(SeverityNotice, format, args...)
}

// Warn emits format at Warning severity.
func (l *Logger) Warn(format string, args ...any) {
	l.Logf(SeverityWarning, format, args...)
}

// Error emits format at Error severity.
func (l *Logger) Error(format string, args ...any) {
	l.Logf(SeverityError, format, args...)
}

// Logf emits format at sev. The threshold is checked before the message is
// formatted. The label in the line is always sev, whatever the threshold.
func (l *Logger) Logf(sev Severity, format string, args ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.level.Enabled(sev) {
		return
	}

	msg := fmt.Sprintf(format, args...)
	label := ""
	if l.recordPriority {
		label = sev.String()
	}
	line := fmt.Sprintf("%s %s %s: %s", l.now().Format(timestampFormat), label, l.tag, msg)
	l.router.emit(sev, line, msg)
}

// Enabled reports whether a message at sev would currently be emitted.
func (l *Logger) Enabled(sev Severity) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level.Enabled(sev)
}

// SetLogTarget parses levelText into the threshold, releases the current
// file target and adopts path as the new one. An empty path leaves no file
// sink.
func (l *Logger) SetLogTarget(path, levelText string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.level = ParseSeverity(levelText)
	l.releaseFile()
	l.router.filePath = strings.Clone(path)
}

// Flush releases the file target. It is safe to call with no target.
func (l *Logger) Flush() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.releaseFile()
}

// releaseFile drops the file sink path. No handle survives an emit call,
// so there is nothing else to close. Callers hold l.mu.
func (l *Logger) releaseFile() {
	l.router.filePath = ""
}

// LogFile returns the current file sink path, or "" if none.
func (l *Logger) LogFile() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.router.filePath
}

// SetLevel sets the threshold without touching the file target.
func (l *Logger) SetLevel(sev Severity) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = sev
}

// Level returns the threshold.
func (l *Logger) Level() Severity {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// SetStdout enables or disables the console sink.
func (l *Logger) SetStdout(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.router.stdout = on
}

// SetSyslog enables or disables the syslog sink. Enabling it on a Logger
// created by Open connects to the system logger if that has not happened
// yet.
func (l *Logger) SetSyslog(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.router.useSyslog = on
	if on && l.router.syslog == nil && l.openSyslog != nil {
		w, _ := l.openSyslog()
		l.router.syslog = w
	}
}

// SetRecordPriority controls whether severity labels appear in lines.
func (l *Logger) SetRecordPriority(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.recordPriority = on
}

// SetConsole replaces the console writer.
func (l *Logger) SetConsole(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.router.console = w
}

// EnableDebug turns a debug category on.
func (l *Logger) EnableDebug(c Category) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug.Enable(c)
}

// DisableDebug turns a debug category off.
func (l *Logger) DisableDebug(c Category) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug.Disable(c)
}

// ResetDebug turns every debug category off.
func (l *Logger) ResetDebug() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debug.Reset()
}

// DebugEnabled reports whether a debug category is on.
func (l *Logger) DebugEnabled(c Category) bool {
	if l == nil {
		return false
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug.IsSet(c)
}

// DebugFlags returns a copy of the debug bitmask.
func (l *Logger) DebugFlags() DebugFlags {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.debug
}

// Settings returns a snapshot of the current configuration.
func (l *Logger) Settings() Config {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Config{
		Level:          l.level,
		Stdout:         l.router.stdout,
		Syslog:         l.router.useSyslog,
		RecordPriority: l.recordPriority,
		Facility:       l.facility,
		File:           l.router.filePath,
		Debug:          l.debug,
		Tag:            l.tag,
	}
}

// Close releases the file target and disconnects from the system logger.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.releaseFile()
	if l.router.syslog == nil {
		return nil
	}
	err := l.router.syslog.Close()
	l.router.syslog = nil
	return err
}
