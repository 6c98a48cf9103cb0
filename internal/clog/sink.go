package clog

import (
	"io"
	"os"
	"path/filepath"
)

// lineTerminator ends every console and file line.
const lineTerminator = "\r\n"

// SyslogWriter delivers one message to the system logger at the given
// severity. The facility is fixed when the writer is opened.
type SyslogWriter interface {
	WriteSeverity(sev Severity, msg string) error
	Close() error
}

// FileOpener opens the file sink for one append.
type FileOpener func(path string) (io.WriteCloser, error)

// sinkRouter fans one formatted message out to the enabled sinks. A failing
// sink never prevents the others from being attempted.
type sinkRouter struct {
	console   io.Writer // stderr unless replaced
	stdout    bool
	syslog    SyslogWriter
	useSyslog bool
	filePath  string // empty means no file sink
	openFile  FileOpener
}

// emit writes line to the console and file sinks and msg to syslog.
func (r *sinkRouter) emit(sev Severity, line, msg string) {
	if r.stdout && r.console != nil {
		_, _ = io.WriteString(r.console, line+lineTerminator)
	}
	if r.useSyslog && r.syslog != nil {
		_ = r.syslog.WriteSeverity(sev, msg)
	}
	if r.filePath != "" {
		r.appendFile(line)
	}
}

// appendFile opens the file sink, writes one line and closes it again.
// Open and write failures drop the line for this sink only.
func (r *sinkRouter) appendFile(line string) {
	open := r.openFile
	if open == nil {
		open = openAppend
	}
	f, err := open(r.filePath)
	if err != nil {
		return
	}
	_, _ = io.WriteString(f, line+lineTerminator)
	_ = f.Close()
}

// openAppend opens path for appending, creating it if needed.
func openAppend(path string) (io.WriteCloser, error) {
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
}

// OpenLogFile opens a log file for appending, creating parent directories
// if needed. The logger itself never holds the file open; this is for
// callers that want to verify a target is writable before adopting it.
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
}
