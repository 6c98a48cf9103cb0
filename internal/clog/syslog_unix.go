//go:build !windows && !plan9

package clog

import (
	"fmt"
	"log/syslog"
)

// consolePath receives syslog messages when the system logger cannot be
// reached.
var consolePath = "/dev/console"

type syslogSink struct {
	w        *syslog.Writer
	fallback *consoleSink
}

// OpenSyslog connects to the system logger with the given tag and facility.
// The process ID is included in every record. If the logger cannot be
// reached, the returned writer sends messages to the system console and
// the error reports why; the writer is usable either way.
func OpenSyslog(tag string, facility Facility) (SyslogWriter, error) {
	fallback := &consoleSink{path: consolePath, tag: tag}
	w, err := syslog.New(syslog.Priority(facility)|syslog.LOG_INFO, tag)
	if err != nil {
		return fallback, fmt.Errorf("connect to syslog: %w", err)
	}
	return &syslogSink{w: w, fallback: fallback}, nil
}

// WriteSeverity sends msg at sev; a failed send is retried on the console.
func (s *syslogSink) WriteSeverity(sev Severity, msg string) error {
	var err error
	switch sev {
	case SeverityEmergency:
		err = s.w.Emerg(msg)
	case SeverityAlert:
		err = s.w.Alert(msg)
	case SeverityCritical:
		err = s.w.Crit(msg)
	case SeverityError:
		err = s.w.Err(msg)
	case SeverityWarning:
		err = s.w.Warning(msg)
	case SeverityNotice:
		err = s.w.Notice(msg)
	case SeverityInformational:
		err = s.w.Info(msg)
	default:
		err = s.w.Debug(msg)
	}
	if err != nil {
		return s.fallback.WriteSeverity(sev, msg)
	}
	return nil
}

func (s *syslogSink) Close() error {
	return s.w.Close()
}
