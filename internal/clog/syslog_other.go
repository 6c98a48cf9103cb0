//go:build windows || plan9

package clog

import "errors"

// OpenSyslog is unavailable on this platform. The returned writer discards
// every message.
func OpenSyslog(tag string, facility Facility) (SyslogWriter, error) {
	return discardSyslog{}, errors.New("syslog is not supported on this platform")
}

type discardSyslog struct{}

func (discardSyslog) WriteSeverity(Severity, string) error { return nil }

func (discardSyslog) Close() error { return nil }
