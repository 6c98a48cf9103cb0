package clog

import (
	"fmt"
	"os"
)

// consoleSink writes syslog records to the system console, the way
// openlog(LOG_CONS) does when syslogd is unreachable. The console is opened
// per message, like the file sink.
type consoleSink struct {
	path string
	tag  string
}

func (c *consoleSink) WriteSeverity(sev Severity, msg string) error {
	f, err := os.OpenFile(c.path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return err
	}
	_, werr := fmt.Fprintf(f, "%s[%d]: %s%s", c.tag, os.Getpid(), msg, lineTerminator)
	if cerr := f.Close(); werr == nil {
		werr = cerr
	}
	return werr
}

func (c *consoleSink) Close() error {
	return nil
}
