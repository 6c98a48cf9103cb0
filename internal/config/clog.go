package config

import (
	"fmt"

	"github.com/xdg/zrpcd/internal/clog"
)

// ClogConfig converts the logging and debug sections into a clog.Config.
// Unset toggles keep the clog defaults.
func (c *Config) ClogConfig() (clog.Config, error) {
	out := clog.DefaultConfig()
	out.File = c.Log.File
	if c.Log.Level != "" {
		out.Level = clog.ParseSeverity(c.Log.Level)
	}
	if c.Log.Stdout != nil {
		out.Stdout = *c.Log.Stdout
	}
	if c.Log.Syslog != nil {
		out.Syslog = *c.Log.Syslog
	}
	if c.Log.RecordPriority != nil {
		out.RecordPriority = *c.Log.RecordPriority
	}
	if c.Log.Facility != "" {
		f, err := clog.ParseFacility(c.Log.Facility)
		if err != nil {
			return clog.Config{}, fmt.Errorf("log.facility: %w", err)
		}
		out.Facility = f
	}

	if c.Debug.Categories != nil {
		out.Debug = clog.NewDebugFlags()
		for _, name := range c.Debug.Categories {
			cat, err := clog.ParseCategory(name)
			if err != nil {
				return clog.Config{}, fmt.Errorf("debug.categories: %w", err)
			}
			out.Debug.Enable(cat)
		}
	}
	return out, nil
}
