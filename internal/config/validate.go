package config

import (
	"fmt"
	"log"
	"strings"
	"unicode"

	"github.com/xdg/zrpcd/internal/clog"
)

// Validate checks a configuration. It validates:
//   - Log.Facility is a known syslog facility name (if non-empty)
//   - Log.File has no whitespace, since vty command lines are split on it
//   - Debug.Categories are known category names
//
// Any level text is accepted because unrecognised text selects Debug; a
// level that does not match a known name is logged as a warning.
func Validate(cfg *Config) error {
	if cfg.Log.Facility != "" {
		if _, err := clog.ParseFacility(cfg.Log.Facility); err != nil {
			return fmt.Errorf("log.facility: %w", err)
		}
	}

	if strings.ContainsFunc(cfg.Log.File, unicode.IsSpace) {
		return fmt.Errorf("log.file: %q contains whitespace", cfg.Log.File)
	}

	if cfg.Log.Level != "" {
		if _, ok := clog.LookupSeverity(cfg.Log.Level); !ok {
			log.Printf("config: warning: log.level %q is not a known level, using %s", cfg.Log.Level, clog.SeverityDebug)
		}
	}

	for i, name := range cfg.Debug.Categories {
		if name == "" {
			return fmt.Errorf("debug.categories[%d]: empty category name", i)
		}
		if _, err := clog.ParseCategory(name); err != nil {
			return fmt.Errorf("debug.categories[%d]: %w", i, err)
		}
	}
	return nil
}
