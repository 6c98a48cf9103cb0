package vty

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xdg/zrpcd/internal/clog"
)

// showDebuggingOrder is the order "show debugging zrpc" lists categories.
var showDebuggingOrder = []clog.Category{
	clog.DebugGeneral,
	clog.DebugNetwork,
	clog.DebugNotification,
	clog.DebugCache,
}

// newRootCommand builds a fresh command tree for one line. Handlers report
// a non-success status through status.
func (s *Shell) newRootCommand(status *Status) *cobra.Command {
	root := &cobra.Command{
		Use:               "zrpcd",
		SilenceErrors:     true,
		SilenceUsage:      true,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	root.AddCommand(
		group("show", "Show running system information",
			group("debugging", "State of each debugging option",
				s.showDebuggingCommand(),
			),
			leaf("logging", "Show current logging configuration", s.runShowLogging),
			leaf("running-config", "Current operating configuration", s.runShowRunningConfig),
		),
		group("debug", "Debugging functions",
			s.debugCommand(status, true),
		),
		group("no", "Negate a command or set its defaults",
			group("debug", "Debugging functions",
				s.debugCommand(status, false),
			),
			group("log", "Logging control",
				leaf("file", "Stop logging to a file", s.runNoLogFile),
				leaf("stdout", "Stop logging to stderr", s.setToggle(s.logger.SetStdout, false)),
				leaf("syslog", "Stop logging to syslog", s.setToggle(s.logger.SetSyslog, false)),
				leaf("record-priority", "Omit the severity label", s.setToggle(s.logger.SetRecordPriority, false)),
			),
		),
		group("log", "Logging control",
			s.logFileCommand(),
			leaf("stdout", "Log to stderr", s.setToggle(s.logger.SetStdout, true)),
			leaf("syslog", "Log to syslog", s.setToggle(s.logger.SetSyslog, true)),
			leaf("record-priority", "Include the severity label", s.setToggle(s.logger.SetRecordPriority, true)),
		),
		s.writeCommand(),
	)
	return root
}

// group returns a command that only exists to hold subcommands. Running it
// on its own reports ErrIncomplete.
func group(use, short string, children ...*cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ErrIncomplete
		},
	}
	c.AddCommand(children...)
	return c
}

// leaf returns a command that takes no arguments.
func leaf(use, short string, run func(cmd *cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd)
		},
	}
}

func printf(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
}

func (s *Shell) showDebuggingCommand() *cobra.Command {
	c := leaf("zrpc", "ZRPC information", s.runShowDebugging)
	c.AddCommand(
		leaf("stats", "Zrpc statistics", s.runShowStats),
		leaf("errno", "Zrpc notification socket errno counters", s.runShowErrno),
	)
	return c
}

func (s *Shell) runShowDebugging(cmd *cobra.Command) error {
	flags := s.logger.DebugFlags()
	printf(cmd, "ZRPC debugging status:")
	for _, c := range showDebuggingOrder {
		if !flags.IsSet(c) {
			continue
		}
		if c == clog.DebugGeneral {
			printf(cmd, "  ZRPC debugging is on")
		} else {
			printf(cmd, "  ZRPC debugging %s is on", c.Name())
		}
	}
	return nil
}

func (s *Shell) runShowStats(cmd *cobra.Command) error {
	if s.context == nil {
		return nil
	}
	ctx := s.context()
	if ctx == nil {
		return nil
	}
	st := ctx.Stats()
	printf(cmd, "BGP ZMQ notifications total %d lost %d thrift lost %d", st.Total, st.Lost, st.ThriftLost)
	return nil
}

func (s *Shell) runShowErrno(cmd *cobra.Command) error {
	if s.errno == nil {
		return nil
	}
	for _, line := range s.errno.Report() {
		printf(cmd, "%s", line)
	}
	return nil
}

func (s *Shell) runShowLogging(cmd *cobra.Command) error {
	set := s.logger.Settings()
	printf(cmd, "Logging configuration:")
	printf(cmd, "  Level: %s", set.Level)
	printf(cmd, "  Stdout logging: %s", enabledText(set.Stdout))
	if set.Syslog {
		printf(cmd, "  Syslog logging: enabled, facility %s", set.Facility)
	} else {
		printf(cmd, "  Syslog logging: disabled")
	}
	if set.File != "" {
		printf(cmd, "  File logging: %s", set.File)
	} else {
		printf(cmd, "  File logging: disabled")
	}
	printf(cmd, "  Record priority: %s", enabledText(set.RecordPriority))
	return nil
}

func (s *Shell) runShowRunningConfig(cmd *cobra.Command) error {
	for _, line := range s.RunningConfig() {
		printf(cmd, "%s", line)
	}
	return nil
}

func enabledText(on bool) string {
	if on {
		return "enabled"
	}
	return "disabled"
}

// debugCommand builds "debug zrpc [category]" (enable) or the subtree under
// "no debug" (disable). Enabling reports StatusWarning.
func (s *Shell) debugCommand(status *Status, enable bool) *cobra.Command {
	apply := func(c clog.Category) func(cmd *cobra.Command) error {
		return func(cmd *cobra.Command) error {
			if enable {
				s.logger.EnableDebug(c)
				*status = StatusWarning
			} else {
				s.logger.DisableDebug(c)
			}
			return nil
		}
	}

	root := leaf("zrpc", "ZRPC", apply(clog.DebugGeneral))
	for _, c := range clog.Categories() {
		if c == clog.DebugGeneral {
			continue
		}
		root.AddCommand(leaf(c.Name(), "ZRPC "+c.Name(), apply(c)))
	}
	return root
}

// logFileCommand builds "log file PATH [LEVEL]". Without LEVEL the current
// threshold is kept.
func (s *Shell) logFileCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "file PATH [LEVEL]",
		Short: "Log to a file at the given severity",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := s.logger.Level().String()
			if len(args) == 2 {
				level = args[1]
				if _, ok := clog.LookupSeverity(level); !ok {
					printf(cmd, "%% Unknown level %q, using %s", level, clog.SeverityDebug)
				}
			}
			// The target is adopted either way; failed appends are dropped.
			if f, err := clog.OpenLogFile(args[0]); err != nil {
				printf(cmd, "%% Cannot open log file %s: %v", args[0], err)
			} else {
				_ = f.Close()
			}
			s.logger.SetLogTarget(args[0], level)
			return nil
		},
	}
}

func (s *Shell) runNoLogFile(cmd *cobra.Command) error {
	s.logger.Flush()
	return nil
}

func (s *Shell) setToggle(set func(bool), on bool) func(cmd *cobra.Command) error {
	return func(cmd *cobra.Command) error {
		set(on)
		return nil
	}
}

func (s *Shell) writeCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "write [memory|file]",
		Short:     "Write running configuration to the configuration file",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"memory", "file"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if s.saveConfig == nil {
				return ErrNoConfigFile
			}
			if err := s.saveConfig(s.RunningConfig()); err != nil {
				return fmt.Errorf("write running config: %w", err)
			}
			printf(cmd, "Configuration saved")
			return nil
		},
	}
}
