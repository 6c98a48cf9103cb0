package config

// boolPtr returns a pointer to a bool value.
func boolPtr(b bool) *bool {
	return &b
}

// Default returns a Config with all defaults populated: stderr, syslog and
// severity labels on, threshold Debug, facility daemon, and the general and
// notification debug categories.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:          "Debug",
			Stdout:         boolPtr(true),
			Syslog:         boolPtr(true),
			RecordPriority: boolPtr(true),
			Facility:       "daemon",
		},
		Debug: DebugConfig{
			Categories: []string{"general", "notification"},
		},
		VTY: VTYConfig{
			Socket:        DataDir() + "zrpcd.vty",
			RunningConfig: Dir() + "zrpcd.conf",
		},
	}
}

// defaultConfigTemplate is written by WriteDefaultConfig. Every setting is
// commented out so the built-in defaults stay in effect until edited.
const defaultConfigTemplate = `# zrpcd configuration
#
# Environment overrides (a .env file in the working directory is read too):
#   ZRPCD_LOG_FILE, ZRPCD_LOG_LEVEL, ZRPCD_LOG_STDOUT, ZRPCD_LOG_SYSLOG,
#   ZRPCD_VTY_SOCKET

log:
  # Append log lines to this file. Empty disables the file sink.
  # file: /var/log/zrpcd.log

  # Threshold: Emergency, Alert, Critical, Error, Warning, Notice,
  # Informational or Debug. Only the first three letters are compared.
  # level: Debug

  # stdout: true
  # syslog: true
  # record_priority: true
  # facility: daemon

debug:
  # Categories enabled at startup: general, notification, network, cache.
  # categories: [general, notification]

vty:
  # socket: ~/.local/share/zrpcd/zrpcd.vty
  # running_config: ~/.config/zrpcd/zrpcd.conf
`
