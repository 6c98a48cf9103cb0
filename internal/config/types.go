// Package config provides the zrpcd configuration file: logging sinks and
// threshold, startup debug categories, and where the vty socket and the
// saved running configuration live.
package config

// Config is the top-level zrpcd configuration.
// It is typically stored at ~/.config/zrpcd/config.yaml.
type Config struct {
	Log   LogConfig   `yaml:"log,omitempty" toml:"log,omitempty"`
	Debug DebugConfig `yaml:"debug,omitempty" toml:"debug,omitempty"`
	VTY   VTYConfig   `yaml:"vty,omitempty" toml:"vty,omitempty"`
}

// LogConfig selects the log sinks and threshold.
// Nil toggles mean "not set" and take the default when merged.
type LogConfig struct {
	File           string `yaml:"file,omitempty" toml:"file,omitempty"`
	Level          string `yaml:"level,omitempty" toml:"level,omitempty"`
	Stdout         *bool  `yaml:"stdout,omitempty" toml:"stdout,omitempty"`
	Syslog         *bool  `yaml:"syslog,omitempty" toml:"syslog,omitempty"`
	RecordPriority *bool  `yaml:"record_priority,omitempty" toml:"record_priority,omitempty"`
	Facility       string `yaml:"facility,omitempty" toml:"facility,omitempty"`
}

// DebugConfig lists the debug categories enabled at startup.
// A nil slice means the default set; an empty slice disables all.
type DebugConfig struct {
	Categories []string `yaml:"categories" toml:"categories"`
}

// VTYConfig locates the operator command socket and the file that
// "write" saves to.
type VTYConfig struct {
	Socket        string `yaml:"socket,omitempty" toml:"socket,omitempty"`
	RunningConfig string `yaml:"running_config,omitempty" toml:"running_config,omitempty"`
}
