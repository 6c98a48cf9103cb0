package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the configuration file.
const (
	EnvLogFile   = "ZRPCD_LOG_FILE"
	EnvLogLevel  = "ZRPCD_LOG_LEVEL"
	EnvLogStdout = "ZRPCD_LOG_STDOUT"
	EnvLogSyslog = "ZRPCD_LOG_SYSLOG"
	EnvVTYSocket = "ZRPCD_VTY_SOCKET"
)

// LoadDotEnv reads .env files into the process environment. Variables that
// are already set are left alone. With no arguments it reads ./.env; a
// missing file is not an error.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// FromEnv returns a Config holding only the values set by environment
// variables, ready to be merged over the file configuration.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Log: LogConfig{
			File:  os.Getenv(EnvLogFile),
			Level: os.Getenv(EnvLogLevel),
		},
		VTY: VTYConfig{
			Socket: os.Getenv(EnvVTYSocket),
		},
	}

	var err error
	if cfg.Log.Stdout, err = envBool(EnvLogStdout); err != nil {
		return nil, err
	}
	if cfg.Log.Syslog, err = envBool(EnvLogSyslog); err != nil {
		return nil, err
	}
	return cfg, nil
}

func envBool(name string) (*bool, error) {
	v := os.Getenv(name)
	if v == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid boolean %q", name, v)
	}
	return &b, nil
}
