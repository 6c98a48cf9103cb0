package config

import (
	"errors"
	"fmt"
	"log"
	"os"
)

// Load reads the configuration at path, or DefaultPath() when path is
// empty, and returns it merged over Default() with environment overrides
// applied last. A missing file yields the defaults. All paths containing ~
// are expanded to the actual home directory.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}
	log.Printf("config: loading %s", path)

	fileCfg, err := readFile(path)
	if err != nil {
		return nil, err
	}

	LoadDotEnv()
	envCfg, err := FromEnv()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg := Merge(Merge(Default(), fileCfg), envCfg)
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	expandPaths(cfg)
	return cfg, nil
}

// readFile parses the file at path. A missing file is returned as nil.
func readFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("config: file not found, using defaults")
			return nil, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg, err := Parse(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// expandPaths expands ~ to the home directory in all path fields.
func expandPaths(cfg *Config) {
	cfg.Log.File = ExpandHome(cfg.Log.File)
	cfg.VTY.Socket = ExpandHome(cfg.VTY.Socket)
	cfg.VTY.RunningConfig = ExpandHome(cfg.VTY.RunningConfig)
}
