package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteDefaultConfig creates the configuration file at path with helpful
// comments. If the file already exists, it returns nil without overwriting.
// The parent directory is created if it doesn't exist.
// The file is written with 0600 permissions (user read/write only).
func WriteDefaultConfig(path string) error {
	if path == "" {
		path = DefaultPath()
	}

	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("ensure config dir: %w", err)
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0o600); err != nil {
		return fmt.Errorf("write default config: %w", err)
	}
	return nil
}

// runningConfigHeader starts every saved running configuration. Lines
// beginning with "!" are comments to the vty shell.
const runningConfigHeader = "!\n! zrpcd running configuration\n!\n"

// ReadRunningConfig returns the command lines saved at path, skipping
// blank lines and "!" comments. A missing file returns no lines.
func ReadRunningConfig(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read running config: %w", err)
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read running config: %w", err)
	}
	return lines, nil
}

// WriteRunningConfig replaces the file at path with lines. The file is
// written next to its destination and renamed into place, with 0600
// permissions.
func WriteRunningConfig(path string, lines []string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("ensure running config dir: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(runningConfigHeader)
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	buf.WriteString("!\n")

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write running config: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write running config: %w", err)
	}
	return nil
}
