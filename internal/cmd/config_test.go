package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/xdg/zrpcd/internal/config"
	"github.com/xdg/zrpcd/internal/term"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	term.SetOutput(&buf, io.Discard)
	t.Cleanup(term.Reset)
	return &buf
}

func setConfigPath(t *testing.T, path string) {
	t.Helper()
	saved := configPath
	configPath = path
	t.Cleanup(func() { configPath = saved })
}

func clearOverrides(t *testing.T) {
	t.Helper()
	for _, name := range []string{config.EnvLogFile, config.EnvLogLevel, config.EnvLogStdout, config.EnvLogSyslog, config.EnvVTYSocket} {
		t.Setenv(name, "")
	}
}

func TestConfigCmd_HasSubcommands(t *testing.T) {
	expected := map[string]bool{"show": false, "path": false, "init": false}
	for _, cmd := range configCmd.Commands() {
		if _, ok := expected[cmd.Name()]; ok {
			expected[cmd.Name()] = true
		}
	}
	for name, found := range expected {
		if !found {
			t.Errorf("missing subcommand: %s", name)
		}
	}
}

func TestConfigPath_PrintsPath(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir)
	setConfigPath(t, "")
	out := captureOutput(t)

	runConfigPath(&cobra.Command{}, nil)

	want := filepath.Join(tmpDir, "zrpcd", "config.yaml") + "\n"
	if out.String() != want {
		t.Errorf("config path = %q, want %q", out.String(), want)
	}
}

func TestConfigInit_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zrpcd.yaml")
	setConfigPath(t, path)
	out := captureOutput(t)

	if err := runConfigInit(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if info.Size() == 0 {
		t.Error("config file should not be empty")
	}
	if !strings.Contains(out.String(), path) {
		t.Errorf("output %q should name the file", out.String())
	}
}

func TestConfigInit_ExistingFileWarns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "zrpcd.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: Error\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	setConfigPath(t, path)
	var out, errOut bytes.Buffer
	term.SetOutput(&out, &errOut)
	t.Cleanup(term.Reset)

	if err := runConfigInit(&cobra.Command{}, nil); err != nil {
		t.Fatalf("runConfigInit() error = %v", err)
	}

	if !strings.Contains(errOut.String(), "Warning: "+path+" already exists") {
		t.Errorf("stderr = %q, want an already-exists warning", errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want nothing", out.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "log:\n  level: Error\n" {
		t.Errorf("existing file rewritten: %q", data)
	}
}

func TestConfigShow(t *testing.T) {
	clearOverrides(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("log:\n  level: Warning\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	setConfigPath(t, path)

	tests := []struct {
		format string
		want   string
	}{
		{"yaml", "level: Warning"},
		{"toml", "[log]"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			out := captureOutput(t)
			configShowFormat = tt.format
			defer func() { configShowFormat = "yaml" }()

			if err := runConfigShow(&cobra.Command{}, nil); err != nil {
				t.Fatalf("runConfigShow() error = %v", err)
			}
			if !strings.Contains(out.String(), tt.want) || !strings.Contains(out.String(), "Warning") {
				t.Errorf("output missing %q:\n%s", tt.want, out.String())
			}
		})
	}
}

func TestConfigShow_BadFormat(t *testing.T) {
	configShowFormat = "json"
	defer func() { configShowFormat = "yaml" }()

	if err := runConfigShow(&cobra.Command{}, nil); err == nil {
		t.Error("runConfigShow() should reject an unknown format")
	}
}
