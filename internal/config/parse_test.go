package config

import (
	"reflect"
	"strings"
	"testing"
)

func TestParse_YAML(t *testing.T) {
	data := []byte(`
log:
  file: /var/log/zrpcd.log
  level: Warning
  stdout: false
  facility: local3
debug:
  categories: [network, cache]
vty:
  socket: /run/zrpcd.vty
`)

	cfg, err := Parse(data, FormatYAML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Log.File != "/var/log/zrpcd.log" {
		t.Errorf("Log.File = %q", cfg.Log.File)
	}
	if cfg.Log.Level != "Warning" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
	if cfg.Log.Stdout == nil || *cfg.Log.Stdout {
		t.Errorf("Log.Stdout = %v, want explicit false", cfg.Log.Stdout)
	}
	if cfg.Log.Syslog != nil {
		t.Errorf("Log.Syslog = %v, want unset", *cfg.Log.Syslog)
	}
	if cfg.Log.Facility != "local3" {
		t.Errorf("Log.Facility = %q", cfg.Log.Facility)
	}
	if want := []string{"network", "cache"}; !reflect.DeepEqual(cfg.Debug.Categories, want) {
		t.Errorf("Debug.Categories = %v, want %v", cfg.Debug.Categories, want)
	}
	if cfg.VTY.Socket != "/run/zrpcd.vty" {
		t.Errorf("VTY.Socket = %q", cfg.VTY.Socket)
	}
}

func TestParse_TOML(t *testing.T) {
	data := []byte(`
[log]
file = "/var/log/zrpcd.log"
level = "Notice"
record_priority = false

[debug]
categories = ["cache"]
`)

	cfg, err := Parse(data, FormatTOML)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if cfg.Log.File != "/var/log/zrpcd.log" || cfg.Log.Level != "Notice" {
		t.Errorf("Log = %+v", cfg.Log)
	}
	if cfg.Log.RecordPriority == nil || *cfg.Log.RecordPriority {
		t.Errorf("Log.RecordPriority = %v, want explicit false", cfg.Log.RecordPriority)
	}
	if want := []string{"cache"}; !reflect.DeepEqual(cfg.Debug.Categories, want) {
		t.Errorf("Debug.Categories = %v, want %v", cfg.Debug.Categories, want)
	}
}

func TestParse_Empty(t *testing.T) {
	for _, format := range []Format{FormatYAML, FormatTOML} {
		cfg, err := Parse(nil, format)
		if err != nil {
			t.Fatalf("Parse(empty) error = %v", err)
		}
		if !reflect.DeepEqual(*cfg, Config{}) {
			t.Errorf("Parse(empty) = %+v, want zero value", cfg)
		}
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		data    string
		wantErr string
	}{
		{"yaml unknown field", FormatYAML, "log:\n  lvl: Debug\n", "lvl"},
		{"yaml unknown section", FormatYAML, "zebra: true\n", "zebra"},
		{"yaml type mismatch", FormatYAML, "log:\n  stdout: maybe\n", "decode YAML"},
		{"yaml malformed", FormatYAML, "log: [\n", "decode YAML"},
		{"toml unknown field", FormatTOML, "[log]\nlvl = \"Debug\"\n", "decode TOML"},
		{"toml malformed", FormatTOML, "[log\n", "decode TOML"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"config.yaml", FormatYAML},
		{"config.yml", FormatYAML},
		{"config.toml", FormatTOML},
		{"CONFIG.TOML", FormatTOML},
		{"config", FormatYAML},
	}
	for _, tt := range tests {
		if got := FormatForPath(tt.path); got != tt.want {
			t.Errorf("FormatForPath(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestMarshal_ParsesBack(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")

	for _, format := range []Format{FormatYAML, FormatTOML} {
		data, err := Marshal(Default(), format)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		got, err := Parse(data, format)
		if err != nil {
			t.Fatalf("Parse(Marshal()) error = %v\n%s", err, data)
		}
		if !reflect.DeepEqual(got, Default()) {
			t.Errorf("format %v: got %+v, want %+v", format, got, Default())
		}
	}
}
