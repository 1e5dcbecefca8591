package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
listen: ":9000"
read_timeout: 2s
max_points: 50
error_image: true
log:
  level: debug
  format: json
`)
	cfg, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	want := Default()
	want.Listen = ":9000"
	want.ReadTimeout = 2 * time.Second
	want.MaxPoints = 50
	want.ErrorImage = true
	want.Log = Log{Level: "debug", Format: "json"}
	if *cfg != *want {
		t.Errorf("got %+v, want %+v", cfg, want)
	}
}

func TestParseInvalid(t *testing.T) {
	cases := map[string]string{
		"unknown_field": "colour: red\n",
		"bad_duration":  "read_timeout: soon\n",
		"zero_points":   "max_points: 0\n",
		"zero_width":    "max_width: 0\n",
		"bad_level":     "log:\n  level: loud\n",
		"bad_format":    "log:\n  format: xml\n",
		"empty_listen":  "listen: \"\"\n",
		"not_yaml":      "listen: [\n",
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(data)); err == nil {
				t.Error("invalid configuration accepted")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sparkd.yaml")
	if err := os.WriteFile(path, []byte("max_height: 64\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.MaxHeight != 64 {
		t.Errorf("MaxHeight = %d, want 64", cfg.MaxHeight)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file accepted")
	}
}
