package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default configuration rejected: %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"rate too low", func(c *Config) { c.Audio.SampleRate = 4000 }, "sample rate"},
		{"rate too high", func(c *Config) { c.Audio.SampleRate = 96000 }, "sample rate"},
		{"zero volume", func(c *Config) { c.Audio.Volume = 0 }, "volume"},
		{"bad format", func(c *Config) { c.Audio.Format = "mp3" }, "format"},
		{"cw without callsign", func(c *Config) { c.CW.Enabled = true }, "callsign"},
		{"cw zero wpm", func(c *Config) {
			c.CW.Enabled = true
			c.CW.Callsign = "N0CALL"
			c.CW.WPM = 0
		}, "wpm"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
audio:
  sample_rate: 11025
  volume: 0.5
  format: aiff
sstv:
  mode: r36
  vis_header: true
cw:
  enabled: true
  callsign: N0CALL
  wpm: 20
  tone_hz: 700
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Audio.SampleRate != 11025 {
		t.Errorf("sample rate %d, want 11025", config.Audio.SampleRate)
	}
	if config.Audio.Format != "aiff" {
		t.Errorf("format %q, want aiff", config.Audio.Format)
	}
	if config.SSTV.Mode != "r36" {
		t.Errorf("mode %q, want r36", config.SSTV.Mode)
	}
	if !config.CW.Enabled || config.CW.Callsign != "N0CALL" || config.CW.WPM != 20 {
		t.Errorf("CW section not applied: %+v", config.CW)
	}
	if err := config.Validate(); err != nil {
		t.Errorf("loaded configuration rejected: %v", err)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
