package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Audio AudioConfig `yaml:"audio"`
	SSTV  SSTVConfig  `yaml:"sstv"`
	CW    CWConfig    `yaml:"cw"`
}

// AudioConfig contains output audio settings
type AudioConfig struct {
	SampleRate int     `yaml:"sample_rate"` // Output sample rate in Hz (8000-48000)
	Volume     float64 `yaml:"volume"`      // Output level as fraction of full scale (0-1]
	Format     string  `yaml:"format"`      // Output container: "wav" or "aiff"
}

// SSTVConfig contains protocol settings
type SSTVConfig struct {
	Mode      string `yaml:"mode"`       // Mode id: m1, m2, s1, s2, sdx, r36, r72
	VISHeader bool   `yaml:"vis_header"` // Emit VIS header (receivers need it for auto detection)
	Preamble  bool   `yaml:"preamble"`   // Emit silence + attention tones before VIS
	Trailer   bool   `yaml:"trailer"`    // Emit closing tones after the image
}

// CWConfig contains the Morse signature settings
type CWConfig struct {
	Enabled  bool    `yaml:"enabled"`
	Callsign string  `yaml:"callsign"`
	WPM      int     `yaml:"wpm"`
	ToneHz   float64 `yaml:"tone_hz"`
}

// DefaultConfig returns the configuration used when no file is given.
// The 65% volume matches what SSTV transmitters typically drive into a
// transceiver's audio input without clipping.
func DefaultConfig() *Config {
	return &Config{
		Audio: AudioConfig{
			SampleRate: 22050,
			Volume:     0.65,
			Format:     "wav",
		},
		SSTV: SSTVConfig{
			Mode:      "m1",
			VISHeader: true,
			Preamble:  true,
			Trailer:   true,
		},
		CW: CWConfig{
			Enabled: false,
			WPM:     15,
			ToneHz:  800,
		},
	}
}

// LoadConfig reads a YAML configuration file over the defaults.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// Validate checks the configuration for user-facing errors.
func (c *Config) Validate() error {
	if c.Audio.SampleRate < 8000 || c.Audio.SampleRate > 48000 {
		return fmt.Errorf("sample rate must be between 8000 and 48000 Hz, got %d", c.Audio.SampleRate)
	}
	if c.Audio.Volume <= 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("volume must be in (0, 1], got %g", c.Audio.Volume)
	}
	if c.Audio.Format != "wav" && c.Audio.Format != "aiff" {
		return fmt.Errorf("unknown audio format %q (supported: wav, aiff)", c.Audio.Format)
	}
	if c.CW.Enabled {
		if c.CW.Callsign == "" {
			return fmt.Errorf("cw.callsign is required when the CW signature is enabled")
		}
		if c.CW.WPM <= 0 {
			return fmt.Errorf("cw.wpm must be positive, got %d", c.CW.WPM)
		}
		if c.CW.ToneHz <= 0 {
			return fmt.Errorf("cw.tone_hz must be positive, got %g", c.CW.ToneHz)
		}
	}
	return nil
}
