package main

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// Canonical 80-bit extended encodings of the rates this program supports.
func TestExtendedRate(t *testing.T) {
	tests := []struct {
		rate uint32
		want [10]byte
	}{
		{8000, [10]byte{0x40, 0x0B, 0xFA, 0x00, 0, 0, 0, 0, 0, 0}},
		{11025, [10]byte{0x40, 0x0C, 0xAC, 0x44, 0, 0, 0, 0, 0, 0}},
		{22050, [10]byte{0x40, 0x0D, 0xAC, 0x44, 0, 0, 0, 0, 0, 0}},
		{44100, [10]byte{0x40, 0x0E, 0xAC, 0x44, 0, 0, 0, 0, 0, 0}},
		{48000, [10]byte{0x40, 0x0E, 0xBB, 0x80, 0, 0, 0, 0, 0, 0}},
	}
	for _, tt := range tests {
		if got := extendedRate(tt.rate); got != tt.want {
			t.Errorf("extendedRate(%d) = % X, want % X", tt.rate, got, tt.want)
		}
	}
}

func TestAIFFWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.aiff")
	samples := []int16{100, -100, 2000}

	w, err := NewAIFFWriter(path, 22050)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.WriteSamples(samples); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := 54 + len(samples)*2; len(data) != want {
		t.Fatalf("file is %d bytes, want %d", len(data), want)
	}

	if string(data[0:4]) != "FORM" || string(data[8:12]) != "AIFF" {
		t.Error("missing FORM/AIFF markers")
	}
	if got := binary.BigEndian.Uint32(data[4:8]); got != uint32(46+len(samples)*2) {
		t.Errorf("FORM size %d, want %d", got, 46+len(samples)*2)
	}

	if string(data[12:16]) != "COMM" {
		t.Error("missing COMM chunk")
	}
	if got := binary.BigEndian.Uint16(data[20:22]); got != 1 {
		t.Errorf("channels %d, want 1", got)
	}
	if got := binary.BigEndian.Uint32(data[22:26]); got != uint32(len(samples)) {
		t.Errorf("frame count %d, want %d", got, len(samples))
	}
	if got := binary.BigEndian.Uint16(data[26:28]); got != 16 {
		t.Errorf("sample size %d, want 16", got)
	}
	want := extendedRate(22050)
	if !bytes.Equal(data[28:38], want[:]) {
		t.Errorf("sample rate bytes % X, want % X", data[28:38], want)
	}

	if string(data[38:42]) != "SSND" {
		t.Error("missing SSND chunk")
	}
	if got := binary.BigEndian.Uint32(data[42:46]); got != uint32(8+len(samples)*2) {
		t.Errorf("SSND size %d, want %d", got, 8+len(samples)*2)
	}

	for i, wantS := range samples {
		got := int16(binary.BigEndian.Uint16(data[54+i*2 : 56+i*2]))
		if got != wantS {
			t.Errorf("sample %d = %d, want %d", i, got, wantS)
		}
	}
}
