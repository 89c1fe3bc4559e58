package sstv

/*
 * SSTV Mode Specifications
 *
 * Timing references:
 *   - Martin Bruchanov OK2MNM: www.sstv-handbook.com/download/sstv_04.pdf
 *   - JL Barber N7CXI: "Proposal for SSTV Mode Specifications" (Dayton SSTV forum, 2000)
 *   - Dave Jones KB4YZ (1999): "SSTV Modes - Line Timing"
 */

import "strings"

// Family selects the scan-line algorithm for a mode.
type Family int

const (
	// FamilyRGB scans the three color channels sequentially in GBR order
	// (Martin and Scottie).
	FamilyRGB Family = iota
	// FamilyYUV420 scans full-resolution luma every line and one chroma
	// plane per line, alternating R-Y and B-Y (Robot 36).
	FamilyYUV420
	// FamilyYUV422 scans full-resolution luma and both chroma planes at
	// half horizontal resolution every line (Robot 72).
	FamilyYUV422
)

// ModeSpec defines the timing and format parameters for one SSTV mode.
// All durations are in microseconds. Entries are immutable after the
// startup validation pass.
type ModeSpec struct {
	Name      string // long, human-readable name
	ShortName string // abbreviation for the mode
	ID        string // lookup key, e.g. "m1", "s2", "r36"
	VIS       uint8  // 7-bit VIS code
	Width     int    // pixels per scanline
	Height    int    // number of scanlines
	Family    Family

	SyncTime   float64 // line sync pulse at 1200 Hz
	PorchTime  float64 // porch following the sync pulse
	SeptrTime  float64 // channel separator pulse
	PixelTime  float64 // one luma or RGB pixel
	ChromaTime float64 // one chroma pixel (YUV families only)
	LineTime   float64 // start-of-sync to start-of-sync, for tolerance checks

	// MidlineSync marks the Scottie layout, where the sync pulse sits
	// before the third channel instead of at the start of the line.
	MidlineSync bool
	// StartSync adds a single extra sync pulse before the first line
	// (Scottie modes only).
	StartSync bool
}

// modeTable contains all supported SSTV modes.
var modeTable = []ModeSpec{
	{
		Name: "Martin 1", ShortName: "M1", ID: "m1", VIS: 44,
		Width: 320, Height: 256, Family: FamilyRGB,
		SyncTime: 4862, PorchTime: 572, SeptrTime: 572,
		PixelTime: 457.6, LineTime: 446446,
	},
	{
		Name: "Martin 2", ShortName: "M2", ID: "m2", VIS: 40,
		Width: 320, Height: 256, Family: FamilyRGB,
		SyncTime: 4862, PorchTime: 572, SeptrTime: 572,
		PixelTime: 228.8, LineTime: 226798,
	},
	{
		Name: "Scottie 1", ShortName: "S1", ID: "s1", VIS: 60,
		Width: 320, Height: 256, Family: FamilyRGB,
		SyncTime: 9000, PorchTime: 1500, SeptrTime: 1500,
		PixelTime: 432.0125, LineTime: 428232,
		MidlineSync: true, StartSync: true,
	},
	{
		Name: "Scottie 2", ShortName: "S2", ID: "s2", VIS: 56,
		Width: 320, Height: 256, Family: FamilyRGB,
		SyncTime: 9000, PorchTime: 1500, SeptrTime: 1500,
		PixelTime: 275.2, LineTime: 277692,
		MidlineSync: true, StartSync: true,
	},
	{
		Name: "Scottie DX", ShortName: "SDX", ID: "sdx", VIS: 76,
		Width: 320, Height: 256, Family: FamilyRGB,
		SyncTime: 9000, PorchTime: 1500, SeptrTime: 1500,
		PixelTime: 1080, LineTime: 1050300,
		MidlineSync: true, StartSync: true,
	},
	{
		Name: "Robot 36", ShortName: "R36", ID: "r36", VIS: 8,
		Width: 320, Height: 240, Family: FamilyYUV420,
		SyncTime: 9000, PorchTime: 3000, SeptrTime: 4500,
		PixelTime: 275, ChromaTime: 137.5, LineTime: 150000,
	},
	{
		Name: "Robot 72", ShortName: "R72", ID: "r72", VIS: 12,
		Width: 320, Height: 240, Family: FamilyYUV422,
		SyncTime: 9000, PorchTime: 3000, SeptrTime: 4500,
		PixelTime: 431.25, ChromaTime: 215.625, LineTime: 300000,
	},
}

// Lookup returns the mode with the given id (case-insensitive). The second
// return value is false for unknown ids; surfacing a user-facing error is
// the caller's job.
func Lookup(id string) (*ModeSpec, bool) {
	id = strings.ToLower(id)
	for i := range modeTable {
		if modeTable[i].ID == id {
			return &modeTable[i], true
		}
	}
	return nil, false
}

// Modes returns the full mode table, ordered as transmitted VIS families.
func Modes() []ModeSpec {
	out := make([]ModeSpec, len(modeTable))
	copy(out, modeTable)
	return out
}

// TotalSeconds returns the image scan time for a full frame, excluding the
// VIS header. The per-mode LineTime entries are documented totals; this is
// the figure operators quote as "TX time".
func (m *ModeSpec) TotalSeconds() float64 {
	total := float64(m.Height) * m.LineTime
	if m.StartSync {
		total += m.SyncTime
	}
	return total / 1e6
}

func init() {
	validateModes()
}

// validateModes checks the static table once at startup. A bad entry is a
// corrupted table, not user input, so it panics.
func validateModes() {
	seen := make(map[string]bool, len(modeTable))
	for i := range modeTable {
		m := &modeTable[i]
		if m.ID == "" || seen[m.ID] {
			panic("sstv: duplicate or empty mode id in table: " + m.Name)
		}
		seen[m.ID] = true
		if m.Width <= 0 || m.Height <= 0 {
			panic("sstv: non-positive dimensions for mode " + m.Name)
		}
		if m.SyncTime <= 0 || m.PixelTime <= 0 || m.LineTime <= 0 {
			panic("sstv: non-positive duration for mode " + m.Name)
		}
		if m.VIS >= 128 {
			panic("sstv: VIS code out of range for mode " + m.Name)
		}
		if m.Family != FamilyRGB && m.ChromaTime <= 0 {
			panic("sstv: missing chroma timing for mode " + m.Name)
		}
	}
}
