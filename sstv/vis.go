package sstv

/*
 * VIS (Vertical Interval Signaling) header generation.
 *
 * Header structure, fixed regardless of mode:
 *   - 300ms 1900 Hz leader
 *   - 10ms 1200 Hz break
 *   - 300ms 1900 Hz leader (the second leader is part of the protocol;
 *     dropping it is a common implementation bug, verified here against
 *     receiver captures)
 *   - 30ms 1200 Hz start bit
 *   - 8 x 30ms data bits, LSB first (1100 Hz = 1, 1300 Hz = 0)
 *   - 30ms even-parity bit
 *   - 30ms 1200 Hz stop bit
 */

const (
	visLeaderHz = 1900
	visBreakHz  = 1200
	visOneHz    = 1100
	visZeroHz   = 1300

	visLeaderUS = 300000
	visBreakUS  = 10000
	visBitUS    = 30000
)

// visSegments returns the VIS header tone sequence for a mode code. The
// sequence form keeps the bit protocol testable without signal analysis.
func visSegments(code uint8) []ToneSegment {
	segs := make([]ToneSegment, 0, 14)
	segs = append(segs,
		ToneSegment{visLeaderHz, visLeaderUS},
		ToneSegment{visBreakHz, visBreakUS},
		ToneSegment{visLeaderHz, visLeaderUS},
		ToneSegment{visBreakHz, visBitUS}, // start bit
	)

	parity := 0
	for bit := 0; bit < 8; bit++ {
		if code>>bit&1 == 1 {
			segs = append(segs, ToneSegment{visOneHz, visBitUS})
			parity ^= 1
		} else {
			segs = append(segs, ToneSegment{visZeroHz, visBitUS})
		}
	}

	// Parity bit brings the total count of set bits to even.
	if parity == 1 {
		segs = append(segs, ToneSegment{visOneHz, visBitUS})
	} else {
		segs = append(segs, ToneSegment{visZeroHz, visBitUS})
	}

	segs = append(segs, ToneSegment{visBreakHz, visBitUS}) // stop bit
	return segs
}

// preambleSegments returns the attention-tone sequence transmitted before
// the VIS header: half a second of silence, then alternating calibration
// tones that let receivers open squelch and settle AGC.
func preambleSegments() []ToneSegment {
	return []ToneSegment{
		{0, 500000},
		{1900, 100000}, {1500, 100000},
		{1900, 100000}, {1500, 100000},
		{2300, 100000}, {1500, 100000},
		{2300, 100000}, {1500, 100000},
	}
}

// trailerSegments returns the closing tone sequence after the last scan
// line, followed by half a second of silence.
func trailerSegments() []ToneSegment {
	return []ToneSegment{
		{2300, 300000},
		{1200, 10000},
		{2300, 100000},
		{1200, 30000},
		{0, 500000},
	}
}
