package sstv

/*
 * CW (Morse code) signature generation.
 *
 * Standard PARIS timing: one unit is 1.2/wpm seconds. A dot is one unit, a
 * dash three; gaps are one unit between symbols, three between characters
 * and seven between words. Key clicks are suppressed with a raised-cosine
 * envelope over the first and last 10% of each element.
 */

import (
	"fmt"
	"strings"
)

// EncodeCW appends a Morse rendition of text to out through synth. The
// text is validated up front so an unsupported character produces no
// partial output; spaces become word gaps.
func EncodeCW(text string, wpm int, toneHz float64, synth *Synthesizer, out *Stream) error {
	if wpm <= 0 {
		return fmt.Errorf("%w: wpm must be positive, got %d", ErrInvalidParameter, wpm)
	}
	if toneHz <= 0 {
		return fmt.Errorf("%w: CW tone must be positive, got %g Hz", ErrInvalidParameter, toneHz)
	}

	text = strings.ToUpper(text)
	for _, ch := range text {
		if ch == ' ' {
			continue
		}
		if _, ok := morseTable[ch]; !ok {
			return fmt.Errorf("%w: %q", ErrUnsupportedCharacter, ch)
		}
	}

	dotUS := 1.2e6 / float64(wpm)
	for _, ch := range text {
		if ch == ' ' {
			synth.Tone(out, 0, 7*dotUS)
			continue
		}
		pattern := morseTable[ch]
		for i, sym := range pattern {
			if sym == '.' {
				synth.ShapedTone(out, toneHz, dotUS)
			} else {
				synth.ShapedTone(out, toneHz, 3*dotUS)
			}
			if i < len(pattern)-1 {
				synth.Tone(out, 0, dotUS)
			}
		}
		synth.Tone(out, 0, 3*dotUS)
	}
	return nil
}
