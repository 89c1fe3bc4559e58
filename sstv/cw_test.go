package sstv

import (
	"errors"
	"math"
	"testing"
)

func encodeCWString(t *testing.T, text string, wpm int, toneHz float64, rate int) *Stream {
	t.Helper()
	synth := NewSynthesizer(rate)
	out := NewStream()
	if err := EncodeCW(text, wpm, toneHz, synth, out); err != nil {
		t.Fatal(err)
	}
	return out
}

// PARIS timing: at 20 wpm one unit is 0.06s. "SOS" is dit dit dit,
// dah dah dah, dit dit dit: 5 + 3 + 11 + 3 + 5 units plus the trailing
// 3-unit character gap = 30 units = 1.8s.
func TestSOSTiming(t *testing.T) {
	const rate = 8000
	const unit = 1.2 / 20

	out := encodeCWString(t, "SOS", 20, 800, rate)
	want := int(math.Round(30 * unit * rate))
	if diff := out.Len() - want; diff < -1 || diff > 1 {
		t.Errorf("SOS at 20 wpm: %d samples, want %d +/- 1", out.Len(), want)
	}
}

func TestElementDurations(t *testing.T) {
	const rate = 8000
	tests := []struct {
		text  string
		units float64 // element plus trailing character gap
	}{
		{"E", 1 + 3},         // dit
		{"T", 3 + 3},         // dah
		{"A", 1 + 1 + 3 + 3}, // dit gap dah
	}
	for _, tt := range tests {
		out := encodeCWString(t, tt.text, 20, 800, rate)
		want := int(math.Round(tt.units * 0.06 * rate))
		if diff := out.Len() - want; diff < -1 || diff > 1 {
			t.Errorf("%q: %d samples, want %d +/- 1", tt.text, out.Len(), want)
		}
	}
}

func TestWordGap(t *testing.T) {
	const rate = 8000
	out := encodeCWString(t, " ", 20, 800, rate)
	want := int(math.Round(7 * 0.06 * rate))
	if out.Len() != want {
		t.Errorf("space: %d samples, want %d", out.Len(), want)
	}
	for i, v := range out.Samples() {
		if v != 0 {
			t.Fatalf("sample %d of a word gap is %d, want 0", i, v)
		}
	}
}

func TestLowercaseFolding(t *testing.T) {
	const rate = 8000
	lower := encodeCWString(t, "cq de n0call", 15, 800, rate)
	upper := encodeCWString(t, "CQ DE N0CALL", 15, 800, rate)
	a, b := lower.Samples(), upper.Samples()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("streams diverge at sample %d", i)
		}
	}
}

func TestCWErrors(t *testing.T) {
	synth := NewSynthesizer(8000)
	out := NewStream()

	t.Run("unsupported character", func(t *testing.T) {
		err := EncodeCW("SOS!", 20, 800, synth, out)
		if !errors.Is(err, ErrUnsupportedCharacter) {
			t.Errorf("got %v, want ErrUnsupportedCharacter", err)
		}
		if out.Len() != 0 {
			t.Errorf("partial output of %d samples after rejected text", out.Len())
		}
	})

	t.Run("zero wpm", func(t *testing.T) {
		err := EncodeCW("SOS", 0, 800, synth, out)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("got %v, want ErrInvalidParameter", err)
		}
	})

	t.Run("zero tone", func(t *testing.T) {
		err := EncodeCW("SOS", 20, 0, synth, out)
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("got %v, want ErrInvalidParameter", err)
		}
	})
}

// Every character the table supports must encode without error.
func TestFullAlphabet(t *testing.T) {
	const text = "ABCDEFGHIJKLMNOPQRSTUVWXYZ 0123456789 /?="
	out := encodeCWString(t, text, 25, 700, 8000)
	if out.Len() == 0 {
		t.Error("no output for full alphabet")
	}
}
