package sstv

/*
 * Tone synthesis for SSTV and CW generation.
 *
 * Direct digital synthesis: a single phase accumulator advances by
 * 2π·f/rate per sample, so consecutive tones of different frequency join
 * without a phase discontinuity. A click at a tone boundary spreads energy
 * across the passband and degrades decode reliability, which is why one
 * Synthesizer instance must carry an entire transmission (VIS header, image
 * scan and CW signature).
 */

import "math"

const twoPi = 2 * math.Pi

// ToneSegment is the unit of work submitted to the synthesizer: a single
// tone of the given frequency and duration. Frequency 0 denotes silence.
type ToneSegment struct {
	FreqHz float64
	DurUS  float64
}

// Synthesizer holds the phase-continuous tone generation state for one
// encoding job. It must not be shared between concurrent jobs; a fresh
// instance per job gives bit-identical output for identical input.
type Synthesizer struct {
	rate        int
	usPerSample float64
	amplitude   float64
	theta       float64 // phase accumulator, radians, kept in [0, 2π)
	carry       float64 // fractional-sample timing remainder, microseconds
}

// NewSynthesizer returns a synthesizer for the given sample rate. The
// engine trusts the caller's rate; any positive value works since all
// timing math is rate-parametric.
func NewSynthesizer(sampleRate int) *Synthesizer {
	return &Synthesizer{
		rate:        sampleRate,
		usPerSample: 1e6 / float64(sampleRate),
		amplitude:   1.0,
	}
}

// SampleRate returns the synthesizer's sample rate in Hz.
func (s *Synthesizer) SampleRate() int {
	return s.rate
}

// SetAmplitude sets the output level as a fraction of full scale.
// Values outside (0, 1] are ignored.
func (s *Synthesizer) SetAmplitude(a float64) {
	if a > 0 && a <= 1 {
		s.amplitude = a
	}
}

// sampleCount converts a duration to a whole number of samples, absorbing
// the fractional remainder left by the previous tone. Carrying the
// remainder keeps the accumulated timing error of a whole scan line under
// one sample, which receivers need for slant-free images.
func (s *Synthesizer) sampleCount(durUS float64) int {
	d := durUS + s.carry
	n := int(d/s.usPerSample + 0.5)
	s.carry = d - float64(n)*s.usPerSample
	return n
}

// Tone appends durUS microseconds of a sine at freqHz to out. Frequency 0
// writes zero samples for the duration without advancing the phase.
func (s *Synthesizer) Tone(out *Stream, freqHz, durUS float64) {
	n := s.sampleCount(durUS)
	if n <= 0 {
		return
	}
	if freqHz == 0 {
		for i := 0; i < n; i++ {
			out.Append(0)
		}
		return
	}
	deltaTheta := twoPi * freqHz / float64(s.rate)
	for i := 0; i < n; i++ {
		out.Append(int16(math.Round(s.amplitude * 32767 * math.Sin(s.theta))))
		s.theta += deltaTheta
		if s.theta >= twoPi {
			s.theta = math.Mod(s.theta, twoPi)
		}
	}
}

// ShapedTone appends a tone with a raised-cosine amplitude envelope over
// the first and last 10% of its samples. Used for CW elements, where a
// hard key-down otherwise splatters clicks across the band.
func (s *Synthesizer) ShapedTone(out *Stream, freqHz, durUS float64) {
	n := s.sampleCount(durUS)
	if n <= 0 {
		return
	}
	if freqHz == 0 {
		for i := 0; i < n; i++ {
			out.Append(0)
		}
		return
	}
	edge := n / 10
	deltaTheta := twoPi * freqHz / float64(s.rate)
	for i := 0; i < n; i++ {
		env := 1.0
		if edge > 0 {
			switch {
			case i < edge:
				env = 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(edge)))
			case i >= n-edge:
				env = 0.5 * (1 - math.Cos(math.Pi*float64(n-1-i)/float64(edge)))
			}
		}
		out.Append(int16(math.Round(env * s.amplitude * 32767 * math.Sin(s.theta))))
		s.theta += deltaTheta
		if s.theta >= twoPi {
			s.theta = math.Mod(s.theta, twoPi)
		}
	}
}

// Play emits a sequence of tone segments in order.
func (s *Synthesizer) Play(out *Stream, segments []ToneSegment) {
	for _, seg := range segments {
		s.Tone(out, seg.FreqHz, seg.DurUS)
	}
}
