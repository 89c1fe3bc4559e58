package sstv

// Stream accumulates the ordered mono 16-bit sample output of an encoding
// job. The engine only ever appends; sinks consume the samples sequentially
// and are responsible for any container framing (WAV, AIFF).
type Stream struct {
	samples []int16
}

// NewStream returns an empty sample stream.
func NewStream() *Stream {
	return &Stream{}
}

// Append adds one sample to the end of the stream.
func (s *Stream) Append(v int16) {
	s.samples = append(s.samples, v)
}

// Samples returns the accumulated samples. The returned slice is the
// stream's backing store; callers must not modify it while encoding
// continues.
func (s *Stream) Samples() []int16 {
	return s.samples
}

// Len returns the number of samples accumulated so far.
func (s *Stream) Len() int {
	return len(s.samples)
}

// Duration returns the play time of the stream at the given sample rate.
func (s *Stream) Duration(sampleRate int) float64 {
	if sampleRate <= 0 {
		return 0
	}
	return float64(len(s.samples)) / float64(sampleRate)
}
