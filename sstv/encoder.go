package sstv

/*
 * SSTV frame orchestration.
 *
 * An Encoder runs one encoding job: optional transmission preamble, VIS
 * header, every scan line of the image, optional trailer, and optionally a
 * CW signature, all through a single Synthesizer so the output is phase
 * continuous end to end.
 */

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrUnknownMode reports a mode id absent from the mode table.
	ErrUnknownMode = errors.New("unknown SSTV mode")
	// ErrDimensionMismatch reports a pixel source whose dimensions do not
	// match the selected mode. The engine never crops or scales.
	ErrDimensionMismatch = errors.New("image dimensions do not match mode")
	// ErrUnsupportedCharacter reports CW text containing a character with
	// no Morse encoding.
	ErrUnsupportedCharacter = errors.New("character has no Morse encoding")
	// ErrInvalidParameter reports an out-of-range encoding parameter.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// PixelSource provides read-only access to a normalized 8-bit RGB image.
// The image collaborator guarantees the dimensions already match the
// selected mode; the engine only reads through this interface.
type PixelSource interface {
	Width() int
	Height() int
	RGB(x, y int) (r, g, b uint8)
}

// EncodeOptions control the optional parts of a transmission.
type EncodeOptions struct {
	// VISHeader emits the VIS mode-identification header before the image.
	// On by default; most receivers need it for auto mode detection.
	VISHeader bool
	// Preamble emits half a second of silence and the attention-tone
	// sequence before the VIS header.
	Preamble bool
	// Trailer emits the closing tone sequence after the last scan line.
	Trailer bool
	// Amplitude scales the output, 0 < a <= 1. Zero means full scale.
	Amplitude float64
}

// DefaultEncodeOptions returns the options used for a standard
// transmission: VIS header on, preamble and trailer off, full scale.
func DefaultEncodeOptions() EncodeOptions {
	return EncodeOptions{VISHeader: true, Amplitude: 1.0}
}

// Encoder holds the state of one encoding job.
type Encoder struct {
	mode  *ModeSpec
	synth *Synthesizer
	opts  EncodeOptions
}

// NewEncoder prepares an encoding job for the given mode and sample rate.
func NewEncoder(modeID string, sampleRate int, opts EncodeOptions) (*Encoder, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: sample rate %d Hz", ErrInvalidParameter, sampleRate)
	}
	mode, ok := Lookup(modeID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, modeID)
	}
	synth := NewSynthesizer(sampleRate)
	if opts.Amplitude > 0 {
		synth.SetAmplitude(opts.Amplitude)
	}
	return &Encoder{mode: mode, synth: synth, opts: opts}, nil
}

// Mode returns the mode this encoder was created for.
func (e *Encoder) Mode() *ModeSpec {
	return e.mode
}

// Synthesizer returns the job's shared synthesizer, for callers that
// append further audio (CW signature, silence) after the image.
func (e *Encoder) Synthesizer() *Synthesizer {
	return e.synth
}

// EncodeImage appends the full SSTV frame for src to out. Cancellation is
// checked between scan lines, the natural granularity; a canceled context
// leaves a partial stream and returns the context error.
func (e *Encoder) EncodeImage(ctx context.Context, src PixelSource, out *Stream) error {
	if src.Width() != e.mode.Width || src.Height() != e.mode.Height {
		return fmt.Errorf("%w: source is %dx%d, %s wants %dx%d",
			ErrDimensionMismatch, src.Width(), src.Height(),
			e.mode.ShortName, e.mode.Width, e.mode.Height)
	}

	if e.opts.Preamble {
		e.synth.Play(out, preambleSegments())
	}
	if e.opts.VISHeader {
		e.synth.Play(out, visSegments(e.mode.VIS))
	}
	if e.mode.StartSync {
		e.synth.Tone(out, freqSync, e.mode.SyncTime)
	}

	// Chroma plane alternation for 4:2:0 modes spans scan lines, so the
	// orchestrator owns it and threads it through each call.
	chromaAlt := false
	for y := 0; y < e.mode.Height; y++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("encode aborted at line %d of %d: %w", y, e.mode.Height, err)
		}
		encodeLine(e.mode, src, y, chromaAlt, e.synth, out)
		chromaAlt = !chromaAlt
	}

	if e.opts.Trailer {
		e.synth.Play(out, trailerSegments())
	}
	return nil
}

// EncodeCW appends a Morse rendition of text after the image, sharing the
// job's synthesizer so phase continuity holds across the whole
// transmission.
func (e *Encoder) EncodeCW(text string, wpm int, toneHz float64, out *Stream) error {
	return EncodeCW(text, wpm, toneHz, e.synth, out)
}

// EncodeImage is the one-shot form: it looks up the mode, runs a fresh
// encoder over src and returns the accumulated stream.
func EncodeImage(ctx context.Context, modeID string, src PixelSource, sampleRate int, opts EncodeOptions) (*Stream, error) {
	enc, err := NewEncoder(modeID, sampleRate, opts)
	if err != nil {
		return nil, err
	}
	out := NewStream()
	if err := enc.EncodeImage(ctx, src, out); err != nil {
		return nil, err
	}
	return out, nil
}
