package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/bits"
	"os"
)

// AIFFWriter writes the generated sample stream to an AIFF file
// (big-endian PCM). Sizes and the frame count are patched on Close.
type AIFFWriter struct {
	file       *os.File
	sampleRate int
	frames     int64
}

// NewAIFFWriter creates the output file and writes a placeholder header.
func NewAIFFWriter(filename string, sampleRate int) (*AIFFWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create AIFF file: %w", err)
	}

	w := &AIFFWriter{file: file, sampleRate: sampleRate}
	if err := w.writeHeader(0); err != nil {
		file.Close()
		return nil, err
	}
	return w, nil
}

// extendedRate encodes a sample rate in the IEEE 754 80-bit extended
// precision format the AIFF COMM chunk requires: a 15-bit biased exponent
// and a 64-bit mantissa with an explicit leading one.
func extendedRate(rate uint32) [10]byte {
	var buf [10]byte
	if rate == 0 {
		return buf
	}
	msb := 31 - bits.LeadingZeros32(rate)
	exponent := uint16(16383 + msb)
	mantissa := uint64(rate) << (63 - msb)
	binary.BigEndian.PutUint16(buf[0:2], exponent)
	binary.BigEndian.PutUint64(buf[2:10], mantissa)
	return buf
}

func (w *AIFFWriter) writeHeader(frames uint32) error {
	dataSize := frames * 2

	// FORM chunk
	if _, err := w.file.Write([]byte("FORM")); err != nil {
		return fmt.Errorf("failed to write FORM chunk: %w", err)
	}
	if err := binary.Write(w.file, binary.BigEndian, uint32(46+dataSize)); err != nil {
		return err
	}
	if _, err := w.file.Write([]byte("AIFF")); err != nil {
		return err
	}

	// COMM chunk: 1 channel, 16-bit, extended-precision sample rate
	if _, err := w.file.Write([]byte("COMM")); err != nil {
		return err
	}
	if err := binary.Write(w.file, binary.BigEndian, uint32(18)); err != nil {
		return err
	}
	if err := binary.Write(w.file, binary.BigEndian, uint16(1)); err != nil {
		return err
	}
	if err := binary.Write(w.file, binary.BigEndian, frames); err != nil {
		return err
	}
	if err := binary.Write(w.file, binary.BigEndian, uint16(16)); err != nil {
		return err
	}
	rate := extendedRate(uint32(w.sampleRate))
	if _, err := w.file.Write(rate[:]); err != nil {
		return err
	}

	// SSND chunk: zero offset and block size, then sound data
	if _, err := w.file.Write([]byte("SSND")); err != nil {
		return err
	}
	if err := binary.Write(w.file, binary.BigEndian, uint32(8+dataSize)); err != nil {
		return err
	}
	if err := binary.Write(w.file, binary.BigEndian, uint32(0)); err != nil {
		return err
	}
	return binary.Write(w.file, binary.BigEndian, uint32(0))
}

// WriteSamples appends PCM samples to the file.
func (w *AIFFWriter) WriteSamples(samples []int16) error {
	if err := binary.Write(w.file, binary.BigEndian, samples); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	w.frames += int64(len(samples))
	return nil
}

// Close patches the chunk sizes and frame count and closes the file.
func (w *AIFFWriter) Close() error {
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to seek to header: %w", err)
	}
	if err := w.writeHeader(uint32(w.frames)); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
