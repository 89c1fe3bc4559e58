package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// WAVWriter writes the generated sample stream to a WAV file. Samples can
// be written incrementally; sizes are patched into the header on Close.
type WAVWriter struct {
	file       *os.File
	sampleRate int
	dataSize   int64
}

// wavHeader is the RIFF/fmt/data layout for 16-bit mono PCM.
type wavHeader struct {
	// RIFF chunk
	ChunkID   [4]byte // "RIFF"
	ChunkSize uint32  // file size - 8
	Format    [4]byte // "WAVE"

	// fmt sub-chunk
	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16

	// data sub-chunk
	Subchunk2ID   [4]byte // "data"
	Subchunk2Size uint32
}

// NewWAVWriter creates the output file and writes a placeholder header.
func NewWAVWriter(filename string, sampleRate int) (*WAVWriter, error) {
	file, err := os.Create(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create WAV file: %w", err)
	}

	w := &WAVWriter{file: file, sampleRate: sampleRate}
	if err := w.writeHeader(0); err != nil {
		file.Close()
		return nil, err
	}
	return w, nil
}

func (w *WAVWriter) writeHeader(dataSize uint32) error {
	header := wavHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    uint32(w.sampleRate),
		ByteRate:      uint32(w.sampleRate * 2),
		BlockAlign:    2,
		BitsPerSample: 16,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}
	if err := binary.Write(w.file, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write WAV header: %w", err)
	}
	return nil
}

// WriteSamples appends PCM samples to the file.
func (w *WAVWriter) WriteSamples(samples []int16) error {
	if err := binary.Write(w.file, binary.LittleEndian, samples); err != nil {
		return fmt.Errorf("failed to write samples: %w", err)
	}
	w.dataSize += int64(len(samples)) * 2
	return nil
}

// Close patches the chunk sizes and closes the file.
func (w *WAVWriter) Close() error {
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		w.file.Close()
		return fmt.Errorf("failed to seek to header: %w", err)
	}
	if err := w.writeHeader(uint32(w.dataSize)); err != nil {
		w.file.Close()
		return err
	}
	return w.file.Close()
}
