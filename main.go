package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/cwsl/sstvtx/sstv"
)

// sampleSink is the contract toward the audio container writers: accept
// the next batch of samples, then finalize on Close.
type sampleSink interface {
	WriteSamples(samples []int16) error
	Close() error
}

func main() {
	configPath := flag.String("config", "", "Path to YAML configuration file")
	input := flag.String("in", "", "Input image file (PNG, JPEG or GIF)")
	output := flag.String("out", "", "Output audio file (default: input name with format extension)")
	mode := flag.String("mode", "", "SSTV mode id (m1, m2, s1, s2, sdx, r36, r72)")
	rate := flag.Int("rate", 0, "Sample rate in Hz (8000-48000)")
	format := flag.String("format", "", "Output format: wav or aiff")
	callsign := flag.String("callsign", "", "Append a CW signature for this callsign")
	wpm := flag.Int("wpm", 0, "CW speed in words per minute")
	cwTone := flag.Float64("cwtone", 0, "CW tone frequency in Hz")
	noVIS := flag.Bool("novis", false, "Suppress the VIS header")
	listModes := flag.Bool("list-modes", false, "List supported SSTV modes and exit")
	flag.Parse()

	if *listModes {
		printModes()
		return
	}

	config := DefaultConfig()
	if *configPath != "" {
		var err error
		config, err = LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("[config] %v", err)
		}
	}

	// Flags override the configuration file.
	if *mode != "" {
		config.SSTV.Mode = *mode
	}
	if *rate != 0 {
		config.Audio.SampleRate = *rate
	}
	if *format != "" {
		config.Audio.Format = *format
	}
	if *callsign != "" {
		config.CW.Enabled = true
		config.CW.Callsign = *callsign
	}
	if *wpm != 0 {
		config.CW.WPM = *wpm
	}
	if *cwTone != 0 {
		config.CW.ToneHz = *cwTone
	}
	if *noVIS {
		config.SSTV.VISHeader = false
	}
	if err := config.Validate(); err != nil {
		log.Fatalf("[config] %v", err)
	}

	if *input == "" {
		fmt.Fprintln(os.Stderr, "An input image is required.")
		flag.Usage()
		os.Exit(2)
	}
	outPath := *output
	if outPath == "" {
		outPath = strings.TrimSuffix(*input, ext(*input)) + "." + config.Audio.Format
	}

	jobID := uuid.New().String()[:8]
	start := time.Now()

	opts := sstv.EncodeOptions{
		VISHeader: config.SSTV.VISHeader,
		Preamble:  config.SSTV.Preamble,
		Trailer:   config.SSTV.Trailer,
		Amplitude: config.Audio.Volume,
	}
	enc, err := sstv.NewEncoder(config.SSTV.Mode, config.Audio.SampleRate, opts)
	if err != nil {
		log.Fatalf("[sstv] job %s: %v", jobID, err)
	}
	m := enc.Mode()
	log.Printf("[sstv] job %s: %s (%s), %dx%d, %d Hz, ~%.1fs TX time",
		jobID, m.Name, m.ShortName, m.Width, m.Height,
		config.Audio.SampleRate, m.TotalSeconds())

	src, err := loadImage(*input, m.Width, m.Height)
	if err != nil {
		log.Fatalf("[image] job %s: %v", jobID, err)
	}

	// Ctrl-C aborts between scan lines, leaving a partial stream unwritten.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stream := sstv.NewStream()
	if err := enc.EncodeImage(ctx, src, stream); err != nil {
		log.Fatalf("[sstv] job %s: %v", jobID, err)
	}

	if config.CW.Enabled {
		// Two seconds of dead air between the image and the signature,
		// then the customary sign-off text.
		enc.Synthesizer().Tone(stream, 0, 2e6)
		msg := "SSTV DE " + strings.ToUpper(config.CW.Callsign)
		if err := enc.EncodeCW(msg, config.CW.WPM, config.CW.ToneHz, stream); err != nil {
			log.Fatalf("[cw] job %s: %v", jobID, err)
		}
		log.Printf("[cw] job %s: signed %q at %d wpm, %g Hz",
			jobID, msg, config.CW.WPM, config.CW.ToneHz)
	}

	var sink sampleSink
	switch config.Audio.Format {
	case "wav":
		sink, err = NewWAVWriter(outPath, config.Audio.SampleRate)
	case "aiff":
		sink, err = NewAIFFWriter(outPath, config.Audio.SampleRate)
	}
	if err != nil {
		log.Fatalf("[audio] job %s: %v", jobID, err)
	}
	if err := sink.WriteSamples(stream.Samples()); err != nil {
		sink.Close()
		log.Fatalf("[audio] job %s: %v", jobID, err)
	}
	if err := sink.Close(); err != nil {
		log.Fatalf("[audio] job %s: %v", jobID, err)
	}

	log.Printf("[sstv] job %s: wrote %s (%d samples, %.1fs audio) in %v",
		jobID, outPath, stream.Len(),
		stream.Duration(config.Audio.SampleRate),
		time.Since(start).Round(time.Millisecond))
}

func printModes() {
	fmt.Println("Supported SSTV modes:")
	for _, m := range sstv.Modes() {
		fmt.Printf("  %-4s %-12s %dx%d  VIS %3d  ~%.0fs\n",
			m.ID, m.Name, m.Width, m.Height, m.VIS, m.TotalSeconds())
	}
}

func ext(path string) string {
	if i := strings.LastIndex(path, "."); i >= 0 {
		return path[i:]
	}
	return ""
}
