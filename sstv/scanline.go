package sstv

/*
 * Scan-line encoders.
 *
 * Video tones occupy 1500 Hz (black) to 2300 Hz (white). Each family lays
 * its line out differently:
 *
 *   Martin   sync, porch, G, sep, B, sep, R, sep
 *   Scottie  sep, G, sep, B, sync, porch, R   (sync mid-line; one extra
 *            sync precedes the first line of the frame)
 *   Robot 36 sync, porch, Y, sep, chroma porch, R-Y or B-Y on alternate
 *            lines at half pixel duration, chroma averaged over the pair
 *   Robot 72 sync, porch, Y, sep, chroma porch, R-Y, sep, chroma porch,
 *            B-Y, chroma at half horizontal resolution
 */

const (
	freqSync        = 1200
	freqBlack       = 1500
	freqWhite       = 2300
	freqPorch       = 1500
	freqChromaPorch = 1900
	freqSepEven     = 1500
	freqSepOdd      = 2300

	chromaPorchUS = 1500
)

// toneFreq maps an 8-bit component value linearly onto the video band.
// Chroma conversion can land slightly outside [0, 255] before rounding, so
// the result is clamped to the band edges.
func toneFreq(v float64) float64 {
	f := freqBlack + v*(800.0/255.0)
	if f < freqBlack {
		return freqBlack
	}
	if f > freqWhite {
		return freqWhite
	}
	return f
}

// ITU-R BT.601 component transforms, studio range.

func lumaY(r, g, b uint8) float64 {
	return 16.0 + 0.003906*(65.738*float64(r)+129.057*float64(g)+25.064*float64(b))
}

func chromaRY(r, g, b uint8) float64 {
	return 128.0 + 0.003906*(112.439*float64(r)-94.154*float64(g)-18.285*float64(b))
}

func chromaBY(r, g, b uint8) float64 {
	return 128.0 + 0.003906*(-37.945*float64(r)-74.494*float64(g)+112.439*float64(b))
}

// encodeLine emits one scan line of src through synth. chromaAlt selects
// the chroma plane for 4:2:0 modes and is owned by the orchestrator since
// it spans calls; everything else here is derived per call.
func encodeLine(mode *ModeSpec, src PixelSource, y int, chromaAlt bool, synth *Synthesizer, out *Stream) {
	switch mode.Family {
	case FamilyRGB:
		if mode.MidlineSync {
			encodeLineScottie(mode, src, y, synth, out)
		} else {
			encodeLineMartin(mode, src, y, synth, out)
		}
	case FamilyYUV420:
		encodeLineYUV420(mode, src, y, chromaAlt, synth, out)
	case FamilyYUV422:
		encodeLineYUV422(mode, src, y, synth, out)
	}
}

func encodeLineMartin(mode *ModeSpec, src PixelSource, y int, synth *Synthesizer, out *Stream) {
	synth.Tone(out, freqSync, mode.SyncTime)
	synth.Tone(out, freqPorch, mode.PorchTime)
	for x := 0; x < mode.Width; x++ {
		_, g, _ := src.RGB(x, y)
		synth.Tone(out, toneFreq(float64(g)), mode.PixelTime)
	}
	synth.Tone(out, freqPorch, mode.SeptrTime)
	for x := 0; x < mode.Width; x++ {
		_, _, b := src.RGB(x, y)
		synth.Tone(out, toneFreq(float64(b)), mode.PixelTime)
	}
	synth.Tone(out, freqPorch, mode.SeptrTime)
	for x := 0; x < mode.Width; x++ {
		r, _, _ := src.RGB(x, y)
		synth.Tone(out, toneFreq(float64(r)), mode.PixelTime)
	}
	synth.Tone(out, freqPorch, mode.SeptrTime)
}

func encodeLineScottie(mode *ModeSpec, src PixelSource, y int, synth *Synthesizer, out *Stream) {
	synth.Tone(out, freqPorch, mode.SeptrTime)
	for x := 0; x < mode.Width; x++ {
		_, g, _ := src.RGB(x, y)
		synth.Tone(out, toneFreq(float64(g)), mode.PixelTime)
	}
	synth.Tone(out, freqPorch, mode.SeptrTime)
	for x := 0; x < mode.Width; x++ {
		_, _, b := src.RGB(x, y)
		synth.Tone(out, toneFreq(float64(b)), mode.PixelTime)
	}
	synth.Tone(out, freqSync, mode.SyncTime)
	synth.Tone(out, freqPorch, mode.PorchTime)
	for x := 0; x < mode.Width; x++ {
		r, _, _ := src.RGB(x, y)
		synth.Tone(out, toneFreq(float64(r)), mode.PixelTime)
	}
}

// pairRGB averages the pixel at (x, y) with its line-pair partner, the
// standard 4:2:0 vertical chroma subsampling.
func pairRGB(src PixelSource, x, y int) (r, g, b uint8) {
	y0 := y &^ 1
	y1 := y0 + 1
	if y1 >= src.Height() {
		y1 = y0
	}
	r0, g0, b0 := src.RGB(x, y0)
	r1, g1, b1 := src.RGB(x, y1)
	return uint8((int(r0) + int(r1)) / 2),
		uint8((int(g0) + int(g1)) / 2),
		uint8((int(b0) + int(b1)) / 2)
}

func encodeLineYUV420(mode *ModeSpec, src PixelSource, y int, chromaAlt bool, synth *Synthesizer, out *Stream) {
	synth.Tone(out, freqSync, mode.SyncTime)
	synth.Tone(out, freqPorch, mode.PorchTime)
	for x := 0; x < mode.Width; x++ {
		synth.Tone(out, toneFreq(lumaY(src.RGB(x, y))), mode.PixelTime)
	}

	sep := float64(freqSepEven)
	if chromaAlt {
		sep = freqSepOdd
	}
	synth.Tone(out, sep, mode.SeptrTime)
	synth.Tone(out, freqChromaPorch, chromaPorchUS)
	for x := 0; x < mode.Width; x++ {
		r, g, b := pairRGB(src, x, y)
		if chromaAlt {
			synth.Tone(out, toneFreq(chromaBY(r, g, b)), mode.ChromaTime)
		} else {
			synth.Tone(out, toneFreq(chromaRY(r, g, b)), mode.ChromaTime)
		}
	}
}

// columnPairRGB averages the pixel at (x, y) with its column partner for
// half-horizontal-resolution chroma.
func columnPairRGB(src PixelSource, x, y int) (r, g, b uint8) {
	x0 := x &^ 1
	x1 := x0 + 1
	if x1 >= src.Width() {
		x1 = x0
	}
	r0, g0, b0 := src.RGB(x0, y)
	r1, g1, b1 := src.RGB(x1, y)
	return uint8((int(r0) + int(r1)) / 2),
		uint8((int(g0) + int(g1)) / 2),
		uint8((int(b0) + int(b1)) / 2)
}

func encodeLineYUV422(mode *ModeSpec, src PixelSource, y int, synth *Synthesizer, out *Stream) {
	synth.Tone(out, freqSync, mode.SyncTime)
	synth.Tone(out, freqPorch, mode.PorchTime)
	for x := 0; x < mode.Width; x++ {
		synth.Tone(out, toneFreq(lumaY(src.RGB(x, y))), mode.PixelTime)
	}

	synth.Tone(out, freqSepEven, mode.SeptrTime)
	synth.Tone(out, freqChromaPorch, chromaPorchUS)
	for x := 0; x < mode.Width; x++ {
		synth.Tone(out, toneFreq(chromaRY(columnPairRGB(src, x, y))), mode.ChromaTime)
	}

	synth.Tone(out, freqSepOdd, mode.SeptrTime)
	synth.Tone(out, freqChromaPorch, chromaPorchUS)
	for x := 0; x < mode.Width; x++ {
		synth.Tone(out, toneFreq(chromaBY(columnPairRGB(src, x, y))), mode.ChromaTime)
	}
}
