package generator

import (
	"bytes"
	"encoding/binary"
	"io"
	"math"
	"time"

	"github.com/gucio32/morsekit/pkg/morseerr"
)

// amplitude keeps tones at half of full scale to avoid clipping.
const amplitude = 0.5 * math.MaxInt16

// Waveform is a synthesized tone as interleaved signed 16-bit samples.
type Waveform struct {
	Format    Format
	Frequency float64
	Samples   []int16
}

// Synthesize renders a fixed-amplitude sine of freq Hz lasting d. Mono
// samples are duplicated across channels. The result holds at least one
// frame.
func Synthesize(freq float64, d time.Duration, format Format) (*Waveform, error) {
	if d <= 0 {
		return nil, morseerr.Range("tone duration must be positive, got %s", d)
	}
	if freq <= 0 {
		return nil, morseerr.Range("tone frequency must be positive, got %g", freq)
	}
	if err := format.Validate(); err != nil {
		return nil, err
	}

	frames := int(int64(format.SampleRate) * int64(d) / int64(time.Second))
	if frames < 1 {
		frames = 1
	}

	period := float64(format.SampleRate) / freq
	samples := make([]int16, frames*format.ChannelCount)
	for p := 0; p < frames; p++ {
		b := int16(math.Sin(2*math.Pi*float64(p)/period) * amplitude)
		for ch := 0; ch < format.ChannelCount; ch++ {
			samples[p*format.ChannelCount+ch] = b
		}
	}

	return &Waveform{
		Format:    format,
		Frequency: freq,
		Samples:   samples,
	}, nil
}

func (w *Waveform) Frames() int {
	return len(w.Samples) / w.Format.ChannelCount
}

func (w *Waveform) Duration() time.Duration {
	return time.Duration(w.Frames()) * time.Second / time.Duration(w.Format.SampleRate)
}

// Bytes encodes the samples as little-endian PCM.
func (w *Waveform) Bytes() []byte {
	buf := make([]byte, len(w.Samples)*BytesPerSample)
	for i, s := range w.Samples {
		binary.LittleEndian.PutUint16(buf[i*BytesPerSample:], uint16(s))
	}
	return buf
}

func (w *Waveform) Reader() io.Reader {
	return bytes.NewReader(w.Bytes())
}
