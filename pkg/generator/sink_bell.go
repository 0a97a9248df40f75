package generator

import (
	"context"
	"time"

	"github.com/gen2brain/beeep"
)

// bellSink drives the system beeper. It needs no cgo, which makes it the
// fallback on headless Linux builds.
type bellSink struct {
	format Format
}

func (s *bellSink) Format() Format { return s.format }

func (s *bellSink) PlayTone(ctx context.Context, w *Waveform) error {
	d := w.Duration()
	start := time.Now()
	if err := beeep.Beep(w.Frequency, int(d/time.Millisecond)); err != nil {
		return err
	}
	// Some platforms return from Beep before the tone ends.
	if rest := d - time.Since(start); rest > 0 {
		return Sleep(ctx, rest)
	}
	return ctx.Err()
}

func (s *bellSink) Close() error { return nil }
