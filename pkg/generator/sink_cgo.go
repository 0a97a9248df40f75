//go:build (linux && cgo) || windows || darwin

package generator

import (
	"context"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gucio32/morsekit/pkg/morseerr"
)

// oto allows a single context per process.
var (
	otoOnce   sync.Once
	otoCtx    *oto.Context
	otoFormat Format
	otoErr    error
)

type otoSink struct {
	ctx    *oto.Context
	format Format
}

func openOto(format Format) (Sink, error) {
	otoOnce.Do(func() {
		op := &oto.NewContextOptions{
			SampleRate:   format.SampleRate,
			ChannelCount: format.ChannelCount,
			Format:       oto.FormatSignedInt16LE,
		}
		ctx, ready, err := oto.NewContext(op)
		if err != nil {
			otoErr = err
			return
		}
		<-ready
		otoCtx = ctx
		otoFormat = format
	})
	if otoErr != nil {
		return nil, morseerr.Audio(otoErr, "initializing oto")
	}
	if otoFormat != format {
		return nil, morseerr.Audio(nil, "oto already initialized with %d Hz/%d channels",
			otoFormat.SampleRate, otoFormat.ChannelCount)
	}
	if err := otoCtx.Resume(); err != nil {
		return nil, morseerr.Audio(err, "resuming oto")
	}
	return &otoSink{ctx: otoCtx, format: format}, nil
}

func (s *otoSink) Format() Format { return s.format }

func (s *otoSink) PlayTone(ctx context.Context, w *Waveform) error {
	p := s.ctx.NewPlayer(w.Reader())
	p.Play()

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()
	for p.IsPlaying() {
		select {
		case <-ctx.Done():
			p.Pause()
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return p.Err()
}

func (s *otoSink) Close() error {
	return s.ctx.Suspend()
}

type beepSink struct {
	format Format
}

func openBeep(format Format) (Sink, error) {
	rate := beep.SampleRate(format.SampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, morseerr.Audio(err, "initializing speaker")
	}
	return &beepSink{format: format}, nil
}

func (s *beepSink) Format() Format { return s.format }

func (s *beepSink) PlayTone(ctx context.Context, w *Waveform) error {
	done := make(chan struct{})
	speaker.Play(beep.Seq(&waveStreamer{w: w}, beep.Callback(func() {
		close(done)
	})))
	select {
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	case <-done:
		return nil
	}
}

func (s *beepSink) Close() error {
	speaker.Close()
	return nil
}

// waveStreamer adapts a Waveform to beep's float stereo frames.
type waveStreamer struct {
	w   *Waveform
	pos int
}

func (t *waveStreamer) Stream(samples [][2]float64) (n int, ok bool) {
	ch := t.w.Format.ChannelCount
	frames := t.w.Frames()
	for i := range samples {
		if t.pos >= frames {
			return i, i > 0
		}
		left := float64(t.w.Samples[t.pos*ch]) / 32768
		right := left
		if ch == 2 {
			right = float64(t.w.Samples[t.pos*ch+1]) / 32768
		}
		samples[i][0] = left
		samples[i][1] = right
		t.pos++
	}
	return len(samples), true
}

func (t *waveStreamer) Err() error {
	return nil
}
