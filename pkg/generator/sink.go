package generator

import (
	"context"
	"strings"
	"time"

	"github.com/gucio32/morsekit/pkg/morseerr"
)

// Sink is an opened audio output. PlayTone blocks until the waveform has
// been played or ctx is done.
type Sink interface {
	Format() Format
	PlayTone(ctx context.Context, w *Waveform) error
	Close() error
}

const (
	BackendOto    = "oto"
	BackendBeep   = "beep"
	BackendBell   = "bell"
	BackendSilent = "silent"
)

func Backends() []string {
	return []string{BackendOto, BackendBeep, BackendBell, BackendSilent}
}

// OpenSink initializes the named audio backend.
func OpenSink(backend string, format Format) (Sink, error) {
	if err := format.Validate(); err != nil {
		return nil, err
	}
	switch backend {
	case BackendOto:
		return openOto(format)
	case BackendBeep:
		return openBeep(format)
	case BackendBell:
		return &bellSink{format: format}, nil
	case BackendSilent:
		return &silentSink{format: format}, nil
	default:
		return nil, morseerr.Configuration("unknown audio backend %q, expected one of %s",
			backend, strings.Join(Backends(), ", "))
	}
}

// Sleep waits for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// silentSink keeps real-time pacing without producing sound.
type silentSink struct {
	format Format
}

func (s *silentSink) Format() Format { return s.format }

func (s *silentSink) PlayTone(ctx context.Context, w *Waveform) error {
	return Sleep(ctx, w.Duration())
}

func (s *silentSink) Close() error { return nil }
