// Package generator renders Morse strings as timed tone sequences.
//
// The schedule of tones and pauses comes from Events, which knows nothing
// about audio. A Renderer walks that schedule in real time, synthesizing a
// sine Waveform for every tone and handing it to a Sink.
package generator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/gucio32/morsekit/pkg/codetable"
	"github.com/gucio32/morsekit/pkg/morseerr"
	"github.com/rs/zerolog"
)

// Sleeper waits for d, returning early with ctx.Err() when ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

// ProgressFunc is called after every rune of the Morse string has been
// played.
type ProgressFunc func(done, total int)

type Renderer struct {
	profile  Profile
	format   Format
	sink     Sink
	sleep    Sleeper
	progress ProgressFunc
	log      zerolog.Logger

	mu     sync.Mutex
	closed bool
	busy   atomic.Bool
}

type Option func(*Renderer)

func WithSleeper(s Sleeper) Option {
	return func(r *Renderer) {
		r.sleep = s
	}
}

func WithProgress(fn ProgressFunc) Option {
	return func(r *Renderer) {
		r.progress = fn
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(r *Renderer) {
		r.log = log
	}
}

// New creates a Renderer. sink may be nil, in which case every tone fails
// with an audio error.
func New(profile Profile, format Format, sink Sink, opts ...Option) (*Renderer, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}
	if err := format.Validate(); err != nil {
		return nil, err
	}
	if sink != nil && sink.Format() != format {
		return nil, morseerr.Configuration("sink format %+v does not match renderer format %+v", sink.Format(), format)
	}

	r := &Renderer{
		profile: profile,
		format:  format,
		sink:    sink,
		sleep:   Sleep,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Renderer) Profile() Profile { return r.profile }

func (r *Renderer) Format() Format { return r.format }

func (r *Renderer) activeSink() (Sink, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sink == nil || r.closed {
		return nil, morseerr.Audio(nil, "audio subsystem is not initialized")
	}
	return r.sink, nil
}

// CreateTone synthesizes a tone of duration d at the profile frequency.
func (r *Renderer) CreateTone(d time.Duration) (*Waveform, error) {
	if d <= 0 {
		return nil, morseerr.Range("tone duration must be positive, got %s", d)
	}
	if _, err := r.activeSink(); err != nil {
		return nil, err
	}
	w, err := Synthesize(r.profile.Frequency, d, r.format)
	if err != nil {
		return nil, morseerr.Audio(err, "generating %s tone", d)
	}
	return w, nil
}

// Play validates morse and then plays it synchronously, occupying the
// caller for the whole real-time duration. Nothing is emitted when
// validation fails. Only one Play may run on a Renderer at a time.
func (r *Renderer) Play(ctx context.Context, morse string) error {
	if err := codetable.CheckMorse("morse_string", morse); err != nil {
		return err
	}
	if !r.busy.CompareAndSwap(false, true) {
		return morseerr.Audio(nil, "playback already in progress")
	}
	defer r.busy.Store(false)

	total := utf8.RuneCountInString(morse)
	start := time.Now()
	r.log.Debug().Int("symbols", total).Msg("playing Morse code")

	last := 0
	for pos, ev := range Steps(morse, r.profile) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if pos != last {
			r.report(pos, total)
			last = pos
		}
		if err := r.emit(ctx, ev); err != nil {
			return err
		}
	}

	r.log.Debug().Dur("elapsed", time.Since(start)).Msg("playback finished")
	return nil
}

func (r *Renderer) report(done, total int) {
	if r.progress != nil {
		r.progress(done, total)
	}
}

func (r *Renderer) emit(ctx context.Context, ev Event) error {
	if ev.Kind == Silence {
		return r.sleep(ctx, ev.Duration)
	}

	w, err := r.CreateTone(ev.Duration)
	if err != nil {
		if errors.Is(err, morseerr.ErrAudio) {
			return err
		}
		return morseerr.Audio(err, "generating tone")
	}
	sink, err := r.activeSink()
	if err != nil {
		return err
	}
	if err := sink.PlayTone(ctx, w); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return morseerr.Audio(err, "playing tone")
	}
	return nil
}

// Start runs Play on its own goroutine so an interactive caller is not
// blocked. The channel yields Play's result and is then closed.
func (r *Renderer) Start(ctx context.Context, morse string) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer close(done)
		done <- r.Play(ctx, morse)
	}()
	return done
}

// Close releases the sink. CreateTone and Play fail afterwards.
func (r *Renderer) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil
	}
	r.closed = true
	if r.sink == nil {
		return nil
	}
	if err := r.sink.Close(); err != nil {
		return morseerr.Audio(err, "releasing audio device")
	}
	return nil
}
