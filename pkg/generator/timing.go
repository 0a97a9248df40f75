package generator

import (
	"time"

	"github.com/gucio32/morsekit/pkg/morseerr"
)

const (
	DefaultFrequency    = 600.0
	DefaultSampleRate   = 44100
	DefaultChannelCount = 1
	DefaultUnit         = 100 * time.Millisecond
	BytesPerSample      = 2 // signed 16-bit little endian
)

// Timing holds the International Morse duration ratios in units.
type Timing struct {
	Dot        int
	Dash       int
	ElementGap int
	CharGap    int
	WordGap    int
}

func DefaultTiming() Timing {
	return Timing{
		Dot:        1,
		Dash:       3,
		ElementGap: 1,
		CharGap:    3,
		WordGap:    7,
	}
}

// Profile binds Timing to a concrete unit length and tone frequency.
type Profile struct {
	Timing
	Unit      time.Duration
	Frequency float64
}

func DefaultProfile() Profile {
	return Profile{
		Timing:    DefaultTiming(),
		Unit:      DefaultUnit,
		Frequency: DefaultFrequency,
	}
}

// UnitForWPM returns the unit length for a PARIS speed in words per minute.
// "PARIS " is 50 units long.
func UnitForWPM(wpm int) time.Duration {
	if wpm <= 0 {
		return DefaultUnit
	}
	return 60 * time.Second / time.Duration(50*wpm)
}

func (p Profile) Validate() error {
	multiples := []struct {
		name  string
		value int
	}{
		{"dot_length", p.Dot},
		{"dash_length", p.Dash},
		{"element_pause", p.ElementGap},
		{"character_pause", p.CharGap},
		{"word_pause", p.WordGap},
	}
	for _, m := range multiples {
		if m.value <= 0 {
			return morseerr.Configuration("timing %s must be positive, got %d", m.name, m.value)
		}
	}
	if p.Unit <= 0 {
		return morseerr.Configuration("unit duration must be positive, got %s", p.Unit)
	}
	if p.Frequency <= 0 {
		return morseerr.Configuration("frequency must be positive, got %g", p.Frequency)
	}
	return nil
}

func (p Profile) units(n int) time.Duration {
	return time.Duration(n) * p.Unit
}

func (p Profile) DotDuration() time.Duration  { return p.units(p.Dot) }
func (p Profile) DashDuration() time.Duration { return p.units(p.Dash) }
func (p Profile) ElementGapDuration() time.Duration {
	return p.units(p.ElementGap)
}
func (p Profile) CharGapDuration() time.Duration { return p.units(p.CharGap) }
func (p Profile) WordGapDuration() time.Duration { return p.units(p.WordGap) }

// Format describes the PCM stream handed to a Sink. Samples are always
// signed 16-bit.
type Format struct {
	SampleRate   int
	ChannelCount int
}

func DefaultFormat() Format {
	return Format{
		SampleRate:   DefaultSampleRate,
		ChannelCount: DefaultChannelCount,
	}
}

func (f Format) Validate() error {
	if f.SampleRate <= 0 {
		return morseerr.Configuration("sample rate must be positive, got %d", f.SampleRate)
	}
	if f.ChannelCount != 1 && f.ChannelCount != 2 {
		return morseerr.Configuration("channel count must be 1 or 2, got %d", f.ChannelCount)
	}
	return nil
}
