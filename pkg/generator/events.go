package generator

import (
	"fmt"
	"iter"
	"slices"
	"time"
)

type EventKind int

const (
	Tone EventKind = iota
	Silence
)

func (k EventKind) String() string {
	switch k {
	case Tone:
		return "Tone"
	case Silence:
		return "Silence"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Event is one tone burst or pause of the playback schedule.
type Event struct {
	Kind     EventKind
	Duration time.Duration
}

func (e Event) String() string {
	return fmt.Sprintf("%s(%s)", e.Kind, e.Duration)
}

func toneOf(d time.Duration) Event    { return Event{Kind: Tone, Duration: d} }
func silenceOf(d time.Duration) Event { return Event{Kind: Silence, Duration: d} }

// step returns the two events a single rune of a Morse string expands to.
// Every rune, separators included, is followed by one element gap.
func step(r rune, p Profile) [2]Event {
	gap := silenceOf(p.ElementGapDuration())
	switch r {
	case '.':
		return [2]Event{toneOf(p.DotDuration()), gap}
	case '-':
		return [2]Event{toneOf(p.DashDuration()), gap}
	case ' ':
		return [2]Event{silenceOf(p.CharGapDuration()), gap}
	default:
		return [2]Event{gap, gap}
	}
}

// Steps yields the schedule for morse together with the index of the rune
// each event belongs to. The trailing word gap reports the rune count.
func Steps(morse string, p Profile) iter.Seq2[int, Event] {
	return func(yield func(int, Event) bool) {
		i := 0
		for _, r := range morse {
			for _, ev := range step(r, p) {
				if !yield(i, ev) {
					return
				}
			}
			i++
		}
		yield(i, silenceOf(p.WordGapDuration()))
	}
}

// Events yields the playback schedule for morse in order.
func Events(morse string, p Profile) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for _, ev := range Steps(morse, p) {
			if !yield(ev) {
				return
			}
		}
	}
}

func Schedule(morse string, p Profile) []Event {
	return slices.Collect(Events(morse, p))
}

func TotalDuration(events []Event) time.Duration {
	var total time.Duration
	for _, ev := range events {
		total += ev.Duration
	}
	return total
}
