package learn

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/gucio32/morsekit/pkg/generator"
	"github.com/gucio32/morsekit/pkg/morseerr"
	"golang.org/x/exp/rand"
)

func TestGetLesson(t *testing.T) {
	l, err := GetLesson(3)
	if err != nil {
		t.Fatal(err)
	}
	if string(l.Letters) != "AELVCQST" || l.CharGap != 9 || l.WordGap != 21 {
		t.Errorf("lesson 3 = %+v", l)
	}
	if _, err := GetLesson(9); !errors.Is(err, morseerr.ErrConfiguration) {
		t.Errorf("err = %v, want configuration error", err)
	}
	if got := Lessons(); !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("Lessons() = %v", got)
	}
}

func TestLessonTiming(t *testing.T) {
	l, _ := GetLesson(2)
	p := l.Timing(generator.DefaultProfile())
	if p.CharGap != 4 || p.WordGap != 13 {
		t.Errorf("gaps = %d/%d, want 4/13", p.CharGap, p.WordGap)
	}
	if p.Dot != 1 || p.Dash != 3 || p.Unit != generator.DefaultUnit {
		t.Errorf("element timing changed: %+v", p)
	}
	if err := p.Validate(); err != nil {
		t.Error(err)
	}
}

func TestWords(t *testing.T) {
	l, _ := GetLesson(1)
	rng := rand.New(rand.NewSource(42))
	words := Words(rng, l, 4, 0)
	if len(words) != 4 {
		t.Fatalf("len = %d, want 4", len(words))
	}
	for _, w := range words {
		if len([]rune(w)) != DefaultWordLength {
			t.Errorf("word %q has wrong length", w)
		}
		for _, r := range w {
			if !slices.Contains(l.Letters, r) {
				t.Errorf("word %q contains %q outside the lesson", w, r)
			}
		}
	}

	again := Words(rand.New(rand.NewSource(42)), l, 4, 0)
	if !slices.Equal(words, again) {
		t.Errorf("same seed gave %v and %v", words, again)
	}
}

func TestScore(t *testing.T) {
	tests := []struct {
		expected, answer string
		correct          int
		marks            []Mark
	}{
		{"AEL", "ael", 3, []Mark{Correct, Correct, Correct}},
		{"AEL", "AXL", 2, []Mark{Correct, Wrong, Correct}},
		{"AEL", "A", 1, []Mark{Correct, Missing, Missing}},
		{"AE", "AELV", 2, []Mark{Correct, Correct}},
	}
	for _, tt := range tests {
		res := Score(tt.expected, tt.answer)
		if res.Correct != tt.correct || !slices.Equal(res.Marks, tt.marks) {
			t.Errorf("Score(%q, %q) = %d %v, want %d %v", tt.expected, tt.answer, res.Correct, res.Marks, tt.correct, tt.marks)
		}
	}
	if !Score("AV", "av").Passed() {
		t.Error("full match did not pass")
	}
	if Score("", "").Passed() {
		t.Error("empty lesson passed")
	}
}

func TestRenderSummary(t *testing.T) {
	out := Score("AELV", "AEXV").Render()
	if !strings.Contains(out, "3/4 correct") {
		t.Errorf("Render() = %q", out)
	}
	if strings.Contains(out, "Congratulations") {
		t.Error("partial answer congratulated")
	}
	if !strings.Contains(Score("AE", "ae").Render(), "Congratulations") {
		t.Error("full answer not congratulated")
	}
}

type schedulePlayer struct {
	profile generator.Profile
	events  []generator.Event
}

func (p *schedulePlayer) Play(_ context.Context, morse string) error {
	p.events = append(p.events, generator.Schedule(morse, p.profile)...)
	return nil
}

// silences returns the total silence between consecutive tones.
func silences(events []generator.Event) []time.Duration {
	var gaps []time.Duration
	var gap time.Duration
	seenTone := false
	for _, ev := range events {
		if ev.Kind == generator.Silence {
			gap += ev.Duration
			continue
		}
		if seenTone {
			gaps = append(gaps, gap)
		}
		seenTone = true
		gap = 0
	}
	return gaps
}

func TestLessonGaps(t *testing.T) {
	for _, idx := range Lessons() {
		l, _ := GetLesson(idx)
		p := l.Timing(generator.DefaultProfile())
		unit := p.Unit

		player := &schedulePlayer{profile: p}
		// "EE" then "E": dot, char gap, dot, word gap, dot.
		if err := playWords(context.Background(), player, []string{". .", "."}); err != nil {
			t.Fatal(err)
		}
		gaps := silences(player.events)
		want := []time.Duration{time.Duration(l.CharGap) * unit, time.Duration(l.WordGap) * unit}
		if !slices.Equal(gaps, want) {
			t.Errorf("lesson %d: gaps = %v, want %v", idx, gaps, want)
		}
	}
}

func TestPlayWordsStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	player := &listPlayer{}
	if err := playWords(ctx, player, []string{".-", "-..."}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
	if len(player.played) != 0 {
		t.Errorf("played %v after cancel", player.played)
	}
}

type upperEncoder struct{}

func (upperEncoder) Encode(text string) (string, error) {
	return strings.ToUpper(text), nil
}

type blockingPlayer struct {
	got chan string
}

func (p *blockingPlayer) Play(ctx context.Context, morse string) error {
	p.got <- morse
	<-ctx.Done()
	return ctx.Err()
}

func TestRun(t *testing.T) {
	player := &blockingPlayer{got: make(chan string, 2)}
	var out bytes.Buffer

	res, err := Run(context.Background(), upperEncoder{}, player, []string{"ael", "vv"}, strings.NewReader("ael vx\n"), &out)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if played := <-player.got; played != "AEL" {
		t.Errorf("played %q", played)
	}
	if res.Correct != 5 || res.Total() != 6 {
		t.Errorf("score = %d/%d, want 5/6", res.Correct, res.Total())
	}
	if !strings.HasPrefix(out.String(), "What do you hear?: ") {
		t.Errorf("output = %q", out.String())
	}
}

type failingPlayer struct{}

func (failingPlayer) Play(context.Context, string) error {
	return morseerr.Audio(errors.New("no device"), "failed to play tone")
}

func TestRunReportsPlaybackFailure(t *testing.T) {
	_, err := Run(context.Background(), upperEncoder{}, failingPlayer{}, []string{"a"}, strings.NewReader("a\n"), &bytes.Buffer{})
	if !errors.Is(err, morseerr.ErrAudio) {
		t.Errorf("err = %v, want audio error", err)
	}
}
