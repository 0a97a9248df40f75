package learn

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
	"github.com/gucio32/morsekit/pkg/generator"
	"github.com/gucio32/morsekit/pkg/morseerr"
	"golang.org/x/exp/rand"
)

const DefaultWordLength = 5

// Lesson represents a particular lesson (lessons map below).
// According to https://morsecode.world/international/timing.html
// it is recommended to work on PARIS=20 and increase the inter-character
// and inter-word gaps.
type Lesson struct {
	Letters []rune
	CharGap int
	WordGap int
}

var lessons = map[int]Lesson{
	1: {[]rune("AELV"), 9, 21},
	2: {[]rune("AELV"), 6, 14},
	3: {[]rune("AELVCQST"), 9, 21},
	4: {[]rune("AELVCQST"), 6, 14},
}

func GetLesson(idx int) (Lesson, error) {
	l, ok := lessons[idx]
	if !ok {
		return Lesson{}, morseerr.Configuration("lesson %d not found, choose one of %v", idx, Lessons())
	}
	return l, nil
}

// Lessons returns the available lesson numbers in order.
func Lessons() []int {
	idx := make([]int, 0, len(lessons))
	for i := range lessons {
		idx = append(idx, i)
	}
	slices.Sort(idx)
	return idx
}

// Timing returns base with the lesson's widened gaps. The renderer follows
// every symbol with an element gap, so those are taken off: the silence
// between two characters is CharGap units, and between two words played
// one after another it is WordGap units.
func (l Lesson) Timing(base generator.Profile) generator.Profile {
	p := base
	p.CharGap = max(l.CharGap-2*p.ElementGap, 1)
	p.WordGap = max(l.WordGap-p.ElementGap, 1)
	return p
}

// Words generates n random words of the given length from the lesson letters.
func Words(rng *rand.Rand, l Lesson, n, length int) []string {
	if length <= 0 {
		length = DefaultWordLength
	}
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		var b strings.Builder
		for j := 0; j < length; j++ {
			b.WriteRune(l.Letters[rng.Intn(len(l.Letters))])
		}
		words = append(words, b.String())
	}
	return words
}

type Mark int

const (
	Correct Mark = iota
	Wrong
	Missing
)

type Result struct {
	Expected []rune
	Marks    []Mark
	Correct  int
}

func (r Result) Total() int { return len(r.Expected) }

func (r Result) Passed() bool { return r.Total() > 0 && r.Correct == r.Total() }

// Score compares answer with expected rune by rune, ignoring case.
func Score(expected, answer string) Result {
	exp := []rune(expected)
	ans := []rune(answer)
	res := Result{Expected: exp, Marks: make([]Mark, len(exp))}
	for i, e := range exp {
		switch {
		case i >= len(ans):
			res.Marks[i] = Missing
		case unicode.ToUpper(ans[i]) != unicode.ToUpper(e):
			res.Marks[i] = Wrong
		default:
			res.Marks[i] = Correct
			res.Correct++
		}
	}
	return res
}

var (
	correctStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	wrongStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Render prints the expected text with correct letters in green, wrong in
// red and unanswered in gray, followed by the score.
func (r Result) Render() string {
	var b strings.Builder
	for i, c := range r.Expected {
		s := string(c)
		switch r.Marks[i] {
		case Correct:
			b.WriteString(correctStyle.Render(s))
		case Wrong:
			b.WriteString(wrongStyle.Render(s))
		default:
			b.WriteString(missingStyle.Render(s))
		}
	}
	fmt.Fprintf(&b, "\n%d/%d correct", r.Correct, r.Total())
	if r.Passed() {
		b.WriteString("\nCongratulations! You can go ahead!")
	}
	return b.String()
}

type Encoder interface {
	Encode(text string) (string, error)
}

type Player interface {
	Play(ctx context.Context, morse string) error
}

// Run plays words through player while the user types what they hear.
// Words are played one at a time so the word gap comes from the player's
// trailing pause. Playback is stopped once the answer is in.
func Run(ctx context.Context, enc Encoder, player Player, words []string, in io.Reader, out io.Writer) (Result, error) {
	codes := make([]string, 0, len(words))
	for _, w := range words {
		code, err := enc.Encode(w)
		if err != nil {
			return Result{}, err
		}
		codes = append(codes, code)
	}

	playCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	played := make(chan error, 1)
	go func() {
		played <- playWords(playCtx, player, codes)
	}()

	fmt.Fprint(out, "What do you hear?: ")
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return Result{}, fmt.Errorf("failed to read answer: %w", err)
	}
	answer = strings.TrimRight(answer, "\r\n")

	cancel()
	if err := <-played; err != nil && !errors.Is(err, context.Canceled) {
		return Result{}, err
	}

	res := Score(strings.Join(words, " "), answer)
	fmt.Fprintln(out, res.Render())
	return res, nil
}

func playWords(ctx context.Context, player Player, codes []string) error {
	for _, code := range codes {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := player.Play(ctx, code); err != nil {
			return err
		}
	}
	return nil
}
