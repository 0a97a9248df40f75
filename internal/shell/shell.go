// Package shell implements the interactive converter menu.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/gucio32/morsekit/pkg/history"
	"github.com/gucio32/morsekit/pkg/record"
	"github.com/rs/zerolog"
)

const (
	WelcomeMessage = "Welcome to the International Morse Code Converter and Player"
	GoodbyeMessage = "Thank you for using the Morse Code Converter and Player!"

	playPrompt = "Do you want to play the Morse code sound? (Yes/No): "
)

var (
	menuOptions = []string{
		"1. Convert Text to Morse Code and Optionally Play Sound",
		"2. Convert Morse Code to Text and Optionally Play Sound",
		"3. Play Morse Code Sound",
		"4. Exit",
	}
	menuChoices = []string{"1", "2", "3", "4"}
	yesAnswers  = []string{"y", "yes"}
	noAnswers   = []string{"n", "no"}
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

type Translator interface {
	Encode(text string) (string, error)
	Decode(morse string) (string, error)
}

type Player interface {
	Play(ctx context.Context, morse string) error
}

type Shell struct {
	tr      Translator
	player  Player
	history *history.History
	in      *bufio.Reader
	out     io.Writer
	log     zerolog.Logger
}

type Option func(*Shell)

func WithHistory(h *history.History) Option {
	return func(s *Shell) {
		s.history = h
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(s *Shell) {
		s.log = log
	}
}

func New(tr Translator, player Player, in io.Reader, out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		tr:     tr,
		player: player,
		in:     bufio.NewReader(in),
		out:    out,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.history == nil {
		s.history = history.New(history.DefaultLimit)
	}
	return s
}

func (s *Shell) History() *history.History {
	return s.history
}

// Run shows the menu until the user exits or the input ends. Errors of a
// single action are printed and the menu is shown again; only a done ctx
// or a failing reader stops the loop with an error.
func (s *Shell) Run(ctx context.Context) error {
	s.log.Info().Msg("starting converter shell")
	fmt.Fprintln(s.out, titleStyle.Render(WelcomeMessage))

	for {
		s.showMenu()
		choice, err := s.readChoice()
		if err != nil {
			return s.finish(err)
		}
		s.log.Debug().Str("choice", choice).Msg("menu option selected")

		if choice == "4" {
			return s.finish(nil)
		}

		if err := s.runAction(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return s.finish(err)
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			s.log.Debug().Err(err).Msg("action failed")
			fmt.Fprintln(s.out, errorStyle.Render(err.Error()))
		}
	}
}

func (s *Shell) finish(err error) error {
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	fmt.Fprintln(s.out, GoodbyeMessage)
	s.log.Info().Msg("converter shell shutting down")
	return nil
}

func (s *Shell) showMenu() {
	fmt.Fprintln(s.out, "\nOptions:")
	for _, o := range menuOptions {
		fmt.Fprintln(s.out, o)
	}
}

func (s *Shell) runAction(ctx context.Context, choice string) error {
	switch choice {
	case "1":
		text, err := s.readLine("Write your message to convert to Morse Code: ")
		if err != nil {
			return err
		}
		morse, err := s.tr.Encode(text)
		if err != nil {
			return err
		}
		s.history.Add(record.TextToMorse, text, morse)
		fmt.Fprintf(s.out, "Your Morse code: %s\n", resultStyle.Render(morse))
		return s.offerPlayback(ctx, morse)

	case "2":
		morse, err := s.readLine("Enter Morse Code to convert to Text: ")
		if err != nil {
			return err
		}
		text, err := s.tr.Decode(morse)
		if err != nil {
			return err
		}
		s.history.Add(record.MorseToText, morse, text)
		fmt.Fprintf(s.out, "Your text message: %s\n", resultStyle.Render(text))
		return s.offerPlayback(ctx, morse)

	case "3":
		morse, err := s.readLine("Enter Morse Code to play as sound: ")
		if err != nil {
			return err
		}
		if err := s.play(ctx, morse); err != nil {
			return err
		}
		s.history.Add(record.PlayMorse, morse, "")
		return nil
	}
	return nil
}

func (s *Shell) offerPlayback(ctx context.Context, morse string) error {
	yes, err := s.readYesNo(playPrompt)
	if err != nil || !yes {
		return err
	}
	return s.play(ctx, morse)
}

func (s *Shell) play(ctx context.Context, morse string) error {
	s.log.Debug().Str("morse", morse).Msg("playing Morse code as audio")
	if err := s.player.Play(ctx, morse); err != nil {
		return err
	}
	s.log.Info().Msg("sound playback finished")
	return nil
}

func (s *Shell) readChoice() (string, error) {
	for {
		choice, err := s.readLine("Choose an option (1-4): ")
		if err != nil {
			return "", err
		}
		choice = strings.TrimSpace(choice)
		if slices.Contains(menuChoices, choice) {
			return choice, nil
		}
		fmt.Fprintf(s.out, "Invalid option, please choose a number between %s and %s.\n",
			menuChoices[0], menuChoices[len(menuChoices)-1])
	}
}

func (s *Shell) readYesNo(prompt string) (bool, error) {
	for {
		answer, err := s.readLine(prompt)
		if err != nil {
			return false, err
		}
		answer = strings.ToLower(strings.TrimSpace(answer))
		switch {
		case slices.Contains(yesAnswers, answer):
			return true, nil
		case slices.Contains(noAnswers, answer):
			return false, nil
		}
		fmt.Fprintf(s.out, "Please answer with '%s' or '%s'.\n", yesAnswers[0], noAnswers[0])
	}
}

// readLine prints prompt and returns the next line without its newline.
// A final line without a newline is returned as is; io.EOF is returned
// only when nothing is left.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	line, err := s.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
