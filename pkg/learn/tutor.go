package learn

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode"
)

// Tutor prints the lesson letters with their codes and plays every letter
// the user types, until an empty line or EOF.
func Tutor(ctx context.Context, enc Encoder, player Player, l Lesson, in io.Reader, out io.Writer) error {
	for _, letter := range l.Letters {
		code, err := enc.Encode(string(letter))
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%c: %s\n", letter, code)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Type letter to hear it or enter to exit: ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		answer := []rune(strings.TrimSpace(scanner.Text()))
		if len(answer) == 0 {
			return nil
		}
		if len(answer) != 1 {
			fmt.Fprintln(out, "Only one letter allowed")
			continue
		}
		letter := unicode.ToUpper(answer[0])
		if !slices.Contains(l.Letters, letter) {
			fmt.Fprintln(out, "Not in lesson")
			continue
		}

		code, err := enc.Encode(string(letter))
		if err != nil {
			return err
		}
		if err := player.Play(ctx, code); err != nil {
			return err
		}
	}
}
