package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/atotto/clipboard"
	"github.com/gucio32/morsekit/pkg/record"
	"github.com/spf13/cobra"
)

var clipboardWriteAll = clipboard.WriteAll

type EncodeParams struct {
	Text    []string `pos:"true" optional:"true" help:"Text to encode. If none provided, reads lines from stdin."`
	Variant string   `optional:"true" help:"Morse code variant to use (default from config)."`
	Play    bool     `short:"p" help:"Play the Morse code after printing it." default:"false"`
	Copy    bool     `short:"c" help:"Copy the result to the clipboard." default:"false"`
	Config  string   `optional:"true" help:"Path to a YAML config file."`
}

type DecodeParams struct {
	Morse   []string `pos:"true" optional:"true" help:"Morse code to decode. If none provided, reads lines from stdin."`
	Variant string   `optional:"true" help:"Morse code variant to use (default from config)."`
	Play    bool     `short:"p" help:"Play the Morse code after decoding it." default:"false"`
	Copy    bool     `short:"c" help:"Copy the result to the clipboard." default:"false"`
	Config  string   `optional:"true" help:"Path to a YAML config file."`
}

func EncodeCmd() *cobra.Command {
	return boa.CmdT[EncodeParams]{
		Use:   "encode [text]",
		Short: "Convert text to Morse code",
		Long: `Convert text to Morse code.

Letters are separated by one space and words by five. Characters the
variant does not know are skipped with a warning.`,
		ParamEnrich: DefaultParamEnricher(),
		RunFunc: func(params *EncodeParams, cmd *cobra.Command, args []string) {
			run(params.Config, func(ctx context.Context, app *App) error {
				return runEncode(ctx, params, app, os.Stdin, os.Stdout)
			})
		},
	}.ToCobra()
}

func DecodeCmd() *cobra.Command {
	return boa.CmdT[DecodeParams]{
		Use:   "decode [morse]",
		Short: "Convert Morse code to text",
		Long: `Convert Morse code to text.

Only dots, dashes and spaces are accepted. Three or more spaces separate
words. Unknown codes are skipped with a warning.`,
		ParamEnrich: DefaultParamEnricher(),
		RunFunc: func(params *DecodeParams, cmd *cobra.Command, args []string) {
			run(params.Config, func(ctx context.Context, app *App) error {
				return runDecode(ctx, params, app, os.Stdin, os.Stdout)
			})
		},
	}.ToCobra()
}

func runEncode(ctx context.Context, params *EncodeParams, app *App, stdin io.Reader, stdout io.Writer) error {
	conv, err := app.Converter(params.Variant)
	if err != nil {
		return err
	}

	var results []string
	err = eachInput(params.Text, stdin, func(text string) error {
		morse, err := conv.Encode(text)
		if err != nil {
			return err
		}
		app.History.Add(record.TextToMorse, text, morse)
		fmt.Fprintln(stdout, morse)
		results = append(results, morse)
		if params.Play {
			return play(ctx, app, morse)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if params.Copy {
		return copyResults(results)
	}
	return nil
}

func runDecode(ctx context.Context, params *DecodeParams, app *App, stdin io.Reader, stdout io.Writer) error {
	conv, err := app.Converter(params.Variant)
	if err != nil {
		return err
	}

	var results []string
	err = eachInput(params.Morse, stdin, func(morse string) error {
		text, err := conv.Decode(morse)
		if err != nil {
			return err
		}
		app.History.Add(record.MorseToText, morse, text)
		fmt.Fprintln(stdout, text)
		results = append(results, text)
		if params.Play {
			return play(ctx, app, morse)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if params.Copy {
		return copyResults(results)
	}
	return nil
}

func play(ctx context.Context, app *App, morse string) error {
	player, err := app.Player()
	if err != nil {
		return err
	}
	return player.Play(ctx, morse)
}

func copyResults(results []string) error {
	if err := clipboardWriteAll(strings.Join(results, "\n")); err != nil {
		return fmt.Errorf("failed to write to clipboard: %w", err)
	}
	return nil
}

// eachInput calls fn once with the joined args or, without args, once per
// non-blank stdin line.
func eachInput(args []string, stdin io.Reader, fn func(string) error) error {
	if len(args) > 0 {
		return fn(strings.Join(args, " "))
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read from stdin: %w", err)
	}
	return nil
}
