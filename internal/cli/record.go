package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gucio32/morsekit/pkg/codetable"
	"github.com/gucio32/morsekit/pkg/morseerr"
	"github.com/gucio32/morsekit/pkg/record"
	"github.com/spf13/cobra"
)

type SaveParams struct {
	Input   []string `pos:"true" help:"Text or Morse code to convert and save."`
	Type    string   `short:"t" help:"Conversion type." default:"text_to_morse" alts:"text_to_morse,morse_to_text,play_morse"`
	Output  string   `short:"o" help:"File to write (.json, .yaml or .yml)." default:"conversion.json"`
	Variant string   `optional:"true" help:"Morse code variant to use (default from config)."`
	Config  string   `optional:"true" help:"Path to a YAML config file."`
}

type LoadParams struct {
	Path   string `pos:"true" help:"Saved conversion file (.json, .yaml or .yml)."`
	Play   bool   `short:"p" help:"Play the Morse code of the loaded conversion." default:"false"`
	Config string `optional:"true" help:"Path to a YAML config file."`
}

func SaveCmd() *cobra.Command {
	return boa.CmdT[SaveParams]{
		Use:         "save <input>",
		Short:       "Convert and save the result to a file",
		ParamEnrich: DefaultParamEnricher(),
		RunFunc: func(params *SaveParams, cmd *cobra.Command, args []string) {
			run(params.Config, func(_ context.Context, app *App) error {
				return runSave(params, app, os.Stdout)
			})
		},
	}.ToCobra()
}

func LoadCmd() *cobra.Command {
	return boa.CmdT[LoadParams]{
		Use:         "load <path>",
		Short:       "Show a saved conversion",
		ParamEnrich: DefaultParamEnricher(),
		RunFunc: func(params *LoadParams, cmd *cobra.Command, args []string) {
			run(params.Config, func(ctx context.Context, app *App) error {
				return runLoad(ctx, params, app, os.Stdout)
			})
		},
	}.ToCobra()
}

func runSave(params *SaveParams, app *App, stdout io.Writer) error {
	input := strings.Join(params.Input, " ")
	conv, err := app.Converter(params.Variant)
	if err != nil {
		return err
	}

	rec := record.Record{Type: record.Type(params.Type)}
	switch rec.Type {
	case record.TextToMorse:
		rec.Text = input
		rec.MorseCode, err = conv.Encode(input)
	case record.MorseToText:
		rec.MorseCode = input
		rec.Text, err = conv.Decode(input)
	case record.PlayMorse:
		rec.MorseCode = input
		err = codetable.CheckMorse("morse_string", input)
	default:
		err = morseerr.Input("unknown conversion type %q", params.Type)
	}
	if err != nil {
		return err
	}

	if err := record.Save(params.Output, rec); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Saved %s to %s\n", rec.Type, params.Output)
	return nil
}

func runLoad(ctx context.Context, params *LoadParams, app *App, stdout io.Writer) error {
	rec, err := record.Load(params.Path)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Type: %s\n", rec.Type)
	if rec.Text != "" {
		fmt.Fprintf(stdout, "Text: %s\n", rec.Text)
	}
	fmt.Fprintf(stdout, "Morse code: %s\n", rec.MorseCode)

	if params.Play {
		return play(ctx, app, rec.MorseCode)
	}
	return nil
}
