package cli

import (
	"context"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gucio32/morsekit/pkg/generator"
	"github.com/gucio32/morsekit/pkg/record"
	"github.com/spf13/cobra"
)

type PlayParams struct {
	Morse     []string `pos:"true" optional:"true" help:"Morse code to play. If none provided, reads lines from stdin."`
	WPM       int      `short:"w" help:"Words per minute, overrides the configured unit duration." default:"0"`
	Frequency float64  `short:"f" help:"Tone frequency in Hz, overrides the configured frequency." default:"0"`
	Config    string   `optional:"true" help:"Path to a YAML config file."`
}

func PlayCmd() *cobra.Command {
	return boa.CmdT[PlayParams]{
		Use:         "play [morse]",
		Short:       "Play Morse code as sound",
		Long:        "Play Morse code through the configured audio backend (oto, beep, bell or silent).",
		ParamEnrich: DefaultParamEnricher(),
		RunFunc: func(params *PlayParams, cmd *cobra.Command, args []string) {
			run(params.Config, func(ctx context.Context, app *App) error {
				return runPlay(ctx, params, app, os.Stdin)
			})
		},
	}.ToCobra()
}

func runPlay(ctx context.Context, params *PlayParams, app *App, stdin io.Reader) error {
	profile := app.Config.Profile()
	if params.WPM > 0 {
		profile.Unit = generator.UnitForWPM(params.WPM)
	}
	if params.Frequency > 0 {
		profile.Frequency = params.Frequency
	}
	player, err := app.Renderer(profile)
	if err != nil {
		return err
	}

	return eachInput(params.Morse, stdin, func(morse string) error {
		if err := player.Play(ctx, morse); err != nil {
			return err
		}
		app.History.Add(record.PlayMorse, morse, "")
		return nil
	})
}
