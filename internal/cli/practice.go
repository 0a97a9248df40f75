package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gucio32/morsekit/pkg/generator"
	"github.com/gucio32/morsekit/pkg/learn"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

type PracticeParams struct {
	Lesson int    `short:"l" help:"Lesson number (1-4)." default:"1"`
	Words  int    `short:"n" help:"Number of words to play." default:"3"`
	Length int    `help:"Letters per word." default:"5"`
	WPM    int    `short:"w" help:"Character speed in words per minute." default:"20"`
	Tutor  bool   `short:"t" help:"Show the lesson letters and play the ones you type." default:"false"`
	Seed   int    `help:"Random seed for the words, 0 picks one from the clock." default:"0"`
	Config string `optional:"true" help:"Path to a YAML config file."`
}

func PracticeCmd() *cobra.Command {
	return boa.CmdT[PracticeParams]{
		Use:   "practice",
		Short: "Practice receiving Morse code",
		Long: `Play random words made of the lesson letters and score what you type.

Lessons send characters at full speed with widened gaps between characters
and words (Farnsworth timing).`,
		ParamEnrich: DefaultParamEnricher(),
		RunFunc: func(params *PracticeParams, cmd *cobra.Command, args []string) {
			run(params.Config, func(ctx context.Context, app *App) error {
				return runPractice(ctx, params, app, os.Stdin, os.Stdout)
			})
		},
	}.ToCobra()
}

func runPractice(ctx context.Context, params *PracticeParams, app *App, stdin io.Reader, stdout io.Writer) error {
	lesson, err := learn.GetLesson(params.Lesson)
	if err != nil {
		return err
	}
	conv, err := app.Converter("")
	if err != nil {
		return err
	}

	profile := lesson.Timing(app.Config.Profile())
	profile.Unit = generator.UnitForWPM(params.WPM)
	player, err := app.Renderer(profile)
	if err != nil {
		return err
	}

	if params.Tutor {
		return learn.Tutor(ctx, conv, player, lesson, stdin, stdout)
	}

	seed := uint64(params.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	words := learn.Words(rand.New(rand.NewSource(seed)), lesson, params.Words, params.Length)
	res, err := learn.Run(ctx, conv, player, words, stdin, stdout)
	if err != nil {
		return err
	}
	app.Log.Debug().Int("lesson", params.Lesson).Int("correct", res.Correct).Int("total", res.Total()).Msg("practice finished")
	return nil
}
