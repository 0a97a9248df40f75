package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gucio32/morsekit/internal/shell"
	"github.com/gucio32/morsekit/pkg/history"
	"github.com/gucio32/morsekit/pkg/record"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type ShellParams struct {
	Variant string `optional:"true" help:"Morse code variant to use (default from config)."`
	Save    string `short:"s" optional:"true" help:"Save the last conversion to this file on exit (.json, .yaml or .yml)."`
	Summary bool   `help:"Print the conversions of the session on exit." default:"false"`
	Config  string `optional:"true" help:"Path to a YAML config file."`
}

func ShellCmd() *cobra.Command {
	return boa.CmdT[ShellParams]{
		Use:         "shell",
		Short:       "Interactive converter menu",
		Long:        "Start the interactive menu to convert text and Morse code and play the result.",
		ParamEnrich: DefaultParamEnricher(),
		RunFunc: func(params *ShellParams, cmd *cobra.Command, args []string) {
			run(params.Config, func(ctx context.Context, app *App) error {
				return runShell(ctx, params, app, os.Stdin, os.Stdout)
			})
		},
	}.ToCobra()
}

func runShell(ctx context.Context, params *ShellParams, app *App, stdin io.Reader, stdout io.Writer) error {
	conv, err := app.Converter(params.Variant)
	if err != nil {
		return err
	}
	player, err := app.Player()
	if err != nil {
		return err
	}

	sh := shell.New(conv, player, stdin, stdout,
		shell.WithHistory(app.History),
		shell.WithLogger(app.Log.Logger))
	if err := sh.Run(ctx); err != nil {
		return err
	}

	if params.Summary {
		renderHistory(stdout, app.History.List())
	}
	if params.Save != "" {
		last, ok := app.History.Last()
		if !ok {
			fmt.Fprintln(stdout, "Nothing to save")
			return nil
		}
		if err := record.Save(params.Save, last.Record()); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "Saved last conversion to %s\n", params.Save)
	}
	return nil
}

func renderHistory(w io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault
	t.AppendHeader(table.Row{"Time", "Type", "Input", "Output"})
	for _, e := range entries {
		t.AppendRow(table.Row{e.At.Format("15:04:05"), e.Type, e.Input, e.Output})
	}
	t.Render()
}
