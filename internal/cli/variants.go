package cli

import (
	"context"
	"io"
	"os"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

type VariantsParams struct {
	Chart  string `optional:"true" help:"Print the code chart of this variant."`
	Config string `optional:"true" help:"Path to a YAML config file."`
}

func VariantsCmd() *cobra.Command {
	return boa.CmdT[VariantsParams]{
		Use:         "variants",
		Short:       "List available Morse code variants",
		Long:        "List the built-in Morse code variants and those loaded from variant_files in the config.",
		ParamEnrich: DefaultParamEnricher(),
		RunFunc: func(params *VariantsParams, cmd *cobra.Command, args []string) {
			run(params.Config, func(_ context.Context, app *App) error {
				return runVariants(params, app, os.Stdout)
			})
		},
	}.ToCobra()
}

func runVariants(params *VariantsParams, app *App, stdout io.Writer) error {
	t := table.NewWriter()
	t.SetOutputMirror(stdout)
	t.SetStyle(table.StyleLight)
	t.Style().Format.Header = text.FormatDefault

	if params.Chart != "" {
		tbl, err := app.Registry.Get(params.Chart)
		if err != nil {
			return err
		}
		t.AppendHeader(table.Row{"Character", "Code"})
		for _, r := range tbl.Chars() {
			code, _ := tbl.Code(r)
			t.AppendRow(table.Row{string(r), code})
		}
		t.Render()
		return nil
	}

	t.AppendHeader(table.Row{"Variant", "Characters", "Default"})
	for _, name := range app.Registry.Names() {
		tbl, err := app.Registry.Get(name)
		if err != nil {
			return err
		}
		def := ""
		if name == app.Config.Variant {
			def = "*"
		}
		t.AppendRow(table.Row{name, tbl.Len(), def})
	}
	t.Render()
	return nil
}
