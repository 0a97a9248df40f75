package main

import (
	"runtime/debug"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/gucio32/morsekit/internal/cli"
	"github.com/spf13/cobra"
)

func main() {
	boa.CmdT[boa.NoParams]{
		Use:     "morse",
		Short:   "International Morse Code converter and player",
		Version: appVersion(),
		SubCmds: []*cobra.Command{
			cli.EncodeCmd(),
			cli.DecodeCmd(),
			cli.PlayCmd(),
			cli.ShellCmd(),
			cli.PracticeCmd(),
			cli.VariantsCmd(),
			cli.SaveCmd(),
			cli.LoadCmd(),
		},
	}.Run()
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-(no build info)"
	}
	if bi.Main.Version == "" {
		return "unknown-(no version)"
	}
	return bi.Main.Version
}
