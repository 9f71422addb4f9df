package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/RedTeamPentesting/downpour/cmd/charsets"
	"github.com/RedTeamPentesting/downpour/cmd/count"
	"github.com/RedTeamPentesting/downpour/cmd/generate"
	"github.com/RedTeamPentesting/downpour/cmd/runs"
	"github.com/spf13/cobra"
)

var cmdRoot = &cobra.Command{
	Use:           "downpour COMMAND [options]",
	SilenceErrors: true,
	SilenceUsage:  true,
}

// version is set via -ldflags at build time.
var version = "compiled manually"

var cmdVersion = &cobra.Command{
	Use:   "version",
	Short: "Print the current version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("downpour %s\ncompiled with %v on %v\n", version, runtime.Version(), runtime.GOOS)
	},
}

func init() {
	cmdRoot.AddCommand(cmdVersion)

	generate.AddCommand(cmdRoot)
	count.AddCommand(cmdRoot)
	charsets.AddCommand(cmdRoot)
	runs.AddCommand(cmdRoot)

	setupHelp(cmdRoot)
}

func main() {
	err := cmdRoot.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
