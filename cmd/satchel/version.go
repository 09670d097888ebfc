package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is the CLI version, overridable at build time with
// -ldflags "-X main.version=...".
var version = "0.1.0"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the satchel version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "satchel version %s\n", version)
		},
	}
}
