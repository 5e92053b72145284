package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd wires the command tree. All cipher semantics live in the
// library packages; commands only parse flags and print results.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nigma",
		Short:         "Classical cipher toolkit",
		Long:          "nigma encodes, decodes and frequency-analyzes short messages\nwith classical (pre-modern, pedagogically weak) ciphers.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newEncodeCmd(),
		newDecodeCmd(),
		newAnalyzeCmd(),
	)

	return root
}
