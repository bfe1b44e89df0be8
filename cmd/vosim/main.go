// Package main implements the vosim CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "vosim",
	Short:         "vosim - virtual onsite interview simulator",
	SilenceUsage:  true,
	SilenceErrors: false,
}
