package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the copse version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("copse %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
