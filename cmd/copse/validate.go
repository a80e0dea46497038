package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/copse"
)

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate <tree.yaml>",
	Short: "Validate a tree definition",
	Long:  `Parses a tree definition and builds it against the builtin node types, reporting any shape or type errors without running it.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := copse.Load(args[0]); err != nil {
			fmt.Printf("Invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OK")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
