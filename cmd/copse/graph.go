package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/copse/internal/compiler"
	"github.com/aretw0/copse/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <tree.yaml>",
	Short: "Render a tree definition as a Mermaid diagram",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Printf("Error reading file: %v\n", err)
			os.Exit(1)
		}
		spec, err := compiler.Parse(data)
		if err != nil {
			fmt.Printf("Error parsing tree: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(graph.GenerateMermaid(spec))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
