package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/aretw0/copse"
	httpAdapter "github.com/aretw0/copse/internal/adapters/http"
	"github.com/aretw0/copse/internal/logging"
	"github.com/aretw0/copse/pkg/observability"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <tree.yaml>",
	Short: "Run a behavior tree to completion",
	Long:  `Loads a tree definition, builds it against the builtin node types and ticks it until the root reaches a terminal status.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		level, _ := cmd.Flags().GetString("log-level")
		tickRate, _ := cmd.Flags().GetDuration("tick-rate")
		serveAddr, _ := cmd.Flags().GetString("serve")

		logger := logging.New(logging.ParseLevel(level))

		promReg := prometheus.NewRegistry()
		metrics := observability.NewMetrics(promReg)

		tree, err := copse.Load(args[0],
			copse.WithLogger(logger),
			copse.WithTickRate(tickRate),
			copse.WithLifecycleHooks(metrics.Hooks()),
		)
		if err != nil {
			fmt.Printf("Error loading tree: %v\n", err)
			os.Exit(1)
		}

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer cancel()

		if serveAddr != "" {
			handler := httpAdapter.NewHandler(tree.Root, promReg)
			srv := &http.Server{Addr: serveAddr, Handler: handler}
			go func() {
				fmt.Printf("Introspection server on %s\n", serveAddr)
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					fmt.Printf("Server error: %v\n", err)
				}
			}()
			defer srv.Close()
		}

		status, err := tree.Run(ctx)
		if err != nil {
			fmt.Printf("Run interrupted: %v (status %s)\n", err, status)
			os.Exit(1)
		}

		fmt.Printf("Tree %q finished: %s\n", tree.Name, status)
		if !status.IsCompleted() {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Duration("tick-rate", 50*time.Millisecond, "Delay between tree cycles")
	runCmd.Flags().String("serve", "", "Serve tree state and metrics on this address while running (e.g. :8080)")
}
