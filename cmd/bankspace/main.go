// Package main provides the entry point for the bankspace CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ersonp/bankspace/internal/infrastructure/config"
)

var (
	version       = "0.1.0-dev"
	globalProfile string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := newRootCmd()
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bankspace",
		Short:         "Find bank items that could live in a storage location instead",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalProfile, "profile", "p", config.DefaultProfile, "Profile to operate on")

	rootCmd.AddCommand(
		newInitCmd(),
		newScanCmd(),
		newLocationsCmd(),
		newBisOnlyCmd(),
		newExclusionsCmd(),
		newLookupCmd(),
		newHistoryCmd(),
		newSessionCmd(),
		newProfilesCmd(),
	)

	return rootCmd
}
