package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/bankspace/internal/application/handlers"
	"github.com/ersonp/bankspace/internal/domain/ports"
	"github.com/ersonp/bankspace/internal/infrastructure/config"
	"github.com/ersonp/bankspace/internal/infrastructure/settingsdb/sqlite"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize bankspace in the current directory",
		Long:  "Creates a .bankspace directory with default configuration and the default profile database.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	initHandler := handlers.NewInitHandler(openSQLiteStore)
	result, err := initHandler.Handle(cmd.Context(), cwd)
	if err != nil {
		return err
	}

	fmt.Printf("Created %s\n", result.ConfigPath)
	fmt.Printf("Created profile %q database: %s\n", config.DefaultProfile, result.DatabasePath)
	fmt.Println("Bankspace initialized successfully!")

	return nil
}

func openSQLiteStore(path string) (ports.SettingsStore, error) {
	return sqlite.NewRepository(config.SQLiteConfig{Path: path})
}
