package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/bankspace/internal/infrastructure/config"
)

func newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "Manage profiles",
		RunE:  runProfilesList,
	}

	cmd.AddCommand(
		newProfilesListCmd(),
		newProfilesCreateCmd(),
		newProfilesDeleteCmd(),
	)

	return cmd
}

func newProfilesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all profiles",
		Args:  cobra.NoArgs,
		RunE:  runProfilesList,
	}
}

func runProfilesList(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if !config.Exists(cwd) {
		return fmt.Errorf("bankspace is not initialized in %s (run 'bankspace init' first)", cwd)
	}

	profiles, err := config.LoadProfiles(cwd)
	if err != nil {
		return err
	}

	names := profiles.Names()
	if len(names) == 0 {
		fmt.Println("No profiles configured.")
		fmt.Println("Use 'bankspace profiles create NAME' to create a profile.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t-----------")
	for _, name := range names {
		entry, _ := profiles.Get(name)
		fmt.Fprintf(tw, "%s\t%s\n", name, entry.Description)
	}
	return tw.Flush()
}

func newProfilesCreateCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a new profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			dbPath, err := createProfile(cmd.Context(), cwd, args[0], description)
			if err != nil {
				return err
			}

			fmt.Printf("Created profile %q (database: %s)\n", args[0], dbPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Profile description")

	return cmd
}

func newProfilesDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a profile and its settings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("getting current directory: %w", err)
			}

			if err := deleteProfile(cwd, args[0]); err != nil {
				return err
			}

			fmt.Printf("Deleted profile %q\n", args[0])
			return nil
		},
	}
}

// createProfile registers a profile and creates its settings database.
// It returns the database path.
func createProfile(ctx context.Context, basePath, name, description string) (string, error) {
	cfg, err := config.Load(basePath)
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}

	profiles, err := config.LoadProfiles(basePath)
	if err != nil {
		return "", err
	}

	if profiles.Exists(name) {
		return "", fmt.Errorf("profile %q already exists", name)
	}
	for _, existing := range profiles.Names() {
		if config.SanitizeProfileName(existing) == config.SanitizeProfileName(name) {
			return "", fmt.Errorf("profile %q would share a data directory with %q", name, existing)
		}
	}

	dbPath := cfg.DatabasePath(basePath, name)
	store, err := openSQLiteStore(dbPath)
	if err != nil {
		return "", fmt.Errorf("creating profile database: %w", err)
	}
	defer store.Close()

	if err := store.EnsureSchema(ctx); err != nil {
		return "", fmt.Errorf("creating profile schema: %w", err)
	}

	profiles.Add(name, config.ProfileEntry{Description: description})
	if err := profiles.Save(basePath); err != nil {
		return "", err
	}

	return dbPath, nil
}

// deleteProfile unregisters a profile and removes its directory.
// The default profile cannot be deleted.
func deleteProfile(basePath, name string) error {
	if name == config.DefaultProfile {
		return fmt.Errorf("the %q profile cannot be deleted", config.DefaultProfile)
	}

	profiles, err := config.LoadProfiles(basePath)
	if err != nil {
		return err
	}

	if !profiles.Exists(name) {
		return fmt.Errorf("profile %q not found", name)
	}

	profiles.Remove(name)
	if err := profiles.Save(basePath); err != nil {
		return err
	}

	if err := os.RemoveAll(config.ProfileDir(basePath, name)); err != nil {
		return fmt.Errorf("removing profile data: %w", err)
	}

	return nil
}
