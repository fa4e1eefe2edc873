package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/bankspace/internal/application/handlers"
	"github.com/ersonp/bankspace/internal/domain/entities"
)

func newExclusionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "exclusions",
		Short: "Manage items that are never reported",
		Long: `Exclusions are a comma separated list of item ids or item names.
Names are matched ignoring case and spaces.`,
		RunE: runExclusionsShow,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the exclusion list",
			Args:  cobra.NoArgs,
			RunE:  runExclusionsShow,
		},
		&cobra.Command{
			Use:   "set TEXT",
			Short: "Replace the exclusion list",
			Args:  cobra.MaximumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				text := strings.Join(args, "")
				return withDeps(cmd.Context(), func(deps *Deps) error {
					view, err := deps.Exclusion.HandleSet(cmd.Context(), text)
					if err != nil {
						return err
					}
					printExclusions(view)
					return nil
				})
			},
		},
		newExclusionEditCmd("flag", "Exclude an item", (*handlers.ExclusionHandler).HandleFlag),
		newExclusionEditCmd("unflag", "Stop excluding an item", (*handlers.ExclusionHandler).HandleUnflag),
		newExclusionEditCmd("toggle", "Flip whether an item is excluded", (*handlers.ExclusionHandler).HandleToggle),
	)

	return cmd
}

// exclusionEdit is one of the ExclusionHandler single-item edits.
type exclusionEdit func(h *handlers.ExclusionHandler, ctx context.Context, itemID int) (entities.ExclusionChange, error)

func newExclusionEditCmd(use, short string, edit exclusionEdit) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ITEM_ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			return withDeps(cmd.Context(), func(deps *Deps) error {
				change, err := edit(deps.Exclusion, cmd.Context(), itemID)
				if err != nil {
					return err
				}
				fmt.Println(formatChange(change))
				return nil
			})
		},
	}
}

func runExclusionsShow(cmd *cobra.Command, args []string) error {
	return withDeps(cmd.Context(), func(deps *Deps) error {
		printExclusions(deps.Exclusion.HandleShow(cmd.Context()))
		return nil
	})
}

func printExclusions(view *handlers.ExclusionView) {
	if view.Text == "" {
		fmt.Println("No exclusions.")
		return
	}

	fmt.Printf("Text: %s\n", view.Text)
	for _, entry := range view.Entries {
		name := entry.Name
		if name == "" {
			name = "(not storable)"
		}
		fmt.Printf("  %d\t%s\n", entry.ItemID, name)
	}
	if len(view.Unresolved) > 0 {
		fmt.Printf("Unmatched: %s\n", strings.Join(view.Unresolved, ", "))
	}
}

func formatChange(change entities.ExclusionChange) string {
	name := change.Name
	if name == "" {
		name = fmt.Sprint(change.ItemID)
	}
	if change.Excluded {
		return fmt.Sprintf("Excluded %s", name)
	}
	return fmt.Sprintf("Included %s", name)
}
