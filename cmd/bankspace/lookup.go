package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newLookupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup ITEM_ID",
		Short: "Show the storage location of an item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseItemID(args[0])
			if err != nil {
				return err
			}

			return withDeps(cmd.Context(), func(deps *Deps) error {
				item, ok := deps.Catalog.Item(itemID)
				if !ok {
					fmt.Printf("Item %d is not storable in any location.\n", itemID)
					return nil
				}

				location, _ := deps.Tracker.LocationName(itemID)
				fmt.Printf("%d\t%s\n", item.ItemID, item.Name)
				fmt.Printf("Location: %s\n", location)
				fmt.Printf("Best in slot: %t\n", item.IsBestInSlot)
				fmt.Printf("Excluded: %t\n", deps.Tracker.IsExcluded(itemID))
				return nil
			})
		},
	}
}

func parseItemID(arg string) (int, error) {
	itemID, err := strconv.Atoi(arg)
	if err != nil || itemID < 0 {
		return 0, fmt.Errorf("invalid item id %q", arg)
	}
	return itemID, nil
}
