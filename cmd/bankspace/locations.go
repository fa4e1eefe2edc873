package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newLocationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "Manage storage locations",
		RunE:  runLocationsList,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List storage locations and whether they are enabled",
			Args:  cobra.NoArgs,
			RunE:  runLocationsList,
		},
		&cobra.Command{
			Use:   "show KEY",
			Short: "List the items a storage location can hold",
			Args:  cobra.ExactArgs(1),
			RunE:  runLocationsShow,
		},
		newLocationsToggleCmd("enable", "Include storage locations in scans", true),
		newLocationsToggleCmd("disable", "Leave storage locations out of scans", false),
	)

	return cmd
}

func runLocationsList(cmd *cobra.Command, args []string) error {
	return withDeps(cmd.Context(), func(deps *Deps) error {
		view, err := deps.Location.HandleList(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "KEY\tNAME\tITEMS\tENABLED")
		fmt.Fprintln(tw, "---\t----\t-----\t-------")
		for _, status := range view.Locations {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n",
				status.Location.Key, status.Location.Name, len(status.Location.Items), yesNo(status.Enabled))
		}
		if err := tw.Flush(); err != nil {
			return err
		}

		fmt.Printf("\nBest-in-slot items hidden: %s\n", yesNo(view.BestInSlotOnly))
		return nil
	})
}

func runLocationsShow(cmd *cobra.Command, args []string) error {
	return withDeps(cmd.Context(), func(deps *Deps) error {
		location, ok := deps.Catalog.Location(args[0])
		if !ok {
			return fmt.Errorf("unknown storage location %q", args[0])
		}

		fmt.Printf("%s (%d items)\n", location.Name, len(location.Items))
		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tITEM\tBIS\tEXCLUDED")
		for _, item := range location.Items {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n",
				item.ItemID, item.Name, yesNo(item.IsBestInSlot), yesNo(deps.Tracker.IsExcluded(item.ItemID)))
		}
		return tw.Flush()
	})
}

func newLocationsToggleCmd(verb, short string, enabled bool) *cobra.Command {
	return &cobra.Command{
		Use:   verb + " KEY...",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				if err := deps.Location.HandleSetEnabled(cmd.Context(), args, enabled); err != nil {
					return err
				}
				for _, key := range args {
					fmt.Printf("%s: %sd\n", key, verb)
				}
				return nil
			})
		},
	}
}

func newBisOnlyCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "bis-only [on|off]",
		Short:     "Show or set whether best-in-slot items are left out of results",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				if len(args) == 0 {
					view, err := deps.Location.HandleList(cmd.Context())
					if err != nil {
						return err
					}
					fmt.Printf("bis-only: %s\n", onOff(view.BestInSlotOnly))
					return nil
				}

				enabled := args[0] == "on"
				if err := deps.Location.HandleSetBestInSlotOnly(cmd.Context(), enabled); err != nil {
					return err
				}
				fmt.Printf("bis-only: %s\n", onOff(enabled))
				return nil
			})
		},
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
