package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/bankspace/internal/domain/entities"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent scan results for the profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(deps *Deps) error {
				scans, err := deps.History.Handle(cmd.Context(), limit)
				if err != nil {
					return err
				}

				if len(scans) == 0 {
					fmt.Printf("No scans recorded for profile %q.\n", deps.Profile)
					return nil
				}

				return printHistory(cmd.OutOrStdout(), scans)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", DefaultHistoryLimit, "Maximum number of scans to show")

	return cmd
}

// printHistory lists scans with the number of bank slots each could free.
func printHistory(w io.Writer, scans []entities.ScanRecord) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tFREEABLE\tIDS")
	fmt.Fprintln(tw, "----\t--------\t---")
	for _, scan := range scans {
		fmt.Fprintf(tw, "%s\t%d\t%s\n",
			scan.CreatedAt.Local().Format(time.DateTime),
			scan.FreeableSlots,
			formatIDs(scan.ItemIDs, 8))
	}
	return tw.Flush()
}

// formatIDs joins up to limit ids, noting how many were left out.
func formatIDs(ids []int, limit int) string {
	var b strings.Builder
	for i, id := range ids {
		if i == limit {
			fmt.Fprintf(&b, ", ... (+%d)", len(ids)-limit)
			break
		}
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(id))
	}
	return b.String()
}
