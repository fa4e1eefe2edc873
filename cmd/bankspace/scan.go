package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ersonp/bankspace/internal/application/handlers"
	"github.com/ersonp/bankspace/internal/domain/entities"
	"github.com/ersonp/bankspace/internal/infrastructure/parsers"
)

func newScanCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "scan FILE",
		Short: "Scan a bank snapshot for items that could be stored elsewhere",
		Long: `Reads a bank snapshot (JSON or CSV) and lists every owned item that has a
home in an enabled storage location. Use "-" to read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, args[0], format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Snapshot format: json or csv (default: from file extension)")

	return cmd
}

func runScan(cmd *cobra.Command, path, format string) error {
	slots, err := readSnapshot(cmd.InOrStdin(), path, format)
	if err != nil {
		return err
	}

	return withDeps(cmd.Context(), func(deps *Deps) error {
		result, err := deps.Scan.Handle(cmd.Context(), slots)
		if err != nil {
			return err
		}
		printScanResult(cmd.OutOrStdout(), result)
		return nil
	})
}

// readSnapshot parses the bank snapshot at path, or stdin when path is "-".
func readSnapshot(stdin io.Reader, path, format string) ([]entities.BankSlot, error) {
	parser, err := snapshotParser(path, format)
	if err != nil {
		return nil, err
	}

	if path == "-" {
		return parser.Parse(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	slots, err := parser.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return slots, nil
}

func snapshotParser(path, format string) (parsers.Parser, error) {
	if format != "" {
		if !slices.Contains(validFormats, strings.ToLower(format)) {
			return nil, fmt.Errorf("invalid format %q (valid: %s)", format, strings.Join(validFormats, ", "))
		}
		return parsers.ForFormat(format), nil
	}

	if path == "-" {
		return nil, fmt.Errorf("--format is required when reading from stdin (valid: %s)", strings.Join(validFormats, ", "))
	}

	parser := parsers.ForFile(path)
	if parser == nil {
		return nil, fmt.Errorf("cannot detect format of %s, use --format", path)
	}
	return parser, nil
}

func printScanResult(w io.Writer, result *handlers.ScanResult) {
	fmt.Fprintf(w, "Scanned %d slots (%d distinct items).\n", result.Slots, result.Distinct)
	printWastedItems(w, result.Items)
}

func printWastedItems(w io.Writer, items []handlers.ScanItem) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items found that could be moved to a storage location.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tITEM\tQTY\tLOCATION")
	fmt.Fprintln(tw, "--\t----\t---\t--------")
	for _, item := range items {
		name := item.Item.Name
		if item.Item.IsBestInSlot {
			name += " (bis)"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", item.Item.ItemID, name, item.Quantity, item.Location)
	}
	tw.Flush()

	fmt.Fprintf(w, "\n%d bank slots could be freed.\n", len(items))
}
