package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ersonp/bankspace/internal/application/handlers"
)

func newSessionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "session",
		Short: "Interactive mode that keeps results current as the bank and settings change",
		Long: `Starts an interactive session. Load bank snapshots, toggle storage
locations and edit exclusions; the wasted-space list is recomputed after
every change.`,
		Args: cobra.NoArgs,
		RunE: runSession,
	}
}

func runSession(cmd *cobra.Command, args []string) error {
	return withDeps(cmd.Context(), func(deps *Deps) error {
		s := &sessionState{
			deps: deps,
			out:  cmd.OutOrStdout(),
		}
		return s.run(cmd.Context(), cmd.InOrStdin())
	})
}

type sessionState struct {
	deps *Deps
	out  io.Writer
}

func (s *sessionState) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintf(s.out, "Bankspace session (profile %q). Type 'help' for commands.\n", s.deps.Profile)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")

		if !scanner.Scan() {
			break
		}

		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out, "\nExiting...")
			return nil
		default:
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		if exit := s.handleCommand(ctx, strings.ToLower(fields[0]), fields[1:]); exit {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
	}

	return scanner.Err()
}

// handleCommand runs one session command. Returns true when the session should end.
func (s *sessionState) handleCommand(ctx context.Context, name string, args []string) bool {
	var err error

	switch name {
	case "quit", "exit":
		return true
	case "help":
		s.showHelp()
	case "bank":
		err = s.loadBank(ctx, args)
	case "show":
		s.showResult()
	case "enable", "disable":
		err = s.setLocations(ctx, args, name == "enable")
	case "bis":
		err = s.setBestInSlotOnly(ctx, args)
	case "exclude":
		err = s.setExclusions(ctx, strings.Join(args, " "))
	case "flag", "unflag", "toggle":
		err = s.editExclusion(ctx, name, args)
	default:
		fmt.Fprintf(s.out, "Unknown command %q. Type 'help' for commands.\n", name)
	}

	if err != nil {
		s.deps.Logger.Debug("session command failed", zap.String("command", name), zap.Error(err))
		fmt.Fprintf(s.out, "Error: %v\n", err)
	}
	return false
}

func (s *sessionState) showHelp() {
	fmt.Fprintln(s.out, "Commands:")
	fmt.Fprintln(s.out, "  bank FILE [FORMAT]  - Load a bank snapshot (json or csv)")
	fmt.Fprintln(s.out, "  show                - Show the current result")
	fmt.Fprintln(s.out, "  enable KEY...       - Enable storage locations")
	fmt.Fprintln(s.out, "  disable KEY...      - Disable storage locations")
	fmt.Fprintln(s.out, "  bis on|off          - Hide or show best-in-slot items")
	fmt.Fprintln(s.out, "  exclude TEXT        - Replace the exclusion list")
	fmt.Fprintln(s.out, "  flag ID             - Exclude an item")
	fmt.Fprintln(s.out, "  unflag ID           - Stop excluding an item")
	fmt.Fprintln(s.out, "  toggle ID           - Flip an item's exclusion")
	fmt.Fprintln(s.out, "  quit                - Exit interactive mode")
}

func (s *sessionState) loadBank(ctx context.Context, args []string) error {
	if len(args) == 0 || len(args) > 2 {
		return errors.New("usage: bank FILE [FORMAT]")
	}

	if args[0] == "-" {
		return errors.New("snapshots cannot be read from stdin during a session")
	}

	var format string
	if len(args) == 2 {
		format = args[1]
	}

	slots, err := readSnapshot(nil, args[0], format)
	if err != nil {
		return err
	}

	result, err := s.deps.Scan.Handle(ctx, slots)
	if err != nil {
		return err
	}
	printScanResult(s.out, result)
	return nil
}

func (s *sessionState) showResult() {
	owned := s.deps.Tracker.Owned()
	var items []handlers.ScanItem
	for _, item := range s.deps.Tracker.Result() {
		location, _ := s.deps.Tracker.LocationName(item.ItemID)
		items = append(items, handlers.ScanItem{
			Item:     item,
			Location: location,
			Quantity: owned[item.ItemID],
		})
	}
	printWastedItems(s.out, items)
}

func (s *sessionState) setLocations(ctx context.Context, keys []string, enabled bool) error {
	if len(keys) == 0 {
		return errors.New("at least one location key is required")
	}
	if err := s.deps.Location.HandleSetEnabled(ctx, keys, enabled); err != nil {
		return err
	}
	return s.recompute(ctx)
}

func (s *sessionState) setBestInSlotOnly(ctx context.Context, args []string) error {
	if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
		return errors.New("usage: bis on|off")
	}
	if err := s.deps.Location.HandleSetBestInSlotOnly(ctx, args[0] == "on"); err != nil {
		return err
	}
	return s.recompute(ctx)
}

func (s *sessionState) setExclusions(ctx context.Context, text string) error {
	view, err := s.deps.Exclusion.HandleSet(ctx, text)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Exclusions: %s\n", view.Text)
	s.showResult()
	return nil
}

func (s *sessionState) editExclusion(ctx context.Context, name string, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: %s ID", name)
	}
	itemID, err := parseItemID(args[0])
	if err != nil {
		return err
	}

	edit := map[string]exclusionEdit{
		"flag":   (*handlers.ExclusionHandler).HandleFlag,
		"unflag": (*handlers.ExclusionHandler).HandleUnflag,
		"toggle": (*handlers.ExclusionHandler).HandleToggle,
	}[name]

	change, err := edit(s.deps.Exclusion, ctx, itemID)
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, formatChange(change))
	s.showResult()
	return nil
}

func (s *sessionState) recompute(ctx context.Context) error {
	if _, err := s.deps.Tracker.OnConfigChanged(ctx); err != nil {
		return err
	}
	s.showResult()
	return nil
}
