package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/faizmokh/restoran/internal/restaurant"
)

func newListCommand() *cobra.Command {
	var (
		minRating  int
		outputJSON bool
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in restaurants.",
		Long:  "list prints the restaurants every editor session starts with, optionally filtered by a minimum rating.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := restaurant.SeedEntries()
			if cmd.Flags().Changed("min-rating") {
				filtered, err := restaurant.FilterByMinRating(entries, minRating)
				if err != nil {
					if errors.Is(err, restaurant.ErrNoMatches) {
						if outputJSON {
							return printJSON(cmd, []restaurant.Entry{})
						}
						fmt.Fprintf(cmd.OutOrStdout(), "No restaurants found with rating %d or above\n", minRating)
						return nil
					}
					return err
				}
				entries = filtered
			}

			if outputJSON {
				return printJSON(cmd, entries)
			}
			printEntries(cmd, entries)
			return nil
		},
	}

	cmd.Flags().IntVar(&minRating, "min-rating", 0, "Only show restaurants rated at least this value")
	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit entries as JSON")

	return cmd
}

func newShowCommand() *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a single built-in restaurant by id.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("parse id %q: %w", args[0], restaurant.ErrInvalidID)
			}

			entry, err := restaurant.FindByID(restaurant.SeedEntries(), id)
			if err != nil {
				return fmt.Errorf("show %d: %w", id, err)
			}

			if outputJSON {
				return printJSON(cmd, entry)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatEntry(entry))
			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false, "Emit the entry as JSON")

	return cmd
}
