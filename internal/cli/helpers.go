package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/faizmokh/restoran/internal/restaurant"
)

func formatEntry(entry restaurant.Entry) string {
	name := entry.Name
	if name == "" {
		name = "(unnamed)"
	}
	return fmt.Sprintf("#%d %s (rating %d)", entry.ID, name, entry.Rating)
}

func printEntries(cmd *cobra.Command, entries []restaurant.Entry) {
	out := cmd.OutOrStdout()
	for _, entry := range entries {
		fmt.Fprintln(out, formatEntry(entry))
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
