package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"libracat/internal/catalog"
	"libracat/internal/clients"
)

// NewStatsCommand creates the "stats" command, which prints item counts
// grouped by type plus the number of recorded mutations.
func NewStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalogue statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clients.NewCatalogClient(serverAddr)
			stats, err := client.Stats(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch stats: %w", err)
			}

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(stats)
			}

			fmt.Printf("Total items: %d\n", stats.Total)

			// Sort types for stable output.
			types := make([]catalog.ItemType, 0, len(stats.ByType))
			for t := range stats.ByType {
				types = append(types, t)
			}
			sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
			for _, t := range types {
				fmt.Printf("  %-10s %d\n", t, stats.ByType[t])
			}

			fmt.Printf("Changes recorded: %d\n", stats.Changes)
			return nil
		},
	}
}
