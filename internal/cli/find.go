package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"libracat/internal/clients"
)

// NewFindCommand creates the "find" command, which looks up an item by
// exact title. Matching is case-insensitive.
func NewFindCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "find <title>",
		Short: "Find an item by exact title (case-insensitive)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clients.NewCatalogClient(serverAddr)
			view, err := client.FindByTitle(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("find item: %w", err)
			}
			if view == nil {
				fmt.Printf("No item titled %q\n", args[0])
				return nil
			}

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(view)
			}
			fmt.Printf("%-10s %s\n", view.Type, view.Info)
			return nil
		},
	}
}
