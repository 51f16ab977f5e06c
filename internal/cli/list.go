package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"libracat/internal/clients"
)

// listFlags holds the flag values for the list command.
type listFlags struct {
	// itemType filters the listing by discriminator ("book", "audiobook").
	// Empty lists everything.
	itemType string
}

// NewListCommand creates the "list" command, which prints the catalogue
// contents in insertion order.
func NewListCommand() *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogue items",
		Long: `List all catalogue items in insertion order.

Examples:
  libracat list
  libracat list --type book
  libracat list --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clients.NewCatalogClient(serverAddr)
			views, err := client.ListItems(cmd.Context(), flags.itemType)
			if err != nil {
				return fmt.Errorf("list items: %w", err)
			}

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(views)
			}
			if len(views) == 0 {
				fmt.Println("Catalogue is empty")
				return nil
			}
			for _, v := range views {
				fmt.Printf("%-10s %s\n", v.Type, v.Info)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.itemType, "type", "", "Filter by item type: book, audiobook")

	return cmd
}
