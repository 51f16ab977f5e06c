package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"libracat/internal/clients"
)

// NewRemoveCommand creates the "remove" command, which deletes the first
// catalogue item with the given id.
func NewRemoveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an item from the catalogue by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}

			client := clients.NewCatalogClient(serverAddr)
			removed, err := client.RemoveItem(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("remove item: %w", err)
			}
			if !removed {
				fmt.Printf("No item with id %d\n", id)
				return nil
			}
			fmt.Printf("Removed item %d\n", id)
			return nil
		},
	}
}
