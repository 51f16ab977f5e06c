package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"libracat/internal/clients"
)

// NewHistoryCommand creates the "history" command, which prints every
// mutation recorded since catalogd started.
func NewHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show recorded catalogue mutations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := clients.NewCatalogClient(serverAddr)
			events, err := client.History(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch history: %w", err)
			}

			if jsonOutput {
				return json.NewEncoder(os.Stdout).Encode(events)
			}
			if len(events) == 0 {
				fmt.Println("No mutations recorded")
				return nil
			}
			for _, ev := range events {
				fmt.Printf("%4d  %-12s %s  %s\n", ev.Seq, ev.EventType, ev.RecordedAt.Format("15:04:05"), string(ev.Data))
			}
			return nil
		},
	}
}
