package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"libracat/internal/catalog"
	"libracat/internal/clients"
)

// addFlags holds the flag values for the add command.
type addFlags struct {
	id            int
	title         string
	author        string
	isbn          string
	narrator      string
	lengthMinutes int
}

// NewAddCommand creates the "add" command, which registers a new book or
// audio book in the catalogue.
func NewAddCommand() *cobra.Command {
	flags := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add <book|audiobook>",
		Short: "Add an item to the catalogue",
		Long: `Add a book or audio book to the catalogue.

Examples:
  libracat add book --id 1 --title "The Great Gatsby" --author "F. Scott Fitzgerald" --isbn 9780743273565
  libracat add audiobook --id 3 --title "Dune" --narrator "Scott Brick" --length 1266`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, args[0], flags)
		},
	}

	cmd.Flags().IntVar(&flags.id, "id", 0, "Item id (caller-chosen integer)")
	cmd.Flags().StringVar(&flags.title, "title", "", "Item title")
	cmd.Flags().StringVar(&flags.author, "author", "", "Author (books)")
	cmd.Flags().StringVar(&flags.isbn, "isbn", "", "ISBN (books)")
	cmd.Flags().StringVar(&flags.narrator, "narrator", "", "Narrator (audio books)")
	cmd.Flags().IntVar(&flags.lengthMinutes, "length", 0, "Length in minutes (audio books)")
	cmd.MarkFlagRequired("id")
	cmd.MarkFlagRequired("title")

	return cmd
}

func runAdd(cmd *cobra.Command, kind string, flags *addFlags) error {
	itemType, err := catalog.ParseItemType(kind)
	if err != nil {
		return err
	}

	client := clients.NewCatalogClient(serverAddr)
	view, err := client.AddItem(cmd.Context(), catalog.AddItemRequest{
		Type:          itemType.String(),
		ID:            flags.id,
		Title:         flags.title,
		Author:        flags.author,
		ISBN:          flags.isbn,
		Narrator:      flags.narrator,
		LengthMinutes: flags.lengthMinutes,
	})
	if err != nil {
		return fmt.Errorf("add item: %w", err)
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(view)
	}
	fmt.Printf("Added %s %s\n", view.Type, view.Info)
	return nil
}
