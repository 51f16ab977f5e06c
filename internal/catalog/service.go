// internal/catalog/service.go
package catalog

import (
	"context"

	"libracat/internal/journal"
)

// Service defines the interface for the catalogue service.
type Service interface {
	AddItem(ctx context.Context, item LibraryItem) error
	RemoveItem(ctx context.Context, id int) (bool, error)
	FindByTitle(ctx context.Context, title string) (LibraryItem, bool, error)
	FindByType(ctx context.Context, t ItemType) ([]LibraryItem, error)
	List(ctx context.Context) ([]LibraryItem, error)
	Stats(ctx context.Context) (Statistics, error)
	History(ctx context.Context) ([]journal.Event, error)
}
