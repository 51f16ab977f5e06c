// internal/catalog/implementation.go
package catalog

import (
	"context"
	"encoding/json"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"libracat/internal/journal"
)

// catalogueStream is the journal stream all catalogue mutations append to.
const catalogueStream = "catalogue"

// service implements the Service interface.
type service struct {
	cat    *Catalogue
	jnl    *journal.Journal
	tracer trace.Tracer
}

// NewService creates a new catalogue service backed by cat, recording
// mutations to jnl.
func NewService(cat *Catalogue, jnl *journal.Journal) Service {
	return &service{
		cat:    cat,
		jnl:    jnl,
		tracer: otel.Tracer("libracat/catalog"),
	}
}

// AddItem appends an item to the catalogue and records an ItemAdded event.
func (s *service) AddItem(ctx context.Context, item LibraryItem) error {
	ctx, span := s.tracer.Start(ctx, "catalog.add_item",
		trace.WithAttributes(
			attribute.Int("item.id", item.ID()),
			attribute.String("item.type", item.Type().String()),
		),
	)
	defer span.End()

	eventData := ItemAddedEvent{
		ID:    item.ID(),
		Type:  item.Type(),
		Title: item.Title(),
	}
	jsonData, err := json.Marshal(eventData)
	if err != nil {
		return fmt.Errorf("failed to marshal event data: %w", err)
	}

	event := journal.Event{
		EventType: "ItemAdded",
		Data:      jsonData,
	}
	if err := s.jnl.AppendNext(ctx, catalogueStream, event); err != nil {
		return fmt.Errorf("failed to append event: %w", err)
	}

	s.cat.AddItem(item)
	return nil
}

// RemoveItem removes the first item with the given id. The boolean reports
// whether anything was removed; an unknown id is a normal outcome, not an
// error.
func (s *service) RemoveItem(ctx context.Context, id int) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.remove_item",
		trace.WithAttributes(attribute.Int("item.id", id)),
	)
	defer span.End()

	// Marshal before touching the catalogue so an error here leaves no
	// partial state behind.
	jsonData, err := json.Marshal(ItemRemovedEvent{ID: id})
	if err != nil {
		return false, fmt.Errorf("failed to marshal event data: %w", err)
	}

	if !s.cat.RemoveItem(id) {
		span.SetAttributes(attribute.Bool("item.found", false))
		return false, nil
	}

	event := journal.Event{
		EventType: "ItemRemoved",
		Data:      jsonData,
	}
	if err := s.jnl.AppendNext(ctx, catalogueStream, event); err != nil {
		return true, fmt.Errorf("failed to append event: %w", err)
	}

	return true, nil
}

// FindByTitle looks up an item by exact, case-insensitive title.
func (s *service) FindByTitle(ctx context.Context, title string) (LibraryItem, bool, error) {
	_, span := s.tracer.Start(ctx, "catalog.find_by_title")
	defer span.End()

	item, ok := s.cat.FindItemByTitle(title)
	span.SetAttributes(attribute.Bool("item.found", ok))
	return item, ok, nil
}

// FindByType returns all items of the given type in catalogue order.
func (s *service) FindByType(ctx context.Context, t ItemType) ([]LibraryItem, error) {
	_, span := s.tracer.Start(ctx, "catalog.find_by_type",
		trace.WithAttributes(attribute.String("item.type", t.String())),
	)
	defer span.End()

	items := s.cat.FindItemsByType(t)
	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

// List returns a copy of the full catalogue contents.
func (s *service) List(ctx context.Context) ([]LibraryItem, error) {
	_, span := s.tracer.Start(ctx, "catalog.list")
	defer span.End()

	items := s.cat.AllItems()
	span.SetAttributes(attribute.Int("result.count", len(items)))
	return items, nil
}

// Stats returns the current catalogue statistics.
func (s *service) Stats(ctx context.Context) (Statistics, error) {
	_, span := s.tracer.Start(ctx, "catalog.stats")
	defer span.End()

	stats := s.cat.Statistics()
	span.SetAttributes(attribute.Int("items.total", stats.Total))
	return stats, nil
}

// History returns all recorded catalogue mutations in order.
func (s *service) History(ctx context.Context) ([]journal.Event, error) {
	ctx, span := s.tracer.Start(ctx, "catalog.history")
	defer span.End()

	events, err := s.jnl.Read(ctx, catalogueStream)
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return events, nil
}
