// internal/catalog/catalogue.go
package catalog

import (
	"strings"
	"sync"
)

// Catalogue is an ordered in-memory collection of LibraryItem. Insertion
// order is preserved and duplicates by id are permitted; id uniqueness is a
// caller discipline, not enforced here.
//
// A single RWMutex guards the sequence. Every operation is a synchronous
// in-memory transformation with no failure surface: lookups report absence
// through booleans and empty slices, never errors.
type Catalogue struct {
	mu    sync.RWMutex
	items []LibraryItem
}

// New creates an empty catalogue. Composition roots construct one catalogue
// and pass it to whatever needs it; tests construct a fresh one each.
func New() *Catalogue {
	return &Catalogue{}
}

var (
	defaultOnce sync.Once
	defaultCat  *Catalogue
)

// Default returns the process-wide catalogue, constructing it on first call.
// Every call returns the identical instance. Prefer New plus explicit
// passing; Default exists for callers that need a shared ambient instance.
func Default() *Catalogue {
	defaultOnce.Do(func() {
		defaultCat = New()
	})
	return defaultCat
}

// AddItem appends item to the end of the sequence. No uniqueness check is
// performed on id or title.
func (c *Catalogue) AddItem(item LibraryItem) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, item)
}

// RemoveItem deletes the first item whose id equals id, preserving the
// relative order of the remaining items. It returns false, leaving the
// catalogue unchanged, when no item matches.
func (c *Catalogue) RemoveItem(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.ID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// FindItemByTitle returns the first item whose title matches title,
// case-insensitively and exactly. The boolean reports whether a match was
// found.
func (c *Catalogue) FindItemByTitle(title string) (LibraryItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if strings.EqualFold(item.Title(), title) {
			return item, true
		}
	}
	return nil, false
}

// FindItemsByType returns all items of the given type in catalogue order.
// The result is empty when none match.
func (c *Catalogue) FindItemsByType(t ItemType) []LibraryItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var matches []LibraryItem
	for _, item := range c.items {
		if item.Type() == t {
			matches = append(matches, item)
		}
	}
	return matches
}

// ItemCount returns the current number of items.
func (c *Catalogue) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// AllItems returns a copy of the sequence. Mutating the returned slice never
// affects the catalogue.
func (c *Catalogue) AllItems() []LibraryItem {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]LibraryItem, len(c.items))
	copy(out, c.items)
	return out
}

// Statistics groups the current items by type. ByType holds only types with
// at least one item, and its counts always sum to Total.
func (c *Catalogue) Statistics() Statistics {
	c.mu.RLock()
	defer c.mu.RUnlock()
	stats := Statistics{
		Total:  len(c.items),
		ByType: make(map[ItemType]int),
	}
	for _, item := range c.items {
		stats.ByType[item.Type()]++
	}
	return stats
}
