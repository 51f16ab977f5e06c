package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCatalogue() *Catalogue {
	cat := New()
	cat.AddItem(NewBook(1, "The Great Gatsby", "F. Scott Fitzgerald", "9780743273565"))
	cat.AddItem(NewBook(2, "1984", "George Orwell", "9780451524935"))
	cat.AddItem(NewAudioBook(3, "Dune", "Scott Brick", 1266))
	return cat
}

func TestCatalogue_AddItem(t *testing.T) {
	cat := New()
	assert.Equal(t, 0, cat.ItemCount())

	cat.AddItem(NewBook(1, "Emma", "Jane Austen", ""))
	assert.Equal(t, 1, cat.ItemCount())

	// Duplicate ids are permitted; no dedup happens on add.
	cat.AddItem(NewBook(1, "Emma", "Jane Austen", ""))
	assert.Equal(t, 2, cat.ItemCount())
}

func TestCatalogue_RemoveItem(t *testing.T) {
	cat := seedCatalogue()

	removed := cat.RemoveItem(2)
	assert.True(t, removed)
	assert.Equal(t, 2, cat.ItemCount())

	_, found := cat.FindItemByTitle("1984")
	assert.False(t, found)

	// Remaining items keep their relative order.
	items := cat.AllItems()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID())
	assert.Equal(t, 3, items[1].ID())
}

func TestCatalogue_RemoveItem_UnknownID(t *testing.T) {
	cat := seedCatalogue()

	removed := cat.RemoveItem(99)
	assert.False(t, removed)
	assert.Equal(t, 3, cat.ItemCount())
}

func TestCatalogue_RemoveItem_FirstMatchOnly(t *testing.T) {
	cat := New()
	cat.AddItem(NewBook(1, "first", "a", ""))
	cat.AddItem(NewBook(1, "second", "b", ""))

	require.True(t, cat.RemoveItem(1))
	assert.Equal(t, 1, cat.ItemCount())

	item, found := cat.FindItemByTitle("second")
	require.True(t, found)
	assert.Equal(t, "second", item.Title())
}

func TestCatalogue_FindItemByTitle_CaseInsensitive(t *testing.T) {
	cat := seedCatalogue()

	for _, query := range []string{"The Great Gatsby", "the great gatsby", "THE GREAT GATSBY"} {
		item, found := cat.FindItemByTitle(query)
		require.True(t, found, "query %q", query)
		assert.Equal(t, 1, item.ID())
	}

	// Exact match only, no substring matching.
	_, found := cat.FindItemByTitle("Great Gatsby")
	assert.False(t, found)
}

func TestCatalogue_FindItemByTitle_FirstInInsertionOrder(t *testing.T) {
	cat := New()
	cat.AddItem(NewBook(10, "Dune", "Frank Herbert", ""))
	cat.AddItem(NewAudioBook(11, "dune", "Scott Brick", 1266))

	item, found := cat.FindItemByTitle("DUNE")
	require.True(t, found)
	assert.Equal(t, 10, item.ID())
}

func TestCatalogue_FindItemsByType(t *testing.T) {
	cat := seedCatalogue()

	books := cat.FindItemsByType(TypeBook)
	require.Len(t, books, 2)
	assert.Equal(t, 1, books[0].ID())
	assert.Equal(t, 2, books[1].ID())

	audio := cat.FindItemsByType(TypeAudioBook)
	require.Len(t, audio, 1)
	assert.Equal(t, 3, audio[0].ID())

	assert.Empty(t, cat.FindItemsByType(ItemType("Magazine")))
}

func TestCatalogue_AllItems_DefensiveCopy(t *testing.T) {
	cat := seedCatalogue()

	items := cat.AllItems()
	require.Len(t, items, 3)

	items[0] = NewBook(99, "mutated", "", "")
	items = items[:1]
	_ = items

	assert.Equal(t, 3, cat.ItemCount())
	fresh := cat.AllItems()
	require.Len(t, fresh, 3)
	assert.Equal(t, 1, fresh[0].ID())
}

func TestCatalogue_Statistics(t *testing.T) {
	cat := seedCatalogue()

	stats := cat.Statistics()
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[ItemType]int{TypeBook: 2, TypeAudioBook: 1}, stats.ByType)

	// Removing the last audio book drops its entry entirely, never a zero.
	require.True(t, cat.RemoveItem(3))
	stats = cat.Statistics()
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, map[ItemType]int{TypeBook: 2}, stats.ByType)
	_, present := stats.ByType[TypeAudioBook]
	assert.False(t, present)
}

func TestCatalogue_Statistics_Empty(t *testing.T) {
	stats := New().Statistics()
	assert.Equal(t, 0, stats.Total)
	assert.Empty(t, stats.ByType)
}

func TestDefault_ReturnsIdenticalInstance(t *testing.T) {
	first := Default()
	second := Default()
	require.Same(t, first, second)

	// Mutations through one reference are visible through the other.
	before := second.ItemCount()
	first.AddItem(NewBook(1000001, "shared state check", "", ""))
	assert.Equal(t, before+1, second.ItemCount())
	assert.True(t, second.RemoveItem(1000001))
}
