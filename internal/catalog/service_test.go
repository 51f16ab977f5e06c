package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libracat/internal/journal"
)

func newTestService() (Service, *journal.Journal) {
	jnl := journal.New()
	return NewService(New(), jnl), jnl
}

func TestService_AddItem_RecordsEvent(t *testing.T) {
	svc, jnl := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, NewBook(1, "The Great Gatsby", "F. Scott Fitzgerald", "")))
	require.NoError(t, svc.AddItem(ctx, NewAudioBook(3, "Dune", "Scott Brick", 1266)))

	assert.Equal(t, 2, jnl.Len())

	events, err := svc.History(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "ItemAdded", events[0].EventType)

	var payload ItemAddedEvent
	require.NoError(t, json.Unmarshal(events[0].Data, &payload))
	assert.Equal(t, 1, payload.ID)
	assert.Equal(t, TypeBook, payload.Type)
	assert.Equal(t, "The Great Gatsby", payload.Title)
}

func TestService_RemoveItem(t *testing.T) {
	svc, jnl := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, NewBook(1, "1984", "George Orwell", "")))

	removed, err := svc.RemoveItem(ctx, 1)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, 2, jnl.Len())

	// Unknown ids are a normal outcome and leave the journal untouched.
	removed, err = svc.RemoveItem(ctx, 42)
	require.NoError(t, err)
	assert.False(t, removed)
	assert.Equal(t, 2, jnl.Len())
}

// Concurrent valid mutations through the service must all succeed: every
// add lands, every removal records its event, and nothing fails spuriously.
func TestService_ConcurrentMutations(t *testing.T) {
	svc, jnl := newTestService()
	ctx := context.Background()

	const n = 100
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			errs <- svc.AddItem(ctx, NewBook(id, fmt.Sprintf("book %d", id), "author", ""))
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, n)
	assert.Equal(t, n, jnl.Len())

	// Concurrent removals of distinct ids likewise never fail and record
	// one event each.
	removeErrs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			removed, err := svc.RemoveItem(ctx, id)
			if err == nil && !removed {
				err = fmt.Errorf("item %d not removed", id)
			}
			removeErrs <- err
		}(i)
	}
	wg.Wait()
	close(removeErrs)

	for err := range removeErrs {
		require.NoError(t, err)
	}

	all, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Equal(t, 2*n, jnl.Len())
}

func TestService_Lookups(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	require.NoError(t, svc.AddItem(ctx, NewBook(1, "The Great Gatsby", "F. Scott Fitzgerald", "")))
	require.NoError(t, svc.AddItem(ctx, NewBook(2, "1984", "George Orwell", "")))
	require.NoError(t, svc.AddItem(ctx, NewAudioBook(3, "Dune", "Scott Brick", 1266)))

	item, found, err := svc.FindByTitle(ctx, "the great gatsby")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, item.ID())

	_, found, err = svc.FindByTitle(ctx, "Moby Dick")
	require.NoError(t, err)
	assert.False(t, found)

	books, err := svc.FindByType(ctx, TypeBook)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, 1, books[0].ID())
	assert.Equal(t, 2, books[1].ID())

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, map[ItemType]int{TypeBook: 2, TypeAudioBook: 1}, stats.ByType)
}
