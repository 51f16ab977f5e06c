package journal

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournal_AppendAssignsMetadata(t *testing.T) {
	jnl := New()
	ctx := context.Background()

	err := jnl.Append(ctx, "catalogue", 0,
		Event{EventType: "ItemAdded", Data: json.RawMessage(`{"id":1}`)},
		Event{EventType: "ItemAdded", Data: json.RawMessage(`{"id":2}`)},
	)
	require.NoError(t, err)

	events, err := jnl.Read(ctx, "catalogue")
	require.NoError(t, err)
	require.Len(t, events, 2)

	assert.NotEqual(t, uuid.Nil, events[0].ID)
	assert.NotEqual(t, events[0].ID, events[1].ID)
	assert.Equal(t, int64(1), events[0].Seq)
	assert.Equal(t, int64(2), events[1].Seq)
	assert.Equal(t, 1, events[0].Version)
	assert.Equal(t, 2, events[1].Version)
	assert.False(t, events[0].RecordedAt.IsZero())
	assert.Equal(t, 2, jnl.Version("catalogue"))
}

func TestJournal_AppendNext(t *testing.T) {
	jnl := New()
	ctx := context.Background()

	require.NoError(t, jnl.Append(ctx, "catalogue", 0, Event{EventType: "ItemAdded"}))
	require.NoError(t, jnl.AppendNext(ctx, "catalogue", Event{EventType: "ItemRemoved"}))

	events, err := jnl.Read(ctx, "catalogue")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, 2, events[1].Version)
	assert.Equal(t, 2, jnl.Version("catalogue"))
}

// Concurrent writers that just want "record this next" must never observe a
// version conflict; the journal assigns versions under its own lock.
func TestJournal_AppendNext_ConcurrentWriters(t *testing.T) {
	jnl := New()
	ctx := context.Background()

	const n = 100
	errs := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- jnl.AppendNext(ctx, "catalogue", Event{EventType: "ItemAdded"})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	assert.Equal(t, n, jnl.Len())
	assert.Equal(t, n, jnl.Version("catalogue"))

	// Versions form a contiguous 1..n sequence with no gaps or repeats.
	events, err := jnl.Read(ctx, "catalogue")
	require.NoError(t, err)
	seen := make(map[int]bool, n)
	for _, ev := range events {
		assert.False(t, seen[ev.Version], "version %d assigned twice", ev.Version)
		seen[ev.Version] = true
	}
	for v := 1; v <= n; v++ {
		assert.True(t, seen[v], "version %d missing", v)
	}
}

func TestJournal_VersionConflict(t *testing.T) {
	jnl := New()
	ctx := context.Background()

	require.NoError(t, jnl.Append(ctx, "catalogue", 0, Event{EventType: "ItemAdded"}))

	err := jnl.Append(ctx, "catalogue", 0, Event{EventType: "ItemAdded"})
	assert.ErrorIs(t, err, ErrVersionConflict)
	assert.Equal(t, 1, jnl.Len())
}

func TestJournal_InvalidVersion(t *testing.T) {
	jnl := New()
	err := jnl.Append(context.Background(), "catalogue", -1, Event{EventType: "ItemAdded"})
	assert.ErrorIs(t, err, ErrInvalidVersion)
}

func TestJournal_StreamsAreIndependent(t *testing.T) {
	jnl := New()
	ctx := context.Background()

	require.NoError(t, jnl.Append(ctx, "a", 0, Event{EventType: "X"}))
	require.NoError(t, jnl.Append(ctx, "b", 0, Event{EventType: "Y"}))
	require.NoError(t, jnl.Append(ctx, "a", 1, Event{EventType: "Z"}))

	a, err := jnl.Read(ctx, "a")
	require.NoError(t, err)
	require.Len(t, a, 2)
	assert.Equal(t, "X", a[0].EventType)
	assert.Equal(t, "Z", a[1].EventType)

	unknown, err := jnl.Read(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, unknown)

	all, err := jnl.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, 3, jnl.Len())
}

func TestJournal_AllReturnsCopy(t *testing.T) {
	jnl := New()
	ctx := context.Background()
	require.NoError(t, jnl.Append(ctx, "a", 0, Event{EventType: "X"}))

	all, err := jnl.All(ctx)
	require.NoError(t, err)
	all[0].EventType = "mutated"

	again, err := jnl.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, "X", again[0].EventType)
}
