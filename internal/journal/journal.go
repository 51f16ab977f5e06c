package journal

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrVersionConflict = errors.New("version conflict: stream moved past expected version")
	ErrInvalidVersion  = errors.New("invalid version number")
)

// Event is one recorded mutation. Seq is the global position in the journal,
// Version the position within the event's stream.
type Event struct {
	ID         uuid.UUID       `json:"id"`
	Seq        int64           `json:"seq"`
	StreamID   string          `json:"stream_id"`
	EventType  string          `json:"event_type"`
	Data       json.RawMessage `json:"data"`
	Version    int             `json:"version"`
	RecordedAt time.Time       `json:"recorded_at"`
}

// Journal is an in-memory, append-only log of domain events with optimistic
// concurrency control per stream. Contents live and die with the process;
// there is no durable backing.
type Journal struct {
	mu       sync.Mutex
	events   []Event
	versions map[string]int
	tracer   trace.Tracer
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{
		versions: make(map[string]int),
		tracer:   otel.Tracer("libracat/journal"),
	}
}

// Version returns the current version of a stream; zero for an unknown stream.
func (j *Journal) Version(streamID string) int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.versions[streamID]
}

// Append atomically appends events to a stream after verifying that the
// stream is still at expectedVersion. Each appended event is assigned an id,
// a global sequence number, and the next stream version.
func (j *Journal) Append(ctx context.Context, streamID string, expectedVersion int, events ...Event) error {
	_, span := j.tracer.Start(ctx, "journal.append",
		trace.WithAttributes(
			attribute.String("stream.id", streamID),
			attribute.Int("expected.version", expectedVersion),
			attribute.Int("event.count", len(events)),
		),
	)
	defer span.End()

	if expectedVersion < 0 {
		return ErrInvalidVersion
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	current := j.versions[streamID]
	if current != expectedVersion {
		span.SetAttributes(
			attribute.Int("actual.version", current),
			attribute.Bool("conflict.detected", true),
		)
		return ErrVersionConflict
	}

	j.appendLocked(streamID, events)
	return nil
}

// AppendNext atomically appends events at whatever the stream's current
// version is. The version is read and advanced under the journal's own
// lock, so concurrent appenders never conflict; use this when the caller
// simply wants the events recorded next rather than guarding against a
// competing writer.
func (j *Journal) AppendNext(ctx context.Context, streamID string, events ...Event) error {
	_, span := j.tracer.Start(ctx, "journal.append_next",
		trace.WithAttributes(
			attribute.String("stream.id", streamID),
			attribute.Int("event.count", len(events)),
		),
	)
	defer span.End()

	j.mu.Lock()
	defer j.mu.Unlock()

	j.appendLocked(streamID, events)
	return nil
}

// appendLocked assigns ids, sequence numbers and stream versions and
// advances the stream. Callers must hold j.mu.
func (j *Journal) appendLocked(streamID string, events []Event) {
	base := j.versions[streamID]
	now := time.Now().UTC()
	for i, ev := range events {
		ev.ID = uuid.New()
		ev.Seq = int64(len(j.events) + 1)
		ev.StreamID = streamID
		ev.Version = base + i + 1
		ev.RecordedAt = now
		j.events = append(j.events, ev)
	}
	j.versions[streamID] = base + len(events)
}

// Read returns all events of a stream in append order. An unknown stream
// yields an empty result, not an error.
func (j *Journal) Read(ctx context.Context, streamID string) ([]Event, error) {
	_, span := j.tracer.Start(ctx, "journal.read",
		trace.WithAttributes(attribute.String("stream.id", streamID)),
	)
	defer span.End()

	j.mu.Lock()
	defer j.mu.Unlock()

	var out []Event
	for _, ev := range j.events {
		if ev.StreamID == streamID {
			out = append(out, ev)
		}
	}
	span.SetAttributes(attribute.Int("event.count", len(out)))
	return out, nil
}

// All returns a copy of the full journal in global order.
func (j *Journal) All(ctx context.Context) ([]Event, error) {
	_, span := j.tracer.Start(ctx, "journal.all")
	defer span.End()

	j.mu.Lock()
	defer j.mu.Unlock()

	out := make([]Event, len(j.events))
	copy(out, j.events)
	return out, nil
}

// Len returns the total number of recorded events.
func (j *Journal) Len() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.events)
}
