package events

import (
	"time"

	"github.com/thenoetrevino/boardstore/internal/snapshot"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	EventStoreChanged EventType = "store_changed"
)

// Event represents a committed store mutation
type Event struct {
	Type        EventType
	Op          string            // Mutation name, e.g. "card.move"
	WorkspaceID types.WorkspaceID // For filtering - which workspace was modified ("" = unknown or several)
	Timestamp   time.Time         // When the mutation committed
	Sequence    int64             // Monotonically increasing commit number
	Snapshot    *snapshot.Snapshot
}
