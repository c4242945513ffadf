package events

import (
	"context"

	"github.com/thenoetrevino/boardstore/internal/types"
)

// EventPublisher defines the interface for sending and receiving store events.
// The store depends on this behavior rather than on Bus so tests can record
// events with a mock.
type EventPublisher interface {
	// SendEvent delivers an event to every matching listener without blocking
	SendEvent(event Event) error

	// Listen returns a channel of events for one workspace ("" = all workspaces).
	// The channel is closed when ctx is done or the publisher is closed.
	Listen(ctx context.Context, workspaceID types.WorkspaceID) (<-chan Event, error)

	// Close closes every listener channel
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
