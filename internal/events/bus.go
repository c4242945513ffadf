package events

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/boardstore/internal/types"
)

// ErrBusClosed is returned when sending to or listening on a closed bus
var ErrBusClosed = errors.New("event bus is closed")

// ErrNilBus is returned by methods called on a nil *Bus
var ErrNilBus = errors.New("event bus is nil")

// DefaultBuffer is the per-listener channel capacity used when none is configured
const DefaultBuffer = 64

// Bus fans committed-store events out to in-process listeners.
// Sends never block: a listener whose buffer is full misses that event.
type Bus struct {
	mu        sync.Mutex
	listeners map[int]*listener
	nextID    int
	buffer    int
	closed    bool
	done      chan struct{}

	logger  *slog.Logger
	metrics *Metrics
}

type listener struct {
	ch          chan Event
	workspaceID types.WorkspaceID
}

// NewBus creates a bus whose listeners each buffer up to buffer events.
func NewBus(buffer int, logger *slog.Logger) *Bus {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		listeners: make(map[int]*listener),
		buffer:    buffer,
		done:      make(chan struct{}),
		logger:    logger,
		metrics:   NewMetrics(),
	}
}

// Metrics returns the bus counters
func (b *Bus) Metrics() *Metrics {
	if b == nil {
		return nil
	}
	return b.metrics
}

// SendEvent delivers event to every listener subscribed to its workspace or to all.
func (b *Bus) SendEvent(event Event) error {
	if b == nil {
		return ErrNilBus
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	b.metrics.IncEventsSent()
	for id, l := range b.listeners {
		if l.workspaceID != "" && event.WorkspaceID != "" && l.workspaceID != event.WorkspaceID {
			continue
		}
		select {
		case l.ch <- event:
			b.metrics.IncEventsDelivered()
		default:
			b.metrics.IncEventsDropped()
			b.logger.Warn("event listener buffer full, dropping event",
				"listener", id,
				"op", event.Op,
				"sequence", event.Sequence)
		}
	}
	return nil
}

// Listen registers a listener. Events for other workspaces are filtered out
// unless workspaceID is empty.
func (b *Bus) Listen(ctx context.Context, workspaceID types.WorkspaceID) (<-chan Event, error) {
	if b == nil {
		ch := make(chan Event)
		close(ch)
		return ch, ErrNilBus
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		ch := make(chan Event)
		close(ch)
		return ch, ErrBusClosed
	}
	id := b.nextID
	b.nextID++
	l := &listener{ch: make(chan Event, b.buffer), workspaceID: workspaceID}
	b.listeners[id] = l
	b.metrics.SetListeners(int32(len(b.listeners)))
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			b.remove(id)
		case <-b.done:
		}
	}()

	return l.ch, nil
}

// remove unregisters and closes a listener if it is still registered.
func (b *Bus) remove(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	l, ok := b.listeners[id]
	if !ok {
		return
	}
	delete(b.listeners, id)
	close(l.ch)
	b.metrics.SetListeners(int32(len(b.listeners)))
}

// Close closes every listener channel. Further sends return ErrBusClosed.
func (b *Bus) Close() error {
	if b == nil {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	close(b.done)
	for id, l := range b.listeners {
		close(l.ch)
		delete(b.listeners, id)
	}
	b.metrics.SetListeners(0)
	return nil
}
