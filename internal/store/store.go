package store

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/boardstore/internal/events"
	"github.com/thenoetrevino/boardstore/internal/snapshot"
	"github.com/thenoetrevino/boardstore/internal/tables"
)

// Store holds the committed tables. Readers take lock-free snapshots;
// writers are serialized and commit whole transactions or nothing.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[snapshot.Snapshot]

	publisher events.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
	verify    bool
	initial   *tables.State
}

// New creates a store with empty tables
func New(opts ...Option) *Store {
	s := &Store{
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	state := s.initial
	if state == nil {
		state = tables.NewState()
	}
	s.initial = nil
	s.current.Store(snapshot.New(state, 0))
	return s
}

// Snapshot returns the latest committed view. It never changes afterwards.
func (s *Store) Snapshot() *snapshot.Snapshot {
	return s.current.Load()
}

// Update runs fn against a private copy of the current state and commits it
// if fn returns nil. On error the copy is discarded and the committed state
// stays exactly as it was.
func (s *Store) Update(ctx context.Context, op string, fn func(tx *Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.current.Load()
	tx := newTx(base.State().Clone(), s.now())

	if err := fn(tx); err != nil {
		s.logger.Debug("transaction rejected", "op", op, "error", err)
		return err
	}

	if s.verify {
		if err := tx.State.CheckIntegrity(); err != nil {
			s.logger.Error("integrity check failed, discarding transaction", "op", op, "error", err)
			return fmt.Errorf("failed integrity check after %s: %w", op, err)
		}
	}

	next := snapshot.New(tx.State, base.Sequence()+1)
	s.current.Store(next)

	s.publish(op, tx, next)
	return nil
}

// publish announces a commit if a publisher is configured
func (s *Store) publish(op string, tx *Tx, snap *snapshot.Snapshot) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.SendEvent(events.Event{
		Type:        events.EventStoreChanged,
		Op:          op,
		WorkspaceID: tx.workspace(),
		Timestamp:   tx.Now(),
		Sequence:    snap.Sequence(),
		Snapshot:    snap,
	})
	if err != nil {
		s.logger.Warn("failed to publish store event", "op", op, "error", err)
	}
}
