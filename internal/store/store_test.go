package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/boardstore/internal/events"
	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// recordingPublisher captures events sent by the store
type recordingPublisher struct {
	mu   sync.Mutex
	sent []events.Event
	err  error
}

func (p *recordingPublisher) SendEvent(e events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.sent = append(p.sent, e)
	return p.err
}

func (p *recordingPublisher) Listen(context.Context, types.WorkspaceID) (<-chan events.Event, error) {
	ch := make(chan events.Event)
	close(ch)
	return ch, nil
}

func (p *recordingPublisher) Close() error { return nil }

func putWorkspace(id types.WorkspaceID) func(*Tx) error {
	return func(tx *Tx) error {
		tx.Workspaces.Put(id, models.Workspace{ID: id, Name: string(id), CreatedAt: tx.Now()})
		tx.Touch(id)
		return nil
	}
}

// ============================================================================
// TEST CASES
// ============================================================================

func TestUpdate_CommitsAndPublishes(t *testing.T) {
	t.Parallel()

	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	pub := &recordingPublisher{}
	s := New(WithPublisher(pub), WithClock(func() time.Time { return fixed }))

	before := s.Snapshot()
	require.NoError(t, s.Update(context.Background(), "workspace.create", putWorkspace("ws-1")))

	after := s.Snapshot()
	assert.Equal(t, int64(1), after.Sequence())
	_, ok := after.Workspace("ws-1")
	assert.True(t, ok)

	// Older snapshots are unaffected
	_, ok = before.Workspace("ws-1")
	assert.False(t, ok)

	require.Len(t, pub.sent, 1)
	e := pub.sent[0]
	assert.Equal(t, events.EventStoreChanged, e.Type)
	assert.Equal(t, "workspace.create", e.Op)
	assert.Equal(t, types.WorkspaceID("ws-1"), e.WorkspaceID)
	assert.Equal(t, fixed, e.Timestamp)
	assert.Equal(t, int64(1), e.Sequence)
	assert.Same(t, after, e.Snapshot)
}

func TestUpdate_ErrorDiscardsChanges(t *testing.T) {
	t.Parallel()

	pub := &recordingPublisher{}
	s := New(WithPublisher(pub))
	require.NoError(t, s.Update(context.Background(), "seed", putWorkspace("ws-1")))

	boom := InvalidInput("boom")
	err := s.Update(context.Background(), "bad", func(tx *Tx) error {
		tx.Workspaces.Delete("ws-1")
		tx.Workspaces.Put("ws-2", models.Workspace{ID: "ws-2"})
		return boom
	})
	assert.ErrorIs(t, err, boom)

	snap := s.Snapshot()
	assert.Equal(t, int64(1), snap.Sequence())
	_, ok := snap.Workspace("ws-1")
	assert.True(t, ok, "rejected transaction must not remove ws-1")
	_, ok = snap.Workspace("ws-2")
	assert.False(t, ok, "rejected transaction must not add ws-2")
	assert.Len(t, pub.sent, 1)
}

func TestUpdate_CancelledContext(t *testing.T) {
	t.Parallel()

	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := s.Update(ctx, "noop", func(*Tx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestUpdate_IntegrityCheckRejectsBrokenCommit(t *testing.T) {
	t.Parallel()

	s := New(WithIntegrityCheck(true))
	err := s.Update(context.Background(), "broken", func(tx *Tx) error {
		tx.Workspaces.Put("ws-1", models.Workspace{ID: "ws-1", BoardIDs: []types.BoardID{"missing"}})
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dangling board missing")
	assert.Equal(t, 0, s.Snapshot().State().Workspaces.Len())
}

func TestUpdate_PublishFailureStillCommits(t *testing.T) {
	t.Parallel()

	pub := &recordingPublisher{err: errors.New("bus closed")}
	s := New(WithPublisher(pub))

	require.NoError(t, s.Update(context.Background(), "workspace.create", putWorkspace("ws-1")))
	assert.Equal(t, int64(1), s.Snapshot().Sequence())
}

func TestUpdate_EventWorkspaceEmptyWhenSeveralTouched(t *testing.T) {
	t.Parallel()

	pub := &recordingPublisher{}
	s := New(WithPublisher(pub))

	require.NoError(t, s.Update(context.Background(), "multi", func(tx *Tx) error {
		tx.Touch("ws-1")
		tx.Touch("ws-2")
		return nil
	}))
	require.Len(t, pub.sent, 1)
	assert.Empty(t, pub.sent[0].WorkspaceID)
}

func TestUpdate_ConcurrentWritersSerialize(t *testing.T) {
	t.Parallel()

	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Update(context.Background(), "user.register", func(tx *Tx) error {
				id := types.NewUserID()
				tx.Users.Put(id, models.User{ID: id, Name: "u"})
				return nil
			})
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	assert.Equal(t, int64(50), snap.Sequence())
	assert.Equal(t, 50, snap.State().Users.Len())
}

func TestTx_LookupsReturnNotFound(t *testing.T) {
	t.Parallel()

	s := New()
	err := s.Update(context.Background(), "lookup", func(tx *Tx) error {
		_, err := tx.Card("nope")
		return err
	})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, err, &Error{Code: CodeNotFound, Entity: "card"})
}

func TestTx_WorkspaceResolution(t *testing.T) {
	t.Parallel()

	s := New()
	require.NoError(t, s.Update(context.Background(), "seed", func(tx *Tx) error {
		tx.Workspaces.Put("ws-1", models.Workspace{ID: "ws-1", BoardIDs: []types.BoardID{"b-1"}})
		tx.Boards.Put("b-1", models.Board{ID: "b-1", WorkspaceID: "ws-1", ListIDs: []types.ListID{"l-1"}})
		tx.Lists.Put("l-1", models.List{ID: "l-1", BoardID: "b-1", CardIDs: []types.CardID{"c-1"}})
		tx.Cards.Put("c-1", models.Card{ID: "c-1", ListID: "l-1"})
		return nil
	}))

	require.NoError(t, s.Update(context.Background(), "check", func(tx *Tx) error {
		assert.Equal(t, types.WorkspaceID("ws-1"), tx.WorkspaceOfCard("c-1"))
		assert.Equal(t, types.WorkspaceID("ws-1"), tx.WorkspaceOfList("l-1"))
		assert.Empty(t, tx.WorkspaceOfCard("missing"))
		return nil
	}))
}
