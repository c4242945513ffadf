package card

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/boardstore/internal/events"
	"github.com/thenoetrevino/boardstore/internal/store"
	"github.com/thenoetrevino/boardstore/internal/testutil"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func ptr(s string) *string { return &s }

type layout struct {
	board types.BoardID
	a, b  types.ListID
	// cards in A: a1 a2 a3, in B: b1
	a1, a2, a3, b1 types.CardID
}

func twoLists(t *testing.T) (*testutil.Builder, layout) {
	t.Helper()
	bld := testutil.NewBuilder()
	ws := bld.Workspace("W")
	var l layout
	l.board = bld.Board(ws, "B")
	l.a = bld.List(l.board, "A")
	l.b = bld.List(l.board, "B")
	l.a1 = bld.Card(l.a, "a1")
	l.a2 = bld.Card(l.a, "a2")
	l.a3 = bld.Card(l.a, "a3")
	l.b1 = bld.Card(l.b, "b1")
	return bld, l
}

func cardIDs(t *testing.T, svc Service, list types.ListID) []types.CardID {
	t.Helper()
	cards, err := svc.ListCards(context.Background(), list)
	require.NoError(t, err)
	ids := make([]types.CardID, len(cards))
	for i, c := range cards {
		require.Equal(t, i, c.Order, "order must be dense and match position")
		ids[i] = c.ID
	}
	return ids
}

// ============================================================================
// CREATE / UPDATE / DELETE
// ============================================================================

func TestCreateCard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bld, l := twoLists(t)
	s := bld.Store(t)
	svc := NewService(s, nil)

	id, err := svc.CreateCard(ctx, CreateCardRequest{ListID: l.b, Title: " New ", Description: "details"})
	require.NoError(t, err)

	c, err := svc.GetCard(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "New", c.Title)
	assert.Equal(t, "details", c.Description)
	assert.Equal(t, l.b, c.ListID)
	assert.Equal(t, 1, c.Order)
	assert.Equal(t, []types.CardID{l.b1, id}, cardIDs(t, svc, l.b))
	testutil.RequireIntegrity(t, s)
}

func TestCreateCard_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bld, l := twoLists(t)
	s := bld.Store(t)
	svc := NewService(s, nil)

	tests := []struct {
		name    string
		req     CreateCardRequest
		wantErr error
	}{
		{"empty title", CreateCardRequest{ListID: l.a, Title: "   "}, ErrEmptyTitle},
		{"long title", CreateCardRequest{ListID: l.a, Title: strings.Repeat("t", 256)}, ErrTitleTooLong},
		{"long description", CreateCardRequest{ListID: l.a, Title: "ok", Description: strings.Repeat("d", 5001)}, ErrDescriptionTooLong},
		{"missing list", CreateCardRequest{ListID: "missing", Title: "ok"}, ErrListNotFound},
	}
	for _, tt := range tests {
		_, err := svc.CreateCard(ctx, tt.req)
		assert.ErrorIs(t, err, tt.wantErr, tt.name)
	}
	assert.Equal(t, int64(0), s.Snapshot().Sequence(), "rejections leave the store untouched")
}

func TestUpdateCard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bld, l := twoLists(t)
	svc := NewService(bld.Store(t), nil)

	require.NoError(t, svc.UpdateCard(ctx, UpdateCardRequest{ID: l.a1, Description: ptr("now with details")}))
	c, _ := svc.GetCard(ctx, l.a1)
	assert.Equal(t, "a1", c.Title)
	assert.Equal(t, "now with details", c.Description)

	assert.ErrorIs(t, svc.UpdateCard(ctx, UpdateCardRequest{ID: l.a1, Title: ptr("")}), ErrEmptyTitle)
	assert.ErrorIs(t, svc.UpdateCard(ctx, UpdateCardRequest{ID: "missing"}), ErrCardNotFound)
}

func TestDeleteCard_CascadeAndRenumber(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bld, l := twoLists(t)
	u := bld.User("U", "u@example.com")
	todo := bld.Todo(l.a2, "todo")
	comment := bld.Comment(l.a2, u, "hello")
	s := bld.Store(t)
	svc := NewService(s, nil)

	plan, err := svc.DeleteCard(ctx, l.a2)
	require.NoError(t, err)
	assert.Equal(t, []types.TodoID{todo}, plan.Todos)
	assert.Equal(t, []types.CommentID{comment}, plan.Comments)

	assert.Equal(t, []types.CardID{l.a1, l.a3}, cardIDs(t, svc, l.a))
	_, ok := s.Snapshot().Todo(todo)
	assert.False(t, ok)
	_, ok = s.Snapshot().User(u)
	assert.True(t, ok)
	testutil.RequireIntegrity(t, s)
}

// ============================================================================
// MOVE
// ============================================================================

func TestMoveCard_TransferAtomicity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bld, l := twoLists(t)
	bus := events.NewBus(8, nil)
	defer func() { _ = bus.Close() }()
	s := bld.Store(t, store.WithPublisher(bus))
	svc := NewService(s, nil)

	ch, err := bus.Listen(ctx, "")
	require.NoError(t, err)

	require.NoError(t, svc.MoveCard(ctx, MoveCardRequest{CardID: l.a2, ListID: l.b, Index: 0}))

	assert.Equal(t, []types.CardID{l.a1, l.a3}, cardIDs(t, svc, l.a))
	assert.Equal(t, []types.CardID{l.a2, l.b1}, cardIDs(t, svc, l.b))

	c, _ := svc.GetCard(ctx, l.a2)
	assert.Equal(t, l.b, c.ListID)
	assert.Equal(t, 0, c.Order)

	// The single commit carries both lists already updated
	e := <-ch
	assert.Equal(t, "card.move", e.Op)
	src, _ := e.Snapshot.List(l.a)
	dst, _ := e.Snapshot.List(l.b)
	assert.NotContains(t, src.CardIDs, l.a2)
	assert.Contains(t, dst.CardIDs, l.a2)
	require.NoError(t, e.Snapshot.CheckIntegrity())
}

func TestMoveCard_IdempotentReorder(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bld, l := twoLists(t)
	svc := NewService(bld.Store(t), nil)

	require.NoError(t, svc.MoveCard(ctx, MoveCardRequest{CardID: l.a1, ListID: l.a, Index: 2}))
	first := cardIDs(t, svc, l.a)
	require.NoError(t, svc.MoveCard(ctx, MoveCardRequest{CardID: l.a1, ListID: l.a, Index: 2}))

	assert.Equal(t, []types.CardID{l.a2, l.a3, l.a1}, first)
	assert.Equal(t, first, cardIDs(t, svc, l.a))
}

func TestMoveCard_ClampAndReject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bld, l := twoLists(t)
	s := bld.Store(t)
	svc := NewService(s, nil)

	require.NoError(t, svc.MoveCard(ctx, MoveCardRequest{CardID: l.a1, ListID: l.b, Index: 42}))
	assert.Equal(t, []types.CardID{l.b1, l.a1}, cardIDs(t, svc, l.b))

	seq := s.Snapshot().Sequence()
	err := svc.MoveCard(ctx, MoveCardRequest{CardID: l.a2, ListID: l.b, Index: -1})
	assert.ErrorIs(t, err, ErrNegativeIndex)
	assert.ErrorIs(t, err, store.ErrInvalidTarget)
	assert.ErrorIs(t, svc.MoveCard(ctx, MoveCardRequest{CardID: l.a2, ListID: "missing"}), ErrListNotFound)
	assert.Equal(t, seq, s.Snapshot().Sequence())
}

func TestMoveCard_AcrossBoardsDropsForeignTags(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bld := testutil.NewBuilder()
	ws := bld.Workspace("W")
	b1 := bld.Board(ws, "One")
	b2 := bld.Board(ws, "Two")
	from := bld.List(b1, "From")
	to := bld.List(b2, "To")
	c := bld.Card(from, "c")
	tag := bld.Tag(b1, "old", "#111111")
	bld.TagCard(c, tag)
	s := bld.Store(t)
	svc := NewService(s, nil)

	require.NoError(t, svc.MoveCard(ctx, MoveCardRequest{CardID: c, ListID: to, Index: 0}))
	got, _ := svc.GetCard(ctx, c)
	assert.Empty(t, got.TagIDs)
	testutil.RequireIntegrity(t, s)
}

// ============================================================================
// RELATIONS
// ============================================================================

func TestAssignUser_ToggleIdempotence(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bld, l := twoLists(t)
	u := bld.User("U", "u@example.com")
	svc := NewService(bld.Store(t), nil)

	require.NoError(t, svc.AssignUser(ctx, l.a1, u))
	require.NoError(t, svc.AssignUser(ctx, l.a1, u))
	c, _ := svc.GetCard(ctx, l.a1)
	assert.Equal(t, []types.UserID{u}, c.AssignedUsers)

	require.NoError(t, svc.UnassignUser(ctx, l.a1, u))
	require.NoError(t, svc.UnassignUser(ctx, l.a1, u))
	c, _ = svc.GetCard(ctx, l.a1)
	assert.Empty(t, c.AssignedUsers)

	assert.ErrorIs(t, svc.AssignUser(ctx, l.a1, "ghost"), ErrUserNotFound)
	assert.ErrorIs(t, svc.UnassignUser(ctx, l.a1, "ghost"), ErrUserNotFound)
	assert.ErrorIs(t, svc.AssignUser(ctx, "missing", u), ErrCardNotFound)
}

func TestTags_MustBelongToCardBoard(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bld, l := twoLists(t)
	ws := bld.Workspace("Other")
	otherBoard := bld.Board(ws, "Other")
	own := bld.Tag(l.board, "bug", "#FF0000")
	foreign := bld.Tag(otherBoard, "bug", "#FF0000")
	s := bld.Store(t)
	svc := NewService(s, nil)

	require.NoError(t, svc.AddTag(ctx, l.a1, own))
	require.NoError(t, svc.AddTag(ctx, l.a1, own))
	c, _ := svc.GetCard(ctx, l.a1)
	assert.Equal(t, []types.TagID{own}, c.TagIDs)

	err := svc.AddTag(ctx, l.a1, foreign)
	assert.ErrorIs(t, err, ErrTagNotOnBoard)
	assert.ErrorIs(t, err, store.ErrInvalidTarget)
	assert.ErrorIs(t, svc.AddTag(ctx, l.a1, "missing"), ErrTagNotFound)

	require.NoError(t, svc.RemoveTag(ctx, l.a1, own))
	c, _ = svc.GetCard(ctx, l.a1)
	assert.Empty(t, c.TagIDs)
	testutil.RequireIntegrity(t, s)
}

func TestConcurrentMoves_KeepIntegrity(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	bld, l := twoLists(t)
	s := bld.Store(t)
	svc := NewService(s, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dst := l.a
			if i%2 == 0 {
				dst = l.b
			}
			_ = svc.MoveCard(ctx, MoveCardRequest{CardID: l.a1, ListID: dst, Index: i % 3})
		}(i)
	}
	wg.Wait()

	testutil.RequireIntegrity(t, s)
	total := len(cardIDs(t, svc, l.a)) + len(cardIDs(t, svc, l.b))
	assert.Equal(t, 4, total)
}
