package comment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/boardstore/internal/store"
	"github.com/thenoetrevino/boardstore/internal/testutil"
	"github.com/thenoetrevino/boardstore/internal/types"
	"github.com/thenoetrevino/boardstore/internal/user"
)

func withCard(t *testing.T) (*testutil.Builder, types.CardID, types.UserID) {
	t.Helper()
	b := testutil.NewBuilder()
	u := b.User("Jane Smith", "jane@example.com")
	ws := b.Workspace("W", u)
	board := b.Board(ws, "B", u)
	list := b.List(board, "L")
	return b, b.Card(list, "C"), u
}

func TestAddComment_AttributedToCurrentUser(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	b, card, u := withCard(t)
	svc := NewService(b.Store(t), user.NewStatic(u), nil)

	id, err := svc.AddComment(ctx, AddCommentRequest{CardID: card, Content: " Looks good "})
	require.NoError(t, err)

	c, err := svc.GetComment(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, u, c.UserID)
	assert.Equal(t, "Looks good", c.Content)

	comments, err := svc.ListComments(ctx, card)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, id, comments[0].ID)
}

func TestAddComment_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	b, card, u := withCard(t)
	s := b.Store(t)

	nobody := NewService(s, user.NewStatic(""), nil)
	_, err := nobody.AddComment(ctx, AddCommentRequest{CardID: card, Content: "hi"})
	assert.ErrorIs(t, err, ErrNoCurrentUser)
	assert.ErrorIs(t, err, store.ErrInvalidInput)

	_, err = NewService(s, nil, nil).AddComment(ctx, AddCommentRequest{CardID: card, Content: "hi"})
	assert.ErrorIs(t, err, ErrNoCurrentUser)

	svc := NewService(s, user.NewStatic(u), nil)
	_, err = svc.AddComment(ctx, AddCommentRequest{CardID: card, Content: ""})
	assert.ErrorIs(t, err, ErrEmptyContent)
	_, err = svc.AddComment(ctx, AddCommentRequest{CardID: card, Content: strings.Repeat("c", 1001)})
	assert.ErrorIs(t, err, ErrContentTooLong)
	_, err = svc.AddComment(ctx, AddCommentRequest{CardID: "missing", Content: "hi"})
	assert.ErrorIs(t, err, ErrCardNotFound)

	ghost := NewService(s, user.NewStatic("ghost"), nil)
	_, err = ghost.AddComment(ctx, AddCommentRequest{CardID: card, Content: "hi"})
	assert.ErrorIs(t, err, store.ErrNotFound)

	assert.Equal(t, int64(0), s.Snapshot().Sequence())
}

func TestDeleteComment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	b, card, u := withCard(t)
	id := b.Comment(card, u, "bye")
	svc := NewService(b.Store(t), user.NewStatic(u), nil)

	require.NoError(t, svc.DeleteComment(ctx, id))
	assert.ErrorIs(t, svc.DeleteComment(ctx, id), ErrCommentNotFound)
}
