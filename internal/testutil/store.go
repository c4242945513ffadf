package testutil

import (
	"testing"
	"time"

	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/store"
	"github.com/thenoetrevino/boardstore/internal/tables"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// Epoch is the base time of every record the Builder stamps
var Epoch = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

// Builder writes a consistent state table by table, bypassing the services,
// so service tests can start from a known layout.
type Builder struct {
	state *tables.State
	tick  int
}

// NewBuilder creates a builder over empty tables
func NewBuilder() *Builder {
	return &Builder{state: tables.NewState()}
}

func (b *Builder) next() time.Time {
	b.tick++
	return Epoch.Add(time.Duration(b.tick) * time.Minute)
}

// User adds a user
func (b *Builder) User(name, email string) types.UserID {
	id := types.NewUserID()
	b.state.Users.Put(id, models.User{ID: id, Name: name, Email: email})
	return id
}

// Workspace adds a workspace
func (b *Builder) Workspace(name string, members ...types.UserID) types.WorkspaceID {
	id := types.NewWorkspaceID()
	b.state.Workspaces.Put(id, models.Workspace{ID: id, Name: name, CreatedAt: b.next(), Members: members})
	return id
}

// Board adds a board to a workspace
func (b *Builder) Board(ws types.WorkspaceID, title string, members ...types.UserID) types.BoardID {
	id := types.NewBoardID()
	b.state.Boards.Put(id, models.Board{ID: id, Title: title, WorkspaceID: ws, CreatedAt: b.next(), Members: members})
	w, _ := b.state.Workspaces.Get(ws)
	w.BoardIDs = append(w.BoardIDs, id)
	b.state.Workspaces.Put(ws, w)
	return id
}

// List appends a list to a board
func (b *Builder) List(board types.BoardID, title string) types.ListID {
	id := types.NewListID()
	b.state.Lists.Put(id, models.List{ID: id, Title: title, BoardID: board})
	bd, _ := b.state.Boards.Get(board)
	bd.ListIDs = append(bd.ListIDs, id)
	b.state.Boards.Put(board, bd)
	return id
}

// Card appends a card to a list
func (b *Builder) Card(list types.ListID, title string) types.CardID {
	id := types.NewCardID()
	b.state.Cards.Put(id, models.Card{ID: id, Title: title, ListID: list, CreatedAt: b.next()})
	l, _ := b.state.Lists.Get(list)
	l.CardIDs = append(l.CardIDs, id)
	b.state.Lists.Put(list, l)
	return id
}

// Tag adds a tag to a board
func (b *Builder) Tag(board types.BoardID, name, color string) types.TagID {
	id := types.NewTagID()
	b.state.Tags.Put(id, models.Tag{ID: id, Name: name, Color: color, BoardID: board})
	return id
}

// TagCard attaches an existing tag to a card
func (b *Builder) TagCard(card types.CardID, tag types.TagID) {
	c, _ := b.state.Cards.Get(card)
	c.TagIDs = append(c.TagIDs, tag)
	b.state.Cards.Put(card, c)
}

// Assign adds a user to a card's assignees
func (b *Builder) Assign(card types.CardID, user types.UserID) {
	c, _ := b.state.Cards.Get(card)
	c.AssignedUsers = append(c.AssignedUsers, user)
	b.state.Cards.Put(card, c)
}

// Todo adds a todo to a card
func (b *Builder) Todo(card types.CardID, text string) types.TodoID {
	id := types.NewTodoID()
	b.state.Todos.Put(id, models.Todo{ID: id, Text: text, CardID: card, CreatedAt: b.next()})
	return id
}

// Comment adds a comment to a card
func (b *Builder) Comment(card types.CardID, user types.UserID, content string) types.CommentID {
	id := types.NewCommentID()
	b.state.Comments.Put(id, models.Comment{ID: id, CardID: card, UserID: user, Content: content, CreatedAt: b.next()})
	return id
}

// Store returns a store starting from the built state with integrity checks
// enabled. It fails the test if the built state is inconsistent.
func (b *Builder) Store(t *testing.T, opts ...store.Option) *store.Store {
	t.Helper()
	if err := b.state.CheckIntegrity(); err != nil {
		t.Fatalf("Builder produced an inconsistent state: %v", err)
	}
	base := []store.Option{
		store.WithState(b.state),
		store.WithIntegrityCheck(true),
		store.WithClock(b.next),
	}
	s := store.New(append(base, opts...)...)
	b.state = nil
	return s
}

// RequireIntegrity fails the test if the store's current state breaks an invariant
func RequireIntegrity(t *testing.T, s *store.Store) {
	t.Helper()
	if err := s.Snapshot().CheckIntegrity(); err != nil {
		t.Fatalf("Integrity violated: %v", err)
	}
}
