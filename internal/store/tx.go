package store

import (
	"time"

	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/tables"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// Tx is the writable state handed to an Update callback.
type Tx struct {
	*tables.State

	now     time.Time
	touched map[types.WorkspaceID]struct{}
}

func newTx(state *tables.State, now time.Time) *Tx {
	return &Tx{State: state, now: now, touched: make(map[types.WorkspaceID]struct{})}
}

// Now is the commit time shared by every record the transaction stamps
func (tx *Tx) Now() time.Time {
	return tx.now
}

// Touch records that the transaction modified a workspace
func (tx *Tx) Touch(id types.WorkspaceID) {
	if id != "" {
		tx.touched[id] = struct{}{}
	}
}

// workspace returns the single touched workspace, or "" for none or several.
func (tx *Tx) workspace() types.WorkspaceID {
	if len(tx.touched) != 1 {
		return ""
	}
	for id := range tx.touched {
		return id
	}
	return ""
}

// Workspace loads a workspace or returns a NotFound error
func (tx *Tx) Workspace(id types.WorkspaceID) (models.Workspace, error) {
	w, ok := tx.Workspaces.Get(id)
	if !ok {
		return w, NotFound("workspace", id)
	}
	return w, nil
}

// Board loads a board or returns a NotFound error
func (tx *Tx) Board(id types.BoardID) (models.Board, error) {
	b, ok := tx.Boards.Get(id)
	if !ok {
		return b, NotFound("board", id)
	}
	return b, nil
}

// List loads a list or returns a NotFound error
func (tx *Tx) List(id types.ListID) (models.List, error) {
	l, ok := tx.Lists.Get(id)
	if !ok {
		return l, NotFound("list", id)
	}
	return l, nil
}

// Card loads a card or returns a NotFound error
func (tx *Tx) Card(id types.CardID) (models.Card, error) {
	c, ok := tx.Cards.Get(id)
	if !ok {
		return c, NotFound("card", id)
	}
	return c, nil
}

// Tag loads a tag or returns a NotFound error
func (tx *Tx) Tag(id types.TagID) (models.Tag, error) {
	t, ok := tx.Tags.Get(id)
	if !ok {
		return t, NotFound("tag", id)
	}
	return t, nil
}

// Todo loads a todo or returns a NotFound error
func (tx *Tx) Todo(id types.TodoID) (models.Todo, error) {
	t, ok := tx.Todos.Get(id)
	if !ok {
		return t, NotFound("todo", id)
	}
	return t, nil
}

// Comment loads a comment or returns a NotFound error
func (tx *Tx) Comment(id types.CommentID) (models.Comment, error) {
	c, ok := tx.Comments.Get(id)
	if !ok {
		return c, NotFound("comment", id)
	}
	return c, nil
}

// User loads a user or returns a NotFound error
func (tx *Tx) User(id types.UserID) (models.User, error) {
	u, ok := tx.Users.Get(id)
	if !ok {
		return u, NotFound("user", id)
	}
	return u, nil
}

// WorkspaceOfList resolves the workspace a list belongs to, "" if unknown
func (tx *Tx) WorkspaceOfList(id types.ListID) types.WorkspaceID {
	l, ok := tx.Lists.Get(id)
	if !ok {
		return ""
	}
	return tx.WorkspaceOfBoard(l.BoardID)
}

// WorkspaceOfBoard resolves the workspace a board belongs to, "" if unknown
func (tx *Tx) WorkspaceOfBoard(id types.BoardID) types.WorkspaceID {
	b, ok := tx.Boards.Get(id)
	if !ok {
		return ""
	}
	return b.WorkspaceID
}

// WorkspaceOfCard resolves the workspace a card belongs to, "" if unknown
func (tx *Tx) WorkspaceOfCard(id types.CardID) types.WorkspaceID {
	c, ok := tx.Cards.Get(id)
	if !ok {
		return ""
	}
	return tx.WorkspaceOfList(c.ListID)
}
