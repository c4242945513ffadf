// Package snapshot exposes a committed table state as a read-only view.
//
// Every record returned is a clone, and List.Order / Card.Order are filled in
// from the parent's ordered collection, which is the only place order is stored.
package snapshot

import (
	"cmp"
	"slices"
	"strings"

	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/ordering"
	"github.com/thenoetrevino/boardstore/internal/tables"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// Snapshot is an immutable view of every table at one commit.
type Snapshot struct {
	state    *tables.State
	sequence int64
}

// New wraps a state that will never be written again.
func New(state *tables.State, sequence int64) *Snapshot {
	return &Snapshot{state: state, sequence: sequence}
}

// Sequence returns the commit number that produced this snapshot.
func (s *Snapshot) Sequence() int64 {
	return s.sequence
}

// State returns the underlying tables for read-only use by the store.
func (s *Snapshot) State() *tables.State {
	return s.state
}

// CheckIntegrity verifies all cross-table invariants of this snapshot.
func (s *Snapshot) CheckIntegrity() error {
	return s.state.CheckIntegrity()
}

// Workspaces

// Workspace returns one workspace
func (s *Snapshot) Workspace(id types.WorkspaceID) (models.Workspace, bool) {
	return s.state.Workspaces.Get(id)
}

// Workspaces returns every workspace, oldest first
func (s *Snapshot) Workspaces() []models.Workspace {
	out := s.state.Workspaces.Filter(func(models.Workspace) bool { return true })
	slices.SortStableFunc(out, func(a, b models.Workspace) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Boards

// Board returns one board
func (s *Snapshot) Board(id types.BoardID) (models.Board, bool) {
	return s.state.Boards.Get(id)
}

// Boards returns the boards of a workspace in membership order
func (s *Snapshot) Boards(workspaceID types.WorkspaceID) []models.Board {
	ws, ok := s.state.Workspaces.Get(workspaceID)
	if !ok {
		return nil
	}
	out := make([]models.Board, 0, len(ws.BoardIDs))
	for _, id := range ws.BoardIDs {
		if board, ok := s.state.Boards.Get(id); ok {
			out = append(out, board)
		}
	}
	return out
}

// Lists

// List returns one list with its order derived from the board
func (s *Snapshot) List(id types.ListID) (models.List, bool) {
	list, ok := s.state.Lists.Get(id)
	if !ok {
		return models.List{}, false
	}
	if board, ok := s.state.Boards.Get(list.BoardID); ok {
		list.Order, _ = ordering.OrderOf(board.ListIDs, id)
	}
	return list, true
}

// Lists returns the lists of a board in order
func (s *Snapshot) Lists(boardID types.BoardID) []models.List {
	board, ok := s.state.Boards.Get(boardID)
	if !ok {
		return nil
	}
	out := make([]models.List, 0, len(board.ListIDs))
	for i, id := range board.ListIDs {
		if list, ok := s.state.Lists.Get(id); ok {
			list.Order = i
			out = append(out, list)
		}
	}
	return out
}

// Cards

// Card returns one card with its order derived from the list
func (s *Snapshot) Card(id types.CardID) (models.Card, bool) {
	card, ok := s.state.Cards.Get(id)
	if !ok {
		return models.Card{}, false
	}
	if list, ok := s.state.Lists.Get(card.ListID); ok {
		card.Order, _ = ordering.OrderOf(list.CardIDs, id)
	}
	return card, true
}

// Cards returns the cards of a list in order
func (s *Snapshot) Cards(listID types.ListID) []models.Card {
	list, ok := s.state.Lists.Get(listID)
	if !ok {
		return nil
	}
	out := make([]models.Card, 0, len(list.CardIDs))
	for i, id := range list.CardIDs {
		if card, ok := s.state.Cards.Get(id); ok {
			card.Order = i
			out = append(out, card)
		}
	}
	return out
}

// BoardOfCard resolves the board a card is on
func (s *Snapshot) BoardOfCard(id types.CardID) (types.BoardID, bool) {
	return s.state.BoardOfCard(id)
}

// Tags

// Tag returns one tag
func (s *Snapshot) Tag(id types.TagID) (models.Tag, bool) {
	return s.state.Tags.Get(id)
}

// Tags returns the tags of a board sorted by name
func (s *Snapshot) Tags(boardID types.BoardID) []models.Tag {
	out := s.state.Tags.Filter(func(t models.Tag) bool { return t.BoardID == boardID })
	slices.SortStableFunc(out, func(a, b models.Tag) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Todos

// Todo returns one todo
func (s *Snapshot) Todo(id types.TodoID) (models.Todo, bool) {
	return s.state.Todos.Get(id)
}

// Todos returns the todos of a card, oldest first
func (s *Snapshot) Todos(cardID types.CardID) []models.Todo {
	out := s.state.Todos.Filter(func(t models.Todo) bool { return t.CardID == cardID })
	slices.SortStableFunc(out, func(a, b models.Todo) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Comments

// Comment returns one comment
func (s *Snapshot) Comment(id types.CommentID) (models.Comment, bool) {
	return s.state.Comments.Get(id)
}

// Comments returns the comments of a card, oldest first
func (s *Snapshot) Comments(cardID types.CardID) []models.Comment {
	out := s.state.Comments.Filter(func(c models.Comment) bool { return c.CardID == cardID })
	slices.SortStableFunc(out, func(a, b models.Comment) int {
		return cmp.Or(a.CreatedAt.Compare(b.CreatedAt), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// Users

// User returns one user
func (s *Snapshot) User(id types.UserID) (models.User, bool) {
	return s.state.Users.Get(id)
}

// Users returns every user sorted by name
func (s *Snapshot) Users() []models.User {
	out := s.state.Users.Filter(func(models.User) bool { return true })
	slices.SortStableFunc(out, func(a, b models.User) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return out
}

// UserByEmail finds a user by email, ignoring case
func (s *Snapshot) UserByEmail(email string) (models.User, bool) {
	for _, u := range s.state.Users.All() {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}
