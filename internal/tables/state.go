package tables

import (
	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// State is the full set of entity tables at one point in time.
type State struct {
	Workspaces *Table[types.WorkspaceID, models.Workspace]
	Boards     *Table[types.BoardID, models.Board]
	Lists      *Table[types.ListID, models.List]
	Cards      *Table[types.CardID, models.Card]
	Tags       *Table[types.TagID, models.Tag]
	Todos      *Table[types.TodoID, models.Todo]
	Comments   *Table[types.CommentID, models.Comment]
	Users      *Table[types.UserID, models.User]
}

// NewState creates a State with every table empty.
func NewState() *State {
	return &State{
		Workspaces: NewTable[types.WorkspaceID, models.Workspace](),
		Boards:     NewTable[types.BoardID, models.Board](),
		Lists:      NewTable[types.ListID, models.List](),
		Cards:      NewTable[types.CardID, models.Card](),
		Tags:       NewTable[types.TagID, models.Tag](),
		Todos:      NewTable[types.TodoID, models.Todo](),
		Comments:   NewTable[types.CommentID, models.Comment](),
		Users:      NewTable[types.UserID, models.User](),
	}
}

// Clone returns a State that can be written without affecting s.
func (s *State) Clone() *State {
	return &State{
		Workspaces: s.Workspaces.fork(),
		Boards:     s.Boards.fork(),
		Lists:      s.Lists.fork(),
		Cards:      s.Cards.fork(),
		Tags:       s.Tags.fork(),
		Todos:      s.Todos.fork(),
		Comments:   s.Comments.fork(),
		Users:      s.Users.fork(),
	}
}

// BoardOfCard resolves the board a card lives on through its list.
func (s *State) BoardOfCard(id types.CardID) (types.BoardID, bool) {
	card, ok := s.Cards.Get(id)
	if !ok {
		return "", false
	}
	list, ok := s.Lists.Get(card.ListID)
	if !ok {
		return "", false
	}
	return list.BoardID, true
}
