// Package cascade computes and applies transitive deletes down the
// workspace > board > list > card hierarchy.
//
// Deletion is split into a pure planning step and an execute step. PlanCascade
// reads the state and returns every id that becomes unreachable; Execute removes
// exactly those ids. Users are referenced, never owned, and are never planned.
package cascade

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/ordering"
	"github.com/thenoetrevino/boardstore/internal/relations"
	"github.com/thenoetrevino/boardstore/internal/tables"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// Kind is the entity kind of a deletion root.
type Kind string

const (
	KindWorkspace Kind = "workspace"
	KindBoard     Kind = "board"
	KindList      Kind = "list"
	KindCard      Kind = "card"
)

// ErrRootNotFound indicates the deletion root does not exist
var ErrRootNotFound = errors.New("cascade root not found")

// ErrUnknownKind indicates a root kind the cascade engine does not handle
var ErrUnknownKind = errors.New("unknown cascade root kind")

// Plan lists the root and every descendant a delete will remove.
type Plan struct {
	RootKind Kind
	RootID   string

	Boards   []types.BoardID
	Lists    []types.ListID
	Cards    []types.CardID
	Tags     []types.TagID
	Todos    []types.TodoID
	Comments []types.CommentID
}

// Size returns the number of descendants, excluding the root.
func (p Plan) Size() int {
	return len(p.Boards) + len(p.Lists) + len(p.Cards) + len(p.Tags) + len(p.Todos) + len(p.Comments)
}

// Empty reports whether the root has no descendants.
func (p Plan) Empty() bool {
	return p.Size() == 0
}

// PlanCascade walks parent-to-child collections breadth first and collects
// everything under the root.
func PlanCascade(s *tables.State, kind Kind, id string) (Plan, error) {
	plan := Plan{RootKind: kind, RootID: id}

	var boardQueue []types.BoardID
	var listQueue []types.ListID
	var cardQueue []types.CardID

	switch kind {
	case KindWorkspace:
		ws, ok := s.Workspaces.Get(types.WorkspaceID(id))
		if !ok {
			return Plan{}, fmt.Errorf("%w: workspace %s", ErrRootNotFound, id)
		}
		boardQueue = ws.BoardIDs
	case KindBoard:
		if !s.Boards.Has(types.BoardID(id)) {
			return Plan{}, fmt.Errorf("%w: board %s", ErrRootNotFound, id)
		}
		boardQueue = []types.BoardID{types.BoardID(id)}
	case KindList:
		if !s.Lists.Has(types.ListID(id)) {
			return Plan{}, fmt.Errorf("%w: list %s", ErrRootNotFound, id)
		}
		listQueue = []types.ListID{types.ListID(id)}
	case KindCard:
		if !s.Cards.Has(types.CardID(id)) {
			return Plan{}, fmt.Errorf("%w: card %s", ErrRootNotFound, id)
		}
		cardQueue = []types.CardID{types.CardID(id)}
	default:
		return Plan{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	boards := make(map[types.BoardID]bool)
	for _, bid := range boardQueue {
		board, ok := s.Boards.Get(bid)
		if !ok {
			continue
		}
		boards[bid] = true
		if kind == KindWorkspace {
			plan.Boards = append(plan.Boards, bid)
		}
		listQueue = append(listQueue, board.ListIDs...)
	}

	for _, lid := range listQueue {
		list, ok := s.Lists.Get(lid)
		if !ok {
			continue
		}
		if kind != KindList {
			plan.Lists = append(plan.Lists, lid)
		}
		cardQueue = append(cardQueue, list.CardIDs...)
	}

	cards := make(map[types.CardID]bool, len(cardQueue))
	for _, cid := range cardQueue {
		if !s.Cards.Has(cid) {
			continue
		}
		cards[cid] = true
		if kind != KindCard {
			plan.Cards = append(plan.Cards, cid)
		}
	}

	// Tags are owned by boards, so only board and workspace deletes remove them.
	if len(boards) > 0 {
		for _, tag := range s.Tags.Filter(func(t models.Tag) bool { return boards[t.BoardID] }) {
			plan.Tags = append(plan.Tags, tag.ID)
		}
	}
	for _, todo := range s.Todos.Filter(func(t models.Todo) bool { return cards[t.CardID] }) {
		plan.Todos = append(plan.Todos, todo.ID)
	}
	for _, c := range s.Comments.Filter(func(c models.Comment) bool { return cards[c.CardID] }) {
		plan.Comments = append(plan.Comments, c.ID)
	}

	return plan, nil
}

// Execute removes the root and every planned descendant and detaches the root
// from its parent's collection. It must run inside a store transaction.
func Execute(s *tables.State, plan Plan) error {
	switch plan.RootKind {
	case KindWorkspace:
		if !s.Workspaces.Delete(types.WorkspaceID(plan.RootID)) {
			return fmt.Errorf("%w: workspace %s", ErrRootNotFound, plan.RootID)
		}
	case KindBoard:
		board, ok := s.Boards.Get(types.BoardID(plan.RootID))
		if !ok {
			return fmt.Errorf("%w: board %s", ErrRootNotFound, plan.RootID)
		}
		if ws, ok := s.Workspaces.Get(board.WorkspaceID); ok {
			ws.BoardIDs, _ = relations.Remove(ws.BoardIDs, board.ID)
			s.Workspaces.Put(ws.ID, ws)
		}
		s.Boards.Delete(board.ID)
	case KindList:
		list, ok := s.Lists.Get(types.ListID(plan.RootID))
		if !ok {
			return fmt.Errorf("%w: list %s", ErrRootNotFound, plan.RootID)
		}
		if board, ok := s.Boards.Get(list.BoardID); ok {
			board.ListIDs, _ = ordering.Remove(board.ListIDs, list.ID)
			s.Boards.Put(board.ID, board)
		}
		s.Lists.Delete(list.ID)
	case KindCard:
		card, ok := s.Cards.Get(types.CardID(plan.RootID))
		if !ok {
			return fmt.Errorf("%w: card %s", ErrRootNotFound, plan.RootID)
		}
		if list, ok := s.Lists.Get(card.ListID); ok {
			list.CardIDs, _ = ordering.Remove(list.CardIDs, card.ID)
			s.Lists.Put(list.ID, list)
		}
		s.Cards.Delete(card.ID)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, plan.RootKind)
	}

	for _, id := range plan.Boards {
		s.Boards.Delete(id)
	}
	for _, id := range plan.Lists {
		s.Lists.Delete(id)
	}
	for _, id := range plan.Cards {
		s.Cards.Delete(id)
	}
	for _, id := range plan.Tags {
		s.Tags.Delete(id)
	}
	for _, id := range plan.Todos {
		s.Todos.Delete(id)
	}
	for _, id := range plan.Comments {
		s.Comments.Delete(id)
	}
	return nil
}
