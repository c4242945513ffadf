package tables

import (
	"errors"
	"fmt"
	"slices"

	"github.com/thenoetrevino/boardstore/internal/types"
)

// CheckIntegrity verifies every cross-table invariant and returns all
// violations joined together, or nil when the state is consistent.
func (s *State) CheckIntegrity() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	for id, ws := range s.Workspaces.All() {
		if dup, ok := firstDuplicate(ws.BoardIDs); ok {
			fail("workspace %s: board %s listed twice", id, dup)
		}
		if dup, ok := firstDuplicate(ws.Members); ok {
			fail("workspace %s: member %s listed twice", id, dup)
		}
		for _, bid := range ws.BoardIDs {
			board, ok := s.Boards.Get(bid)
			if !ok {
				fail("workspace %s: dangling board %s", id, bid)
				continue
			}
			if board.WorkspaceID != id {
				fail("workspace %s: board %s points to workspace %s", id, bid, board.WorkspaceID)
			}
		}
		s.checkUsers(fail, "workspace "+id.String(), ws.Members)
	}

	for id, board := range s.Boards.All() {
		ws, ok := s.Workspaces.Get(board.WorkspaceID)
		if !ok || !slices.Contains(ws.BoardIDs, id) {
			fail("board %s: orphaned from workspace %s", id, board.WorkspaceID)
		}
		if dup, ok := firstDuplicate(board.ListIDs); ok {
			fail("board %s: list %s listed twice", id, dup)
		}
		if dup, ok := firstDuplicate(board.Members); ok {
			fail("board %s: member %s listed twice", id, dup)
		}
		for _, lid := range board.ListIDs {
			list, ok := s.Lists.Get(lid)
			if !ok {
				fail("board %s: dangling list %s", id, lid)
				continue
			}
			if list.BoardID != id {
				fail("board %s: list %s points to board %s", id, lid, list.BoardID)
			}
		}
		s.checkUsers(fail, "board "+id.String(), board.Members)
	}

	for id, list := range s.Lists.All() {
		board, ok := s.Boards.Get(list.BoardID)
		if !ok || !slices.Contains(board.ListIDs, id) {
			fail("list %s: orphaned from board %s", id, list.BoardID)
		}
		if dup, ok := firstDuplicate(list.CardIDs); ok {
			fail("list %s: card %s listed twice", id, dup)
		}
		for _, cid := range list.CardIDs {
			card, ok := s.Cards.Get(cid)
			if !ok {
				fail("list %s: dangling card %s", id, cid)
				continue
			}
			if card.ListID != id {
				fail("list %s: card %s points to list %s", id, cid, card.ListID)
			}
		}
	}

	for id, card := range s.Cards.All() {
		list, ok := s.Lists.Get(card.ListID)
		if !ok || !slices.Contains(list.CardIDs, id) {
			fail("card %s: orphaned from list %s", id, card.ListID)
			continue
		}
		if dup, ok := firstDuplicate(card.TagIDs); ok {
			fail("card %s: tag %s listed twice", id, dup)
		}
		if dup, ok := firstDuplicate(card.AssignedUsers); ok {
			fail("card %s: user %s assigned twice", id, dup)
		}
		for _, tid := range card.TagIDs {
			tag, ok := s.Tags.Get(tid)
			if !ok {
				fail("card %s: dangling tag %s", id, tid)
				continue
			}
			if tag.BoardID != list.BoardID {
				fail("card %s: tag %s belongs to board %s, card is on %s", id, tid, tag.BoardID, list.BoardID)
			}
		}
		s.checkUsers(fail, "card "+id.String(), card.AssignedUsers)
	}

	for id, tag := range s.Tags.All() {
		if !s.Boards.Has(tag.BoardID) {
			fail("tag %s: dangling board %s", id, tag.BoardID)
		}
	}
	for id, todo := range s.Todos.All() {
		if !s.Cards.Has(todo.CardID) {
			fail("todo %s: dangling card %s", id, todo.CardID)
		}
	}
	for id, c := range s.Comments.All() {
		if !s.Cards.Has(c.CardID) {
			fail("comment %s: dangling card %s", id, c.CardID)
		}
		if !s.Users.Has(c.UserID) {
			fail("comment %s: dangling user %s", id, c.UserID)
		}
	}

	return errors.Join(errs...)
}

func (s *State) checkUsers(fail func(string, ...any), owner string, ids []types.UserID) {
	for _, uid := range ids {
		if !s.Users.Has(uid) {
			fail("%s: dangling user %s", owner, uid)
		}
	}
}

func firstDuplicate[K comparable](ids []K) (K, bool) {
	seen := make(map[K]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			return id, true
		}
		seen[id] = struct{}{}
	}
	var zero K
	return zero, false
}
