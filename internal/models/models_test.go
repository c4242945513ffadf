package models

import (
	"testing"

	"github.com/thenoetrevino/boardstore/internal/types"
)

// ============================================================================
// Clone Tests
// ============================================================================

func TestWorkspace_CloneDoesNotAlias(t *testing.T) {
	w := Workspace{
		ID:       "ws-1",
		Members:  []types.UserID{"u-1"},
		BoardIDs: []types.BoardID{"b-1"},
	}

	c := w.Clone()
	c.Members[0] = "u-2"
	c.BoardIDs = append(c.BoardIDs, "b-2")

	if w.Members[0] != "u-1" {
		t.Errorf("Expected original member u-1, got %s", w.Members[0])
	}
	if len(w.BoardIDs) != 1 {
		t.Errorf("Expected original to keep 1 board, got %d", len(w.BoardIDs))
	}
}

func TestBoard_CloneDoesNotAlias(t *testing.T) {
	b := Board{ListIDs: []types.ListID{"l-1", "l-2"}}

	c := b.Clone()
	c.ListIDs[0] = "l-9"

	if b.ListIDs[0] != "l-1" {
		t.Errorf("Expected original list l-1, got %s", b.ListIDs[0])
	}
}

func TestCard_CloneDoesNotAlias(t *testing.T) {
	card := Card{
		AssignedUsers: []types.UserID{"u-1"},
		TagIDs:        []types.TagID{"t-1"},
	}

	c := card.Clone()
	c.AssignedUsers[0] = "u-2"
	c.TagIDs[0] = "t-2"

	if card.AssignedUsers[0] != "u-1" || card.TagIDs[0] != "t-1" {
		t.Errorf("Clone aliased card slices: %+v", card)
	}
}

func TestList_CloneNilSlice(t *testing.T) {
	l := List{ID: "l-1"}
	c := l.Clone()
	if c.CardIDs != nil {
		t.Errorf("Expected nil CardIDs to stay nil, got %v", c.CardIDs)
	}
}
