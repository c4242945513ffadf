package models

import (
	"slices"
	"time"

	"github.com/thenoetrevino/boardstore/internal/types"
)

// Board holds an ordered sequence of lists.
// The position of a list id in ListIDs is its order.
type Board struct {
	ID          types.BoardID
	Title       string
	Description string
	WorkspaceID types.WorkspaceID
	CreatedAt   time.Time
	Members     []types.UserID
	ListIDs     []types.ListID
}

// Clone returns a deep copy
func (b Board) Clone() Board {
	b.Members = slices.Clone(b.Members)
	b.ListIDs = slices.Clone(b.ListIDs)
	return b
}
