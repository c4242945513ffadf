package models

import (
	"slices"

	"github.com/thenoetrevino/boardstore/internal/types"
)

// List is an ordered container of cards within a board.
//
// Order is not stored. It is derived from the list's position in its board's
// ListIDs whenever the list is read out of the store.
type List struct {
	ID      types.ListID
	Title   string
	BoardID types.BoardID
	Order   int
	CardIDs []types.CardID
}

// Clone returns a deep copy
func (l List) Clone() List {
	l.CardIDs = slices.Clone(l.CardIDs)
	return l
}
