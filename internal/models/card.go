package models

import (
	"slices"
	"time"

	"github.com/thenoetrevino/boardstore/internal/types"
)

// Card is the leaf work item on a board.
//
// Order is derived from the card's position in its list's CardIDs, like List.Order.
// AssignedUsers and TagIDs are sets: no duplicates, order irrelevant.
type Card struct {
	ID            types.CardID
	Title         string
	Description   string
	ListID        types.ListID
	Order         int
	CreatedAt     time.Time
	AssignedUsers []types.UserID
	TagIDs        []types.TagID
}

// Clone returns a deep copy
func (c Card) Clone() Card {
	c.AssignedUsers = slices.Clone(c.AssignedUsers)
	c.TagIDs = slices.Clone(c.TagIDs)
	return c
}
