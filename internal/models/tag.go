package models

import "github.com/thenoetrevino/boardstore/internal/types"

// Tag is a board-scoped label that can be attached to cards of that board
type Tag struct {
	ID      types.TagID
	Name    string
	Color   string // Hex color code (e.g., "#7D56F4")
	BoardID types.BoardID
}

// Clone returns a copy
func (t Tag) Clone() Tag { return t }
