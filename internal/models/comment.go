package models

import (
	"time"

	"github.com/thenoetrevino/boardstore/internal/types"
)

// Comment represents a note on a card, attributed to the user who wrote it
type Comment struct {
	ID        types.CommentID
	CardID    types.CardID
	UserID    types.UserID
	Content   string
	CreatedAt time.Time
}

// Clone returns a copy
func (c Comment) Clone() Comment { return c }
