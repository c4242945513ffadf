package models

import (
	"time"

	"github.com/thenoetrevino/boardstore/internal/types"
)

// Todo is a checklist item belonging to one card
type Todo struct {
	ID        types.TodoID
	Text      string
	Completed bool
	CardID    types.CardID
	CreatedAt time.Time
}

// Clone returns a copy
func (t Todo) Clone() Todo { return t }
