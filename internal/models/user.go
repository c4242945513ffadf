package models

import "github.com/thenoetrevino/boardstore/internal/types"

// User is a shared record referenced by workspaces, boards, cards and comments.
// Users are never owned by another entity and are never cascade-deleted.
type User struct {
	ID     types.UserID
	Name   string
	Email  string
	Avatar string
}

// Clone returns a copy
func (u User) Clone() User { return u }
