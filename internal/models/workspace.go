package models

import (
	"slices"
	"time"

	"github.com/thenoetrevino/boardstore/internal/types"
)

// Workspace is the top-level container owning a set of boards.
// BoardIDs is a membership set; its iteration order carries no meaning.
type Workspace struct {
	ID          types.WorkspaceID
	Name        string
	Description string
	CreatedAt   time.Time
	Members     []types.UserID
	BoardIDs    []types.BoardID
}

// Clone returns a deep copy so callers can never alias store-owned slices
func (w Workspace) Clone() Workspace {
	w.Members = slices.Clone(w.Members)
	w.BoardIDs = slices.Clone(w.BoardIDs)
	return w
}
