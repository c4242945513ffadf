package seed

import (
	"fmt"

	"github.com/thenoetrevino/boardstore/internal/types"
)

// Refs maps fixture keys to the ids the store generated for them
type Refs struct {
	Users      map[string]types.UserID
	Workspaces map[string]types.WorkspaceID
	Boards     map[string]types.BoardID
	Lists      map[string]types.ListID
	Cards      map[string]types.CardID
	Tags       map[string]types.TagID
	Todos      map[string]types.TodoID
}

// NewRefs returns empty reference maps
func NewRefs() *Refs {
	return &Refs{
		Users:      make(map[string]types.UserID),
		Workspaces: make(map[string]types.WorkspaceID),
		Boards:     make(map[string]types.BoardID),
		Lists:      make(map[string]types.ListID),
		Cards:      make(map[string]types.CardID),
		Tags:       make(map[string]types.TagID),
		Todos:      make(map[string]types.TodoID),
	}
}

// Lookup resolves key in m
func Lookup[ID ~string](m map[string]ID, kind, key string) (ID, error) {
	id, ok := m[key]
	if !ok {
		return "", fmt.Errorf("unknown %s key %q", kind, key)
	}
	return id, nil
}

// Bind records key for id. An empty key is ignored; a reused key is an error.
func Bind[ID ~string](m map[string]ID, kind, key string, id ID) error {
	if key == "" {
		return nil
	}
	if _, exists := m[key]; exists {
		return fmt.Errorf("duplicate %s key %q", kind, key)
	}
	m[key] = id
	return nil
}
