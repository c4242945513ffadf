package move

import "github.com/thenoetrevino/boardstore/internal/store"

// Drag-intent errors
var (
	ErrUnknownKind   = store.InvalidInput("unknown item kind (must be list or card)")
	ErrMissingItem   = store.InvalidInput("item id cannot be empty")
	ErrMissingTarget = store.InvalidInput("destination parent id cannot be empty")
)
