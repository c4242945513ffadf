package board

import "github.com/thenoetrevino/boardstore/internal/store"

// Board-related errors
var (
	// Validation errors
	ErrEmptyTitle         = store.InvalidInput("board title cannot be empty")
	ErrTitleTooLong       = store.InvalidInput("board title cannot exceed 255 characters")
	ErrDescriptionTooLong = store.InvalidInput("board description cannot exceed 5000 characters")

	// Business logic errors
	ErrBoardNotFound     = &store.Error{Code: store.CodeNotFound, Entity: "board"}
	ErrWorkspaceNotFound = &store.Error{Code: store.CodeNotFound, Entity: "workspace"}
)
