package list

import "github.com/thenoetrevino/boardstore/internal/store"

// List-related errors
var (
	// Validation errors
	ErrEmptyTitle   = store.InvalidInput("list title cannot be empty")
	ErrTitleTooLong = store.InvalidInput("list title cannot exceed 255 characters")

	// Move errors
	ErrNegativeIndex = store.InvalidTarget("destination index cannot be negative")
	ErrStaleSource   = store.InvalidTarget("list is no longer on the source board")

	// Business logic errors
	ErrListNotFound  = &store.Error{Code: store.CodeNotFound, Entity: "list"}
	ErrBoardNotFound = &store.Error{Code: store.CodeNotFound, Entity: "board"}
)
