package comment

import "github.com/thenoetrevino/boardstore/internal/store"

// Comment-related errors
var (
	// Validation errors
	ErrEmptyContent   = store.InvalidInput("comment content cannot be empty")
	ErrContentTooLong = store.InvalidInput("comment content cannot exceed 1000 characters")
	ErrNoCurrentUser  = store.InvalidInput("no current user")

	// Business logic errors
	ErrCommentNotFound = &store.Error{Code: store.CodeNotFound, Entity: "comment"}
	ErrCardNotFound    = &store.Error{Code: store.CodeNotFound, Entity: "card"}
)
