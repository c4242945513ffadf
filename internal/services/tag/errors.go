package tag

import "github.com/thenoetrevino/boardstore/internal/store"

// Tag-related errors
var (
	// Validation errors
	ErrEmptyName    = store.InvalidInput("tag name cannot be empty")
	ErrNameTooLong  = store.InvalidInput("tag name cannot exceed 255 characters")
	ErrInvalidColor = store.InvalidInput("invalid color format (must be hex color like #FFFFFF)")

	// Business logic errors
	ErrTagNotFound   = &store.Error{Code: store.CodeNotFound, Entity: "tag"}
	ErrBoardNotFound = &store.Error{Code: store.CodeNotFound, Entity: "board"}
)
