package todo

import "github.com/thenoetrevino/boardstore/internal/store"

// Todo-related errors
var (
	// Validation errors
	ErrEmptyText   = store.InvalidInput("todo text cannot be empty")
	ErrTextTooLong = store.InvalidInput("todo text cannot exceed 500 characters")

	// Business logic errors
	ErrTodoNotFound = &store.Error{Code: store.CodeNotFound, Entity: "todo"}
	ErrCardNotFound = &store.Error{Code: store.CodeNotFound, Entity: "card"}
)
