package user

import "github.com/thenoetrevino/boardstore/internal/store"

// User-related errors
var (
	// Validation errors
	ErrEmptyName    = store.InvalidInput("user name cannot be empty")
	ErrNameTooLong  = store.InvalidInput("user name cannot exceed 255 characters")
	ErrEmptyEmail   = store.InvalidInput("user email cannot be empty")
	ErrInvalidEmail = store.InvalidInput("user email must contain @")
	ErrEmailTaken   = store.InvalidInput("user email is already registered")

	// Business logic errors
	ErrUserNotFound = &store.Error{Code: store.CodeNotFound, Entity: "user"}
)
