package workspace

import "github.com/thenoetrevino/boardstore/internal/store"

// Workspace-related errors
var (
	// Validation errors
	ErrEmptyName          = store.InvalidInput("workspace name cannot be empty")
	ErrNameTooLong        = store.InvalidInput("workspace name cannot exceed 255 characters")
	ErrDescriptionTooLong = store.InvalidInput("workspace description cannot exceed 5000 characters")

	// Business logic errors
	ErrWorkspaceNotFound = &store.Error{Code: store.CodeNotFound, Entity: "workspace"}
)
