package card

import "github.com/thenoetrevino/boardstore/internal/store"

// Card-related errors
var (
	// Validation errors
	ErrEmptyTitle         = store.InvalidInput("card title cannot be empty")
	ErrTitleTooLong       = store.InvalidInput("card title cannot exceed 255 characters")
	ErrDescriptionTooLong = store.InvalidInput("card description cannot exceed 5000 characters")

	// Target errors
	ErrNegativeIndex = store.InvalidTarget("destination index cannot be negative")
	ErrTagNotOnBoard = store.InvalidTarget("tag belongs to a different board than the card")
	ErrStaleSource   = store.InvalidTarget("card is no longer in the source list")

	// Business logic errors
	ErrCardNotFound = &store.Error{Code: store.CodeNotFound, Entity: "card"}
	ErrListNotFound = &store.Error{Code: store.CodeNotFound, Entity: "list"}
	ErrUserNotFound = &store.Error{Code: store.CodeNotFound, Entity: "user"}
	ErrTagNotFound  = &store.Error{Code: store.CodeNotFound, Entity: "tag"}
)
