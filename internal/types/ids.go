package types

import "github.com/google/uuid"

// ID types give each entity kind its own string type so a CardID can never be
// passed where a ListID is expected. Values are opaque; callers must not parse them.

// WorkspaceID identifies a top-level workspace
type WorkspaceID string

// BoardID identifies a board within a workspace
type BoardID string

// ListID identifies a list within a board
type ListID string

// CardID identifies a card within a list
type CardID string

// TagID identifies a board-scoped tag
type TagID string

// TodoID identifies a checklist item on a card
type TodoID string

// CommentID identifies a comment on a card
type CommentID string

// UserID identifies a shared user record
type UserID string

// newID returns a fresh random identifier. IDs are never reused.
func newID() string {
	return uuid.NewString()
}

// NewWorkspaceID generates a new workspace ID
func NewWorkspaceID() WorkspaceID { return WorkspaceID(newID()) }

// NewBoardID generates a new board ID
func NewBoardID() BoardID { return BoardID(newID()) }

// NewListID generates a new list ID
func NewListID() ListID { return ListID(newID()) }

// NewCardID generates a new card ID
func NewCardID() CardID { return CardID(newID()) }

// NewTagID generates a new tag ID
func NewTagID() TagID { return TagID(newID()) }

// NewTodoID generates a new todo ID
func NewTodoID() TodoID { return TodoID(newID()) }

// NewCommentID generates a new comment ID
func NewCommentID() CommentID { return CommentID(newID()) }

// NewUserID generates a new user ID
func NewUserID() UserID { return UserID(newID()) }

// String conversions keep log attributes and map keys readable.

func (id WorkspaceID) String() string { return string(id) }
func (id BoardID) String() string     { return string(id) }
func (id ListID) String() string      { return string(id) }
func (id CardID) String() string      { return string(id) }
func (id TagID) String() string       { return string(id) }
func (id TodoID) String() string      { return string(id) }
func (id CommentID) String() string   { return string(id) }
func (id UserID) String() string      { return string(id) }
