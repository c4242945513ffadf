package todo

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/store"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// Service defines all todo-related business operations
type Service interface {
	// Read operations
	GetTodo(ctx context.Context, id types.TodoID) (models.Todo, error)
	ListTodos(ctx context.Context, cardID types.CardID) ([]models.Todo, error)

	// Write operations
	CreateTodo(ctx context.Context, req CreateTodoRequest) (types.TodoID, error)
	UpdateTodo(ctx context.Context, req UpdateTodoRequest) error
	ToggleTodo(ctx context.Context, id types.TodoID) (bool, error)
	DeleteTodo(ctx context.Context, id types.TodoID) error
}

// CreateTodoRequest encapsulates data for creating a todo on a card
type CreateTodoRequest struct {
	CardID types.CardID
	Text   string
}

// UpdateTodoRequest encapsulates data for updating a todo
type UpdateTodoRequest struct {
	ID        types.TodoID
	Text      *string
	Completed *bool
}

// service implements Service interface
type service struct {
	store  *store.Store
	logger *slog.Logger
}

// NewService creates a new todo service
func NewService(s *store.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{store: s, logger: logger}
}

// GetTodo retrieves a todo by ID
func (s *service) GetTodo(ctx context.Context, id types.TodoID) (models.Todo, error) {
	t, ok := s.store.Snapshot().Todo(id)
	if !ok {
		return models.Todo{}, store.NotFound("todo", id)
	}
	return t, nil
}

// ListTodos retrieves the todos of a card, oldest first
func (s *service) ListTodos(ctx context.Context, cardID types.CardID) ([]models.Todo, error) {
	snap := s.store.Snapshot()
	if _, ok := snap.Card(cardID); !ok {
		return nil, store.NotFound("card", cardID)
	}
	return snap.Todos(cardID), nil
}

// CreateTodo adds an open todo to a card
func (s *service) CreateTodo(ctx context.Context, req CreateTodoRequest) (types.TodoID, error) {
	text, err := validateText(req.Text)
	if err != nil {
		return "", err
	}

	id := types.NewTodoID()
	err = s.store.Update(ctx, "todo.create", func(tx *store.Tx) error {
		c, err := tx.Card(req.CardID)
		if err != nil {
			return err
		}
		tx.Todos.Put(id, models.Todo{ID: id, Text: text, CardID: c.ID, CreatedAt: tx.Now()})
		tx.Touch(tx.WorkspaceOfList(c.ListID))
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("created todo", "todo_id", id, "card_id", req.CardID)
	return id, nil
}

// UpdateTodo updates a todo's text or completion
func (s *service) UpdateTodo(ctx context.Context, req UpdateTodoRequest) error {
	var text string
	var err error
	if req.Text != nil {
		if text, err = validateText(*req.Text); err != nil {
			return err
		}
	}

	err = s.store.Update(ctx, "todo.update", func(tx *store.Tx) error {
		t, err := tx.Todo(req.ID)
		if err != nil {
			return err
		}
		if req.Text != nil {
			t.Text = text
		}
		if req.Completed != nil {
			t.Completed = *req.Completed
		}
		tx.Todos.Put(t.ID, t)
		tx.Touch(tx.WorkspaceOfCard(t.CardID))
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("updated todo", "todo_id", req.ID)
	return nil
}

// ToggleTodo flips completion and returns the new state
func (s *service) ToggleTodo(ctx context.Context, id types.TodoID) (bool, error) {
	var completed bool
	err := s.store.Update(ctx, "todo.toggle", func(tx *store.Tx) error {
		t, err := tx.Todo(id)
		if err != nil {
			return err
		}
		t.Completed = !t.Completed
		completed = t.Completed
		tx.Todos.Put(t.ID, t)
		tx.Touch(tx.WorkspaceOfCard(t.CardID))
		return nil
	})
	if err != nil {
		return false, err
	}
	return completed, nil
}

// DeleteTodo deletes a todo
func (s *service) DeleteTodo(ctx context.Context, id types.TodoID) error {
	err := s.store.Update(ctx, "todo.delete", func(tx *store.Tx) error {
		t, err := tx.Todo(id)
		if err != nil {
			return err
		}
		tx.Todos.Delete(id)
		tx.Touch(tx.WorkspaceOfCard(t.CardID))
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("deleted todo", "todo_id", id)
	return nil
}

func validateText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyText
	}
	if store.TooLong(text, store.MaxTodoLength) {
		return "", ErrTextTooLong
	}
	return text, nil
}
