package board

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/boardstore/internal/cascade"
	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/relations"
	"github.com/thenoetrevino/boardstore/internal/store"
	"github.com/thenoetrevino/boardstore/internal/types"
	"github.com/thenoetrevino/boardstore/internal/user"
)

// Service defines all board-related business operations
type Service interface {
	// Read operations
	GetBoard(ctx context.Context, id types.BoardID) (models.Board, error)
	ListBoards(ctx context.Context, workspaceID types.WorkspaceID) ([]models.Board, error)

	// Write operations
	CreateBoard(ctx context.Context, req CreateBoardRequest) (types.BoardID, error)
	UpdateBoard(ctx context.Context, req UpdateBoardRequest) error
	DeleteBoard(ctx context.Context, id types.BoardID) (cascade.Plan, error)

	// Membership
	AddMember(ctx context.Context, id types.BoardID, userID types.UserID) error
	RemoveMember(ctx context.Context, id types.BoardID, userID types.UserID) error
}

// CreateBoardRequest encapsulates data for creating a board
type CreateBoardRequest struct {
	WorkspaceID types.WorkspaceID
	Title       string
	Description string
}

// UpdateBoardRequest encapsulates data for updating a board
type UpdateBoardRequest struct {
	ID          types.BoardID
	Title       *string
	Description *string
}

// service implements Service interface
type service struct {
	store   *store.Store
	current user.CurrentUserProvider
	logger  *slog.Logger
}

// NewService creates a new board service
func NewService(s *store.Store, current user.CurrentUserProvider, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{store: s, current: current, logger: logger}
}

// GetBoard retrieves a board by ID
func (s *service) GetBoard(ctx context.Context, id types.BoardID) (models.Board, error) {
	b, ok := s.store.Snapshot().Board(id)
	if !ok {
		return models.Board{}, store.NotFound("board", id)
	}
	return b, nil
}

// ListBoards retrieves the boards of a workspace
func (s *service) ListBoards(ctx context.Context, workspaceID types.WorkspaceID) ([]models.Board, error) {
	snap := s.store.Snapshot()
	if _, ok := snap.Workspace(workspaceID); !ok {
		return nil, store.NotFound("workspace", workspaceID)
	}
	return snap.Boards(workspaceID), nil
}

// CreateBoard creates a board inside a workspace
func (s *service) CreateBoard(ctx context.Context, req CreateBoardRequest) (types.BoardID, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return "", err
	}
	description := strings.TrimSpace(req.Description)
	if store.TooLong(description, store.MaxDescriptionLength) {
		return "", ErrDescriptionTooLong
	}

	id := types.NewBoardID()
	err = s.store.Update(ctx, "board.create", func(tx *store.Tx) error {
		ws, err := tx.Workspace(req.WorkspaceID)
		if err != nil {
			return err
		}

		b := models.Board{
			ID:          id,
			Title:       title,
			Description: description,
			WorkspaceID: ws.ID,
			CreatedAt:   tx.Now(),
		}
		if s.current != nil {
			if creator, ok := s.current.CurrentUserID(); ok && tx.Users.Has(creator) {
				b.Members = []types.UserID{creator}
			}
		}
		tx.Boards.Put(id, b)

		ws.BoardIDs, _ = relations.Add(ws.BoardIDs, id)
		tx.Workspaces.Put(ws.ID, ws)
		tx.Touch(ws.ID)
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("created board", "board_id", id, "workspace_id", req.WorkspaceID)
	return id, nil
}

// UpdateBoard updates an existing board
func (s *service) UpdateBoard(ctx context.Context, req UpdateBoardRequest) error {
	var title, description string
	var err error
	if req.Title != nil {
		if title, err = validateTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Description != nil {
		description = strings.TrimSpace(*req.Description)
		if store.TooLong(description, store.MaxDescriptionLength) {
			return ErrDescriptionTooLong
		}
	}

	err = s.store.Update(ctx, "board.update", func(tx *store.Tx) error {
		b, err := tx.Board(req.ID)
		if err != nil {
			return err
		}
		if req.Title != nil {
			b.Title = title
		}
		if req.Description != nil {
			b.Description = description
		}
		tx.Boards.Put(b.ID, b)
		tx.Touch(b.WorkspaceID)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("updated board", "board_id", req.ID)
	return nil
}

// DeleteBoard deletes a board with its lists, cards and tags
func (s *service) DeleteBoard(ctx context.Context, id types.BoardID) (cascade.Plan, error) {
	var plan cascade.Plan
	err := s.store.Update(ctx, "board.delete", func(tx *store.Tx) error {
		b, err := tx.Board(id)
		if err != nil {
			return err
		}
		p, err := cascade.PlanCascade(tx.State, cascade.KindBoard, string(id))
		if err != nil {
			return err
		}
		if err := cascade.Execute(tx.State, p); err != nil {
			return err
		}
		tx.Touch(b.WorkspaceID)
		plan = p
		return nil
	})
	if err != nil {
		return cascade.Plan{}, err
	}

	s.logger.Debug("deleted board", "board_id", id, "lists", len(plan.Lists), "cards", len(plan.Cards))
	return plan, nil
}

// AddMember adds a user to the board; adding an existing member is a no-op
func (s *service) AddMember(ctx context.Context, id types.BoardID, userID types.UserID) error {
	return s.store.Update(ctx, "board.add_member", func(tx *store.Tx) error {
		b, err := tx.Board(id)
		if err != nil {
			return err
		}
		if _, err := tx.User(userID); err != nil {
			return err
		}
		members, changed := relations.Add(b.Members, userID)
		if !changed {
			return nil
		}
		b.Members = members
		tx.Boards.Put(id, b)
		tx.Touch(b.WorkspaceID)
		return nil
	})
}

// RemoveMember removes a user reference from the board
func (s *service) RemoveMember(ctx context.Context, id types.BoardID, userID types.UserID) error {
	return s.store.Update(ctx, "board.remove_member", func(tx *store.Tx) error {
		b, err := tx.Board(id)
		if err != nil {
			return err
		}
		if _, err := tx.User(userID); err != nil {
			return err
		}
		members, changed := relations.Remove(b.Members, userID)
		if !changed {
			return nil
		}
		b.Members = members
		tx.Boards.Put(id, b)
		tx.Touch(b.WorkspaceID)
		return nil
	})
}

func validateTitle(title string) (string, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", ErrEmptyTitle
	}
	if store.TooLong(title, store.MaxTitleLength) {
		return "", ErrTitleTooLong
	}
	return title, nil
}
