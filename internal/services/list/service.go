package list

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/boardstore/internal/cascade"
	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/ordering"
	"github.com/thenoetrevino/boardstore/internal/relations"
	"github.com/thenoetrevino/boardstore/internal/store"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// Service defines all list-related business operations
type Service interface {
	// Read operations
	GetList(ctx context.Context, id types.ListID) (models.List, error)
	ListLists(ctx context.Context, boardID types.BoardID) ([]models.List, error)

	// Write operations
	CreateList(ctx context.Context, req CreateListRequest) (types.ListID, error)
	UpdateList(ctx context.Context, req UpdateListRequest) error
	DeleteList(ctx context.Context, id types.ListID) (cascade.Plan, error)

	// Positioning
	MoveList(ctx context.Context, req MoveListRequest) error
}

// CreateListRequest encapsulates data for creating a list at the end of a board
type CreateListRequest struct {
	BoardID types.BoardID
	Title   string
}

// UpdateListRequest encapsulates data for updating a list
type UpdateListRequest struct {
	ID    types.ListID
	Title *string
}

// MoveListRequest places a list at Index on BoardID, which may be its current board.
// When FromBoardID is set the move is rejected unless the list is still there.
type MoveListRequest struct {
	ListID      types.ListID
	BoardID     types.BoardID
	Index       int
	FromBoardID types.BoardID
}

// service implements Service interface
type service struct {
	store  *store.Store
	logger *slog.Logger
}

// NewService creates a new list service
func NewService(s *store.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{store: s, logger: logger}
}

// GetList retrieves a list by ID with its derived order
func (s *service) GetList(ctx context.Context, id types.ListID) (models.List, error) {
	l, ok := s.store.Snapshot().List(id)
	if !ok {
		return models.List{}, store.NotFound("list", id)
	}
	return l, nil
}

// ListLists retrieves the lists of a board in order
func (s *service) ListLists(ctx context.Context, boardID types.BoardID) ([]models.List, error) {
	snap := s.store.Snapshot()
	if _, ok := snap.Board(boardID); !ok {
		return nil, store.NotFound("board", boardID)
	}
	return snap.Lists(boardID), nil
}

// CreateList appends a new list to a board
func (s *service) CreateList(ctx context.Context, req CreateListRequest) (types.ListID, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return "", err
	}

	id := types.NewListID()
	err = s.store.Update(ctx, "list.create", func(tx *store.Tx) error {
		b, err := tx.Board(req.BoardID)
		if err != nil {
			return err
		}
		tx.Lists.Put(id, models.List{ID: id, Title: title, BoardID: b.ID})
		b.ListIDs = ordering.Insert(b.ListIDs, id, ordering.Append(b.ListIDs))
		tx.Boards.Put(b.ID, b)
		tx.Touch(b.WorkspaceID)
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("created list", "list_id", id, "board_id", req.BoardID)
	return id, nil
}

// UpdateList updates a list's title
func (s *service) UpdateList(ctx context.Context, req UpdateListRequest) error {
	var title string
	var err error
	if req.Title != nil {
		if title, err = validateTitle(*req.Title); err != nil {
			return err
		}
	}

	err = s.store.Update(ctx, "list.update", func(tx *store.Tx) error {
		l, err := tx.List(req.ID)
		if err != nil {
			return err
		}
		if req.Title != nil {
			l.Title = title
		}
		tx.Lists.Put(l.ID, l)
		tx.Touch(tx.WorkspaceOfBoard(l.BoardID))
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("updated list", "list_id", req.ID)
	return nil
}

// DeleteList deletes a list and its cards; the lists after it move up one
func (s *service) DeleteList(ctx context.Context, id types.ListID) (cascade.Plan, error) {
	var plan cascade.Plan
	err := s.store.Update(ctx, "list.delete", func(tx *store.Tx) error {
		if _, err := tx.List(id); err != nil {
			return err
		}
		tx.Touch(tx.WorkspaceOfList(id))
		p, err := cascade.PlanCascade(tx.State, cascade.KindList, string(id))
		if err != nil {
			return err
		}
		if err := cascade.Execute(tx.State, p); err != nil {
			return err
		}
		plan = p
		return nil
	})
	if err != nil {
		return cascade.Plan{}, err
	}

	s.logger.Debug("deleted list", "list_id", id, "cards", len(plan.Cards))
	return plan, nil
}

// MoveList reorders a list within its board or transfers it to another board.
// Cards moving with the list lose tag references that belong to the old board.
func (s *service) MoveList(ctx context.Context, req MoveListRequest) error {
	if req.Index < 0 {
		return ErrNegativeIndex
	}

	err := s.store.Update(ctx, "list.move", func(tx *store.Tx) error {
		l, err := tx.List(req.ListID)
		if err != nil {
			return err
		}
		if req.FromBoardID != "" && req.FromBoardID != l.BoardID {
			return ErrStaleSource
		}
		dst, err := tx.Board(req.BoardID)
		if err != nil {
			return err
		}

		if l.BoardID == dst.ID {
			ids, changed, err := ordering.Reorder(dst.ListIDs, l.ID, req.Index)
			if err != nil {
				return fmt.Errorf("failed to reorder list: %w", err)
			}
			if changed {
				dst.ListIDs = ids
				tx.Boards.Put(dst.ID, dst)
			}
			tx.Touch(dst.WorkspaceID)
			return nil
		}

		src, err := tx.Board(l.BoardID)
		if err != nil {
			return err
		}
		src.ListIDs, dst.ListIDs, err = ordering.Transfer(src.ListIDs, dst.ListIDs, l.ID, req.Index)
		if err != nil {
			return fmt.Errorf("failed to transfer list: %w", err)
		}
		l.BoardID = dst.ID
		tx.Boards.Put(src.ID, src)
		tx.Boards.Put(dst.ID, dst)
		tx.Lists.Put(l.ID, l)

		if pruned := relations.PruneForeignTags(tx.State, l.CardIDs, dst.ID); pruned > 0 {
			s.logger.Debug("pruned foreign tags", "list_id", l.ID, "count", pruned)
		}
		tx.Touch(src.WorkspaceID)
		tx.Touch(dst.WorkspaceID)
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("moved list", "list_id", req.ListID, "board_id", req.BoardID, "index", req.Index)
	return nil
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
