package tag

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/relations"
	"github.com/thenoetrevino/boardstore/internal/store"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// Service defines all tag-related business operations
type Service interface {
	// Read operations
	GetTag(ctx context.Context, id types.TagID) (models.Tag, error)
	ListTags(ctx context.Context, boardID types.BoardID) ([]models.Tag, error)

	// Write operations
	CreateTag(ctx context.Context, req CreateTagRequest) (types.TagID, error)
	UpdateTag(ctx context.Context, req UpdateTagRequest) error
	DeleteTag(ctx context.Context, id types.TagID) (int, error)
}

// CreateTagRequest encapsulates data for creating a tag
type CreateTagRequest struct {
	BoardID types.BoardID
	Name    string
	Color   string // Hex color like #FF5733
}

// UpdateTagRequest encapsulates data for updating a tag
type UpdateTagRequest struct {
	ID    types.TagID
	Name  *string
	Color *string
}

// service implements Service interface
type service struct {
	store  *store.Store
	logger *slog.Logger
}

// NewService creates a new tag service
func NewService(s *store.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{store: s, logger: logger}
}

// GetTag retrieves a tag by ID
func (s *service) GetTag(ctx context.Context, id types.TagID) (models.Tag, error) {
	t, ok := s.store.Snapshot().Tag(id)
	if !ok {
		return models.Tag{}, store.NotFound("tag", id)
	}
	return t, nil
}

// ListTags retrieves the tags of a board sorted by name
func (s *service) ListTags(ctx context.Context, boardID types.BoardID) ([]models.Tag, error) {
	snap := s.store.Snapshot()
	if _, ok := snap.Board(boardID); !ok {
		return nil, store.NotFound("board", boardID)
	}
	return snap.Tags(boardID), nil
}

// CreateTag creates a new tag on a board
func (s *service) CreateTag(ctx context.Context, req CreateTagRequest) (types.TagID, error) {
	name, err := validateName(req.Name)
	if err != nil {
		return "", err
	}
	color := strings.TrimSpace(req.Color)
	if !store.ValidColor(color) {
		return "", ErrInvalidColor
	}

	id := types.NewTagID()
	err = s.store.Update(ctx, "tag.create", func(tx *store.Tx) error {
		b, err := tx.Board(req.BoardID)
		if err != nil {
			return err
		}
		tx.Tags.Put(id, models.Tag{ID: id, Name: name, Color: color, BoardID: b.ID})
		tx.Touch(b.WorkspaceID)
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("created tag", "tag_id", id, "board_id", req.BoardID)
	return id, nil
}

// UpdateTag updates an existing tag
func (s *service) UpdateTag(ctx context.Context, req UpdateTagRequest) error {
	var name, color string
	var err error
	if req.Name != nil {
		if name, err = validateName(*req.Name); err != nil {
			return err
		}
	}
	if req.Color != nil {
		color = strings.TrimSpace(*req.Color)
		if !store.ValidColor(color) {
			return ErrInvalidColor
		}
	}

	err = s.store.Update(ctx, "tag.update", func(tx *store.Tx) error {
		t, err := tx.Tag(req.ID)
		if err != nil {
			return err
		}
		if req.Name != nil {
			t.Name = name
		}
		if req.Color != nil {
			t.Color = color
		}
		tx.Tags.Put(t.ID, t)
		tx.Touch(tx.WorkspaceOfBoard(t.BoardID))
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("updated tag", "tag_id", req.ID)
	return nil
}

// DeleteTag deletes a tag and removes it from every card that carries it.
// It returns the number of cards that lost the tag.
func (s *service) DeleteTag(ctx context.Context, id types.TagID) (int, error) {
	var swept int
	err := s.store.Update(ctx, "tag.delete", func(tx *store.Tx) error {
		t, err := tx.Tag(id)
		if err != nil {
			return err
		}
		swept = relations.SweepTag(tx.State, id)
		tx.Tags.Delete(id)
		tx.Touch(tx.WorkspaceOfBoard(t.BoardID))
		return nil
	})
	if err != nil {
		return 0, err
	}

	s.logger.Debug("deleted tag", "tag_id", id, "cards", swept)
	return swept, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if store.TooLong(name, store.MaxTitleLength) {
		return "", ErrNameTooLong
	}
	return name, nil
}
