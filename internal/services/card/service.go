package card

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

// Service defines all card-related business operations
type Service interface {
	// Read operations
	GetCard(ctx context.Context, id types.CardID) (models.Card, error)
	ListCards(ctx context.Context, listID types.ListID) ([]models.Card, error)

	// Write operations
	CreateCard(ctx context.Context, req CreateCardRequest) (types.CardID, error)
	UpdateCard(ctx context.Context, req UpdateCardRequest) error
	DeleteCard(ctx context.Context, id types.CardID) (cascade.Plan, error)

	// Positioning
	MoveCard(ctx context.Context, req MoveCardRequest) error

	// Relationship operations
	AssignUser(ctx context.Context, cardID types.CardID, userID types.UserID) error
	UnassignUser(ctx context.Context, cardID types.CardID, userID types.UserID) error
	AddTag(ctx context.Context, cardID types.CardID, tagID types.TagID) error
	RemoveTag(ctx context.Context, cardID types.CardID, tagID types.TagID) error
}

// CreateCardRequest encapsulates data for creating a card at the end of a list
type CreateCardRequest struct {
	ListID      types.ListID
	Title       string
	Description string
}

// UpdateCardRequest encapsulates data for updating a card
type UpdateCardRequest struct {
	ID          types.CardID
	Title       *string
	Description *string
}

// MoveCardRequest places a card at Index in ListID, which may be its current list.
// When FromListID is set the move is rejected unless the card is still there.
type MoveCardRequest struct {
	CardID     types.CardID
	ListID     types.ListID
	Index      int
	FromListID types.ListID
}

// service implements Service interface
type service struct {
	store  *store.Store
	logger *slog.Logger
}

// NewService creates a new card service
func NewService(s *store.Store, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{store: s, logger: logger}
}

// GetCard retrieves a card by ID with its derived order
func (s *service) GetCard(ctx context.Context, id types.CardID) (models.Card, error) {
	c, ok := s.store.Snapshot().Card(id)
	if !ok {
		return models.Card{}, store.NotFound("card", id)
	}
	return c, nil
}

// ListCards retrieves the cards of a list in order
func (s *service) ListCards(ctx context.Context, listID types.ListID) ([]models.Card, error) {
	snap := s.store.Snapshot()
	if _, ok := snap.List(listID); !ok {
		return nil, store.NotFound("list", listID)
	}
	return snap.Cards(listID), nil
}

// CreateCard appends a new card to a list
func (s *service) CreateCard(ctx context.Context, req CreateCardRequest) (types.CardID, error) {
	title, err := validateTitle(req.Title)
	if err != nil {
		return "", err
	}
	description, err := validateDescription(req.Description)
	if err != nil {
		return "", err
	}

	id := types.NewCardID()
	err = s.store.Update(ctx, "card.create", func(tx *store.Tx) error {
		l, err := tx.List(req.ListID)
		if err != nil {
			return err
		}
		tx.Cards.Put(id, models.Card{
			ID:          id,
			Title:       title,
			Description: description,
			ListID:      l.ID,
			CreatedAt:   tx.Now(),
		})
		l.CardIDs = ordering.Insert(l.CardIDs, id, ordering.Append(l.CardIDs))
		tx.Lists.Put(l.ID, l)
		tx.Touch(tx.WorkspaceOfBoard(l.BoardID))
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("created card", "card_id", id, "list_id", req.ListID)
	return id, nil
}

// UpdateCard updates a card's title and description
func (s *service) UpdateCard(ctx context.Context, req UpdateCardRequest) error {
	var title, description string
	var err error
	if req.Title != nil {
		if title, err = validateTitle(*req.Title); err != nil {
			return err
		}
	}
	if req.Description != nil {
		if description, err = validateDescription(*req.Description); err != nil {
			return err
		}
	}

	err = s.store.Update(ctx, "card.update", func(tx *store.Tx) error {
		c, err := tx.Card(req.ID)
		if err != nil {
			return err
		}
		if req.Title != nil {
			c.Title = title
		}
		if req.Description != nil {
			c.Description = description
		}
		tx.Cards.Put(c.ID, c)
		tx.Touch(tx.WorkspaceOfList(c.ListID))
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("updated card", "card_id", req.ID)
	return nil
}

// DeleteCard deletes a card with its todos and comments
func (s *service) DeleteCard(ctx context.Context, id types.CardID) (cascade.Plan, error) {
	var plan cascade.Plan
	err := s.store.Update(ctx, "card.delete", func(tx *store.Tx) error {
		if _, err := tx.Card(id); err != nil {
			return err
		}
		tx.Touch(tx.WorkspaceOfCard(id))
		p, err := cascade.PlanCascade(tx.State, cascade.KindCard, string(id))
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

	s.logger.Debug("deleted card", "card_id", id, "todos", len(plan.Todos), "comments", len(plan.Comments))
	return plan, nil
}

// MoveCard reorders a card within its list or transfers it to another list.
// A card landing on another board keeps only that board's tags.
func (s *service) MoveCard(ctx context.Context, req MoveCardRequest) error {
	if req.Index < 0 {
		return ErrNegativeIndex
	}

	err := s.store.Update(ctx, "card.move", func(tx *store.Tx) error {
		c, err := tx.Card(req.CardID)
		if err != nil {
			return err
		}
		if req.FromListID != "" && req.FromListID != c.ListID {
			return ErrStaleSource
		}
		dst, err := tx.List(req.ListID)
		if err != nil {
			return err
		}

		if c.ListID == dst.ID {
			ids, changed, err := ordering.Reorder(dst.CardIDs, c.ID, req.Index)
			if err != nil {
				return fmt.Errorf("failed to reorder card: %w", err)
			}
			if changed {
				dst.CardIDs = ids
				tx.Lists.Put(dst.ID, dst)
			}
			tx.Touch(tx.WorkspaceOfBoard(dst.BoardID))
			return nil
		}

		src, err := tx.List(c.ListID)
		if err != nil {
			return err
		}
		src.CardIDs, dst.CardIDs, err = ordering.Transfer(src.CardIDs, dst.CardIDs, c.ID, req.Index)
		if err != nil {
			return fmt.Errorf("failed to transfer card: %w", err)
		}
		c.ListID = dst.ID
		tx.Lists.Put(src.ID, src)
		tx.Lists.Put(dst.ID, dst)
		tx.Cards.Put(c.ID, c)

		if src.BoardID != dst.BoardID {
			relations.PruneForeignTags(tx.State, []types.CardID{c.ID}, dst.BoardID)
		}
		tx.Touch(tx.WorkspaceOfBoard(src.BoardID))
		tx.Touch(tx.WorkspaceOfBoard(dst.BoardID))
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("moved card", "card_id", req.CardID, "list_id", req.ListID, "index", req.Index)
	return nil
}

// AssignUser adds a user to the card's assignees; assigning twice is a no-op
func (s *service) AssignUser(ctx context.Context, cardID types.CardID, userID types.UserID) error {
	return s.setAssigned(ctx, "card.assign_user", cardID, userID, true)
}

// UnassignUser removes a user from the card's assignees; unassigning a non-assignee is a no-op
func (s *service) UnassignUser(ctx context.Context, cardID types.CardID, userID types.UserID) error {
	return s.setAssigned(ctx, "card.unassign_user", cardID, userID, false)
}

func (s *service) setAssigned(ctx context.Context, op string, cardID types.CardID, userID types.UserID, present bool) error {
	return s.store.Update(ctx, op, func(tx *store.Tx) error {
		c, err := tx.Card(cardID)
		if err != nil {
			return err
		}
		if _, err := tx.User(userID); err != nil {
			return err
		}
		users, changed := relations.Toggle(c.AssignedUsers, userID, present)
		if !changed {
			return nil
		}
		c.AssignedUsers = users
		tx.Cards.Put(c.ID, c)
		tx.Touch(tx.WorkspaceOfList(c.ListID))
		return nil
	})
}

// AddTag attaches a tag of the card's board to the card
func (s *service) AddTag(ctx context.Context, cardID types.CardID, tagID types.TagID) error {
	return s.setTagged(ctx, "card.add_tag", cardID, tagID, true)
}

// RemoveTag detaches a tag from the card
func (s *service) RemoveTag(ctx context.Context, cardID types.CardID, tagID types.TagID) error {
	return s.setTagged(ctx, "card.remove_tag", cardID, tagID, false)
}

func (s *service) setTagged(ctx context.Context, op string, cardID types.CardID, tagID types.TagID, present bool) error {
	return s.store.Update(ctx, op, func(tx *store.Tx) error {
		c, err := tx.Card(cardID)
		if err != nil {
			return err
		}
		if present {
			tag, err := tx.Tag(tagID)
			if err != nil {
				return err
			}
			if boardID, _ := tx.BoardOfCard(c.ID); tag.BoardID != boardID {
				return ErrTagNotOnBoard
			}
		}
		tags, changed := relations.Toggle(c.TagIDs, tagID, present)
		if !changed {
			return nil
		}
		c.TagIDs = tags
		tx.Cards.Put(c.ID, c)
		tx.Touch(tx.WorkspaceOfList(c.ListID))
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

func validateDescription(description string) (string, error) {
	description = strings.TrimSpace(description)
	if store.TooLong(description, store.MaxDescriptionLength) {
		return "", ErrDescriptionTooLong
	}
	return description, nil
}
