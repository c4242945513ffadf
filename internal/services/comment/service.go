package comment

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/store"
	"github.com/thenoetrevino/boardstore/internal/types"
	"github.com/thenoetrevino/boardstore/internal/user"
)

// Service defines all comment-related business operations
type Service interface {
	// Read operations
	GetComment(ctx context.Context, id types.CommentID) (models.Comment, error)
	ListComments(ctx context.Context, cardID types.CardID) ([]models.Comment, error)

	// Write operations
	AddComment(ctx context.Context, req AddCommentRequest) (types.CommentID, error)
	DeleteComment(ctx context.Context, id types.CommentID) error
}

// AddCommentRequest encapsulates data for commenting on a card as the current user
type AddCommentRequest struct {
	CardID  types.CardID
	Content string
}

// service implements Service interface
type service struct {
	store   *store.Store
	current user.CurrentUserProvider
	logger  *slog.Logger
}

// NewService creates a new comment service
func NewService(s *store.Store, current user.CurrentUserProvider, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{store: s, current: current, logger: logger}
}

// GetComment retrieves a comment by ID
func (s *service) GetComment(ctx context.Context, id types.CommentID) (models.Comment, error) {
	c, ok := s.store.Snapshot().Comment(id)
	if !ok {
		return models.Comment{}, store.NotFound("comment", id)
	}
	return c, nil
}

// ListComments retrieves the comments of a card, oldest first
func (s *service) ListComments(ctx context.Context, cardID types.CardID) ([]models.Comment, error) {
	snap := s.store.Snapshot()
	if _, ok := snap.Card(cardID); !ok {
		return nil, store.NotFound("card", cardID)
	}
	return snap.Comments(cardID), nil
}

// AddComment attributes a new comment to the current user
func (s *service) AddComment(ctx context.Context, req AddCommentRequest) (types.CommentID, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return "", ErrEmptyContent
	}
	if store.TooLong(content, store.MaxCommentLength) {
		return "", ErrContentTooLong
	}
	if s.current == nil {
		return "", ErrNoCurrentUser
	}
	author, ok := s.current.CurrentUserID()
	if !ok {
		return "", ErrNoCurrentUser
	}

	id := types.NewCommentID()
	err := s.store.Update(ctx, "comment.add", func(tx *store.Tx) error {
		c, err := tx.Card(req.CardID)
		if err != nil {
			return err
		}
		if _, err := tx.User(author); err != nil {
			return err
		}
		tx.Comments.Put(id, models.Comment{
			ID:        id,
			CardID:    c.ID,
			UserID:    author,
			Content:   content,
			CreatedAt: tx.Now(),
		})
		tx.Touch(tx.WorkspaceOfList(c.ListID))
		return nil
	})
	if err != nil {
		return "", err
	}

	s.logger.Debug("added comment", "comment_id", id, "card_id", req.CardID, "user_id", author)
	return id, nil
}

// DeleteComment deletes a comment
func (s *service) DeleteComment(ctx context.Context, id types.CommentID) error {
	err := s.store.Update(ctx, "comment.delete", func(tx *store.Tx) error {
		c, err := tx.Comment(id)
		if err != nil {
			return err
		}
		tx.Comments.Delete(id)
		tx.Touch(tx.WorkspaceOfCard(c.CardID))
		return nil
	})
	if err != nil {
		return err
	}

	s.logger.Debug("deleted comment", "comment_id", id)
	return nil
}
