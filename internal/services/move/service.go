// Package move turns drag-and-drop intents into list and card moves.
package move

import (
	"context"
	"log/slog"

	"github.com/thenoetrevino/boardstore/internal/services/card"
	"github.com/thenoetrevino/boardstore/internal/services/list"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// ItemKind names what is being dragged
type ItemKind string

const (
	KindList ItemKind = "list"
	KindCard ItemKind = "card"
)

// Intent is what the drag layer reports when an item is dropped.
// For a list the parents are boards; for a card they are lists.
type Intent struct {
	ItemKind            ItemKind
	ItemID              string
	SourceParentID      string
	DestinationParentID string
	DestinationIndex    int
}

// Service applies drag intents
type Service interface {
	Apply(ctx context.Context, intent Intent) error
}

type service struct {
	lists  list.Service
	cards  card.Service
	logger *slog.Logger
}

// NewService creates a new move service on top of the list and card services
func NewService(lists list.Service, cards card.Service, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{lists: lists, cards: cards, logger: logger}
}

// Apply reorders when source and destination parents match and transfers
// otherwise. An intent whose source no longer holds the item is rejected.
func (s *service) Apply(ctx context.Context, intent Intent) error {
	if intent.ItemID == "" {
		return ErrMissingItem
	}
	if intent.DestinationParentID == "" {
		return ErrMissingTarget
	}

	s.logger.Debug("applying move intent",
		"kind", intent.ItemKind,
		"item", intent.ItemID,
		"from", intent.SourceParentID,
		"to", intent.DestinationParentID,
		"index", intent.DestinationIndex)

	switch intent.ItemKind {
	case KindList:
		return s.lists.MoveList(ctx, list.MoveListRequest{
			ListID:      types.ListID(intent.ItemID),
			BoardID:     types.BoardID(intent.DestinationParentID),
			Index:       intent.DestinationIndex,
			FromBoardID: types.BoardID(intent.SourceParentID),
		})
	case KindCard:
		return s.cards.MoveCard(ctx, card.MoveCardRequest{
			CardID:     types.CardID(intent.ItemID),
			ListID:     types.ListID(intent.DestinationParentID),
			Index:      intent.DestinationIndex,
			FromListID: types.ListID(intent.SourceParentID),
		})
	default:
		return ErrUnknownKind
	}
}
