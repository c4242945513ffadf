// Package relations keeps membership sets and cross-entity references consistent.
package relations

import (
	"slices"

	"github.com/thenoetrevino/boardstore/internal/tables"
	"github.com/thenoetrevino/boardstore/internal/types"
)

// Add returns set with id present. Adding a present id is a no-op.
func Add[ID comparable](set []ID, id ID) ([]ID, bool) {
	if slices.Contains(set, id) {
		return set, false
	}
	out := make([]ID, 0, len(set)+1)
	out = append(out, set...)
	return append(out, id), true
}

// Remove returns set without id. Removing an absent id is a no-op.
func Remove[ID comparable](set []ID, id ID) ([]ID, bool) {
	i := slices.Index(set, id)
	if i < 0 {
		return set, false
	}
	out := make([]ID, 0, len(set)-1)
	out = append(out, set[:i]...)
	return append(out, set[i+1:]...), true
}

// Toggle sets the presence of id in set.
func Toggle[ID comparable](set []ID, id ID, present bool) ([]ID, bool) {
	if present {
		return Add(set, id)
	}
	return Remove(set, id)
}

// SweepTag removes tagID from every card in the table, regardless of board,
// and returns how many cards were changed.
func SweepTag(s *tables.State, tagID types.TagID) int {
	swept := 0
	for id, card := range s.Cards.All() {
		tags, changed := Remove(card.TagIDs, tagID)
		if !changed {
			continue
		}
		card.TagIDs = tags
		s.Cards.Put(id, card)
		swept++
	}
	return swept
}

// PruneForeignTags drops tag references on the given cards that do not belong
// to boardID. It runs after a list changes board so cards never carry another
// board's tags.
func PruneForeignTags(s *tables.State, cardIDs []types.CardID, boardID types.BoardID) int {
	pruned := 0
	for _, cid := range cardIDs {
		card, ok := s.Cards.Get(cid)
		if !ok {
			continue
		}
		kept := slices.DeleteFunc(slices.Clone(card.TagIDs), func(tid types.TagID) bool {
			tag, ok := s.Tags.Get(tid)
			return !ok || tag.BoardID != boardID
		})
		if len(kept) == len(card.TagIDs) {
			continue
		}
		pruned += len(card.TagIDs) - len(kept)
		card.TagIDs = kept
		s.Cards.Put(cid, card)
	}
	return pruned
}
