package relations

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/boardstore/internal/models"
	"github.com/thenoetrevino/boardstore/internal/tables"
	"github.com/thenoetrevino/boardstore/internal/types"
)

func TestAdd_Idempotent(t *testing.T) {
	set, changed := Add([]types.UserID{}, "u-1")
	assert.True(t, changed)

	set, changed = Add(set, "u-1")
	assert.False(t, changed)
	assert.Equal(t, []types.UserID{"u-1"}, set)
}

func TestRemove_Idempotent(t *testing.T) {
	set, changed := Remove([]types.UserID{"u-1", "u-2"}, "u-1")
	assert.True(t, changed)
	assert.Equal(t, []types.UserID{"u-2"}, set)

	set, changed = Remove(set, "u-1")
	assert.False(t, changed)
	assert.Equal(t, []types.UserID{"u-2"}, set)
}

func TestAdd_DoesNotAliasInput(t *testing.T) {
	base := make([]types.TagID, 1, 8)
	base[0] = "t-1"

	a, _ := Add(base, "t-2")
	b, _ := Add(base, "t-3")

	assert.Equal(t, []types.TagID{"t-1", "t-2"}, a)
	assert.Equal(t, []types.TagID{"t-1", "t-3"}, b)
}

func TestToggle(t *testing.T) {
	set, _ := Toggle([]types.TagID(nil), "t-1", true)
	set, changed := Toggle(set, "t-1", true)
	assert.False(t, changed)
	assert.Len(t, set, 1)

	set, changed = Toggle(set, "t-1", false)
	assert.True(t, changed)
	assert.Empty(t, set)
}

// Deleting tag T attached to C1 and C3 (not C2) strips it from C1 and C3 only.
func TestSweepTag(t *testing.T) {
	s := tables.NewState()
	s.Cards.Put("c1", models.Card{ID: "c1", TagIDs: []types.TagID{"T", "other"}})
	s.Cards.Put("c2", models.Card{ID: "c2", TagIDs: []types.TagID{"other"}})
	s.Cards.Put("c3", models.Card{ID: "c3", TagIDs: []types.TagID{"T"}})

	swept := SweepTag(s, "T")
	assert.Equal(t, 2, swept)

	for _, id := range []types.CardID{"c1", "c2", "c3"} {
		card, ok := s.Cards.Get(id)
		require.True(t, ok)
		assert.False(t, slices.Contains(card.TagIDs, "T"), "card %s still has T", id)
	}
	c2, _ := s.Cards.Get("c2")
	assert.Equal(t, []types.TagID{"other"}, c2.TagIDs)
}

func TestPruneForeignTags(t *testing.T) {
	s := tables.NewState()
	s.Tags.Put("mine", models.Tag{ID: "mine", BoardID: "b-2"})
	s.Tags.Put("theirs", models.Tag{ID: "theirs", BoardID: "b-1"})
	s.Cards.Put("c1", models.Card{ID: "c1", TagIDs: []types.TagID{"theirs", "mine"}})
	s.Cards.Put("c2", models.Card{ID: "c2", TagIDs: []types.TagID{"mine"}})

	pruned := PruneForeignTags(s, []types.CardID{"c1", "c2", "missing"}, "b-2")
	assert.Equal(t, 1, pruned)

	c1, _ := s.Cards.Get("c1")
	assert.Equal(t, []types.TagID{"mine"}, c1.TagIDs)
	c2, _ := s.Cards.Get("c2")
	assert.Equal(t, []types.TagID{"mine"}, c2.TagIDs)
}
