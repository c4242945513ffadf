// Package ordering positions ids inside a parent's ordered child collection.
//
// The slice position is the only stored order. Every function here is pure:
// it returns a fresh slice and never writes to its input, so a committed
// snapshot can never be changed through an ordering call.
package ordering

import (
	"errors"
	"slices"
)

var (
	// ErrNotInCollection indicates the item is not a member of the collection
	ErrNotInCollection = errors.New("item is not in the collection")

	// ErrNegativeIndex indicates a destination index below zero
	ErrNegativeIndex = errors.New("destination index cannot be negative")

	// ErrAlreadyInCollection indicates an insert of an id that is already present
	ErrAlreadyInCollection = errors.New("item is already in the collection")
)

// Append returns the order a new item receives: the end of the collection.
func Append[ID comparable](ids []ID) int {
	return len(ids)
}

// clamp bounds index to [0, n].
func clamp(index, n int) int {
	return max(0, min(index, n))
}

// Insert returns a copy of ids with id placed at index. An index past the end
// appends.
func Insert[ID comparable](ids []ID, id ID, index int) []ID {
	out := make([]ID, 0, len(ids)+1)
	out = append(out, ids...)
	return slices.Insert(out, clamp(index, len(ids)), id)
}

// Remove returns a copy of ids without id. Remaining items keep their
// relative order, so their orders shift down to close the gap.
func Remove[ID comparable](ids []ID, id ID) ([]ID, bool) {
	i := slices.Index(ids, id)
	if i < 0 {
		return slices.Clone(ids), false
	}
	out := make([]ID, 0, len(ids)-1)
	out = append(out, ids[:i]...)
	return append(out, ids[i+1:]...), true
}

// Reorder moves id to index within the same collection. The index is clamped
// to the collection bounds. When the item already sits at the resulting
// position the input is returned unchanged with changed=false.
func Reorder[ID comparable](ids []ID, id ID, index int) (result []ID, changed bool, err error) {
	if index < 0 {
		return ids, false, ErrNegativeIndex
	}
	from := slices.Index(ids, id)
	if from < 0 {
		return ids, false, ErrNotInCollection
	}
	// After removal there are len-1 items, so the last valid slot is len-1.
	to := clamp(index, len(ids)-1)
	if to == from {
		return ids, false, nil
	}
	rest, _ := Remove(ids, id)
	return slices.Insert(rest, to, id), true, nil
}

// Transfer moves id out of src and into dst at index. The caller updates the
// item's parent reference in the same transaction.
func Transfer[ID comparable](src, dst []ID, id ID, index int) (newSrc, newDst []ID, err error) {
	if index < 0 {
		return src, dst, ErrNegativeIndex
	}
	if !slices.Contains(src, id) {
		return src, dst, ErrNotInCollection
	}
	if slices.Contains(dst, id) {
		return src, dst, ErrAlreadyInCollection
	}
	newSrc, _ = Remove(src, id)
	return newSrc, Insert(dst, id, index), nil
}

// OrderOf returns the zero-based order of id, derived from its position.
func OrderOf[ID comparable](ids []ID, id ID) (int, bool) {
	i := slices.Index(ids, id)
	return i, i >= 0
}
