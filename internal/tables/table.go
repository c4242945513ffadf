// Package tables holds the normalized entity tables of the board store.
//
// Tables are copy-on-write: cloning a State is O(number of tables), and a table's
// backing map is only copied the first time the clone writes to it. A State that
// has been published by the store is never written again, which is what lets
// readers hold it without locks.
package tables

import (
	"iter"
	"maps"
	"slices"
)

// Cloner is implemented by types that can deep-copy themselves.
type Cloner[T any] interface {
	Clone() T
}

// Table is a keyed collection of records of one entity kind.
type Table[K ~string, V Cloner[V]] struct {
	rows  map[K]V
	owned bool
}

// NewTable creates an empty table.
func NewTable[K ~string, V Cloner[V]]() *Table[K, V] {
	return &Table[K, V]{rows: make(map[K]V), owned: true}
}

// fork returns a table sharing this table's rows until the first write.
func (t *Table[K, V]) fork() *Table[K, V] {
	return &Table[K, V]{rows: t.rows, owned: false}
}

func (t *Table[K, V]) ensureOwned() {
	if t.owned {
		return
	}
	t.rows = maps.Clone(t.rows)
	if t.rows == nil {
		t.rows = make(map[K]V)
	}
	t.owned = true
}

// Len returns the number of rows.
func (t *Table[K, V]) Len() int {
	return len(t.rows)
}

// Has reports whether a row with the given key exists.
func (t *Table[K, V]) Has(id K) bool {
	_, ok := t.rows[id]
	return ok
}

// Get returns a clone of the row, or false if absent.
func (t *Table[K, V]) Get(id K) (V, bool) {
	row, ok := t.rows[id]
	if !ok {
		var zero V
		return zero, false
	}
	return row.Clone(), true
}

// Put inserts or replaces a row. The table takes ownership of row.
func (t *Table[K, V]) Put(id K, row V) {
	t.ensureOwned()
	t.rows[id] = row
}

// Delete removes a row. Deleting an absent key is a no-op.
func (t *Table[K, V]) Delete(id K) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	t.ensureOwned()
	delete(t.rows, id)
	return true
}

// Keys returns all keys in ascending order.
func (t *Table[K, V]) Keys() []K {
	return slices.Sorted(maps.Keys(t.rows))
}

// All returns an iterator over clones of all rows in key order.
func (t *Table[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, id := range t.Keys() {
			if !yield(id, t.rows[id].Clone()) {
				return
			}
		}
	}
}

// Filter returns clones of the rows matching keep, in key order.
func (t *Table[K, V]) Filter(keep func(V) bool) []V {
	var out []V
	for _, row := range t.All() {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}
