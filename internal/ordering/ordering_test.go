package ordering

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

// ============================================================================
// Append / Insert / Remove
// ============================================================================

func TestAppend(t *testing.T) {
	if got := Append([]string{}); got != 0 {
		t.Errorf("Expected 0 for empty collection, got %d", got)
	}
	if got := Append([]string{"a", "b", "c"}); got != 3 {
		t.Errorf("Expected 3, got %d", got)
	}
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name  string
		ids   []string
		index int
		want  []string
	}{
		{"front", []string{"a", "b"}, 0, []string{"x", "a", "b"}},
		{"middle", []string{"a", "b"}, 1, []string{"a", "x", "b"}},
		{"end equals length", []string{"a", "b"}, 2, []string{"a", "b", "x"}},
		{"beyond length clamps", []string{"a", "b"}, 99, []string{"a", "b", "x"}},
		{"empty", nil, 0, []string{"x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Insert(tt.ids, "x", tt.index)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestInsert_DoesNotAliasInput(t *testing.T) {
	ids := make([]string, 2, 10)
	ids[0], ids[1] = "a", "b"

	_ = Insert(ids, "x", 0)

	if ids[0] != "a" || ids[1] != "b" {
		t.Errorf("Insert wrote to its input: %v", ids)
	}
}

func TestRemove(t *testing.T) {
	got, ok := Remove([]string{"a", "b", "c"}, "b")
	if !ok {
		t.Fatal("Expected removal to succeed")
	}
	if !slices.Equal(got, []string{"a", "c"}) {
		t.Errorf("Expected [a c], got %v", got)
	}

	got, ok = Remove([]string{"a"}, "z")
	if ok {
		t.Error("Expected removal of absent id to report false")
	}
	if !slices.Equal(got, []string{"a"}) {
		t.Errorf("Expected [a], got %v", got)
	}
}

// ============================================================================
// Reorder
// ============================================================================

func TestReorder(t *testing.T) {
	tests := []struct {
		name        string
		id          string
		index       int
		want        []string
		wantChanged bool
	}{
		{"down", "a", 2, []string{"b", "c", "a", "d", "e"}, true},
		{"up", "d", 0, []string{"d", "a", "b", "c", "e"}, true},
		{"to end by length", "b", 5, []string{"a", "c", "d", "e", "b"}, true},
		{"beyond end clamps", "b", 42, []string{"a", "c", "d", "e", "b"}, true},
		{"same index is no-op", "c", 2, []string{"a", "b", "c", "d", "e"}, false},
		{"last item to length is no-op", "e", 5, []string{"a", "b", "c", "d", "e"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids := []string{"a", "b", "c", "d", "e"}
			got, changed, err := Reorder(ids, tt.id, tt.index)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if changed != tt.wantChanged {
				t.Errorf("Expected changed=%v, got %v", tt.wantChanged, changed)
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
			if !slices.Equal(ids, []string{"a", "b", "c", "d", "e"}) {
				t.Errorf("Reorder wrote to its input: %v", ids)
			}
		})
	}
}

func TestReorder_Errors(t *testing.T) {
	ids := []string{"a", "b"}

	if _, _, err := Reorder(ids, "a", -1); !errors.Is(err, ErrNegativeIndex) {
		t.Errorf("Expected ErrNegativeIndex, got %v", err)
	}
	if _, _, err := Reorder(ids, "z", 0); !errors.Is(err, ErrNotInCollection) {
		t.Errorf("Expected ErrNotInCollection, got %v", err)
	}
}

// Reordering X already at index 2 in a 5-item collection to 2 leaves all orders unchanged.
func TestReorder_Idempotent(t *testing.T) {
	ids := []string{"a", "b", "x", "d", "e"}
	before := positions(ids)

	got, changed, err := Reorder(ids, "x", 2)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if changed {
		t.Error("Expected no change")
	}
	after := positions(got)
	for id, order := range before {
		if after[id] != order {
			t.Errorf("Order of %s changed from %d to %d", id, order, after[id])
		}
	}
}

// ============================================================================
// Transfer
// ============================================================================

func TestTransfer(t *testing.T) {
	src := []string{"c1", "c", "c2"}
	dst := []string{"d1"}

	newSrc, newDst, err := Transfer(src, dst, "c", 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !slices.Equal(newSrc, []string{"c1", "c2"}) {
		t.Errorf("Expected source [c1 c2], got %v", newSrc)
	}
	if !slices.Equal(newDst, []string{"c", "d1"}) {
		t.Errorf("Expected destination [c d1], got %v", newDst)
	}
	if order, _ := OrderOf(newDst, "c"); order != 0 {
		t.Errorf("Expected moved item at order 0, got %d", order)
	}
	if order, _ := OrderOf(newDst, "d1"); order != 1 {
		t.Errorf("Expected existing item at order 1, got %d", order)
	}
}

func TestTransfer_Errors(t *testing.T) {
	if _, _, err := Transfer([]string{"a"}, nil, "a", -1); !errors.Is(err, ErrNegativeIndex) {
		t.Errorf("Expected ErrNegativeIndex, got %v", err)
	}
	if _, _, err := Transfer([]string{"a"}, nil, "z", 0); !errors.Is(err, ErrNotInCollection) {
		t.Errorf("Expected ErrNotInCollection, got %v", err)
	}
	if _, _, err := Transfer([]string{"a"}, []string{"a"}, "a", 0); !errors.Is(err, ErrAlreadyInCollection) {
		t.Errorf("Expected ErrAlreadyInCollection, got %v", err)
	}
}

func TestTransfer_IndexBeyondLengthAppends(t *testing.T) {
	_, dst, err := Transfer([]string{"a"}, []string{"b", "c"}, "a", 10)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !slices.Equal(dst, []string{"b", "c", "a"}) {
		t.Errorf("Expected [b c a], got %v", dst)
	}
}

// ============================================================================
// Density property
// ============================================================================

// After any sequence of inserts, reorders and transfers, both collections hold
// each id once and orders form 0..n-1.
func TestDensity_RandomSequence(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	a := []int{}
	b := []int{}
	next := 0

	for step := 0; step < 2000; step++ {
		switch r.IntN(3) {
		case 0:
			if r.IntN(2) == 0 {
				a = Insert(a, next, r.IntN(len(a)+2))
			} else {
				b = Insert(b, next, r.IntN(len(b)+2))
			}
			next++
		case 1:
			if len(a) > 0 {
				var err error
				a, _, err = Reorder(a, a[r.IntN(len(a))], r.IntN(len(a)+2))
				if err != nil {
					t.Fatalf("step %d: reorder failed: %v", step, err)
				}
			}
		case 2:
			if len(a) > 0 {
				var err error
				a, b, err = Transfer(a, b, a[r.IntN(len(a))], r.IntN(len(b)+2))
				if err != nil {
					t.Fatalf("step %d: transfer failed: %v", step, err)
				}
			}
		}
	}

	if len(a)+len(b) != next {
		t.Fatalf("Expected %d items total, got %d", next, len(a)+len(b))
	}
	for _, ids := range [][]int{a, b} {
		pos := positions(ids)
		if len(pos) != len(ids) {
			t.Fatalf("Duplicate ids in collection %v", ids)
		}
		for i, id := range ids {
			if pos[id] != i {
				t.Fatalf("Order of %d is %d, expected %d", id, pos[id], i)
			}
		}
	}
}

func positions[ID comparable](ids []ID) map[ID]int {
	out := make(map[ID]int, len(ids))
	for i, id := range ids {
		out[id] = i
	}
	return out
}
