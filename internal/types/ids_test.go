package types

import "testing"

func TestNewIDs_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := NewCardID().String()
		if id == "" {
			t.Fatal("expected non-empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id generated: %s", id)
		}
		seen[id] = true
	}
}

func TestNewIDs_AllKinds(t *testing.T) {
	ids := []string{
		NewWorkspaceID().String(),
		NewBoardID().String(),
		NewListID().String(),
		NewCardID().String(),
		NewTagID().String(),
		NewTodoID().String(),
		NewCommentID().String(),
		NewUserID().String(),
	}
	for i, id := range ids {
		if len(id) != 36 {
			t.Errorf("id %d: expected 36-char uuid, got %q", i, id)
		}
	}
}
