package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Local {
	t.Helper()
	s, err := OpenLocal(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSetAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	item := Item{Title: "Blue Water Bottle", Status: StatusApproved}
	if err := s.Set(ctx, "items/a1", item); err != nil {
		t.Fatalf("Set: %v", err)
	}

	var got Item
	if err := s.Get(ctx, "items/a1", &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Title != "Blue Water Bottle" || got.Status != StatusApproved {
		t.Errorf("got %+v", got)
	}
}

func TestGetMissingPath(t *testing.T) {
	s := newTestStore(t)

	var item Item
	if err := s.Get(context.Background(), "items/nope", &item); err != ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetAssemblesChildren(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "items/a1", Item{Title: "Bottle"})
	s.Set(ctx, "items/a2", Item{Title: "Backpack"})
	// A deeper descendant must not appear as a direct child.
	s.Set(ctx, "items/a2/extra", map[string]string{"x": "y"})

	byID := make(map[string]Item)
	if err := s.Get(ctx, "items", &byID); err != nil {
		t.Fatalf("Get items: %v", err)
	}
	if len(byID) != 2 {
		t.Fatalf("expected 2 children, got %d", len(byID))
	}
	if byID["a1"].Title != "Bottle" || byID["a2"].Title != "Backpack" {
		t.Errorf("got %+v", byID)
	}
}

func TestUpdateShallowMerge(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "claims/c1", Claim{ItemID: "a1", Status: StatusPending})
	if err := s.Update(ctx, "claims/c1", map[string]any{"status": StatusAIApproved}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	var got Claim
	if err := s.Get(ctx, "claims/c1", &got); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusAIApproved {
		t.Errorf("status = %q, want %q", got.Status, StatusAIApproved)
	}
	if got.ItemID != "a1" {
		t.Errorf("merge dropped itemId: %+v", got)
	}
}

func TestPushGeneratesOrderedKeys(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	k1, err := s.Push(ctx, "items", Item{Title: "first"})
	if err != nil {
		t.Fatalf("Push: %v", err)
	}
	time.Sleep(2 * time.Millisecond) // keys embed a millisecond timestamp
	k2, _ := s.Push(ctx, "items", Item{Title: "second"})
	if k1 == k2 {
		t.Fatal("push keys must be unique")
	}
	if k2 < k1 {
		t.Errorf("push keys should sort chronologically: %q then %q", k1, k2)
	}

	var got Item
	if err := s.Get(ctx, "items/"+k1, &got); err != nil {
		t.Fatalf("Get pushed item: %v", err)
	}
	if got.Title != "first" {
		t.Errorf("got %+v", got)
	}
}

func TestDeleteRemovesSubtree(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "items/a1", Item{Title: "Bottle"})
	s.Set(ctx, "items/a2", Item{Title: "Backpack"})

	if err := s.Delete(ctx, "items"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var item Item
	if err := s.Get(ctx, "items/a1", &item); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after subtree delete, got %v", err)
	}
}
