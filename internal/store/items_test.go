package store

import (
	"context"
	"testing"
)

func TestItemsAllOrderedAndApproved(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "items/a1", Item{Title: "Blue Water Bottle", Status: StatusApproved})
	s.Set(ctx, "items/a2", Item{Title: "Red Backpack", Status: StatusApproved})
	s.Set(ctx, "items/a3", Item{Title: "MacBook Charger", Status: StatusPending})

	items := NewItems(s)

	all, err := items.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 items, got %d", len(all))
	}
	if all[0].ID != "a1" || all[2].ID != "a3" {
		t.Errorf("items not in key order: %v, %v, %v", all[0].ID, all[1].ID, all[2].ID)
	}

	approved, err := items.Approved(ctx)
	if err != nil {
		t.Fatalf("Approved: %v", err)
	}
	if len(approved) != 2 {
		t.Errorf("expected 2 approved items, got %d", len(approved))
	}
	for _, item := range approved {
		if item.Status != StatusApproved {
			t.Errorf("unexpected status %q for %s", item.Status, item.ID)
		}
	}
}

func TestItemsEmptyStore(t *testing.T) {
	s := newTestStore(t)

	all, err := NewItems(s).All(context.Background())
	if err != nil {
		t.Fatalf("All on empty store: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected no items, got %d", len(all))
	}
}

func TestItemsSetStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "items/a1", Item{Title: "Bottle", Status: StatusPending})
	items := NewItems(s)

	if err := items.SetStatus(ctx, "a1", StatusApproved); err != nil {
		t.Fatalf("SetStatus: %v", err)
	}
	got, err := items.Get(ctx, "a1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusApproved {
		t.Errorf("status = %q, want %q", got.Status, StatusApproved)
	}
	if got.Title != "Bottle" {
		t.Errorf("status update dropped fields: %+v", got)
	}
}

func TestClaimsSaveReview(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	s.Set(ctx, "claims/c1", Claim{ItemID: "a1", Status: StatusPending})
	claims := NewClaims(s)

	review := AIReview{Approved: true, Reason: "details match", Confidence: 88, ReviewedAt: "2026-01-02T15:04:05Z"}
	if err := claims.SaveReview(ctx, "c1", review, StatusAIApproved); err != nil {
		t.Fatalf("SaveReview: %v", err)
	}

	got, err := claims.Get(ctx, "c1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != StatusAIApproved {
		t.Errorf("status = %q, want %q", got.Status, StatusAIApproved)
	}
	if got.AIReview == nil || got.AIReview.Confidence != 88 || !got.AIReview.Approved {
		t.Errorf("aiReview not persisted: %+v", got.AIReview)
	}
	if got.ItemID != "a1" {
		t.Errorf("merge dropped itemId: %+v", got)
	}
}
