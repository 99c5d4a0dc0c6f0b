package store

import (
	"context"
	"sort"
)

// Items provides typed access to the items/* subtree.
type Items struct {
	s Store
}

func NewItems(s Store) *Items { return &Items{s: s} }

// Get loads one item by ID.
func (it *Items) Get(ctx context.Context, id string) (*Item, error) {
	var item Item
	if err := it.s.Get(ctx, "items/"+id, &item); err != nil {
		return nil, err
	}
	item.ID = id
	return &item, nil
}

// All returns every item with IDs filled, ordered by child key. Push keys
// sort chronologically, so this is insertion order for both drivers. An empty
// subtree is not an error.
func (it *Items) All(ctx context.Context) ([]Item, error) {
	byID := make(map[string]Item)
	if err := it.s.Get(ctx, "items", &byID); err != nil {
		if err == ErrNotFound {
			return nil, nil
		}
		return nil, err
	}

	ids := make([]string, 0, len(byID))
	for id := range byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	items := make([]Item, 0, len(ids))
	for _, id := range ids {
		item := byID[id]
		item.ID = id
		items = append(items, item)
	}
	return items, nil
}

// Approved returns the approved items only; search never surfaces pending or
// rejected listings.
func (it *Items) Approved(ctx context.Context) ([]Item, error) {
	all, err := it.All(ctx)
	if err != nil {
		return nil, err
	}
	approved := make([]Item, 0, len(all))
	for _, item := range all {
		if item.Status == StatusApproved {
			approved = append(approved, item)
		}
	}
	return approved, nil
}

// SetStatus transitions an item's status.
func (it *Items) SetStatus(ctx context.Context, id, status string) error {
	return it.s.Update(ctx, "items/"+id, map[string]any{"status": status})
}

// Claims provides typed access to the claims/* subtree.
type Claims struct {
	s Store
}

func NewClaims(s Store) *Claims { return &Claims{s: s} }

// Get loads one claim by ID.
func (c *Claims) Get(ctx context.Context, id string) (*Claim, error) {
	var claim Claim
	if err := c.s.Get(ctx, "claims/"+id, &claim); err != nil {
		return nil, err
	}
	claim.ID = id
	return &claim, nil
}

// SaveReview persists the automated verdict and the recomputed status on a
// claim in one shallow merge.
func (c *Claims) SaveReview(ctx context.Context, id string, review AIReview, status string) error {
	return c.s.Update(ctx, "claims/"+id, map[string]any{
		"aiReview": review,
		"status":   status,
	})
}

// Resolve records an admin decision on a claim.
func (c *Claims) Resolve(ctx context.Context, id, status, note string) error {
	patch := map[string]any{"status": status}
	if note != "" {
		patch["adminNote"] = note
	}
	return c.s.Update(ctx, "claims/"+id, patch)
}
