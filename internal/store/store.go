// Package store reads and writes item and claim records in a hierarchical
// key-value store. Two drivers exist: the hosted Firebase Realtime Database
// (REST) and an embedded sqlite file for development and tests. Both expose
// last-write-wins semantics; the service layers no further coordination on
// top.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/marvinridge/lostfound/internal/config"
)

// ErrNotFound is returned by Get when no record exists at the path.
var ErrNotFound = errors.New("record not found")

// Store is a hierarchical document store addressed by slash-separated paths
// (e.g. "items/abc123"). Get decodes the record at path into dst, which for
// container paths may be a map of children keyed by record ID.
type Store interface {
	Get(ctx context.Context, path string, dst any) error
	Set(ctx context.Context, path string, value any) error
	// Update shallow-merges patch into the record at path.
	Update(ctx context.Context, path string, patch map[string]any) error
	// Push appends value under a new chronologically-ordered child key and
	// returns that key.
	Push(ctx context.Context, path string, value any) (string, error)
	Delete(ctx context.Context, path string) error
}

// FromConfig opens the configured store driver.
func FromConfig(cfg config.StoreConfig) (Store, error) {
	switch cfg.Driver {
	case "firebase":
		if cfg.FirebaseURL == "" {
			return nil, fmt.Errorf("store driver firebase requires firebase_url")
		}
		return NewFirebase(cfg.FirebaseURL, cfg.FirebaseKey), nil
	case "local", "":
		return OpenLocal(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown store driver: %s", cfg.Driver)
	}
}
