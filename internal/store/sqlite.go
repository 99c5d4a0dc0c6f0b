package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Local is the embedded sqlite driver. Records live in a single table keyed
// by full path; reading a container path assembles its direct children into
// one object, mirroring what the Realtime Database returns.
type Local struct {
	db *sql.DB
}

const localSchema = `
CREATE TABLE IF NOT EXISTS records (
	path TEXT PRIMARY KEY,
	data TEXT NOT NULL
);
`

// OpenLocal opens (and if needed creates) the sqlite store at path. Use
// ":memory:" for tests.
func OpenLocal(path string) (*Local, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("creating data dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == ":memory:" {
		// A pooled second connection would see its own empty memory DB.
		db.SetMaxOpenConns(1)
	}
	if _, err := db.Exec(localSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrating database: %w", err)
	}
	return &Local{db: db}, nil
}

func (l *Local) Close() error { return l.db.Close() }

func (l *Local) Get(ctx context.Context, path string, dst any) error {
	path = strings.Trim(path, "/")

	var data string
	err := l.db.QueryRowContext(ctx, `SELECT data FROM records WHERE path = ?`, path).Scan(&data)
	switch {
	case err == nil:
		if err := json.Unmarshal([]byte(data), dst); err != nil {
			return fmt.Errorf("decoding %s: %w", path, err)
		}
		return nil
	case err != sql.ErrNoRows:
		return err
	}

	// No exact record: assemble direct children into an object.
	rows, err := l.db.QueryContext(ctx,
		`SELECT path, data FROM records WHERE path LIKE ? || '/%' ORDER BY rowid`, path)
	if err != nil {
		return err
	}
	defer rows.Close()

	children := make(map[string]json.RawMessage)
	for rows.Next() {
		var childPath, childData string
		if err := rows.Scan(&childPath, &childData); err != nil {
			return err
		}
		key := strings.TrimPrefix(childPath, path+"/")
		if strings.Contains(key, "/") {
			continue // deeper descendant, not a direct child
		}
		children[key] = json.RawMessage(childData)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if len(children) == 0 {
		return ErrNotFound
	}

	assembled, err := json.Marshal(children)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(assembled, dst); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func (l *Local) Set(ctx context.Context, path string, value any) error {
	path = strings.Trim(path, "/")
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	_, err = l.db.ExecContext(ctx,
		`INSERT INTO records (path, data) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET data = excluded.data`, path, string(data))
	return err
}

// Update shallow-merges patch into the record at path, creating it when
// absent (matching the Realtime Database PATCH behavior).
func (l *Local) Update(ctx context.Context, path string, patch map[string]any) error {
	path = strings.Trim(path, "/")

	current := make(map[string]any)
	if err := l.Get(ctx, path, &current); err != nil && err != ErrNotFound {
		return err
	}
	for k, v := range patch {
		current[k] = v
	}
	return l.Set(ctx, path, current)
}

func (l *Local) Push(ctx context.Context, path string, value any) (string, error) {
	key := pushKey()
	if err := l.Set(ctx, strings.Trim(path, "/")+"/"+key, value); err != nil {
		return "", err
	}
	return key, nil
}

func (l *Local) Delete(ctx context.Context, path string) error {
	path = strings.Trim(path, "/")
	_, err := l.db.ExecContext(ctx,
		`DELETE FROM records WHERE path = ? OR path LIKE ? || '/%'`, path, path)
	return err
}

// pushKey builds a child key that sorts chronologically, like the Realtime
// Database's push IDs: base-36 millisecond timestamp plus a random suffix.
func pushKey() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 36)
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return ts + suffix
}
