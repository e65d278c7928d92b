// Package cache persists directory sizes and the user's target-directory
// list in a single SQLite database.
//
// A size entry is trusted only while the directory's own modification time
// still equals the recorded one. That check is the caller's job; the store
// is a plain keyed lookup with atomic batch writes.
package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Entry is one cached directory size. Mtime is the directory's own
// modification time in Unix seconds at the moment Size was computed.
type Entry struct {
	Path  string
	Size  int64
	Mtime int64
}

type Cache struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS directory_size_cache (
    path TEXT PRIMARY KEY,
    size INTEGER NOT NULL,
    mtime INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS target_directories (
    platform TEXT NOT NULL,
    path TEXT NOT NULL,
    position INTEGER NOT NULL,
    PRIMARY KEY (platform, path)
);
`

// DefaultPath returns the default database location under the user's
// cache directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", "diskclean", "admin.db"), nil
}

// Open initializes (or reuses) the database at dbPath.
func Open(dbPath string) (*Cache, error) {
	if dbPath == "" {
		return nil, errors.New("database path cannot be empty")
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	db.Exec(`PRAGMA journal_mode=WAL;`)
	db.Exec(`PRAGMA synchronous=NORMAL;`)
	db.Exec(`PRAGMA busy_timeout=5000;`)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Cache{db: db}, nil
}

func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Get looks up the cached size and recorded mtime for path. ok is false
// when no row exists. Get never touches the filesystem.
func (c *Cache) Get(path string) (size, mtime int64, ok bool, err error) {
	err = c.db.QueryRow(
		"SELECT size, mtime FROM directory_size_cache WHERE path = ?", path,
	).Scan(&size, &mtime)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, 0, false, nil
	}
	if err != nil {
		return 0, 0, false, fmt.Errorf("lookup %s: %w", path, err)
	}
	return size, mtime, true, nil
}

// PutBatch upserts all entries inside one transaction so a crash mid-write
// cannot leave a size paired with a stale mtime.
func (c *Cache) PutBatch(entries []Entry) error {
	if len(entries) == 0 {
		return nil
	}

	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}

	stmt, err := tx.Prepare(`
        INSERT INTO directory_size_cache (path, size, mtime)
        VALUES (?, ?, ?)
        ON CONFLICT(path) DO UPDATE SET
            size = excluded.size,
            mtime = excluded.mtime
    `)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("prepare batch: %w", err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.Path, e.Size, e.Mtime); err != nil {
			tx.Rollback()
			return fmt.Errorf("write %s: %w", e.Path, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit batch: %w", err)
	}
	return nil
}

// Delete evicts a single path, typically after the directory was removed
// from disk.
func (c *Cache) Delete(path string) error {
	_, err := c.db.Exec("DELETE FROM directory_size_cache WHERE path = ?", path)
	return err
}

// Clear empties the whole size cache. The target-directory list is kept.
func (c *Cache) Clear() error {
	_, err := c.db.Exec("DELETE FROM directory_size_cache")
	return err
}

// Len reports the number of cached entries.
func (c *Cache) Len() (int, error) {
	var n int
	err := c.db.QueryRow("SELECT COUNT(*) FROM directory_size_cache").Scan(&n)
	return n, err
}
