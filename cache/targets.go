package cache

import "fmt"

// LoadTargets returns the stored target-directory list for a platform in
// its saved order.
func (c *Cache) LoadTargets(platform string) ([]string, error) {
	rows, err := c.db.Query(
		"SELECT path FROM target_directories WHERE platform = ? ORDER BY position",
		platform,
	)
	if err != nil {
		return nil, fmt.Errorf("load targets: %w", err)
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("scan target: %w", err)
		}
		paths = append(paths, p)
	}
	return paths, rows.Err()
}

// SaveTargets replaces the stored list for a platform, preserving the
// order of dirs. The replace is a single transaction.
func (c *Cache) SaveTargets(platform string, dirs []string) error {
	tx, err := c.db.Begin()
	if err != nil {
		return fmt.Errorf("begin targets: %w", err)
	}

	if _, err := tx.Exec("DELETE FROM target_directories WHERE platform = ?", platform); err != nil {
		tx.Rollback()
		return fmt.Errorf("clear targets: %w", err)
	}

	for i, dir := range dirs {
		_, err := tx.Exec(
			"INSERT INTO target_directories (platform, path, position) VALUES (?, ?, ?)",
			platform, dir, i,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("save target %s: %w", dir, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit targets: %w", err)
	}
	return nil
}
