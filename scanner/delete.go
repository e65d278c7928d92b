package scanner

import (
	"log"
	"os"
)

// Delete removes each given file, or recursively removes each given
// directory. Per-item failures are logged and skipped so one undeletable
// item never blocks the rest; already-deleted items are not rolled back.
// It returns the paths that were actually removed, so callers can evict
// their cache entries.
func Delete(paths []string) []string {
	removed := make([]string, 0, len(paths))
	for _, path := range paths {
		info, err := os.Lstat(path)
		if err != nil {
			continue // gone already, or unreadable: skip
		}

		if info.IsDir() {
			err = os.RemoveAll(path)
		} else {
			err = os.Remove(path)
		}
		if err != nil {
			log.Printf("delete %s: %v", path, err)
			continue
		}
		removed = append(removed, path)
	}
	return removed
}
