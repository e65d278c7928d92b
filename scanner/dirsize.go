package scanner

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/charlievieth/fastwalk"

	"diskclean/cache"
)

// progressEvery is the walk progress cadence in visited files. Tunable,
// not a correctness property.
const progressEvery = 100

// dirSize returns the recursive byte size of root, from cache when the
// directory's current mtime matches the recorded one, otherwise from a
// fresh walk.
//
// A walk accumulates every file's size into each ancestor directory up to
// and including root, then persists all of those sizes in one batch, so a
// later scan that descends into any subdirectory can itself hit cache.
// Symlinks (and reparse points on Windows) are excluded from totals, and
// individual stat failures are skipped rather than aborting the walk.
func (s *Scanner) dirSize(root string) int64 {
	// Stored targets arrive verbatim and may carry a trailing separator;
	// the ancestor loop compares against filepath.Dir's clean output.
	root = filepath.Clean(root)

	info, err := os.Stat(root)
	if err != nil {
		// Unreadable root: size 0, nothing cached.
		return 0
	}
	mtime := info.ModTime().Unix()

	if s.cache != nil {
		size, cachedMtime, ok, err := s.cache.Get(root)
		if err == nil && ok && cachedMtime == mtime {
			s.cacheHits.Add(1)
			return size
		}
		// Store errors degrade to a miss.
	}

	var mu sync.Mutex
	var total int64
	dirSizes := make(map[string]int64)

	conf := fastwalk.Config{Follow: false, NumWorkers: runtime.NumCPU()}

	walkFn := func(path string, d fs.DirEntry, err error) error {
		if s.ctx.Err() != nil {
			return fs.SkipAll
		}
		if err != nil {
			return nil // skip unreadable entries
		}
		if d.IsDir() {
			return nil
		}
		if excludeFromTotal(path, d) {
			return nil
		}

		fi, err := d.Info()
		if err != nil {
			return nil
		}
		size := fi.Size()

		count := atomic.AddInt64(&s.fileCount, 1)
		if count%progressEvery == 0 {
			s.reportProgress(path)
		}

		mu.Lock()
		total += size
		for dir := filepath.Dir(path); ; dir = filepath.Dir(dir) {
			dirSizes[dir] += size
			if dir == root || filepath.Dir(dir) == dir {
				break
			}
		}
		mu.Unlock()
		return nil
	}

	if err := fastwalk.Walk(&conf, root, walkFn); err != nil {
		log.Printf("walk %s: %v", root, err)
	}

	// A cancelled scan makes no partial-result guarantee: leave the
	// store exactly as it was.
	if s.ctx.Err() != nil {
		return total
	}

	if s.cache != nil {
		s.persistSizes(root, total, mtime, dirSizes)
	}
	return total
}

// persistSizes writes every directory discovered by the walk, plus root
// itself, in one atomic batch. Write failures only cost future reuse.
func (s *Scanner) persistSizes(root string, total, rootMtime int64, dirSizes map[string]int64) {
	entries := make([]cache.Entry, 0, len(dirSizes))
	for dir, size := range dirSizes {
		if dir == root {
			continue
		}
		fi, err := os.Stat(dir)
		if err != nil {
			continue
		}
		entries = append(entries, cache.Entry{Path: dir, Size: size, Mtime: fi.ModTime().Unix()})
	}
	entries = append(entries, cache.Entry{Path: root, Size: total, Mtime: rootMtime})

	if err := s.cache.PutBatch(entries); err != nil {
		log.Printf("cache write for %s: %v", root, err)
	}
}
