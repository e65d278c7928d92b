// Package scanner computes recursive directory sizes asynchronously,
// reusing a path-keyed size cache whenever a directory's own modification
// time is unchanged since the cached value was recorded.
package scanner

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"diskclean/cache"
)

const (
	statusIdle int32 = iota
	statusRunning
	statusDone
)

// Scanner runs one scan of a Target on its own goroutine and streams
// zero or more Progress events followed by exactly one Result.
//
// A Scanner is single-use: create a new one per scan request.
type Scanner struct {
	target    Target
	wantSizes bool

	progress chan Progress
	result   chan Result

	// Closed when the scan goroutine exits; consumers can stop reading
	// progress and result after this fires.
	doneChan chan struct{}

	status int32 // idle | running

	// atomic counters, exposed for callers and tests
	fileCount int64
	cacheHits atomic.Int64

	startTime   time.Time
	elapsedTime atomic.Int64 // milliseconds

	ctx    context.Context
	cancel context.CancelFunc

	// Size cache; nil degrades to always-recompute.
	cache *cache.Cache
}

// New prepares a scan of target. c may be nil, in which case every
// directory size is recomputed and nothing is persisted.
func New(target Target, wantSizes bool, c *cache.Cache) *Scanner {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scanner{
		target:    target,
		wantSizes: wantSizes,
		progress:  make(chan Progress, 100),
		result:    make(chan Result, 1),
		doneChan:  make(chan struct{}),
		status:    statusIdle,
		startTime: time.Now(),
		ctx:       ctx,
		cancel:    cancel,
		cache:     c,
	}
}

// Start launches the scan goroutine. Calling Start on a running or
// finished Scanner is a no-op.
func (s *Scanner) Start() {
	if !atomic.CompareAndSwapInt32(&s.status, statusIdle, statusRunning) {
		return
	}
	s.startTime = time.Now()
	go func() {
		// done is terminal: the idle->running swap can never succeed
		// again, so a finished Scanner cannot relaunch and race the
		// closed channels. The store runs after doneChan closes so Stop
		// never observes done while the channels are still open.
		defer atomic.StoreInt32(&s.status, statusDone)
		defer close(s.doneChan)
		defer close(s.progress)
		defer close(s.result)

		s.scan()

		s.elapsedTime.Store(time.Since(s.startTime).Milliseconds())
	}()
}

// Stop cancels an in-flight scan and waits for the goroutine to exit.
// Partial results are discarded and the cache is left as it was before
// the scan began.
func (s *Scanner) Stop() {
	if !atomic.CompareAndSwapInt32(&s.status, statusRunning, statusDone) {
		return // not running
	}
	s.cancel()
	<-s.doneChan
}

func (s *Scanner) IsRunning() bool {
	return atomic.LoadInt32(&s.status) == statusRunning
}

func (s *Scanner) Progress() <-chan Progress {
	return s.progress
}

func (s *Scanner) Result() <-chan Result {
	return s.result
}

func (s *Scanner) Done() <-chan struct{} {
	return s.doneChan
}

// FileCount reports how many files the walk has visited so far. A scan
// satisfied entirely from cache visits none.
func (s *Scanner) FileCount() int64 {
	return atomic.LoadInt64(&s.fileCount)
}

// CacheHits reports how many directory sizes were served from cache.
func (s *Scanner) CacheHits() int64 {
	return s.cacheHits.Load()
}

func (s *Scanner) ElapsedTime() time.Duration {
	if elapsed := s.elapsedTime.Load(); elapsed != 0 {
		return time.Duration(elapsed) * time.Millisecond
	}
	return time.Since(s.startTime)
}

func (s *Scanner) scan() {
	var entries []Entry
	if s.target.dir != "" {
		entries = s.listChildren(s.target.dir)
	} else {
		entries = s.listRoots(s.target.roots)
	}

	if s.ctx.Err() != nil {
		return
	}

	select {
	case s.result <- Result{Entries: entries}:
	case <-s.ctx.Done():
	}
}

// listChildren produces one Entry per immediate child of dir. A dir that
// is actually a regular file reports its own stat size; a dir that no
// longer exists yields an empty listing.
func (s *Scanner) listChildren(dir string) []Entry {
	info, err := os.Stat(dir)
	if err != nil {
		return nil
	}

	if !info.IsDir() {
		e := Entry{Name: filepath.Base(dir), Path: dir}
		if s.wantSizes {
			e.Size = info.Size()
			e.SizeKnown = true
		}
		return []Entry{e}
	}

	children, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	entries := make([]Entry, 0, len(children))
	for _, child := range children {
		if s.ctx.Err() != nil {
			return nil
		}

		path := filepath.Join(dir, child.Name())
		s.reportProgress(path)

		e := Entry{Name: child.Name(), Path: path, IsDir: child.IsDir()}
		if s.wantSizes {
			if child.IsDir() {
				e.Size = s.dirSize(path)
			} else if fi, err := child.Info(); err == nil {
				e.Size = fi.Size()
			}
			e.SizeKnown = true
		}
		entries = append(entries, e)
	}
	return entries
}

// listRoots produces one Entry per root, in input order. Roots that no
// longer exist are silently skipped. Root entries carry the full path as
// their display name.
func (s *Scanner) listRoots(roots []string) []Entry {
	entries := make([]Entry, 0, len(roots))
	for _, root := range roots {
		if s.ctx.Err() != nil {
			return nil
		}

		s.reportProgress(root)

		if root == "" {
			continue
		}
		info, err := os.Stat(root)
		if err != nil {
			continue
		}

		e := Entry{Name: root, Path: root, IsDir: info.IsDir()}
		if s.wantSizes {
			if info.IsDir() {
				e.Size = s.dirSize(root)
			} else {
				e.Size = info.Size()
			}
			e.SizeKnown = true
		}
		entries = append(entries, e)
	}
	return entries
}

func (s *Scanner) reportProgress(path string) {
	select {
	case s.progress <- Progress{Path: path, Files: atomic.LoadInt64(&s.fileCount)}:
	default:
	}
}
