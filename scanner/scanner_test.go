package scanner

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"diskclean/cache"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), size), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func openTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.Open(filepath.Join(t.TempDir(), "admin.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

// runScan starts a scan and blocks until its terminal result.
func runScan(t *testing.T, target Target, wantSizes bool, c *cache.Cache) (*Scanner, Result) {
	t.Helper()
	s := New(target, wantSizes, c)
	s.Start()

	var res Result
	for r := range s.Result() {
		res = r
	}
	<-s.Done()
	return s, res
}

func entryByName(entries []Entry, name string) (Entry, bool) {
	for _, e := range entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

func TestListChildrenSizes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.txt"), 100)
	writeFile(t, filepath.Join(root, "sub", "b.txt"), 200)
	writeFile(t, filepath.Join(root, "sub", "deep", "c.txt"), 50)

	_, res := runScan(t, Dir(root), true, nil)

	if len(res.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(res.Entries))
	}

	a, ok := entryByName(res.Entries, "a.txt")
	if !ok || a.IsDir || !a.SizeKnown || a.Size != 100 {
		t.Errorf("a.txt = %+v, want file of size 100", a)
	}

	sub, ok := entryByName(res.Entries, "sub")
	if !ok || !sub.IsDir || !sub.SizeKnown {
		t.Fatalf("sub = %+v, want sized directory", sub)
	}
	if sub.Size != 250 {
		t.Errorf("sub recursive size = %d, want 250", sub.Size)
	}
}

func TestListChildrenNoSizes(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "sub", "b.txt"), 200)
	writeFile(t, filepath.Join(root, "a.txt"), 100)

	c := openTestCache(t)
	s, res := runScan(t, Dir(root), false, c)

	if len(res.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(res.Entries))
	}
	for _, e := range res.Entries {
		if e.SizeKnown {
			t.Errorf("%s: SizeKnown = true, want false when sizing is off", e.Name)
		}
	}

	if s.FileCount() != 0 {
		t.Errorf("FileCount = %d, want 0 without sizing", s.FileCount())
	}

	n, err := c.Len()
	if err != nil {
		t.Fatalf("cache Len: %v", err)
	}
	if n != 0 {
		t.Errorf("cache has %d entries after no-size scan, want 0", n)
	}
}

func TestRootsPreserveOrder(t *testing.T) {
	small := t.TempDir()
	big := t.TempDir()
	writeFile(t, filepath.Join(small, "f"), 1)
	writeFile(t, filepath.Join(big, "f"), 100000)

	// Larger root first must stay first; order is display order.
	_, res := runScan(t, Roots([]string{big, small}), true, nil)
	if len(res.Entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(res.Entries))
	}
	if res.Entries[0].Path != big || res.Entries[1].Path != small {
		t.Errorf("order = [%s, %s], want [%s, %s]",
			res.Entries[0].Path, res.Entries[1].Path, big, small)
	}

	_, res = runScan(t, Roots([]string{small, big}), true, nil)
	if res.Entries[0].Path != small || res.Entries[1].Path != big {
		t.Errorf("reversed input did not preserve order: %+v", res.Entries)
	}
}

func TestMissingRootSkipped(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "f"), 10)
	missing := filepath.Join(root, "does-not-exist")

	_, res := runScan(t, Roots([]string{missing, root}), true, nil)

	if len(res.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(res.Entries))
	}
	if res.Entries[0].Path != root {
		t.Errorf("entry = %s, want %s", res.Entries[0].Path, root)
	}
}

func TestMissingDirTarget(t *testing.T) {
	_, res := runScan(t, Dir(filepath.Join(t.TempDir(), "gone")), true, nil)
	if len(res.Entries) != 0 {
		t.Fatalf("got %d entries for missing target, want 0", len(res.Entries))
	}
}

func TestFileTarget(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "lone.bin")
	writeFile(t, path, 4096)

	_, res := runScan(t, Dir(path), true, nil)

	if len(res.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(res.Entries))
	}
	e := res.Entries[0]
	if e.IsDir || !e.SizeKnown || e.Size != 4096 {
		t.Errorf("file target entry = %+v, want 4096-byte file", e)
	}
}

func TestRootNamesAreFullPaths(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "f"), 1)

	_, res := runScan(t, Roots([]string{root}), true, nil)
	if len(res.Entries) != 1 || res.Entries[0].Name != root {
		t.Fatalf("root entry name = %q, want full path %q", res.Entries[0].Name, root)
	}
}

func TestStartAfterCompletionIsNoOp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "f"), 1)

	s := New(Dir(root), true, nil)
	s.Start()
	<-s.Done()

	// A relaunched goroutine would send on and re-close the already
	// closed channels; Start on a finished Scanner must do nothing.
	s.Start()

	results := 0
	for range s.Result() {
		results++
	}
	if results != 1 {
		t.Fatalf("received %d results, want exactly 1", results)
	}
	if s.IsRunning() {
		t.Fatal("finished Scanner reports running after second Start")
	}
}

func TestStartAfterStopIsNoOp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "f"), 1)

	s := New(Dir(root), true, nil)
	s.Start()
	s.Stop()
	s.Start()

	if s.IsRunning() {
		t.Fatal("stopped Scanner reports running after restart attempt")
	}
	<-s.Done()
}

func TestStopIsSafe(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "f"), 1)

	s := New(Dir(root), true, nil)
	s.Start()
	s.Stop()

	select {
	case <-s.Done():
	default:
		t.Fatal("Done not closed after Stop")
	}
	if s.IsRunning() {
		t.Fatal("IsRunning after Stop")
	}

	// Stop again is a no-op.
	s.Stop()
}
