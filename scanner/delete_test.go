package scanner

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDeleteFileAndMissing(t *testing.T) {
	root := t.TempDir()
	existing := filepath.Join(root, "existing_file")
	writeFile(t, existing, 10)
	missing := filepath.Join(root, "missing")

	removed := Delete([]string{existing, missing})

	if len(removed) != 1 || removed[0] != existing {
		t.Fatalf("removed = %v, want [%s]", removed, existing)
	}
	if _, err := os.Lstat(existing); !os.IsNotExist(err) {
		t.Errorf("existing file still present after delete")
	}
}

func TestDeleteDirectoryRecursive(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "tree")
	writeFile(t, filepath.Join(dir, "a", "b.txt"), 10)
	writeFile(t, filepath.Join(dir, "c.txt"), 10)

	removed := Delete([]string{dir})

	if len(removed) != 1 {
		t.Fatalf("removed = %v, want the directory", removed)
	}
	if _, err := os.Lstat(dir); !os.IsNotExist(err) {
		t.Errorf("directory still present after delete")
	}
}

func TestDeleteContinuesPastFailures(t *testing.T) {
	root := t.TempDir()
	first := filepath.Join(root, "first")
	second := filepath.Join(root, "second")
	writeFile(t, first, 1)
	writeFile(t, second, 1)

	removed := Delete([]string{filepath.Join(root, "nope"), first, second})

	if len(removed) != 2 {
		t.Fatalf("removed %d items, want 2", len(removed))
	}
	for _, p := range []string{first, second} {
		if _, err := os.Lstat(p); !os.IsNotExist(err) {
			t.Errorf("%s still present", p)
		}
	}
}
