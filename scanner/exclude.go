package scanner

import "io/fs"

// excludeFromTotal reports whether a walked entry represents aliased
// storage rather than owned bytes. Symlinked files are excluded on every
// platform; Windows additionally excludes reparse-point entries.
func excludeFromTotal(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink != 0 {
		return true
	}
	return isReparsePoint(path)
}
