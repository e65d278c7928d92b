package scanner

// Entry is one row of a scan result: an immediate child of the scanned
// directory, or one configured root in multi-target mode.
type Entry struct {
	Name  string
	Path  string
	IsDir bool

	// Size is the recursive byte size for directories and the stat size
	// for files. Only meaningful when SizeKnown is true; listing without
	// sizes leaves it zero.
	Size      int64
	SizeKnown bool
}

// Progress carries the path most recently visited during a walk, so the
// caller can render "Loading.../current/path" feedback.
type Progress struct {
	Path  string
	Files int64 // files visited so far in this scan
}

// Result is the single terminal event of a scan.
type Result struct {
	Entries []Entry
}

// Target selects what a scan operates on: the children of one directory,
// or an ordered list of independent roots shown one row each.
type Target struct {
	dir   string
	roots []string
}

// Dir targets the immediate children of path.
func Dir(path string) Target {
	return Target{dir: path}
}

// Roots targets each path as its own result row, preserving order.
func Roots(paths []string) Target {
	return Target{roots: paths}
}
