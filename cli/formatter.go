package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"diskclean/scanner"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// printTable writes the listing in human-readable form, largest known
// sizes formatted with IEC units.
func printTable(entries []scanner.Entry, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)

	fmt.Fprintln(w, "SIZE\tTYPE\tPATH")
	for _, e := range entries {
		size := "-"
		if e.SizeKnown {
			size = humanize.IBytes(uint64(e.Size))
		}

		kind := "file"
		if e.IsDir {
			kind = "dir"
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", size, kind, e.Path)
	}

	var total int64
	for _, e := range entries {
		if e.SizeKnown {
			total += e.Size
		}
	}
	fmt.Fprintf(w, "\nTotal:\t\t%s (%d bytes)\n", humanize.IBytes(uint64(total)), total)

	return w.Flush()
}
