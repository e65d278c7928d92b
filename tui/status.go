package tui

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

func (a *App) updateHeader() {
	location := "Targets"
	if a.curPath != "" {
		location = a.replaceHomeWithTilde(a.curPath)
	}

	var total int64
	known := false
	for _, e := range a.entries {
		if e.SizeKnown {
			total += e.Size
			known = true
		}
	}

	status := fmt.Sprintf(" %s | %d items", location, len(a.entries))
	if known {
		status += fmt.Sprintf(" | Total: %s", humanize.IBytes(uint64(total)))
	}
	a.header.SetText(status)
}

func footerMenu() string {
	return " ↑/↓: Navigate  Enter: Open  u: Up  z: Toggle sizes  r: Rescan  d: Delete  c: Clear cache  t: Theme  q: Quit"
}

func footerLoading(path string) string {
	if path == "" {
		return " Loading..."
	}
	return " Loading..." + path
}

func footerNotice(text string) string {
	return " " + text
}
