package tui

import (
	"fmt"
	"sort"
	"strings"

	"codeberg.org/tslocum/cview"
	"github.com/dustin/go-humanize"

	"diskclean/scanner"
)

func (a *App) replaceHomeWithTilde(p string) string {
	if after, ok := strings.CutPrefix(p, a.userHomeDir); ok {
		p = "~" + after
	}
	return p
}

func (a *App) buildTable() {
	theme := a.currentTheme
	table := a.table
	table.Clear()

	items := a.entries[:]
	// The target-list view keeps its configured order; inside a
	// directory the largest entries list first.
	if a.curPath != "" && a.wantSizes {
		items = append([]scanner.Entry(nil), items...)
		sort.SliceStable(items, func(i, j int) bool { return items[i].Size > items[j].Size })
	}

	for row, item := range items {
		sizeText := "   - "
		if item.SizeKnown {
			sizeText = fmt.Sprintf(" %s ", humanize.IBytes(uint64(item.Size)))
		}
		sizeCell := cview.NewTableCell(sizeText)
		sizeCell.SetTextColor(theme.sizeFg)
		sizeCell.SetAlign(cview.AlignRight)
		sizeCell.SetReference(item)
		table.SetCell(row, 0, sizeCell)

		name := a.replaceHomeWithTilde(item.Name)
		if item.IsDir {
			name += "/"
		}
		nameCell := cview.NewTableCell(" " + name)
		nameCell.SetTextColor(theme.fg)
		nameCell.SetAlign(cview.AlignLeft)
		nameCell.SetExpansion(1)
		table.SetCell(row, 1, nameCell)
	}

	table.SetBorder(false)
	table.SetBorders(false)
	table.SetSelectable(true, false)
	table.SetSeparator(' ')
}

// selectedEntry returns the entry bound to the highlighted row.
func (a *App) selectedEntry() (scanner.Entry, bool) {
	row, _ := a.table.GetSelection()
	cell := a.table.GetCell(row, 0) // reference is always on column 0
	if cell == nil {
		return scanner.Entry{}, false
	}
	entry, ok := cell.GetReference().(scanner.Entry)
	return entry, ok
}

// enterSelected descends into the highlighted directory and scans it.
func (a *App) enterSelected() {
	entry, ok := a.selectedEntry()
	if !ok || !entry.IsDir {
		return
	}

	a.navStack = append(a.navStack, a.curPath)
	a.curPath = entry.Path
	a.startScan()
}

// goUp retraces one navigation step, back to the target list at the top.
func (a *App) goUp() {
	if len(a.navStack) == 0 {
		return
	}
	a.curPath = a.navStack[len(a.navStack)-1]
	a.navStack = a.navStack[:len(a.navStack)-1]
	a.startScan()
}

// toggleSizes flips size display. Any in-flight scan is invalidated and a
// fresh one issued with the new setting.
func (a *App) toggleSizes() {
	a.wantSizes = !a.wantSizes
	a.startScan()
}

func (a *App) confirmDelete() {
	entry, ok := a.selectedEntry()
	if !ok {
		return
	}

	size := ""
	if entry.SizeKnown {
		size = fmt.Sprintf("\n\nSize: %s", humanize.IBytes(uint64(entry.Size)))
	}
	a.pendingDelete = entry.Path
	a.confirmModal.SetText(fmt.Sprintf("Delete '%s'?%s", a.replaceHomeWithTilde(entry.Path), size))
	a.showConfirm = true
	a.setRoot(a.confirmModal, false)
}

// deleteItem removes path from disk, evicts its cache entry and rescans
// the current view. The rescan goes through the uiUpdates funnel so the
// view state is only ever touched from the event loop.
func (a *App) deleteItem(path string) {
	go func() {
		removed := scanner.Delete([]string{path})
		if a.store != nil {
			for _, p := range removed {
				a.store.Delete(p)
			}
		}
		a.trySendUIUpdate(a.startScan)
	}()
}

func (a *App) showClearCache() {
	a.showClear = true
	a.setRoot(a.clearModal, false)
}

func (a *App) clearCache() {
	if a.store != nil {
		if err := a.store.Clear(); err == nil {
			a.trySendUIUpdate(func() { a.footer.SetText(footerNotice("Cache cleared")) })
		}
	}
	a.startScan()
}

func (a *App) showThemeSelector() {
	theme := a.currentTheme
	a.themeModal.SetText(fmt.Sprintf("Select Theme (Current: %s)", theme.Name))
	a.showTheme = true
	a.setRoot(a.themeModal, false)
}
