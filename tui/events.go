package tui

import (
	"time"

	"codeberg.org/tslocum/cview"

	"diskclean/scanner"
)

// pollInterval is how often the footer reflects scan progress.
const pollInterval = 100 * time.Millisecond

func (a *App) trySendUIUpdate(f func()) {
	select {
	case a.uiUpdates <- f:
	default:
	}
}

// setRoot queues a SetRoot operation to avoid data races
func (a *App) setRoot(primitive cview.Primitive, focus bool) {
	a.app.QueueUpdateDraw(func() {
		a.app.SetRoot(primitive, focus)
	})
}

// startScan cancels any in-flight scan and launches a fresh one for the
// current view. Toggling sizes or navigating always goes through here, so
// at most one scan runs per view.
func (a *App) startScan() {
	if a.scanner != nil && a.scanner.IsRunning() {
		a.scanner.Stop()
	}

	var target scanner.Target
	if a.curPath != "" {
		target = scanner.Dir(a.curPath)
	} else {
		target = scanner.Roots(a.rootTargets)
	}

	s := scanner.New(target, a.wantSizes, a.store)
	a.scanner = s
	s.Start()

	a.trySendUIUpdate(func() {
		a.updateHeader()
		a.footer.SetText(footerLoading(""))
	})

	go a.processScanEvents(s)
}

// processScanEvents consumes one scanner's stream. Progress is sampled on
// a fixed tick rather than rendered per event; the terminal result
// replaces the table.
func (a *App) processScanEvents(s *scanner.Scanner) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	var last scanner.Progress
	for {
		select {
		case <-s.Done():
			if r, ok := <-s.Result(); ok {
				a.applyResult(s, r)
			}
			a.trySendUIUpdate(func() {
				if a.scanner == s {
					a.updateHeader()
					a.footer.SetText(footerMenu())
				}
			})
			return

		case p, ok := <-s.Progress():
			if ok {
				last = p
			}

		case r, ok := <-s.Result():
			if ok {
				a.applyResult(s, r)
			}

		case <-ticker.C:
			if s.IsRunning() && last.Path != "" {
				path := a.replaceHomeWithTilde(last.Path)
				a.trySendUIUpdate(func() {
					if a.scanner == s {
						a.footer.SetText(footerLoading(path))
					}
				})
			}
		}
	}
}

func (a *App) applyResult(s *scanner.Scanner, r scanner.Result) {
	a.trySendUIUpdate(func() {
		// A stale scanner's result must not clobber the current view.
		if a.scanner != s {
			return
		}
		a.entries = r.Entries
		a.buildTable()
		a.updateHeader()
	})
}
