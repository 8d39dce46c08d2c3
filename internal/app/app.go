// Package app implements the dirscan application: scan a directory
// tree, show the largest subdirectories live, and export the result.
package app

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"dirscan/internal/a11y"
	"dirscan/internal/clipboard"
	"dirscan/internal/config"
	"dirscan/internal/driver"
	"dirscan/internal/event"
	"dirscan/internal/host/draw"
	"dirscan/internal/logging"
	"dirscan/internal/theme"
	"dirscan/internal/ui"
)

type state int

const (
	stateIdle state = iota
	stateScanning
	stateDone
	stateFailed
)

// Store persists finished scan reports. Optional; native builds back
// it with sqlite, browser builds run without one.
type Store interface {
	SaveReport(r Report) error
	LastReport(root string) (*Report, error)
	Close() error
}

// StalenessWatcher reports content changes under a scanned root so a
// finished result can be flagged as stale. Optional.
type StalenessWatcher interface {
	Watch(root string) error
	Events() <-chan string
	Close() error
}

// Options wires the app's collaborators.
type Options struct {
	Config     *config.Config
	Theme      *theme.Theme
	Store      Store
	Watcher    StalenessWatcher
	Invalidate func()
}

// App is the dirscan application. It is driven synchronously by the
// frame loop; the scanner runs on its own goroutines and is polled.
type App struct {
	cfg        *config.Config
	th         *theme.Theme
	store      Store
	watcher    StalenessWatcher
	invalidate func()
	log        *logging.Logger

	state  state
	scan   *Scan
	latest Progress
	stale  bool
	status string

	pathField ui.TextField
	scanBtn   ui.Button
	copyBtn   ui.Button

	pendingCopy clipboard.RequestID

	list draw.List
}

// New creates the app. A nil store or watcher disables persistence or
// staleness tracking respectively.
func New(opts Options) *App {
	a := &App{
		cfg:        opts.Config,
		th:         opts.Theme,
		store:      opts.Store,
		watcher:    opts.Watcher,
		invalidate: opts.Invalidate,
		log:        logging.Default().WithComponent("app"),
	}

	a.pathField.Value = opts.Config.Scan.DefaultPath
	if a.pathField.Value == "" {
		if home, err := os.UserHomeDir(); err == nil {
			a.pathField.Value = home
		} else {
			a.pathField.Value = "."
		}
	}

	if a.store != nil {
		if prev, err := a.store.LastReport(a.pathField.Value); err != nil {
			a.log.Warn("loading previous report failed", "err", err)
		} else if prev != nil {
			a.latest = progressFromReport(*prev)
			a.state = stateDone
			a.status = fmt.Sprintf("Previous scan from %s", prev.GeneratedAt.Local().Format("2006-01-02 15:04"))
		}
	}
	return a
}

// Frame runs one UI frame.
func (a *App) Frame(ctx *driver.Context) *draw.List {
	a.handleEvents(ctx)
	a.pollScan(ctx)
	a.pollWatcher()

	a.list.Reset()
	a.list.Background = a.th.Palette.Background
	a.layout(ctx)

	if a.state == stateScanning {
		ctx.RequestRedraw()
	}
	return &a.list
}

// Close releases the app's collaborators.
func (a *App) Close() {
	if a.scan != nil {
		a.scan.Stop()
	}
	if a.watcher != nil {
		a.watcher.Close()
	}
	if a.store != nil {
		if err := a.store.Close(); err != nil {
			a.log.Warn("closing store failed", "err", err)
		}
	}
}

func (a *App) handleEvents(ctx *driver.Context) {
	for _, e := range ctx.Events {
		switch e.Kind {
		case event.KindClipboardResult:
			if e.Request != uint64(a.pendingCopy) || a.pendingCopy == 0 {
				continue
			}
			a.pendingCopy = 0
			switch e.Outcome {
			case event.OutcomeOK:
				a.status = "Report copied to clipboard"
			case event.OutcomeDenied:
				a.status = "Clipboard access denied"
			default:
				a.status = "Clipboard unavailable"
			}
		case event.KindKey:
			if e.Pressed && e.Key == "c" && e.Mods.Contain(event.ModCtrl) && a.state == stateDone {
				a.copyReport(ctx)
			}
		}
	}
}

func (a *App) pollScan(ctx *driver.Context) {
	if a.scan == nil {
		return
	}
	p, ok := a.scan.Progress()
	if !ok {
		return
	}
	a.latest = p
	if !p.Done {
		return
	}

	a.scan = nil
	if p.Err != "" && p.TotalFiles == 0 {
		a.state = stateFailed
		a.status = p.Err
		ctx.Announce("Scan failed: "+p.Err, a11y.Assertive)
		return
	}

	a.state = stateDone
	a.stale = false
	a.status = ""
	ctx.Announce(fmt.Sprintf("Scan complete: %s in %d files",
		humanize.IBytes(p.TotalBytes), p.TotalFiles), a11y.Polite)

	if a.store != nil {
		report := BuildReport(p, a.cfg.Scan.TopN, time.Now())
		if err := a.store.SaveReport(report); err != nil {
			a.log.Warn("saving report failed", "err", err)
		}
	}
	if a.watcher != nil {
		if err := a.watcher.Watch(p.Root); err != nil {
			a.log.Debug("watching scanned root failed", "err", err)
		}
	}
}

func (a *App) pollWatcher() {
	if a.watcher == nil {
		return
	}
	select {
	case root, ok := <-a.watcher.Events():
		if ok && a.state == stateDone && root == a.latest.Root {
			a.stale = true
		}
	default:
	}
}

func (a *App) startScan() {
	if a.scan != nil {
		a.scan.Stop()
	}
	root := a.pathField.Value
	a.log.Info("starting scan", "root", root)
	a.state = stateScanning
	a.stale = false
	a.status = ""
	a.latest = Progress{Root: root}
	a.scan = StartScan(root, ScanOptions{
		BatchEntries:   a.cfg.Scan.BatchEntries,
		ReportInterval: time.Duration(a.cfg.Scan.ReportIntervalMs) * time.Millisecond,
		FollowSymlinks: a.cfg.Scan.FollowSymlinks,
	}, a.invalidate)
}

func (a *App) stopScan() {
	if a.scan != nil {
		a.scan.Stop()
	}
}

func (a *App) copyReport(ctx *driver.Context) {
	if !ctx.Capabilities().Clipboard {
		a.status = "Clipboard unavailable"
		return
	}
	report := BuildReport(a.latest, a.cfg.Scan.TopN, time.Now())
	data, err := report.Encode()
	if err != nil {
		a.status = err.Error()
		return
	}
	a.pendingCopy = ctx.WriteClipboard(clipboard.TextPayload(string(data)))
}

// progressFromReport rebuilds a display snapshot from a stored report.
func progressFromReport(r Report) Progress {
	p := Progress{
		Root:       r.Root,
		TotalBytes: r.TotalBytes,
		TotalFiles: r.TotalFiles,
		Done:       true,
		Dirs:       make([]DirSize, len(r.Dirs)),
	}
	for i, d := range r.Dirs {
		p.Dirs[i] = DirSize{Path: d.Path, Bytes: d.Bytes, Files: d.Files, Done: true}
	}
	return p
}
