package app

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"dirscan/internal/logging"
	"dirscan/internal/metrics"
)

// DirSize is the accumulated size of one top-level subdirectory (or the
// loose files directly under the root).
type DirSize struct {
	Path  string
	Bytes uint64
	Files uint64
	Done  bool
}

// Progress is a snapshot of a running or finished scan. Dirs is sorted
// by size descending.
type Progress struct {
	Root       string
	Dirs       []DirSize
	TotalBytes uint64
	TotalFiles uint64
	Done       bool
	Err        string
}

// ScanOptions tunes a scan.
type ScanOptions struct {
	// BatchEntries is how many files a worker accumulates before
	// flushing an update to the aggregator.
	BatchEntries int
	// ReportInterval is how often intermediate progress is published.
	ReportInterval time.Duration
	// FollowSymlinks walks through directory symlinks.
	FollowSymlinks bool
}

var filesScanned = metrics.GetCounter(
	"dirscan_files_scanned_total",
	"Files visited across all scans",
)

// Scan is a running directory scan. One worker goroutine walks each
// top-level subdirectory; an aggregator folds their updates and
// publishes throttled snapshots.
type Scan struct {
	root     string
	progress chan Progress
	stop     chan struct{}
	stopOnce sync.Once
}

// sizeUpdate is one worker's batched delta.
type sizeUpdate struct {
	index int
	bytes uint64
	files uint64
	done  bool
	err   error
}

// StartScan begins scanning root. onUpdate is called after each
// published snapshot (from the scan goroutine) so the host can schedule
// a repaint; it may be nil.
func StartScan(root string, opts ScanOptions, onUpdate func()) *Scan {
	if opts.BatchEntries <= 0 {
		opts.BatchEntries = 1024
	}
	if opts.ReportInterval <= 0 {
		opts.ReportInterval = 100 * time.Millisecond
	}

	s := &Scan{
		root:     root,
		progress: make(chan Progress, 1),
		stop:     make(chan struct{}),
	}
	go s.run(opts, onUpdate)
	return s
}

// Progress returns the newest snapshot, if one was published since the
// last call. Never blocks.
func (s *Scan) Progress() (Progress, bool) {
	select {
	case p := <-s.progress:
		return p, true
	default:
		return Progress{}, false
	}
}

// Stop cancels the scan. Workers notice at their next batch boundary.
func (s *Scan) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Scan) run(opts ScanOptions, onUpdate func()) {
	log := logging.Default().WithComponent("scan")
	start := time.Now()

	entries, err := os.ReadDir(s.root)
	if err != nil {
		s.publish(Progress{Root: s.root, Done: true, Err: err.Error()}, onUpdate)
		return
	}

	// Loose files under the root count as their own bucket, matching
	// how subdirectory totals are displayed.
	dirs := []DirSize{{Path: s.root}}
	var rootBytes, rootFiles uint64
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, DirSize{Path: filepath.Join(s.root, entry.Name())})
			continue
		}
		if info, err := entry.Info(); err == nil && info.Mode().IsRegular() {
			rootBytes += uint64(info.Size())
			rootFiles++
		}
	}
	dirs[0].Bytes = rootBytes
	dirs[0].Files = rootFiles
	dirs[0].Done = true
	filesScanned.Add(rootFiles)

	updates := make(chan sizeUpdate, len(dirs))
	var wg sync.WaitGroup
	for i := 1; i < len(dirs); i++ {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()
			s.walkDir(index, path, opts, updates)
		}(i, dirs[i].Path)
	}
	go func() {
		wg.Wait()
		close(updates)
	}()

	ticker := time.NewTicker(opts.ReportInterval)
	defer ticker.Stop()

	running := len(dirs) - 1
	dirty := true
	var firstErr error
	for running > 0 {
		select {
		case u, ok := <-updates:
			if !ok {
				running = 0
				break
			}
			dirs[u.index].Bytes += u.bytes
			dirs[u.index].Files += u.files
			if u.done {
				dirs[u.index].Done = true
				running--
			}
			if u.err != nil && firstErr == nil {
				firstErr = u.err
			}
			dirty = true
		case <-ticker.C:
			if dirty {
				s.publish(snapshot(s.root, dirs, false, firstErr), onUpdate)
				dirty = false
			}
		case <-s.stop:
			log.Info("scan cancelled", "root", s.root)
			s.publish(snapshot(s.root, dirs, true, firstErr), onUpdate)
			return
		}
	}

	final := snapshot(s.root, dirs, true, firstErr)
	s.publish(final, onUpdate)
	log.Info("scan finished",
		"root", s.root,
		"bytes", final.TotalBytes,
		"files", final.TotalFiles,
		"elapsed", time.Since(start))
}

// walkDir walks one subtree, flushing batched updates.
func (s *Scan) walkDir(index int, path string, opts ScanOptions, updates chan<- sizeUpdate) {
	var batch sizeUpdate
	batch.index = index
	entries := 0

	walkErr := filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			return nil
		}
		select {
		case <-s.stop:
			return filepath.SkipAll
		default:
		}

		if d.Type()&fs.ModeSymlink != 0 && !opts.FollowSymlinks {
			return nil
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				batch.bytes += uint64(info.Size())
				batch.files++
			}
		}

		entries++
		if entries >= opts.BatchEntries {
			filesScanned.Add(batch.files)
			updates <- sizeUpdate{index: index, bytes: batch.bytes, files: batch.files}
			batch.bytes, batch.files = 0, 0
			entries = 0
		}
		return nil
	})

	filesScanned.Add(batch.files)
	updates <- sizeUpdate{
		index: index,
		bytes: batch.bytes,
		files: batch.files,
		done:  true,
		err:   walkErr,
	}
}

// publish replaces any unread snapshot so the consumer always sees the
// newest state.
func (s *Scan) publish(p Progress, onUpdate func()) {
	select {
	case <-s.progress:
	default:
	}
	s.progress <- p
	if onUpdate != nil {
		onUpdate()
	}
}

// snapshot copies and sorts the accumulated state.
func snapshot(root string, dirs []DirSize, done bool, err error) Progress {
	p := Progress{
		Root: root,
		Dirs: make([]DirSize, len(dirs)),
		Done: done,
	}
	copy(p.Dirs, dirs)
	sort.Slice(p.Dirs, func(i, j int) bool { return p.Dirs[i].Bytes > p.Dirs[j].Bytes })
	for _, d := range p.Dirs {
		p.TotalBytes += d.Bytes
		p.TotalFiles += d.Files
	}
	if err != nil {
		p.Err = err.Error()
	}
	return p
}
