package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirscan/internal/config"
	"dirscan/internal/driver"
	"dirscan/internal/event"
	"dirscan/internal/theme"
)

type memStore struct {
	saved  []Report
	prev   *Report
	closed bool
}

func (m *memStore) SaveReport(r Report) error          { m.saved = append(m.saved, r); return nil }
func (m *memStore) LastReport(string) (*Report, error) { return m.prev, nil }
func (m *memStore) Close() error                       { m.closed = true; return nil }

type memWatcher struct {
	ch      chan string
	watched []string
}

func (m *memWatcher) Watch(root string) error { m.watched = append(m.watched, root); return nil }
func (m *memWatcher) Events() <-chan string   { return m.ch }
func (m *memWatcher) Close() error            { return nil }

func frameCtx(events ...event.Event) *driver.Context {
	for i := range events {
		events[i].Seq = event.NextSeq()
	}
	return &driver.Context{Events: events, Now: time.Now(), Width: 800, Height: 600, Scale: 1}
}

func TestScanLifecycleThroughFrames(t *testing.T) {
	root, wantBytes, wantFiles := buildTree(t)
	cfg := config.DefaultConfig()
	cfg.Scan.DefaultPath = root
	cfg.Scan.ReportIntervalMs = 5
	store := &memStore{}
	watcher := &memWatcher{ch: make(chan string, 1)}

	a := New(Options{Config: cfg, Theme: theme.New("dark"), Store: store, Watcher: watcher})
	require.Equal(t, stateIdle, a.state)

	a.startScan()
	deadline := time.Now().Add(5 * time.Second)
	for a.state == stateScanning && time.Now().Before(deadline) {
		a.Frame(frameCtx())
		time.Sleep(2 * time.Millisecond)
	}

	require.Equal(t, stateDone, a.state)
	assert.Equal(t, wantBytes, a.latest.TotalBytes)
	assert.Equal(t, wantFiles, a.latest.TotalFiles)
	require.Len(t, store.saved, 1)
	assert.Equal(t, root, store.saved[0].Root)
	assert.Equal(t, []string{root}, watcher.watched)

	// A watcher event for the scanned root flags the result stale.
	watcher.ch <- root
	a.Frame(frameCtx())
	assert.True(t, a.stale)

	a.Close()
	assert.True(t, store.closed)
}

func TestNewRestoresPreviousReport(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Scan.DefaultPath = "/data"
	prev := &Report{
		Root:        "/data",
		GeneratedAt: time.Now().UTC(),
		TotalBytes:  4624,
		TotalFiles:  3,
		Dirs:        []ReportDir{{Path: "/data/alpha", Bytes: 4608, Files: 2}, {Path: "/data/gamma", Bytes: 16, Files: 1}},
	}

	a := New(Options{Config: cfg, Theme: theme.New("light"), Store: &memStore{prev: prev}})
	assert.Equal(t, stateDone, a.state)
	assert.Equal(t, uint64(4624), a.latest.TotalBytes)
	require.Len(t, a.latest.Dirs, 2)
	assert.True(t, a.latest.Dirs[0].Done)
	assert.NotEmpty(t, a.status)
}

func TestClipboardResultUpdatesStatus(t *testing.T) {
	a := New(Options{Config: config.DefaultConfig(), Theme: theme.New("dark")})
	a.pendingCopy = 7

	a.Frame(frameCtx(event.Event{Kind: event.KindClipboardResult, Request: 7, Outcome: event.OutcomeDenied}))
	assert.Equal(t, "Clipboard access denied", a.status)
	assert.Zero(t, a.pendingCopy)

	// Results for other requests are ignored.
	a.pendingCopy = 9
	a.Frame(frameCtx(event.Event{Kind: event.KindClipboardResult, Request: 3, Outcome: event.OutcomeOK}))
	assert.Equal(t, "Clipboard access denied", a.status)
}

func TestFrameRendersIdleState(t *testing.T) {
	a := New(Options{Config: config.DefaultConfig(), Theme: theme.New("light")})
	list := a.Frame(frameCtx())
	require.NotNil(t, list)
	assert.NotEmpty(t, list.Commands)
}
