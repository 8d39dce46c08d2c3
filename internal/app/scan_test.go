package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// buildTree materializes testdata/tree.yaml under a temp dir and
// returns the root plus expected totals.
func buildTree(t *testing.T) (string, uint64, uint64) {
	t.Helper()

	data, err := os.ReadFile("testdata/tree.yaml")
	require.NoError(t, err)
	var fixture struct {
		Files map[string]int `yaml:"files"`
	}
	require.NoError(t, yaml.Unmarshal(data, &fixture))

	root := t.TempDir()
	var totalBytes, totalFiles uint64
	for rel, size := range fixture.Files {
		p := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, make([]byte, size), 0o644))
		totalBytes += uint64(size)
		totalFiles++
	}
	return root, totalBytes, totalFiles
}

func waitForDone(t *testing.T, s *Scan) Progress {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if p, ok := s.Progress(); ok && p.Done {
			return p
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("scan did not finish in time")
	return Progress{}
}

func TestScanComputesSizes(t *testing.T) {
	root, wantBytes, wantFiles := buildTree(t)

	s := StartScan(root, ScanOptions{BatchEntries: 2, ReportInterval: 5 * time.Millisecond}, nil)
	p := waitForDone(t, s)

	assert.Equal(t, root, p.Root)
	assert.Equal(t, wantBytes, p.TotalBytes)
	assert.Equal(t, wantFiles, p.TotalFiles)
	assert.Empty(t, p.Err)

	// One bucket per top-level subdirectory plus the loose root files.
	require.Len(t, p.Dirs, 4)
	for i := 1; i < len(p.Dirs); i++ {
		assert.GreaterOrEqual(t, p.Dirs[i-1].Bytes, p.Dirs[i].Bytes, "sorted by size descending")
	}
	for _, d := range p.Dirs {
		assert.True(t, d.Done)
	}

	byPath := map[string]DirSize{}
	for _, d := range p.Dirs {
		byPath[d.Path] = d
	}
	assert.Equal(t, uint64(4608), byPath[filepath.Join(root, "alpha")].Bytes)
	assert.Equal(t, uint64(2), byPath[filepath.Join(root, "alpha")].Files)
	assert.Equal(t, uint64(3072), byPath[filepath.Join(root, "beta")].Bytes)
	assert.Equal(t, uint64(16), byPath[filepath.Join(root, "gamma")].Bytes)
	assert.Equal(t, uint64(64), byPath[root].Bytes, "loose root files form their own bucket")
}

func TestScanMissingRoot(t *testing.T) {
	s := StartScan(filepath.Join(t.TempDir(), "nope"), ScanOptions{}, nil)
	p := waitForDone(t, s)
	assert.NotEmpty(t, p.Err)
	assert.Zero(t, p.TotalFiles)
}

func TestScanStop(t *testing.T) {
	root, _, _ := buildTree(t)
	s := StartScan(root, ScanOptions{ReportInterval: time.Hour}, nil)
	s.Stop()
	s.Stop() // idempotent

	p := waitForDone(t, s)
	assert.True(t, p.Done)
}

func TestScanCallsOnUpdate(t *testing.T) {
	root, _, _ := buildTree(t)
	called := make(chan struct{}, 16)
	s := StartScan(root, ScanOptions{ReportInterval: 5 * time.Millisecond}, func() {
		select {
		case called <- struct{}{}:
		default:
		}
	})
	waitForDone(t, s)

	select {
	case <-called:
	default:
		t.Fatal("onUpdate was never called")
	}
}
