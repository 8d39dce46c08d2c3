package store

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirscan/internal/app"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "scans.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleReport(root string, at time.Time) app.Report {
	return app.Report{
		Root:        root,
		GeneratedAt: at.UTC(),
		TotalBytes:  7696,
		TotalFiles:  5,
		Dirs: []app.ReportDir{
			{Path: root + "/alpha", Bytes: 4608, Files: 2},
			{Path: root + "/beta", Bytes: 3072, Files: 2},
			{Path: root + "/gamma", Bytes: 16, Files: 1},
		},
	}
}

func TestSaveAndLoadReport(t *testing.T) {
	s := openTemp(t)

	want := sampleReport("/data", time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC))
	require.NoError(t, s.SaveReport(want))

	got, err := s.LastReport("/data")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestLastReportMissingRoot(t *testing.T) {
	s := openTemp(t)
	got, err := s.LastReport("/nowhere")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestLastReportReturnsNewest(t *testing.T) {
	s := openTemp(t)

	old := sampleReport("/data", time.Date(2026, 8, 22, 9, 0, 0, 0, time.UTC))
	newer := sampleReport("/data", time.Date(2026, 8, 23, 9, 0, 0, 0, time.UTC))
	newer.TotalBytes = 9999
	require.NoError(t, s.SaveReport(old))
	require.NoError(t, s.SaveReport(newer))

	got, err := s.LastReport("/data")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint64(9999), got.TotalBytes)
}

func TestSaveReportPrunesHistory(t *testing.T) {
	s := openTemp(t)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < keepScansPerRoot+5; i++ {
		r := sampleReport("/data", base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, s.SaveReport(r))
	}

	var count int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM scans WHERE root = ?`, "/data").Scan(&count))
	assert.Equal(t, keepScansPerRoot, count)

	// Pruning cascades to the per-directory rows.
	var dirCount int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM scan_dirs`).Scan(&dirCount))
	assert.Equal(t, keepScansPerRoot*3, dirCount)
}

func TestReportsPerRootAreIndependent(t *testing.T) {
	s := openTemp(t)

	for i := 0; i < 3; i++ {
		root := fmt.Sprintf("/data%d", i)
		r := sampleReport(root, time.Now())
		r.TotalFiles = uint64(i)
		require.NoError(t, s.SaveReport(r))
	}

	got, err := s.LastReport("/data1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, uint64(1), got.TotalFiles)
}
