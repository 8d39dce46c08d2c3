package app

import (
	"encoding/json"
	"fmt"
	"time"
)

// Report is the exportable summary of a finished scan. It is what the
// copy-to-clipboard action produces.
type Report struct {
	Root        string      `json:"root"`
	GeneratedAt time.Time   `json:"generated_at"`
	TotalBytes  uint64      `json:"total_bytes"`
	TotalFiles  uint64      `json:"total_files"`
	Dirs        []ReportDir `json:"dirs"`
}

// ReportDir is one directory entry in the report.
type ReportDir struct {
	Path  string `json:"path"`
	Bytes uint64 `json:"bytes"`
	Files uint64 `json:"files"`
}

// BuildReport converts a finished scan snapshot into a report, keeping
// at most topN directories.
func BuildReport(p Progress, topN int, now time.Time) Report {
	dirs := p.Dirs
	if topN > 0 && len(dirs) > topN {
		dirs = dirs[:topN]
	}
	r := Report{
		Root:        p.Root,
		GeneratedAt: now.UTC(),
		TotalBytes:  p.TotalBytes,
		TotalFiles:  p.TotalFiles,
		Dirs:        make([]ReportDir, len(dirs)),
	}
	for i, d := range dirs {
		r.Dirs[i] = ReportDir{Path: d.Path, Bytes: d.Bytes, Files: d.Files}
	}
	return r
}

// Encode renders the report as indented JSON.
func (r Report) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return data, nil
}
