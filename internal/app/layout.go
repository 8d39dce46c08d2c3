package app

import (
	"fmt"
	"image/color"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"dirscan/internal/driver"
	"dirscan/internal/host/draw"
	"dirscan/internal/ui"
)

const (
	fieldHeight = 32
	rowHeight   = 44
	barHeight   = 16
)

func (a *App) layout(ctx *driver.Context) {
	th := a.th
	pad := th.Config.Padding
	spacing := th.Config.Spacing
	width := ctx.Width - 2*pad

	y := pad
	ui.Heading(&a.list, th, pad, y, "dirscan")
	y += th.Config.FontTitle + spacing

	// Path entry row with the scan/stop control.
	buttonW := float32(90)
	fieldRect := draw.Rect{X: pad, Y: y, W: width - buttonW - spacing, H: fieldHeight}
	buttonRect := draw.Rect{X: fieldRect.X + fieldRect.W + spacing, Y: y, W: buttonW, H: fieldHeight}

	submitted := a.pathField.Layout(ctx, &a.list, th, fieldRect)
	label := "Scan"
	if a.state == stateScanning {
		label = "Stop"
	}
	if a.scanBtn.Layout(ctx, &a.list, th, buttonRect, label) || submitted {
		if a.state == stateScanning && !submitted {
			a.stopScan()
		} else {
			a.startScan()
		}
	}
	y += fieldHeight + spacing

	if a.status != "" {
		a.list.Label(pad, y, th.Config.FontCaption, a.statusColor(), a.status)
		y += th.Config.FontCaption + spacing
	}
	if a.stale {
		a.list.Label(pad, y, th.Config.FontCaption, th.Palette.Warning,
			"Contents changed since this scan; results may be out of date")
		y += th.Config.FontCaption + spacing
	}

	switch a.state {
	case stateIdle:
		ui.Body(&a.list, th, pad, y, "Enter a directory and press Scan")
	case stateFailed:
		a.list.Label(pad, y, th.Config.FontBody, th.Palette.Error, a.latest.Err)
	case stateScanning, stateDone:
		a.layoutResults(ctx, y)
	}
}

func (a *App) layoutResults(ctx *driver.Context, y float32) {
	th := a.th
	pad := th.Config.Padding
	spacing := th.Config.Spacing
	width := ctx.Width - 2*pad
	p := a.latest

	totals := fmt.Sprintf("%s in %s files", humanize.IBytes(p.TotalBytes), humanize.Comma(int64(p.TotalFiles)))
	if a.state == stateScanning {
		totals += " (scanning)"
	}
	ui.Body(&a.list, th, pad, y, totals)

	if a.state == stateDone && ctx.Capabilities().Clipboard {
		copyW := float32(110)
		copyRect := draw.Rect{X: pad + width - copyW, Y: y - 4, W: copyW, H: 28}
		if a.copyBtn.Layout(ctx, &a.list, th, copyRect, "Copy report") {
			a.copyReport(ctx)
		}
	}
	y += th.Config.FontBody + spacing*2

	topN := a.cfg.Scan.TopN
	var maxBytes uint64
	if len(p.Dirs) > 0 {
		maxBytes = p.Dirs[0].Bytes
	}
	for i, d := range p.Dirs {
		if topN > 0 && i >= topN {
			break
		}
		if y+rowHeight > ctx.Height-pad {
			break
		}
		a.layoutRow(y, width, d, maxBytes)
		y += rowHeight
	}
}

func (a *App) layoutRow(y, width float32, d DirSize, maxBytes uint64) {
	th := a.th
	pad := th.Config.Padding

	name := filepath.Base(d.Path)
	if d.Path == a.latest.Root {
		name = "(files in root)"
	}
	if !d.Done {
		name += " ..."
	}

	sizeText := humanize.IBytes(d.Bytes)
	sizeW := float32(100)
	a.list.LabelIn(pad, y, th.Config.FontBody, width-sizeW, draw.AlignLeft, th.Palette.Text, name)
	a.list.LabelIn(pad+width-sizeW, y, th.Config.FontBody, sizeW, draw.AlignRight, th.Palette.TextMuted, sizeText)

	fraction := float32(0)
	if maxBytes > 0 {
		fraction = float32(d.Bytes) / float32(maxBytes)
	}
	bar := draw.Rect{X: pad, Y: y + th.Config.FontBody + 4, W: width, H: barHeight}
	ui.ProgressBar(&a.list, th, bar, fraction, "")
}

func (a *App) statusColor() color.NRGBA {
	if a.state == stateFailed {
		return a.th.Palette.Error
	}
	return a.th.Palette.TextMuted
}
