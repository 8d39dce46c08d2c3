//go:build !js

package host

import (
	"image"

	"gioui.org/app"
	gioevent "gioui.org/io/event"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"dirscan/internal/host/draw"
)

// PresentFrame lowers the draw list to gio ops and submits the frame.
func (a *nativeAdapter) PresentFrame(list *draw.List) error {
	if a.destroyed.Load() {
		return ErrSurfaceLost
	}
	e := a.frame
	if e == nil {
		return ErrSurfaceLost
	}

	a.ops.Reset()
	gtx := app.NewContext(&a.ops, *e)

	paint.Fill(gtx.Ops, list.Background)

	// Register input interest for the next frame: the whole window is
	// the pointer hit area and the key focus target.
	area := clip.Rect(image.Rectangle{Max: e.Size}).Push(gtx.Ops)
	gioevent.Op(gtx.Ops, a)
	area.Pop()

	for _, cmd := range list.Commands {
		switch c := cmd.(type) {
		case draw.FillRect:
			a.fillRect(gtx, c)
		case draw.Text:
			a.drawText(gtx, c)
		}
	}

	e.Frame(gtx.Ops)
	a.presented = true
	return nil
}

// devicePx converts logical to device pixels, rounding.
func (a *nativeAdapter) devicePx(v float32) int {
	return int(v*a.scale + 0.5)
}

func (a *nativeAdapter) fillRect(gtx layout.Context, c draw.FillRect) {
	rect := image.Rect(
		a.devicePx(c.Rect.X), a.devicePx(c.Rect.Y),
		a.devicePx(c.Rect.X+c.Rect.W), a.devicePx(c.Rect.Y+c.Rect.H),
	)
	if c.Radius > 0 {
		rr := clip.UniformRRect(rect, a.devicePx(c.Radius))
		paint.FillShape(gtx.Ops, c.Color, rr.Op(gtx.Ops))
		return
	}
	paint.FillShape(gtx.Ops, c.Color, clip.Rect(rect).Op())
}

func (a *nativeAdapter) drawText(gtx layout.Context, c draw.Text) {
	offset := op.Offset(image.Pt(a.devicePx(c.X), a.devicePx(c.Y))).Push(gtx.Ops)
	defer offset.Pop()

	maxX := gtx.Constraints.Max.X - a.devicePx(c.X)
	if c.MaxWidth > 0 {
		maxX = a.devicePx(c.MaxWidth)
	}
	if maxX < 0 {
		maxX = 0
	}
	tgtx := gtx
	tgtx.Constraints = layout.Constraints{
		Max: image.Pt(maxX, gtx.Constraints.Max.Y),
	}

	l := material.Label(a.mth, unit.Sp(c.Size), c.Text)
	l.Color = c.Color
	l.MaxLines = 1
	switch c.Align {
	case draw.AlignCenter:
		l.Alignment = text.Middle
	case draw.AlignRight:
		l.Alignment = text.End
	default:
		l.Alignment = text.Start
	}
	l.Layout(tgtx)
}
