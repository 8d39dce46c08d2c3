// Package draw defines the host-neutral render command list.
//
// The application describes each frame as a flat list of fill and text
// commands in logical pixels; each host adapter replays the list with
// its own renderer (gioui ops natively, canvas 2D in the browser). The
// list is rebuilt from scratch every frame.
package draw

import "image/color"

// Rect is an axis-aligned rectangle in logical pixels.
type Rect struct {
	X, Y, W, H float32
}

// Contains reports whether the point (px, py) lies inside the rectangle.
func (r Rect) Contains(px, py float32) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// Inset returns the rectangle shrunk by d on all sides.
func (r Rect) Inset(d float32) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Align controls horizontal text placement relative to the anchor point.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Command is a single render instruction. Exactly one of the variants
// implements it.
type Command interface {
	isCommand()
}

// FillRect fills a rectangle, optionally with rounded corners.
type FillRect struct {
	Rect   Rect
	Color  color.NRGBA
	Radius float32
}

func (FillRect) isCommand() {}

// Text draws a single line of text anchored at (X, Y), the top-left of
// the line box (or top-center/top-right per Align). Size is the text
// height in logical pixels. MaxWidth of zero means unconstrained;
// otherwise the renderer truncates with an ellipsis.
type Text struct {
	X, Y     float32
	Size     float32
	Color    color.NRGBA
	Text     string
	Align    Align
	MaxWidth float32
}

func (Text) isCommand() {}

// List is one frame's worth of render commands. The background is
// cleared first, then commands replay in order.
type List struct {
	Background color.NRGBA
	Commands   []Command
}

// Reset clears the list for reuse, keeping the backing array.
func (l *List) Reset() {
	l.Commands = l.Commands[:0]
}

// Fill appends a rectangle fill.
func (l *List) Fill(r Rect, c color.NRGBA) {
	l.Commands = append(l.Commands, FillRect{Rect: r, Color: c})
}

// FillRounded appends a rectangle fill with rounded corners.
func (l *List) FillRounded(r Rect, c color.NRGBA, radius float32) {
	l.Commands = append(l.Commands, FillRect{Rect: r, Color: c, Radius: radius})
}

// Label appends a left-aligned text line.
func (l *List) Label(x, y, size float32, c color.NRGBA, s string) {
	l.Commands = append(l.Commands, Text{X: x, Y: y, Size: size, Color: c, Text: s})
}

// LabelIn appends a text line constrained to maxWidth with the given
// alignment.
func (l *List) LabelIn(x, y, size, maxWidth float32, align Align, c color.NRGBA, s string) {
	l.Commands = append(l.Commands, Text{
		X: x, Y: y, Size: size, Color: c, Text: s,
		Align: align, MaxWidth: maxWidth,
	})
}
