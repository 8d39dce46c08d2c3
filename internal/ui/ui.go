// Package ui provides the small immediate-mode widget set dirscan
// draws with. Widgets hold only interaction state; geometry and
// content are passed in every frame and rendering goes through the
// draw list.
package ui

import (
	"dirscan/internal/driver"
	"dirscan/internal/event"
	"dirscan/internal/host/draw"
	"dirscan/internal/theme"
)

// Button is a clickable rectangle with a centered label.
type Button struct {
	hovered bool
	pressed bool
}

// Layout draws the button and reports whether it was clicked this
// frame (left button released inside after a press inside).
func (b *Button) Layout(ctx *driver.Context, list *draw.List, th *theme.Theme, r draw.Rect, label string) bool {
	clicked := false
	for _, e := range ctx.Events {
		switch e.Kind {
		case event.KindPointerMove:
			b.hovered = r.Contains(e.X, e.Y)
		case event.KindPointerButton:
			if e.Button != event.ButtonLeft {
				continue
			}
			inside := r.Contains(e.X, e.Y)
			if e.Pressed {
				b.pressed = inside
			} else {
				if b.pressed && inside {
					clicked = true
				}
				b.pressed = false
			}
		}
	}

	bg := th.Palette.Panel
	if b.pressed {
		bg = th.Palette.Primary
	} else if b.hovered {
		bg = th.Palette.Border
	}
	list.FillRounded(r, bg, th.Config.CornerRadius)

	fg := th.Palette.Text
	if b.pressed {
		fg = th.Palette.Background
	}
	textY := r.Y + (r.H-th.Config.FontBody)/2
	list.LabelIn(r.X, textY, th.Config.FontBody, r.W, draw.AlignCenter, fg, label)

	return clicked
}

// TextField is a single-line editable text box.
type TextField struct {
	Value   string
	Focused bool
}

// Layout draws the field and handles focus, typing, and Backspace.
// Returns true when Enter was pressed while focused.
func (f *TextField) Layout(ctx *driver.Context, list *draw.List, th *theme.Theme, r draw.Rect) bool {
	submitted := false
	for _, e := range ctx.Events {
		switch e.Kind {
		case event.KindPointerButton:
			if e.Button == event.ButtonLeft && e.Pressed {
				f.Focused = r.Contains(e.X, e.Y)
			}
		case event.KindText:
			if f.Focused {
				f.Value += e.Text
			}
		case event.KindKey:
			if !f.Focused || !e.Pressed {
				continue
			}
			switch e.Key {
			case event.KeyBackspace:
				if len(f.Value) > 0 {
					runes := []rune(f.Value)
					f.Value = string(runes[:len(runes)-1])
				}
			case event.KeyEnter:
				submitted = true
			case event.KeyEscape:
				f.Focused = false
			}
		case event.KindBlur:
			f.Focused = false
		}
	}

	border := th.Palette.Border
	if f.Focused {
		border = th.Palette.Primary
	}
	list.FillRounded(r, border, th.Config.CornerRadius)
	list.FillRounded(r.Inset(1), th.Palette.Surface, th.Config.CornerRadius)

	text := f.Value
	if f.Focused {
		text += "_"
	}
	pad := th.Config.Spacing
	textY := r.Y + (r.H-th.Config.FontBody)/2
	list.LabelIn(r.X+pad, textY, th.Config.FontBody, r.W-2*pad, draw.AlignLeft, th.Palette.Text, text)

	return submitted
}

// ProgressBar draws a determinate progress bar. fraction is clamped to
// [0, 1]; the label renders centered over the bar.
func ProgressBar(list *draw.List, th *theme.Theme, r draw.Rect, fraction float32, label string) {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}

	list.FillRounded(r, th.Palette.Panel, th.Config.CornerRadius)
	if fraction > 0 {
		fill := r
		fill.W = r.W * fraction
		list.FillRounded(fill, th.Palette.Primary, th.Config.CornerRadius)
	}
	if label != "" {
		textY := r.Y + (r.H-th.Config.FontCaption)/2
		list.LabelIn(r.X, textY, th.Config.FontCaption, r.W, draw.AlignCenter, th.Palette.Text, label)
	}
}

// Heading draws title-sized text.
func Heading(list *draw.List, th *theme.Theme, x, y float32, s string) {
	list.Label(x, y, th.Config.FontTitle, th.Palette.Text, s)
}

// Body draws body-sized text.
func Body(list *draw.List, th *theme.Theme, x, y float32, s string) {
	list.Label(x, y, th.Config.FontBody, th.Palette.Text, s)
}

// Caption draws muted caption-sized text.
func Caption(list *draw.List, th *theme.Theme, x, y float32, s string) {
	list.Label(x, y, th.Config.FontCaption, th.Palette.TextMuted, s)
}
