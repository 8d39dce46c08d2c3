package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirscan/internal/driver"
	"dirscan/internal/event"
	"dirscan/internal/host/draw"
	"dirscan/internal/theme"
)

func ctxWith(events ...event.Event) *driver.Context {
	for i := range events {
		events[i].Seq = event.NextSeq()
	}
	return &driver.Context{Events: events, Width: 640, Height: 480, Scale: 1}
}

func TestButtonClick(t *testing.T) {
	th := theme.New("dark")
	r := draw.Rect{X: 10, Y: 10, W: 100, H: 30}
	var b Button
	var list draw.List

	// Press and release inside: click.
	clicked := b.Layout(ctxWith(
		event.Event{Kind: event.KindPointerButton, Button: event.ButtonLeft, Pressed: true, X: 50, Y: 20},
		event.Event{Kind: event.KindPointerButton, Button: event.ButtonLeft, Pressed: false, X: 50, Y: 20},
	), &list, th, r, "Scan")
	assert.True(t, clicked)

	// Press inside, release outside: no click.
	list.Reset()
	clicked = b.Layout(ctxWith(
		event.Event{Kind: event.KindPointerButton, Button: event.ButtonLeft, Pressed: true, X: 50, Y: 20},
		event.Event{Kind: event.KindPointerButton, Button: event.ButtonLeft, Pressed: false, X: 300, Y: 300},
	), &list, th, r, "Scan")
	assert.False(t, clicked)

	// Right button is ignored.
	list.Reset()
	clicked = b.Layout(ctxWith(
		event.Event{Kind: event.KindPointerButton, Button: event.ButtonRight, Pressed: true, X: 50, Y: 20},
		event.Event{Kind: event.KindPointerButton, Button: event.ButtonRight, Pressed: false, X: 50, Y: 20},
	), &list, th, r, "Scan")
	assert.False(t, clicked)
}

func TestTextFieldTyping(t *testing.T) {
	th := theme.New("light")
	r := draw.Rect{X: 0, Y: 0, W: 200, H: 28}
	var f TextField
	var list draw.List

	// Click to focus, then type.
	f.Layout(ctxWith(
		event.Event{Kind: event.KindPointerButton, Button: event.ButtonLeft, Pressed: true, X: 5, Y: 5},
		event.Event{Kind: event.KindText, Text: "/"},
		event.Event{Kind: event.KindText, Text: "t"},
		event.Event{Kind: event.KindText, Text: "m"},
		event.Event{Kind: event.KindText, Text: "p"},
	), &list, th, r)
	assert.True(t, f.Focused)
	assert.Equal(t, "/tmp", f.Value)

	// Backspace removes the last rune; Enter submits.
	list.Reset()
	submitted := f.Layout(ctxWith(
		event.Event{Kind: event.KindKey, Key: event.KeyBackspace, Pressed: true},
		event.Event{Kind: event.KindKey, Key: event.KeyEnter, Pressed: true},
	), &list, th, r)
	assert.True(t, submitted)
	assert.Equal(t, "/tm", f.Value)

	// Typing while unfocused does nothing.
	f.Focused = false
	list.Reset()
	f.Layout(ctxWith(event.Event{Kind: event.KindText, Text: "x"}), &list, th, r)
	assert.Equal(t, "/tm", f.Value)
}

func TestProgressBarClamps(t *testing.T) {
	th := theme.New("dark")
	var list draw.List
	ProgressBar(&list, th, draw.Rect{W: 100, H: 10}, 1.5, "")
	fill := list.Commands[1].(draw.FillRect)
	assert.Equal(t, float32(100), fill.Rect.W, "fraction clamps to 1")

	list.Reset()
	ProgressBar(&list, th, draw.Rect{W: 100, H: 10}, -0.2, "")
	assert.Len(t, list.Commands, 1, "no fill for non-positive fraction")
}
