//go:build !js

package host

import (
	"unicode"
	"unicode/utf8"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/transfer"

	"dirscan/internal/event"
)

// gatherInput pulls all queued gio input for this frame and pushes the
// translated events. Interest in input is declared two ways: the
// filters here and the event op registered during PresentFrame.
func (a *nativeAdapter) gatherInput(e *app.FrameEvent) {
	for {
		ev, ok := e.Source.Event(
			pointer.Filter{
				Target: a,
				Kinds: pointer.Press | pointer.Release | pointer.Move |
					pointer.Drag | pointer.Scroll,
				ScrollX: pointer.ScrollRange{Min: -1 << 16, Max: 1 << 16},
				ScrollY: pointer.ScrollRange{Min: -1 << 16, Max: 1 << 16},
			},
			key.Filter{Focus: a, Optional: key.ModShift | key.ModCtrl | key.ModAlt | key.ModSuper | key.ModCommand},
			key.FocusFilter{Target: a},
			transfer.TargetFilter{Target: a, Type: clipboardMIME},
		)
		if !ok {
			return
		}

		switch ev := ev.(type) {
		case pointer.Event:
			a.pushPointer(ev)
		case key.Event:
			a.pushKey(ev)
		case key.FocusEvent:
			kind := event.KindBlur
			if ev.Focus {
				kind = event.KindFocus
			}
			a.queue.Push(event.Event{Kind: kind, Seq: event.NextSeq(), Time: a.frame.Now})
		case transfer.DataEvent:
			a.clip.deliver(ev)
		}
	}
}

func (a *nativeAdapter) pushPointer(ev pointer.Event) {
	x := ev.Position.X / a.scale
	y := ev.Position.Y / a.scale
	mods := translateGioModifiers(ev.Modifiers)
	a.mods = mods

	switch ev.Kind {
	case pointer.Move, pointer.Drag:
		a.queue.Push(event.Event{
			Kind: event.KindPointerMove,
			Seq:  event.NextSeq(),
			Time: a.frame.Now,
			X:    x, Y: y,
			Mods: mods,
		})

	case pointer.Press, pointer.Release:
		changed := ev.Buttons ^ a.buttons
		a.buttons = ev.Buttons
		// A single gio event can flip several buttons.
		for _, b := range []pointer.Buttons{pointer.ButtonPrimary, pointer.ButtonSecondary, pointer.ButtonTertiary} {
			if changed&b == 0 {
				continue
			}
			btn, ok := translateGioButton(b)
			if !ok {
				continue
			}
			a.queue.Push(event.Event{
				Kind: event.KindPointerButton,
				Seq:  event.NextSeq(),
				Time: a.frame.Now,
				X:    x, Y: y,
				Button:  btn,
				Pressed: ev.Kind == pointer.Press,
				Mods:    mods,
			})
		}

	case pointer.Scroll:
		a.queue.Push(event.Event{
			Kind: event.KindScroll,
			Seq:  event.NextSeq(),
			Time: a.frame.Now,
			X:    x, Y: y,
			DX:   ev.Scroll.X / a.scale,
			DY:   ev.Scroll.Y / a.scale,
			Mods: mods,
		})
	}
}

func (a *nativeAdapter) pushKey(ev key.Event) {
	k, ok := translateGioKey(ev.Name)
	if !ok {
		return
	}
	mods := translateGioModifiers(ev.Modifiers)
	a.mods = mods
	pressed := ev.State == key.Press

	a.queue.Push(event.Event{
		Kind:    event.KindKey,
		Seq:     event.NextSeq(),
		Time:    a.frame.Now,
		Key:     k,
		Pressed: pressed,
		Mods:    mods,
	})

	// Synthesize text input from printable presses without command
	// modifiers, since no gio editor is in play to produce EditEvents.
	if pressed && !mods.Contain(event.ModCtrl) && mods&(event.ModAlt|event.ModMeta) == 0 {
		if text := printableText(k, mods.Contain(event.ModShift)); text != "" {
			a.queue.Push(event.Event{
				Kind: event.KindText,
				Seq:  event.NextSeq(),
				Time: a.frame.Now,
				Text: text,
			})
		}
	}
}

// printableText returns the character a printable key press produces,
// or "" for named keys.
func printableText(k event.Key, shift bool) string {
	s := string(k)
	r, size := utf8.DecodeRuneInString(s)
	if size != len(s) || !unicode.IsPrint(r) {
		return ""
	}
	if shift {
		r = unicode.ToUpper(r)
	}
	return string(r)
}
