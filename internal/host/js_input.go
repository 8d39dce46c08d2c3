//go:build js && wasm

package host

import (
	"syscall/js"
	"time"

	"dirscan/internal/event"
)

// installListeners wires the DOM events that feed the queue. Handlers
// run on the JS thread at arbitrary times relative to frames.
func (a *jsAdapter) installListeners() {
	a.listen(a.canvas, "pointermove", func(ev js.Value) {
		a.queue.Push(event.Event{
			Kind: event.KindPointerMove,
			Seq:  event.NextSeq(),
			Time: time.Now(),
			X:    float32(ev.Get("offsetX").Float()),
			Y:    float32(ev.Get("offsetY").Float()),
			Mods: domModifiers(ev),
		})
	})

	press := func(pressed bool) func(js.Value) {
		return func(ev js.Value) {
			btn, ok := translateDOMButton(ev.Get("button").Int())
			if !ok {
				return
			}
			a.queue.Push(event.Event{
				Kind:    event.KindPointerButton,
				Seq:     event.NextSeq(),
				Time:    time.Now(),
				X:       float32(ev.Get("offsetX").Float()),
				Y:       float32(ev.Get("offsetY").Float()),
				Button:  btn,
				Pressed: pressed,
				Mods:    domModifiers(ev),
			})
		}
	}
	a.listen(a.canvas, "pointerdown", press(true))
	a.listen(a.canvas, "pointerup", press(false))

	a.listen(a.canvas, "wheel", func(ev js.Value) {
		ev.Call("preventDefault")
		a.queue.Push(event.Event{
			Kind: event.KindScroll,
			Seq:  event.NextSeq(),
			Time: time.Now(),
			X:    float32(ev.Get("offsetX").Float()),
			Y:    float32(ev.Get("offsetY").Float()),
			DX:   float32(ev.Get("deltaX").Float()),
			DY:   float32(ev.Get("deltaY").Float()),
			Mods: domModifiers(ev),
		})
	})

	a.listen(a.canvas, "contextmenu", func(ev js.Value) {
		ev.Call("preventDefault")
	})

	keyHandler := func(pressed bool) func(js.Value) {
		return func(ev js.Value) {
			raw := ev.Get("key").String()
			k, ok := translateDOMKey(raw)
			if !ok {
				return
			}
			mods := domModifiers(ev)
			if preventDefaultKeys[k] {
				ev.Call("preventDefault")
			}
			a.queue.Push(event.Event{
				Kind:    event.KindKey,
				Seq:     event.NextSeq(),
				Time:    time.Now(),
				Key:     k,
				Pressed: pressed,
				Mods:    mods,
			})
			// The raw DOM key already carries case and layout, so text
			// synthesis uses it directly.
			if pressed && len([]rune(raw)) == 1 && mods&(event.ModCtrl|event.ModAlt|event.ModMeta) == 0 {
				a.queue.Push(event.Event{
					Kind: event.KindText,
					Seq:  event.NextSeq(),
					Time: time.Now(),
					Text: raw,
				})
			}
		}
	}
	a.listen(a.window, "keydown", keyHandler(true))
	a.listen(a.window, "keyup", keyHandler(false))

	a.listen(a.window, "resize", func(js.Value) {
		a.resizeCanvas(time.Now())
	})

	a.listen(a.window, "focus", func(js.Value) {
		a.queue.Push(event.Event{Kind: event.KindFocus, Seq: event.NextSeq(), Time: time.Now()})
	})
	a.listen(a.window, "blur", func(js.Value) {
		a.queue.Push(event.Event{Kind: event.KindBlur, Seq: event.NextSeq(), Time: time.Now()})
	})

	a.listen(a.window, "beforeunload", func(js.Value) {
		a.queue.Push(event.Event{Kind: event.KindCloseRequested, Seq: event.NextSeq(), Time: time.Now()})
	})
}

// preventDefaultKeys stops the browser from acting on keys the app
// consumes (page scroll, focus traversal).
var preventDefaultKeys = map[event.Key]bool{
	event.KeyTab:       true,
	event.KeySpace:     true,
	event.KeyArrowUp:   true,
	event.KeyArrowDown: true,
	event.KeyPageUp:    true,
	event.KeyPageDown:  true,
}

func (a *jsAdapter) listen(target js.Value, name string, handler func(js.Value)) {
	fn := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			handler(args[0])
		}
		return nil
	})
	target.Call("addEventListener", name, fn)
	a.callbacks = append(a.callbacks, fn)
}

func (a *jsAdapter) releaseListeners() {
	for _, fn := range a.callbacks {
		fn.Release()
	}
	a.callbacks = nil
}

func domModifiers(ev js.Value) event.Modifiers {
	var mods event.Modifiers
	if ev.Get("shiftKey").Bool() {
		mods |= event.ModShift
	}
	if ev.Get("ctrlKey").Bool() {
		mods |= event.ModCtrl
	}
	if ev.Get("altKey").Bool() {
		mods |= event.ModAlt
	}
	if ev.Get("metaKey").Bool() {
		mods |= event.ModMeta
	}
	return mods
}
