//go:build js && wasm

package host

import (
	"fmt"
	"sync/atomic"
	"syscall/js"
	"time"

	"dirscan/internal/a11y"
	"dirscan/internal/clipboard"
	"dirscan/internal/event"
	"dirscan/internal/logging"
)

// jsAdapter drives a full-window canvas. DOM listeners push translated
// events into the queue whenever the browser fires them; ticks come
// from requestAnimationFrame. Everything runs on the JS thread, so the
// only cross-goroutine state is the queue itself.
type jsAdapter struct {
	window js.Value
	doc    js.Value
	canvas js.Value
	ctx2d  js.Value

	queue *event.Queue
	clip  clipboard.Bridge
	ann   a11y.Announcer
	caps  Capabilities
	log   *logging.Logger

	width  float32
	height float32
	scale  float32

	detached  atomic.Bool
	callbacks []js.Func
}

// New creates the browser host adapter bound to the canvas with id
// "dirscan", creating one if the page has none.
func New(opts Options) Adapter {
	window := js.Global()
	doc := window.Get("document")
	if opts.Title != "" {
		doc.Set("title", opts.Title)
	}

	canvas := doc.Call("getElementById", "dirscan")
	if !canvas.Truthy() {
		canvas = doc.Call("createElement", "canvas")
		canvas.Set("id", "dirscan")
		doc.Get("body").Call("appendChild", canvas)
	}
	style := canvas.Get("style")
	style.Set("position", "absolute")
	style.Set("left", "0")
	style.Set("top", "0")
	canvas.Set("tabIndex", 0)

	a := &jsAdapter{
		window: window,
		doc:    doc,
		canvas: canvas,
		ctx2d:  canvas.Call("getContext", "2d"),
		queue:  event.NewQueue(opts.QueueCapacity),
		ann:    a11y.New(),
		log:    logging.Default().WithComponent("host"),
		scale:  1,
	}
	a.clip = newJSClipboard(a)
	_, clipIsNop := a.clip.(clipboard.Nop)
	a.caps = Capabilities{
		Clipboard:     !clipIsNop,
		Accessibility: a11y.Available(),
		ResizeEvents:  true,
	}

	a.resizeCanvas(time.Now())
	a.installListeners()
	return a
}

func (a *jsAdapter) Run(tick TickFunc) error {
	done := make(chan error, 1)

	var frame js.Func
	frame = js.FuncOf(func(this js.Value, args []js.Value) any {
		if a.detached.Load() {
			done <- nil
			return nil
		}
		// Input arrives between frames, so the loop always reschedules;
		// the tick's redraw hint has nothing extra to request.
		_, err := tick(time.Now())
		if err != nil {
			a.detached.Store(true)
			done <- err
			return nil
		}
		a.window.Call("requestAnimationFrame", frame)
		return nil
	})
	a.window.Call("requestAnimationFrame", frame)

	err := <-done
	frame.Release()
	a.releaseListeners()
	return err
}

// resizeCanvas fits the canvas to the window, sizing the backing store
// in device pixels so HiDPI output stays crisp.
func (a *jsAdapter) resizeCanvas(now time.Time) {
	dpr := float32(a.window.Get("devicePixelRatio").Float())
	if dpr <= 0 {
		dpr = 1
	}
	w := float32(a.window.Get("innerWidth").Float())
	h := float32(a.window.Get("innerHeight").Float())

	a.canvas.Set("width", int(w*dpr))
	a.canvas.Set("height", int(h*dpr))
	style := a.canvas.Get("style")
	style.Set("width", jsPx(w))
	style.Set("height", jsPx(h))

	a.width, a.height, a.scale = w, h, dpr
	a.queue.Push(event.Event{
		Kind:   event.KindResize,
		Seq:    event.NextSeq(),
		Time:   now,
		Width:  w,
		Height: h,
		Scale:  dpr,
	})
}

func (a *jsAdapter) PollEvents() []event.Event {
	return a.queue.Drain()
}

func (a *jsAdapter) Viewport() (width, height, scale float32) {
	return a.width, a.height, a.scale
}

// Invalidate is a no-op: the rAF loop reschedules unconditionally.
func (a *jsAdapter) Invalidate() {}

func (a *jsAdapter) Capabilities() Capabilities    { return a.caps }
func (a *jsAdapter) Clipboard() clipboard.Bridge   { return a.clip }
func (a *jsAdapter) Accessibility() a11y.Announcer { return a.ann }

func jsPx(v float32) string {
	return fmt.Sprintf("%gpx", v)
}
