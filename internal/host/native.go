//go:build !js

package host

import (
	"sync/atomic"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget/material"

	"dirscan/internal/a11y"
	"dirscan/internal/clipboard"
	"dirscan/internal/event"
	"dirscan/internal/host/draw"
	"dirscan/internal/logging"
)

// nativeAdapter drives a gioui window. Gio's frame events are the tick
// source: each FrameEvent drains gio input into the queue, runs the
// tick, and expects PresentFrame to submit ops for that frame.
type nativeAdapter struct {
	win   *app.Window
	queue *event.Queue
	clip  *gioClipboard
	ann   a11y.Announcer
	caps  Capabilities
	log   *logging.Logger
	mth   *material.Theme
	ops   op.Ops

	// Frame state, only touched on the Run goroutine.
	frame     *app.FrameEvent
	presented bool
	focused   bool
	width     float32
	height    float32
	scale     float32
	buttons   pointer.Buttons
	mods      event.Modifiers

	destroyed atomic.Bool
}

// New creates the native host adapter. The window is not shown until
// Run is called on a dedicated goroutine alongside app.Main.
func New(opts Options) Adapter {
	w := new(app.Window)
	if opts.Title != "" {
		w.Option(app.Title(opts.Title))
	}
	if opts.Width > 0 && opts.Height > 0 {
		w.Option(app.Size(unit.Dp(opts.Width), unit.Dp(opts.Height)))
	}

	a := &nativeAdapter{
		win:   w,
		queue: event.NewQueue(opts.QueueCapacity),
		ann:   a11y.New(),
		log:   logging.Default().WithComponent("host"),
		mth:   material.NewTheme(),
		scale: 1,
		caps: Capabilities{
			Clipboard:     true,
			Accessibility: a11y.Available(),
			ResizeEvents:  true,
		},
	}
	a.clip = &gioClipboard{adapter: a}
	return a
}

func (a *nativeAdapter) Run(tick TickFunc) error {
	for {
		switch e := a.win.Event().(type) {
		case app.DestroyEvent:
			a.destroyed.Store(true)
			a.clip.discardPending()
			a.log.Info("window destroyed", "err", e.Err)
			return e.Err

		case app.FrameEvent:
			a.beginFrame(&e)

			redraw, err := tick(e.Now)
			if err != nil {
				a.destroyed.Store(true)
				a.clip.discardPending()
				return err
			}
			if !a.presented {
				// The app skipped presentation; gio still needs a
				// frame submitted to complete the event.
				var empty draw.List
				if perr := a.PresentFrame(&empty); perr != nil {
					return perr
				}
			}
			a.frame = nil
			if redraw {
				a.win.Invalidate()
			}
		}
	}
}

// beginFrame records viewport state and drains gio input into the queue.
func (a *nativeAdapter) beginFrame(e *app.FrameEvent) {
	a.frame = e
	a.presented = false

	scale := e.Metric.PxPerDp
	if scale <= 0 {
		scale = 1
	}
	w := float32(e.Size.X) / scale
	h := float32(e.Size.Y) / scale
	if w != a.width || h != a.height || scale != a.scale {
		a.width, a.height, a.scale = w, h, scale
		a.queue.Push(event.Event{
			Kind:   event.KindResize,
			Seq:    event.NextSeq(),
			Time:   e.Now,
			Width:  w,
			Height: h,
			Scale:  scale,
		})
	}

	if !a.focused {
		e.Source.Execute(key.FocusCmd{Tag: a})
		a.focused = true
	}

	a.gatherInput(e)
}

func (a *nativeAdapter) PollEvents() []event.Event {
	return a.queue.Drain()
}

func (a *nativeAdapter) Viewport() (width, height, scale float32) {
	return a.width, a.height, a.scale
}

func (a *nativeAdapter) Invalidate() {
	a.win.Invalidate()
}

func (a *nativeAdapter) Capabilities() Capabilities  { return a.caps }
func (a *nativeAdapter) Clipboard() clipboard.Bridge { return a.clip }
func (a *nativeAdapter) Accessibility() a11y.Announcer {
	return a.ann
}
