// Package driver runs the per-frame event dispatch loop.
//
// Each host tick advances the Idle → Draining → Dispatching →
// Presenting → Idle cycle exactly once: drain pending events, hand them
// to the application in one Context, present the returned draw list,
// then forward the side effects the application requested (clipboard,
// announcements) to the bridges. A presentation failure is fatal and
// moves the driver to the terminal Stopped state.
package driver

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"dirscan/internal/a11y"
	"dirscan/internal/clipboard"
	"dirscan/internal/event"
	"dirscan/internal/host"
	"dirscan/internal/host/draw"
	"dirscan/internal/logging"
	"dirscan/internal/metrics"
)

// ErrStopped is returned by Tick after the driver has stopped. Ticking
// a stopped driver is a harmless no-op.
var ErrStopped = errors.New("driver: stopped")

// State is the driver's position in the frame cycle.
type State uint8

const (
	StateIdle State = iota
	StateDraining
	StateDispatching
	StatePresenting
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDraining:
		return "draining"
	case StateDispatching:
		return "dispatching"
	case StatePresenting:
		return "presenting"
	default:
		return "stopped"
	}
}

var framesPresented = metrics.GetCounter(
	"dirscan_frames_presented_total",
	"Frames successfully presented",
)

// App is the application driven by the frame loop. Frame must be
// synchronous and must not retain ctx; a nil draw list skips
// presentation for this frame.
type App interface {
	Frame(ctx *Context) *draw.List
}

// Driver owns the frame cycle for one adapter/app pair. It is not safe
// for concurrent use; Tick runs on the host loop goroutine only.
type Driver struct {
	adapter host.Adapter
	app     App
	log     *logging.Logger

	state   State
	lastNow time.Time
	mods    event.Modifiers

	// Results synthesized by the driver itself (failed bridge
	// submissions), delivered with the next frame's events.
	pending []event.Event

	err error
}

// New creates a Driver in the Idle state.
func New(adapter host.Adapter, app App) *Driver {
	return &Driver{
		adapter: adapter,
		app:     app,
		log:     logging.Default().WithComponent("driver"),
	}
}

// State returns the current state. Between ticks it is Idle or Stopped.
func (d *Driver) State() State { return d.state }

// Err returns the fatal error that stopped the driver, if any.
func (d *Driver) Err() error { return d.err }

// Run drives the adapter loop until the surface is destroyed or a tick
// fails.
func (d *Driver) Run() error {
	return d.adapter.Run(d.Tick)
}

// Tick runs one frame cycle.
func (d *Driver) Tick(now time.Time) (redraw bool, err error) {
	if d.state == StateStopped {
		return false, ErrStopped
	}

	// Draining: collect this frame's events.
	d.state = StateDraining
	events := d.adapter.PollEvents()
	if len(d.pending) > 0 {
		events = append(d.pending, events...)
		d.pending = nil
		sort.SliceStable(events, func(i, j int) bool { return events[i].Seq < events[j].Seq })
	}
	d.foldModifiers(events)

	var dt time.Duration
	if !d.lastNow.IsZero() {
		dt = now.Sub(d.lastNow)
	}
	d.lastNow = now

	w, h, scale := d.adapter.Viewport()
	ctx := &Context{
		Events: events,
		Now:    now,
		Delta:  dt,
		Width:  w,
		Height: h,
		Scale:  scale,
		Mods:   d.mods,
		caps:   d.adapter.Capabilities(),
	}

	// Dispatching: the app consumes the context synchronously.
	d.state = StateDispatching
	list := d.app.Frame(ctx)
	requests := ctx.take()

	// Presenting: draw list first, then side effects.
	d.state = StatePresenting
	if list != nil {
		if perr := d.adapter.PresentFrame(list); perr != nil {
			d.stop(perr)
			return false, fmt.Errorf("present frame: %w", perr)
		}
		framesPresented.Inc()
	}
	d.forward(requests)

	d.state = StateIdle
	return requests.redraw, nil
}

// stop moves to the terminal state. Idempotent.
func (d *Driver) stop(cause error) {
	if d.state == StateStopped {
		return
	}
	d.state = StateStopped
	d.err = cause
	d.log.Error("driver stopped", "err", cause)
}

// foldModifiers tracks the last seen modifier state so frames without
// input still get a meaningful snapshot.
func (d *Driver) foldModifiers(events []event.Event) {
	for _, e := range events {
		switch e.Kind {
		case event.KindKey, event.KindPointerButton, event.KindPointerMove, event.KindScroll:
			d.mods = e.Mods
		}
	}
}

// forward hands collected requests to the bridges. Bridge submission
// failures become ClipboardResult events on the next frame; the app
// never sees an error from here.
func (d *Driver) forward(r requests) {
	bridge := d.adapter.Clipboard()
	for _, wr := range r.writes {
		if err := bridge.Write(wr.id, wr.payload); err != nil {
			d.pending = append(d.pending, clipboard.Result(wr.id, submitOutcome(err), nil, ""))
		}
	}
	for _, id := range r.reads {
		if err := bridge.Read(id); err != nil {
			d.pending = append(d.pending, clipboard.Result(id, submitOutcome(err), nil, ""))
		}
	}

	announcer := d.adapter.Accessibility()
	for _, an := range r.announcements {
		if err := announcer.Announce(an.text, an.priority); err != nil {
			d.log.Debug("announcement failed", "err", err)
		}
	}
}

func submitOutcome(err error) event.Outcome {
	if errors.Is(err, clipboard.ErrUnavailable) {
		return event.OutcomeUnavailable
	}
	return event.OutcomeDenied
}

// announcement is a queued accessibility request.
type announcement struct {
	text     string
	priority a11y.Priority
}

type clipWrite struct {
	id      clipboard.RequestID
	payload clipboard.Payload
}

// requests are the side effects one Frame call collected.
type requests struct {
	redraw        bool
	writes        []clipWrite
	reads         []clipboard.RequestID
	announcements []announcement
}
