// Package host abstracts the platform the UI runs on.
//
// An Adapter owns the window (or canvas), translates raw platform input
// into neutral events, presents draw lists, and exposes the clipboard
// and accessibility bridges. Two adapters exist: a native one built on
// gioui.org and a browser one built on syscall/js. The variant is
// chosen at build time; nothing above this package inspects which one
// it got.
package host

import (
	"errors"
	"time"

	"dirscan/internal/a11y"
	"dirscan/internal/clipboard"
	"dirscan/internal/event"
	"dirscan/internal/host/draw"
)

// ErrSurfaceLost is returned by PresentFrame when the render target is
// gone for good (window destroyed, canvas detached). It is fatal: the
// frame driver stops and no further frames are presented.
var ErrSurfaceLost = errors.New("host: surface lost")

// Capabilities reports what this host can do. Computed once at adapter
// construction and immutable afterwards.
type Capabilities struct {
	// Clipboard is true when clipboard requests can be submitted.
	Clipboard bool
	// Accessibility is true when announcements reach a real backend.
	Accessibility bool
	// ResizeEvents is true when the host delivers viewport resizes.
	ResizeEvents bool
}

// TickFunc runs one frame. It reports whether another frame should be
// scheduled immediately; a non-nil error ends the loop.
type TickFunc func(now time.Time) (redraw bool, err error)

// Adapter is the platform surface the frame driver runs against.
type Adapter interface {
	// Run drives the host loop, calling tick once per host frame. It
	// blocks until the surface is destroyed or tick returns an error.
	Run(tick TickFunc) error

	// PollEvents drains all pending translated events. Non-blocking.
	PollEvents() []event.Event

	// PresentFrame replays the draw list onto the surface. Returns
	// ErrSurfaceLost when the surface is permanently gone.
	PresentFrame(list *draw.List) error

	// Viewport returns the current logical size and scale factor.
	Viewport() (width, height, scale float32)

	// Invalidate requests another frame. Safe to call from any
	// goroutine; used when background work has results to show.
	Invalidate()

	Capabilities() Capabilities
	Clipboard() clipboard.Bridge
	Accessibility() a11y.Announcer
}

// Options configures adapter construction.
type Options struct {
	// Title is the window title (native) or document title (browser).
	Title string
	// Width and Height are the initial window size in logical pixels.
	// Ignored in the browser, where the canvas fills its element.
	Width, Height int
	// QueueCapacity bounds the event queue. Zero uses the default.
	QueueCapacity int
}
